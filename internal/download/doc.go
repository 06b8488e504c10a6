// Package download provides the fetch-and-package engine: it downloads an
// ordered set of targets into a private scratch directory and bundles the
// results into a single ZIP archive.
//
// # Engine
//
// Engine.Run processes one Request:
//
//  1. Create a scratch directory inside the output directory
//  2. Download each target in order, streaming to disk
//  3. Skip targets that answer 404; abort on any other failure
//  4. Write <first downloaded file stem>.zip into the output directory
//  5. Remove the scratch directory
//
// The scratch directory is removed on every exit path, including
// cancellation and packaging failures.
//
// # Basic Usage
//
//	engine := download.NewEngine(settings.ToHTTPOptions(), log)
//	targets, version := resolver.Resolve(input)
//
//	path, err := engine.Run(ctx, download.Request{
//	    Targets:   targets,
//	    Version:   version,
//	    OutputDir: "/srv/artifacts",
//	    VerifyTLS: true,
//	}, download.NewCancelFlag(), func(percent int) {
//	    fmt.Printf("%d%%\n", percent)
//	})
//
// # Cancellation
//
// CancelFlag is safe to set from any goroutine. The engine checks it before
// each target and at every streamed chunk, then cleans up and returns an
// error for which IsCancelled reports true. Cancelling ctx has the same
// effect.
//
// # Running off the caller's goroutine
//
// Engine.Start wraps Run in a goroutine and reports through Callbacks:
//
//	job := engine.Start(ctx, req, download.Callbacks{
//	    OnProgress: func(p int) { ... },
//	    OnSuccess:  func(path string) { ... },
//	    OnFailure:  func(err error) { ... },
//	})
//	// later, from a key handler
//	job.Cancel()
//
// Callbacks run on the job's goroutine; presentation layers marshal them
// onto their own event loop.
package download
