// Package http provides the HTTP client used to fetch artifacts.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Optional TLS certificate verification bypass
//   - Streaming file downloads with progress tracking
//   - Cooperative cancellation at every chunk boundary
//   - Classifying each fetch as OK, not found, or a hard error
//
// # Basic Usage
//
//	client := http.NewClient(http.DefaultOptions())
//
//	result := client.Fetch(ctx, url, "/tmp/scratch/file.jar", http.FetchOptions{
//	    Cancelled: flag.Cancelled,
//	    OnProgress: func(written, total int64) { /* update UI */ },
//	})
//	switch result.Status {
//	case http.FetchOK:
//	case http.FetchNotFound:
//	case http.FetchFailed:
//	    return result.Err
//	}
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
