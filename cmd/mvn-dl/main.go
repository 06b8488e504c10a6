package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/mvn-downloader/internal/config"
	"github.com/handiism/mvn-downloader/internal/download"
	"github.com/handiism/mvn-downloader/internal/http"
	ioutils "github.com/handiism/mvn-downloader/internal/io"
	"github.com/handiism/mvn-downloader/internal/logger"
	"github.com/handiism/mvn-downloader/internal/model"
	"github.com/handiism/mvn-downloader/internal/resolver"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

type options struct {
	configPath string
	outputDir  string
	insecure   bool
	dryRun     bool
	verbose    bool
}

// errCancelled is returned from the command after a user interrupt so main
// can pick the exit code.
var errCancelled = errors.New("cancelled")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errCancelled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "mvn-dl <url> [url...]",
		Short: "Download Maven artifacts and bundle them into a zip archive",
		Long: `mvn-dl downloads the jar and pom for an mvnrepository.com artifact page,
or any file from a direct URL, and bundles the result into a single zip
archive in the output directory.

Examples:
  mvn-dl https://mvnrepository.com/artifact/org.example/libfoo/2.3.1
  mvn-dl --insecure -o ./artifacts https://example.com/files/thing.bin`,
		Args:          cobra.MinimumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file")
	cmd.Flags().StringVarP(&opts.outputDir, "output", "o", "", "Output directory (overrides config)")
	cmd.Flags().BoolVarP(&opts.insecure, "insecure", "k", false, "Bypass TLS certificate verification")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Resolve URLs and print targets without downloading")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show verbose output")

	return cmd
}

func run(parent context.Context, opts options, inputs []string) error {
	settings, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return err
	}
	if opts.outputDir != "" {
		settings.OutputDir = opts.outputDir
	}
	if opts.insecure {
		settings.VerifyTLS = false
	}

	logCfg := settings.ToLoggerConfig()
	if opts.verbose {
		logCfg.Level = "debug"
	}
	log := logger.New(logCfg)
	defer log.Close()

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !opts.dryRun {
		if err := ioutils.EnsureDir(settings.OutputDir); err != nil {
			fmt.Fprintf(os.Stderr, "Could not create downloads directory: %v\n", err)
			return err
		}
	}

	res := settings.NewResolver()
	engine := download.NewEngine(settings.ToHTTPOptions(), log)

	var failed int
	for _, input := range inputs {
		targets, ver := res.Resolve(input)
		if len(targets) == 0 {
			fmt.Fprintf(os.Stderr, "%s: %v\n", input, resolver.ErrUnresolvable)
			failed++
			continue
		}

		if opts.dryRun {
			printTargets(ctx, settings, targets, ver)
			continue
		}

		path, err := fetch(ctx, engine, download.Request{
			Targets:   targets,
			Version:   ver,
			OutputDir: settings.OutputDir,
			VerifyTLS: settings.VerifyTLS,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "\n%s\n", download.Describe(err))
			if download.IsCancelled(err) {
				return errCancelled
			}
			failed++
			continue
		}

		fmt.Printf("\nPackage saved to: %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d downloads failed", failed, len(inputs))
	}
	return nil
}

// fetch runs one session, translating an interrupt into a cancellation
// request so the engine can clean up before returning.
func fetch(ctx context.Context, engine *download.Engine, req download.Request) (string, error) {
	label := "package"
	if req.Version != "" {
		label = req.Version
	}
	fmt.Printf("Downloading %s...\n", label)

	flag := download.NewCancelFlag()
	done := make(chan struct{})
	var path string

	g, gctx := errgroup.WithContext(context.Background())
	g.Go(func() error {
		defer close(done)
		last := -1
		var err error
		path, err = engine.Run(gctx, req, flag, func(percent int) {
			if percent != last {
				last = percent
				fmt.Printf("\r[%-50s] %3d%%", bar(percent), percent)
			}
		})
		return err
	})
	g.Go(func() error {
		select {
		case <-ctx.Done():
			fmt.Println("\nInterrupted, cancelling...")
			flag.Cancel()
		case <-done:
		}
		return nil
	})

	return path, g.Wait()
}

func bar(percent int) string {
	n := percent / 2
	b := make([]byte, 50)
	for i := range b {
		if i < n {
			b[i] = '='
		} else {
			b[i] = ' '
		}
	}
	return string(b)
}

func printTargets(ctx context.Context, settings *config.Settings, targets model.TargetSet, ver string) {
	client := http.NewClient(settings.ToHTTPOptions())
	defer client.Close()

	if ver != "" {
		fmt.Printf("Version %s\n", ver)
	}
	for _, t := range targets {
		size := "unknown size"
		if n, err := client.GetFileSize(ctx, t.URL); err == nil {
			size = humanize.Bytes(uint64(n))
		}
		fmt.Printf("  %s\n    %s (%s)\n", t.Filename, t.URL, size)
	}
}
