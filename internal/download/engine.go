package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/google/uuid"

	"github.com/handiism/mvn-downloader/internal/http"
	ioutils "github.com/handiism/mvn-downloader/internal/io"
	"github.com/handiism/mvn-downloader/internal/logger"
	"github.com/handiism/mvn-downloader/internal/model"
)

// ScratchPrefix starts the name of every scratch directory created inside
// an output directory.
const ScratchPrefix = ".temp_download-"

// Request describes one download session.
type Request struct {
	// Targets are downloaded in order. The first one that succeeds names
	// the archive.
	Targets model.TargetSet

	// Version is informational; empty when the input carried none.
	Version string

	// OutputDir receives the archive. It is created if missing.
	OutputDir string

	// VerifyTLS enables certificate verification.
	VerifyTLS bool
}

// Engine downloads target sets and packages them. An Engine holds no
// per-run state, so one Engine may serve overlapping runs; each run gets
// its own scratch directory and HTTP client.
type Engine struct {
	httpOptions http.Options
	log         *logger.Logger
}

// NewEngine creates an Engine. The VerifyTLS field of opts is ignored;
// each Request carries its own.
func NewEngine(opts http.Options, log *logger.Logger) *Engine {
	if log == nil {
		log = logger.Nop()
	}
	return &Engine{
		httpOptions: opts,
		log:         log.WithComponent("engine"),
	}
}

// session is the state of one Run.
type session struct {
	id         string
	req        Request
	scratchDir string
	cancel     *CancelFlag
	ctx        context.Context
	client     *http.Client
	progress   *progressTracker
	downloaded []string
	log        *logger.Logger
}

func (s *session) cancelled() bool {
	return s.cancel.Cancelled() || s.ctx.Err() != nil
}

// Run downloads req.Targets and returns the absolute path of the archive.
//
// onProgress, if not nil, receives overall percentages in [0, 100], never
// decreasing, ending with 100 on success. It is called on the caller's
// goroutine. cancel may be nil.
//
// Whatever the outcome, the scratch directory no longer exists when Run
// returns.
func (e *Engine) Run(ctx context.Context, req Request, cancel *CancelFlag, onProgress func(int)) (archivePath string, err error) {
	if err := req.Targets.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoTargets, err)
	}
	if cancel == nil {
		cancel = NewCancelFlag()
	}

	opts := e.httpOptions
	opts.VerifyTLS = req.VerifyTLS

	id := uuid.NewString()
	s := &session{
		id:         id,
		req:        req,
		scratchDir: filepath.Join(req.OutputDir, ScratchPrefix+id),
		cancel:     cancel,
		ctx:        ctx,
		client:     http.NewClient(opts),
		progress:   newProgressTracker(len(req.Targets), onProgress),
		log:        &logger.Logger{Logger: e.log.With().Str("session", id).Logger()},
	}
	defer s.client.Close()

	s.log.Info().
		Int("targets", len(req.Targets)).
		Str("version", req.Version).
		Str("output_dir", req.OutputDir).
		Msg("Starting download session")
	if !req.VerifyTLS {
		s.log.Warn().Msg("TLS certificate verification disabled for this session")
	}

	if err := os.MkdirAll(s.scratchDir, 0755); err != nil {
		return "", fmt.Errorf("create scratch directory: %w", err)
	}
	defer s.cleanup()

	defer func() {
		switch {
		case err == nil:
			s.log.Info().Str("archive", archivePath).Msg("Download session complete")
		case IsCancelled(err):
			s.log.Info().Msg("Download session cancelled")
		default:
			s.log.Error().Err(err).Msg("Download session failed")
		}
	}()

	for i, target := range req.Targets {
		if err := s.fetch(i, target); err != nil {
			return "", err
		}
	}

	if len(s.downloaded) == 0 {
		return "", ErrNothingDownloaded
	}

	archivePath, err = s.pack()
	if err != nil {
		return "", err
	}

	s.progress.finish()
	return archivePath, nil
}

// fetch downloads one target. A 404 is logged and skipped.
func (s *session) fetch(index int, target model.Target) error {
	if s.cancelled() {
		return ErrCancelled
	}

	name := ioutils.SafeComponent(target.Filename)
	if name != target.Filename {
		s.log.Warn().Str("filename", target.Filename).Str("sanitized", name).Msg("Unsafe filename replaced")
	}

	s.log.Debug().Str("url", target.URL).Str("file", name).Msg("Downloading")

	result := s.client.Fetch(s.ctx, target.URL, filepath.Join(s.scratchDir, name), http.FetchOptions{
		Cancelled: s.cancelled,
		OnProgress: func(written, total int64) {
			s.progress.update(index, written, total)
		},
	})

	switch result.Status {
	case http.FetchOK:
		if !slices.Contains(s.downloaded, name) {
			s.downloaded = append(s.downloaded, name)
		}
		s.log.Info().Str("file", name).Int64("bytes", result.Written).Msg("Downloaded")
		return nil

	case http.FetchNotFound:
		s.log.Warn().Str("url", target.URL).Msg("File not found, skipping")
		return nil
	}

	if errors.Is(result.Err, ErrCancelled) || s.cancelled() {
		return ErrCancelled
	}
	return &FetchError{URL: target.URL, StatusCode: result.StatusCode, Err: result.Err}
}

// pack zips the downloaded files inside the scratch directory and moves
// the archive into the output directory.
func (s *session) pack() (string, error) {
	name := ioutils.ArchiveName(s.downloaded[0])

	stagingDir, err := os.MkdirTemp(s.scratchDir, ".archive-")
	if err != nil {
		return "", &PackagingError{Op: "archive", Err: err}
	}
	staged := filepath.Join(stagingDir, name)

	if err := ioutils.CreateZip(s.ctx, staged, s.scratchDir, s.downloaded); err != nil {
		if s.ctx.Err() != nil {
			return "", ErrCancelled
		}
		return "", &PackagingError{Op: "archive", Err: err}
	}

	final := filepath.Join(s.req.OutputDir, name)
	if err := ioutils.MoveFile(s.ctx, staged, final); err != nil {
		return "", &PackagingError{Op: "move", Err: err}
	}

	abs, err := filepath.Abs(final)
	if err != nil {
		return final, nil
	}
	return abs, nil
}

func (s *session) cleanup() {
	if err := os.RemoveAll(s.scratchDir); err != nil {
		s.log.Error().Err(err).Str("dir", s.scratchDir).Msg("Failed to remove scratch directory")
	}
}
