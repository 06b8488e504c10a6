package download

import (
	"errors"
	"fmt"

	"github.com/handiism/mvn-downloader/internal/http"
)

var (
	// ErrCancelled is returned when a cancellation request was observed.
	ErrCancelled = http.ErrCancelled

	// ErrNothingDownloaded is returned when every target was skipped.
	ErrNothingDownloaded = errors.New("no files were successfully downloaded")

	// ErrNoTargets is returned for a request without targets.
	ErrNoTargets = errors.New("no download targets")
)

// FetchError is a hard failure while downloading one target: any HTTP
// status other than success or 404, a transport error, or a failure
// writing the file.
type FetchError struct {
	URL string

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int

	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error downloading %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// PackagingError is a failure while building or publishing the archive.
type PackagingError struct {
	// Op is "archive" or "move".
	Op  string
	Err error
}

func (e *PackagingError) Error() string {
	return fmt.Sprintf("packaging failed (%s): %v", e.Op, e.Err)
}

func (e *PackagingError) Unwrap() error {
	return e.Err
}

// IsCancelled reports whether err is the result of a cancellation request.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// Describe returns the message shown to users for a failed run.
func Describe(err error) string {
	var fetchErr *FetchError
	var packErr *PackagingError

	switch {
	case err == nil:
		return ""
	case IsCancelled(err):
		return "Download cancelled by user."
	case errors.Is(err, ErrNothingDownloaded):
		return "No files were successfully downloaded."
	case errors.Is(err, ErrNoTargets):
		return "Could not parse the provided URL."
	case errors.As(err, &fetchErr):
		return fmt.Sprintf("An error occurred downloading %s:\n%v", fetchErr.URL, fetchErr.Err)
	case errors.As(err, &packErr):
		return fmt.Sprintf("Could not create the archive:\n%v", packErr.Err)
	}
	return fmt.Sprintf("An error occurred:\n%v", err)
}
