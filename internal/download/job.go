package download

import (
	"context"
	"sync/atomic"
)

// Callbacks receive the outcome of a Job. Any of them may be nil. They are
// invoked on the job's goroutine, never concurrently with each other.
type Callbacks struct {
	OnProgress func(percent int)
	OnSuccess  func(archivePath string)
	OnFailure  func(err error)
}

// Job is a Run executing on its own goroutine.
type Job struct {
	cancel   *CancelFlag
	done     chan struct{}
	progress atomic.Int32

	path string
	err  error
}

// Start runs req on a new goroutine and returns immediately.
func (e *Engine) Start(ctx context.Context, req Request, cb Callbacks) *Job {
	j := &Job{
		cancel: NewCancelFlag(),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(j.done)

		path, err := e.Run(ctx, req, j.cancel, func(percent int) {
			j.progress.Store(int32(percent))
			if cb.OnProgress != nil {
				cb.OnProgress(percent)
			}
		})
		j.path, j.err = path, err

		if err != nil {
			if cb.OnFailure != nil {
				cb.OnFailure(err)
			}
			return
		}
		if cb.OnSuccess != nil {
			cb.OnSuccess(path)
		}
	}()

	return j
}

// Cancel requests cancellation. The job still cleans up before Done closes.
func (j *Job) Cancel() {
	j.cancel.Cancel()
}

// Done is closed once the run has returned and its callback has fired.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Wait blocks until the job finishes and returns its result.
func (j *Job) Wait() (string, error) {
	<-j.done
	return j.path, j.err
}

// Progress returns the last reported percentage.
func (j *Job) Progress() int {
	return int(j.progress.Load())
}
