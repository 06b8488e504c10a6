package download

import "sync/atomic"

// CancelFlag is a cooperative cancellation request shared between the
// caller and one engine run.
type CancelFlag struct {
	cancelled atomic.Bool
}

// NewCancelFlag returns an unset flag.
func NewCancelFlag() *CancelFlag {
	return &CancelFlag{}
}

// Cancel requests cancellation. It may be called from any goroutine, any
// number of times.
func (f *CancelFlag) Cancel() {
	f.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (f *CancelFlag) Cancelled() bool {
	return f.cancelled.Load()
}
