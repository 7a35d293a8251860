package library

import (
	"log/slog"
	"runtime"
)

// Option configures a Scanner.
type Option func(*scanOptions)

type scanOptions struct {
	concurrency int
	progress    func(loaded int)
	logger      *slog.Logger
}

func defaultOptions() *scanOptions {
	return &scanOptions{
		concurrency: runtime.NumCPU(),
		logger:      slog.New(slog.DiscardHandler),
	}
}

// WithConcurrency limits how many song files are read at once.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *scanOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithProgress registers a callback that receives the running count of
// imported songs. Calls are serialized and the count increases by one each
// time, but songs complete in no particular order.
func WithProgress(fn func(loaded int)) Option {
	return func(o *scanOptions) {
		o.progress = fn
	}
}

// WithLogger sets the logger for scan diagnostics. The default discards
// everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *scanOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
