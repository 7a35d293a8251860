package ultrastar

import "log/slog"

// Option configures behavior when opening song files.
//
// Example:
//
//	file, err := ultrastar.Open("song.txt",
//	    ultrastar.WithStrictParsing(),
//	    ultrastar.WithMaxFileSize(1<<20),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	strictParsing  bool         // Fail on any warning
	ignoreWarnings bool         // Suppress all warnings
	maxFileSize    int64        // Maximum file size in bytes (0 = no limit)
	logger         *slog.Logger // Diagnostics
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		strictParsing:  false,
		ignoreWarnings: false,
		maxFileSize:    0, // No limit
		logger:         slog.New(slog.DiscardHandler),
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, ultrastar keeps going when a line is malformed, defaulting
// or dropping it and recording a warning. With strict parsing enabled the
// first warning becomes the error returned by Open.
//
// Use this in tools that validate song files before publishing them.
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// File.Warnings will always be empty.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxFileSize rejects files larger than bytes with a FileTooLargeError.
//
// Song files are small; a limit protects services that open user-supplied
// paths. Default is 0 (no limit).
func WithMaxFileSize(bytes int64) Option {
	return func(o *openOptions) {
		o.maxFileSize = bytes
	}
}

// WithLogger sets the logger for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
