package ultrastar

import (
	"context"
	"io/fs"
	"log/slog"

	"github.com/simonhull/ultrastar/internal/library"
)

// Library is an alias to library.Library.
type Library = library.Library

// LibraryEntry is an alias to library.Entry.
type LibraryEntry = library.Entry

// LibraryOption is an alias to library.Option.
type LibraryOption = library.Option

// OpenLibrary scans dir for song folders.
//
//	lib, err := ultrastar.OpenLibrary(ctx, "/srv/songs",
//	    ultrastar.WithScanProgress(func(n int) { log.Printf("%d songs", n) }),
//	)
func OpenLibrary(ctx context.Context, dir string, opts ...LibraryOption) (*Library, error) {
	return library.Open(ctx, dir, opts...)
}

// LoadLibrary scans root inside fsys for song folders.
func LoadLibrary(ctx context.Context, fsys fs.FS, root string, opts ...LibraryOption) (*Library, error) {
	return library.Load(ctx, fsys, root, opts...)
}

// WithScanConcurrency limits how many song files are read at once.
func WithScanConcurrency(n int) LibraryOption {
	return library.WithConcurrency(n)
}

// WithScanProgress reports the number of songs loaded so far.
func WithScanProgress(fn func(loaded int)) LibraryOption {
	return library.WithProgress(fn)
}

// WithScanLogger sets the logger for scan diagnostics.
func WithScanLogger(logger *slog.Logger) LibraryOption {
	return library.WithLogger(logger)
}
