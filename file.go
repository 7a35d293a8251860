package ultrastar

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/ultrastar/internal/lyrics"
	"github.com/simonhull/ultrastar/internal/parser"
	"github.com/simonhull/ultrastar/internal/playback"
	"github.com/simonhull/ultrastar/internal/timing"
)

// File is a song file read from disk.
//
// The whole file is read and parsed by Open; no handle is kept open, so a
// File needs no Close.
//
//	file, err := ultrastar.Open("song.txt")
//	if err != nil {
//		return err
//	}
//	title, _ := file.Song.Metadata.Title()
type File struct {
	// Path to the song file
	Path string

	// File size in bytes
	Size int64

	// Text encoding detected while decoding
	Encoding Encoding

	// Parsed header and events
	Song *Song

	// Warnings encountered during decoding and parsing (non-fatal issues)
	Warnings []Warning
}

// Open reads and parses a song file.
//
// Malformed lines never fail Open; they are defaulted or dropped and
// recorded in File.Warnings. Open fails only when the file cannot be read
// or decoded, or when an option turns warnings into errors.
//
// Options can be provided to customize parsing behavior:
//
//	file, err := ultrastar.Open("song.txt",
//	    ultrastar.WithStrictParsing(),
//	)
func Open(path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	size := stat.Size()

	if options.maxFileSize > 0 && size > options.maxFileSize {
		return nil, &FileTooLargeError{Path: path, Size: size, Limit: options.maxFileSize}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	file, err := openBytes(data, path, options)
	if err != nil {
		return nil, err
	}

	if options.strictParsing && len(file.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", file.Warnings[0])
	}

	options.logger.Debug("song opened",
		"path", path,
		"encoding", file.Encoding.String(),
		"events", len(file.Song.Events),
		"warnings", len(file.Warnings),
	)

	return file, nil
}

// openBytes parses an in-memory song file (internal, for testing)
func openBytes(data []byte, path string, options *openOptions) (*File, error) {
	song, enc, err := parser.ParseBytes(data)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) && de.Path == "" {
			de.Path = path
		}
		return nil, err
	}

	file := &File{
		Path:     path,
		Size:     int64(len(data)),
		Encoding: enc,
		Song:     song,
		Warnings: song.Warnings,
	}

	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before the file is read. Options can be provided
// just like with Open():
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	file, err := ultrastar.OpenContext(ctx, "song.txt")
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple files concurrently.
//
// Results are returned in the same order as the input paths. If any file
// fails to open, OpenMany returns the first error and no files.
//
// Concurrency is limited to runtime.NumCPU() to avoid exhausting file
// descriptors.
//
//	files, err := ultrastar.OpenMany(ctx, "a.txt", "b.txt", "c.txt")
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	files := make([]*File, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			file, err := OpenContext(ctx, path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			files[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// Timing returns the song's beat timing. ok is false when the header has
// no usable BPM.
func (f *File) Timing() (Timing, bool) {
	return timing.FromMetadata(f.Song.Metadata)
}

// Lines builds the song's lyric lines. It returns nil when the song has no
// timing.
func (f *File) Lines() []LyricLine {
	return lyrics.BuildLines(f.Song)
}

// FirstNoteStartMs returns when the first note starts, in milliseconds from
// the beginning of the audio.
func (f *File) FirstNoteStartMs() (float64, bool) {
	t, ok := f.Timing()
	if !ok {
		return 0, false
	}
	return t.FirstNoteStartMs(f.Song.Events)
}

// NewTracker returns a playback tracker loaded with the song's lyric lines.
func (f *File) NewTracker(opts ...TrackerOption) *Tracker {
	return playback.NewTracker(f.Lines(), opts...)
}
