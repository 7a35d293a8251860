package types

import (
	"errors"
	"fmt"
)

// ErrInvalidBPM is returned when a tempo is not a positive finite number.
var ErrInvalidBPM = errors.New("bpm must be a positive finite value")

// ErrNoTiming is returned by operations that need beat timing from a song
// whose header has no usable BPM.
var ErrNoTiming = errors.New("song has no usable BPM")

// DecodeError is returned when a song file's bytes cannot be turned into text.
type DecodeError struct {
	Path     string
	Encoding string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: decode %s: %v", e.Path, e.Encoding, e.Err)
	}
	return fmt.Sprintf("decode %s: %v", e.Encoding, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FileTooLargeError is returned when a song file exceeds the configured size limit.
type FileTooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("%s: file size %d exceeds limit %d", e.Path, e.Size, e.Limit)
}

// UnsupportedExportError is returned when no exporter is registered for a format name.
type UnsupportedExportError struct {
	Format string
}

func (e *UnsupportedExportError) Error() string {
	return fmt.Sprintf("export not supported for format %q", e.Format)
}

// Warning represents a non-fatal issue encountered while reading a song.
//
// Malformed lines are skipped or defaulted rather than rejected; each such
// decision is recorded as a Warning so callers can surface data-quality
// problems without losing the rest of the song.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "decode", "parse", "library"

	// Warning message
	Message string

	// 1-based source line (0 if not applicable)
	Line int
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("%s (line %d): %s", w.Stage, w.Line, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
