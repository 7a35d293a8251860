package ultrastar

import (
	"github.com/simonhull/ultrastar/internal/types"
)

// DecodeError is an alias to types.DecodeError.
// Re-exporting from internal/types to maintain public API.
type DecodeError = types.DecodeError

// FileTooLargeError is an alias to types.FileTooLargeError.
// Re-exporting from internal/types to maintain public API.
type FileTooLargeError = types.FileTooLargeError

// UnsupportedExportError is an alias to types.UnsupportedExportError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedExportError = types.UnsupportedExportError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning

var (
	// ErrInvalidBPM is returned by NewTiming for a non-positive or non-finite tempo.
	ErrInvalidBPM = types.ErrInvalidBPM

	// ErrNoTiming is returned by exports of songs without a usable BPM.
	ErrNoTiming = types.ErrNoTiming
)
