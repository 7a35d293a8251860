package ultrastar

import "github.com/simonhull/ultrastar/internal/playback"

// Tracker is an alias to playback.Tracker.
type Tracker = playback.Tracker

// TrackerOption is an alias to playback.Option.
type TrackerOption = playback.Option

// View is an alias to playback.View.
type View = playback.View

// TokenView is an alias to playback.TokenView.
type TokenView = playback.TokenView

// State is an alias to playback.State.
type State = playback.State

const (
	StateHidden   = playback.StateHidden
	StatePreview  = playback.StatePreview
	StateActive   = playback.StateActive
	StatePastEnd  = playback.StatePastEnd
	SkipThreshold = playback.SkipThresholdMs
)

// PlaybackStatus is an alias to playback.Status.
type PlaybackStatus = playback.Status

// NewTracker returns a Tracker for lines.
func NewTracker(lines []LyricLine, opts ...TrackerOption) *Tracker {
	return playback.NewTracker(lines, opts...)
}

// WithLeadIn sets how long before a line starts it is previewed.
func WithLeadIn(ms float64) TrackerOption {
	return playback.WithLeadIn(ms)
}

// WithTokenTolerance sets how far outside a syllable's span it still counts
// as active.
func WithTokenTolerance(ms float64) TrackerOption {
	return playback.WithTokenTolerance(ms)
}

// WithHighlightOffset shifts the clock used for syllable highlighting.
func WithHighlightOffset(ms float64) TrackerOption {
	return playback.WithHighlightOffset(ms)
}

// StatusAt computes the progress bar, elapsed label and skip prompt for a
// playback position.
func StatusAt(currentMs, totalMs, firstNoteMs float64, hasFirstNote bool) PlaybackStatus {
	return playback.StatusAt(currentMs, totalMs, firstNoteMs, hasFirstNote)
}
