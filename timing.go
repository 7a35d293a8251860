package ultrastar

import "github.com/simonhull/ultrastar/internal/timing"

// Timing is an alias to timing.Timing.
// It converts beats to milliseconds for one BPM and GAP.
type Timing = timing.Timing

// NewTiming returns a Timing for bpm and gapMs. It fails with ErrInvalidBPM
// when bpm is not a positive finite number.
func NewTiming(bpm float64, gapMs int) (Timing, error) {
	return timing.New(bpm, gapMs)
}

// TimingFromMetadata reads BPM and GAP from a song header.
func TimingFromMetadata(md Metadata) (Timing, bool) {
	return timing.FromMetadata(md)
}

// FirstNoteBeat returns the start beat of the first note in events.
func FirstNoteBeat(events []Event) (int, bool) {
	return timing.FirstNoteBeat(events)
}
