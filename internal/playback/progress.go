package playback

import (
	"fmt"
	"time"
)

// SkipThresholdMs is the lead time above which skipping to the first note
// is offered.
const SkipThresholdMs = 3000

// ShouldOfferSkip reports whether the first note is far enough ahead of
// currentMs to offer skipping the intro.
func ShouldOfferSkip(firstNoteMs, currentMs float64) bool {
	return firstNoteMs-currentMs > SkipThresholdMs
}

// Progress returns how far currentMs is through a song of totalMs, as a
// percentage in [0, 100]. It is 0 when totalMs is not positive or
// currentMs is negative.
func Progress(currentMs, totalMs float64) float64 {
	if totalMs <= 0 || currentMs < 0 {
		return 0
	}
	return min(currentMs, totalMs) / totalMs * 100
}

// FormatElapsed renders a position as "mm:ss". Minutes keep counting past
// an hour ("75:02").
func FormatElapsed(ms float64) string {
	d := time.Duration(max(ms, 0) * float64(time.Millisecond))
	return fmt.Sprintf("%02d:%02d", int(d/time.Minute), int(d/time.Second)%60)
}

// Status is a snapshot of the playback clock for a progress bar.
type Status struct {
	Percent   float64
	Elapsed   string
	OfferSkip bool
}

// StatusAt combines Progress, FormatElapsed and ShouldOfferSkip. A negative
// or unbounded position reports an empty status. firstNoteMs is ignored
// when hasFirstNote is false.
func StatusAt(currentMs, totalMs, firstNoteMs float64, hasFirstNote bool) Status {
	if totalMs <= 0 || currentMs < 0 {
		return Status{Elapsed: FormatElapsed(0)}
	}
	clamped := min(currentMs, totalMs)
	return Status{
		Percent:   Progress(clamped, totalMs),
		Elapsed:   FormatElapsed(clamped),
		OfferSkip: hasFirstNote && ShouldOfferSkip(firstNoteMs, clamped),
	}
}
