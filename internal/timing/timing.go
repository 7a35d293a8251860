// Package timing converts UltraStar beats to wall-clock milliseconds.
//
// A beat is a quarter of a BPM beat: at 120 BPM one UltraStar beat lasts
// 125ms. Beat 0 sits GAP milliseconds into the audio.
package timing

import (
	"fmt"
	"math"

	"github.com/simonhull/ultrastar/internal/types"
)

const (
	msPerMinute     = 60000.0
	beatsPerQuarter = 4.0
)

// Timing is an immutable BPM/GAP pair. The zero value is not usable;
// construct one with New, MustNew or FromMetadata.
type Timing struct {
	bpm   float64
	gapMs int
}

// New returns a Timing for a positive finite bpm.
func New(bpm float64, gapMs int) (Timing, error) {
	if math.IsNaN(bpm) || math.IsInf(bpm, 0) || bpm <= 0 {
		return Timing{}, fmt.Errorf("timing %v: %w", bpm, types.ErrInvalidBPM)
	}
	return Timing{bpm: bpm, gapMs: gapMs}, nil
}

// MustNew is like New but panics on an invalid bpm. Use it where the tempo
// comes from code rather than from a song file.
func MustNew(bpm float64, gapMs int) Timing {
	t, err := New(bpm, gapMs)
	if err != nil {
		panic(err)
	}
	return t
}

// FromMetadata builds a Timing from the BPM and GAP tags.
//
// ok is false when BPM is missing or not positive; a missing GAP is 0.
// Songs without timing are common and simply have nothing to display.
func FromMetadata(md types.Metadata) (Timing, bool) {
	bpm, ok := md.BPM()
	if !ok || bpm <= 0 {
		return Timing{}, false
	}
	gap, _ := md.GapMs()
	return Timing{bpm: bpm, gapMs: gap}, true
}

func (t Timing) BPM() float64 { return t.bpm }
func (t Timing) GapMs() int   { return t.gapMs }

// BeatDurationMs is the length of one beat: 60000 / (bpm * 4).
func (t Timing) BeatDurationMs() float64 {
	return msPerMinute / (t.bpm * beatsPerQuarter)
}

// BeatsToMs converts a beat count to a duration, without the gap.
func (t Timing) BeatsToMs(beats int) float64 {
	return float64(beats) * t.BeatDurationMs()
}

// BeatToMs converts a beat position to an absolute time, gap included.
func (t Timing) BeatToMs(beat int) float64 {
	return float64(t.gapMs) + t.BeatsToMs(beat)
}

func (t Timing) NoteStartMs(n types.Note) float64 {
	return t.BeatToMs(n.StartBeat)
}

func (t Timing) NoteDurationMs(n types.Note) float64 {
	return t.BeatsToMs(n.Length)
}

// FirstNoteStartMs is the start of the earliest note, if there is one.
func (t Timing) FirstNoteStartMs(events []types.Event) (float64, bool) {
	beat, ok := FirstNoteBeat(events)
	if !ok {
		return 0, false
	}
	return t.BeatToMs(beat), true
}

func (t Timing) String() string {
	return fmt.Sprintf("%g BPM, gap %dms", t.bpm, t.gapMs)
}

// FirstNoteBeat returns the smallest note start beat in events regardless
// of order. ok is false when there are no notes.
func FirstNoteBeat(events []types.Event) (beat int, ok bool) {
	for _, ev := range events {
		n, isNote := ev.(types.Note)
		if !isNote {
			continue
		}
		if !ok || n.StartBeat < beat {
			beat, ok = n.StartBeat, true
		}
	}
	return beat, ok
}

// MedleyRange returns the medley section as absolute times when both
// MEDLEYSTARTBEAT and MEDLEYENDBEAT are set and in order.
func (t Timing) MedleyRange(md types.Metadata) (startMs, endMs float64, ok bool) {
	start, ok1 := md.MedleyStartBeat()
	end, ok2 := md.MedleyEndBeat()
	if !ok1 || !ok2 || end < start {
		return 0, 0, false
	}
	return t.BeatToMs(start), t.BeatToMs(end), true
}
