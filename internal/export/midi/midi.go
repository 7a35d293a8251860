// Package midi writes a song's vocal melody as a Standard MIDI File.
//
// The file has a tempo track followed by one track per singer. Every note
// carries its syllable as a lyric meta event, so karaoke-capable MIDI
// players can display the words.
package midi

import (
	"fmt"
	"io"
	"math"
	"sort"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/simonhull/ultrastar/internal/lyrics"
	"github.com/simonhull/ultrastar/internal/registry"
	"github.com/simonhull/ultrastar/internal/timing"
	"github.com/simonhull/ultrastar/internal/types"
)

const (
	// TicksPerQuarter is the file resolution.
	TicksPerQuarter = 480
	// TicksPerBeat is one UltraStar beat, a sixteenth note.
	TicksPerBeat = TicksPerQuarter / 4

	// BaseKey is the MIDI key for UltraStar pitch 0 (middle C).
	BaseKey = 60

	vocalChannel   = 0
	normalVelocity = 96
	goldenVelocity = 127
	defaultTrack   = "Vocals"
)

func init() {
	registry.Register("midi", &Exporter{})
}

// Exporter implements registry.Exporter.
type Exporter struct{}

func (e *Exporter) Extension() string { return ".mid" }

// Export writes song as a type 1 MIDI file. Songs without a usable BPM
// fail with types.ErrNoTiming.
func (e *Exporter) Export(w io.Writer, song *types.Song) error {
	t, ok := timing.FromMetadata(song.Metadata)
	if !ok {
		return fmt.Errorf("midi: %w", types.ErrNoTiming)
	}

	file := smf.NewSMF1()
	file.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	title, _ := song.Metadata.Title()
	if err := file.Add(tempoTrack(title, t.BPM())); err != nil {
		return fmt.Errorf("midi: add tempo track: %w", err)
	}

	offset := gapTicks(t)
	for _, part := range splitParts(song.Events) {
		if err := file.Add(vocalTrack(part, offset)); err != nil {
			return fmt.Errorf("midi: add track %q: %w", part.name, err)
		}
	}

	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("midi: write: %w", err)
	}
	return nil
}

func tempoTrack(title string, bpm float64) smf.Track {
	var track smf.Track
	if title != "" {
		track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTrackSequenceName(title))})
	}
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTempo(bpm))})
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(smf.MetaTimeSig(4, 4, 24, 8))})
	track = append(track, smf.Event{Delta: 0, Message: smf.EOT})
	return track
}

// gapTicks converts GAP to ticks at the song tempo.
func gapTicks(t timing.Timing) int64 {
	quarterMs := 60000 / t.BPM()
	return int64(math.Round(float64(t.GapMs()) / quarterMs * TicksPerQuarter))
}

type part struct {
	name  string
	notes []types.Note
}

// splitParts groups notes by the player marker preceding them, keeping
// the order in which players first appear.
func splitParts(events []types.Event) []part {
	var parts []part
	current := -1
	find := func(name string) int {
		for i, p := range parts {
			if p.name == name {
				return i
			}
		}
		parts = append(parts, part{name: name})
		return len(parts) - 1
	}

	for _, ev := range events {
		switch e := ev.(type) {
		case types.PlayerMarker:
			current = find(e.Label)
		case types.Note:
			if current < 0 {
				current = find(defaultTrack)
			}
			parts[current].notes = append(parts[current].notes, e)
		case types.PhraseEnd:
		}
	}
	return parts
}

type timedMessage struct {
	tick     int64
	priority int
	msg      smf.Message
}

// Messages sharing a tick are written lyric first, then note-offs, then
// note-ons, so back-to-back notes on the same key do not cancel each other.
const (
	priorityLyric = iota
	priorityNoteOff
	priorityNoteOn
)

func vocalTrack(p part, offset int64) smf.Track {
	var msgs []timedMessage
	for _, n := range p.notes {
		start := max(offset+int64(n.StartBeat)*TicksPerBeat, 0)

		if text := lyrics.NormalizeText(n.Text); text != "" {
			msgs = append(msgs, timedMessage{start, priorityLyric, smf.Message(smf.MetaLyric(text))})
		}
		if n.Kind == types.NoteFreestyle || n.Length <= 0 {
			continue
		}

		end := offset + int64(n.EndBeat())*TicksPerBeat
		if end <= start {
			continue
		}
		key := Key(n.Pitch)
		msgs = append(msgs,
			timedMessage{start, priorityNoteOn, smf.Message(gomidi.NoteOn(vocalChannel, key, velocity(n.Kind)))},
			timedMessage{end, priorityNoteOff, smf.Message(gomidi.NoteOff(vocalChannel, key))},
		)
	}

	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].tick != msgs[j].tick {
			return msgs[i].tick < msgs[j].tick
		}
		return msgs[i].priority < msgs[j].priority
	})

	track := smf.Track{{Delta: 0, Message: smf.Message(smf.MetaTrackSequenceName(p.name))}}
	var last int64
	for _, m := range msgs {
		track = append(track, smf.Event{Delta: uint32(m.tick - last), Message: m.msg})
		last = m.tick
	}
	return append(track, smf.Event{Delta: 0, Message: smf.EOT})
}

// Key maps an UltraStar pitch to a MIDI key, clamped to the MIDI range.
func Key(pitch int) uint8 {
	return uint8(min(max(BaseKey+pitch, 0), 127))
}

func velocity(kind types.NoteKind) uint8 {
	if kind == types.NoteGolden || kind == types.NoteRapGolden {
		return goldenVelocity
	}
	return normalVelocity
}
