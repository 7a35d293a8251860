// Package lyrics groups a song's notes into displayable lines.
package lyrics

import (
	"strings"

	"github.com/simonhull/ultrastar/internal/timing"
	"github.com/simonhull/ultrastar/internal/types"
)

// Token is one highlighted piece of a line, usually a syllable.
type Token struct {
	Text    string  `json:"text"`
	StartMs float64 `json:"start_ms"`
	EndMs   float64 `json:"end_ms"`
}

// Line is a phrase of lyrics with its display window.
//
// Lines are derived from a (Song, Timing) pair and are never modified;
// rebuild them when the song changes.
type Line struct {
	StartMs float64 `json:"start_ms"`
	EndMs   float64 `json:"end_ms"`
	Text    string  `json:"text"`
	Tokens  []Token `json:"tokens"`
}

// BuildLines derives lyric lines from a parsed song. It returns nil when
// the song has no usable BPM.
func BuildLines(song *types.Song) []Line {
	t, ok := timing.FromMetadata(song.Metadata)
	if !ok {
		return nil
	}
	return Build(song.Events, t)
}

// Build groups consecutive notes into lines, cutting a line at every
// phrase end. The line ends at the phrase end's beat; a final line with no
// trailing phrase end ends where its last note stops.
func Build(events []types.Event, t timing.Timing) []Line {
	var (
		lines   []Line
		pending []types.Note
	)
	for _, ev := range events {
		switch e := ev.(type) {
		case types.Note:
			pending = append(pending, e)
		case types.PhraseEnd:
			lines = appendLine(lines, pending, t, e.StartBeat)
			pending = pending[:0]
		case types.PlayerMarker:
			// Duet parts are interleaved into one timeline.
		}
	}

	if len(pending) > 0 {
		last := pending[len(pending)-1]
		lines = appendLine(lines, pending, t, last.EndBeat())
	}
	return lines
}

func appendLine(lines []Line, notes []types.Note, t timing.Timing, endBeat int) []Line {
	if len(notes) == 0 {
		return lines
	}

	startBeat := notes[0].StartBeat
	for _, n := range notes[1:] {
		startBeat = min(startBeat, n.StartBeat)
	}
	startMs := t.BeatToMs(startBeat)
	endMs := max(t.BeatToMs(endBeat), startMs)

	tokens := buildTokens(notes, t)
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}

	return append(lines, Line{
		StartMs: startMs,
		EndMs:   endMs,
		Text:    strings.TrimSpace(strings.Join(texts, " ")),
		Tokens:  tokens,
	})
}

func buildTokens(notes []types.Note, t timing.Timing) []Token {
	tokens := make([]Token, 0, len(notes))
	for _, n := range notes {
		text := NormalizeText(n.Text)
		if text == "" {
			continue
		}
		start := t.NoteStartMs(n)
		tokens = append(tokens, Token{
			Text:    text,
			StartMs: start,
			EndMs:   max(start+t.NoteDurationMs(n), start),
		})
	}
	return tokens
}

// NormalizeText prepares note text for display: surrounding space is
// trimmed, the "~" sustain marker becomes empty and typographic single
// quotes become ASCII apostrophes.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "~" {
		return ""
	}
	return apostrophes.Replace(text)
}

var apostrophes = strings.NewReplacer("‘", "'", "’", "'")
