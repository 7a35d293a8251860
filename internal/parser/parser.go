// Package parser reads UltraStar song text into a types.Song.
//
// Parsing is a single forward pass. Malformed content never fails the
// parse: fields default to zero, bad lines are dropped, and every such
// decision is recorded as a types.Warning with its 1-based line number.
package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/simonhull/ultrastar/internal/textenc"
	"github.com/simonhull/ultrastar/internal/types"
)

// Note lines carry a marker plus start, length and pitch before the lyric.
const (
	noteFields    = 4
	maxNoteSplits = 4
)

// Parse builds a Song from decoded lines.
//
// Lines are trimmed and blank lines skipped. Parsing stops at the first
// line starting with 'E'; lines after it are not examined.
func Parse(lines []string) *types.Song {
	p := &parser{song: &types.Song{}}
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !p.parseLine(line, i+1) {
			break
		}
	}
	return p.song
}

// ParseBytes decodes data (see textenc.Decode) and parses the result.
func ParseBytes(data []byte) (*types.Song, types.Encoding, error) {
	lines, enc, err := textenc.DecodeLines(data)
	if err != nil {
		return nil, enc, fmt.Errorf("decode: %w", err)
	}
	return Parse(lines), enc, nil
}

type parser struct {
	song *types.Song
}

func (p *parser) warn(lineNo int, format string, args ...any) {
	p.song.Warnings = append(p.song.Warnings, types.Warning{
		Stage:   "parse",
		Message: fmt.Sprintf(format, args...),
		Line:    lineNo,
	})
}

// parseLine handles one trimmed, non-empty line and reports whether
// parsing should continue.
func (p *parser) parseLine(line string, lineNo int) bool {
	lead := line[0]
	if lead == '#' {
		p.parseTag(line, lineNo)
		return true
	}

	if kind, ok := types.NoteKindFromMarker(lead); ok {
		p.song.Events = append(p.song.Events, p.parseNote(kind, line, lineNo))
		return true
	}

	switch lead {
	case '-':
		p.parsePhraseEnd(line, lineNo)
	case 'P':
		if len(line) < 2 {
			p.warn(lineNo, "player marker %q has no label", line)
			return true
		}
		p.song.Events = append(p.song.Events, types.PlayerMarker{Label: line})
	case 'E':
		return false
	default:
		r, _ := utf8.DecodeRuneInString(line)
		p.warn(lineNo, "ignored line with unknown lead %q", r)
	}
	return true
}

func (p *parser) parseTag(line string, lineNo int) {
	colon := strings.IndexByte(line, ':')
	if colon <= 1 {
		p.warn(lineNo, "tag line %q has no key", line)
		return
	}

	key := strings.TrimSpace(line[1:colon])
	if key == "" {
		p.warn(lineNo, "tag line %q has no key", line)
		return
	}
	p.song.Metadata.Set(key, strings.TrimSpace(line[colon+1:]))
}

func (p *parser) parseNote(kind types.NoteKind, line string, lineNo int) types.Note {
	parts := splitNoteLine(line)
	if len(parts) < noteFields {
		p.warn(lineNo, "note line %q has %d of %d fields", line, len(parts), noteFields)
		return types.Note{Kind: kind}
	}

	note := types.Note{
		Kind:      kind,
		StartBeat: p.intField(parts[1], "start beat", lineNo),
		Length:    p.intField(parts[2], "length", lineNo),
		Pitch:     p.intField(parts[3], "pitch", lineNo),
	}
	if len(parts) > noteFields {
		note.Text = parts[4]
	}
	return note
}

func (p *parser) parsePhraseEnd(line string, lineNo int) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		p.warn(lineNo, "phrase end %q has no beat", line)
		return
	}
	p.song.Events = append(p.song.Events, types.PhraseEnd{
		StartBeat: p.intField(fields[1], "phrase beat", lineNo),
	})
}

func (p *parser) intField(s, name string, lineNo int) int {
	v, ok := types.ParseInt(s)
	if !ok {
		p.warn(lineNo, "invalid %s %q, using 0", name, s)
	}
	return v
}

// splitNoteLine splits on spaces, collapsing runs, until four fields have
// been cut off; everything after that, spaces included, is the final field.
//
//	": 12 4 5  my word" -> [":", "12", "4", "5", " my word"]
func splitNoteLine(line string) []string {
	parts := make([]string, 0, noteFields+1)
	start := -1
	for i := 0; i < len(line); i++ {
		if len(parts) == maxNoteSplits {
			if start < 0 {
				start = i
			}
			break
		}
		if line[i] == ' ' {
			if start >= 0 {
				parts = append(parts, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, line[start:])
	}
	return parts
}
