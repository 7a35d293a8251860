// Package types provides core data structures for UltraStar song files.
//
// This package defines the Song, Event, Metadata and Warning types that
// represent a parsed song independent of how its bytes were encoded.
package types

// NoteKind identifies the flavour of a sung note.
type NoteKind int

const (
	// NoteNormal is a regular pitched note (":" lines).
	NoteNormal NoteKind = iota
	// NoteGolden is a bonus-scoring pitched note ("*" lines).
	NoteGolden
	// NoteFreestyle is an unscored note ("F" lines).
	NoteFreestyle
	// NoteRap is a rhythm-only note ("R" lines).
	NoteRap
	// NoteRapGolden is a bonus-scoring rap note ("G" lines).
	NoteRapGolden
)

// String returns the name of the note kind.
func (k NoteKind) String() string {
	switch k {
	case NoteNormal:
		return "Normal"
	case NoteGolden:
		return "Golden"
	case NoteFreestyle:
		return "Freestyle"
	case NoteRap:
		return "Rap"
	case NoteRapGolden:
		return "RapGolden"
	default:
		return "Unknown"
	}
}

// Marker returns the leading character used for this kind in song files.
func (k NoteKind) Marker() byte {
	switch k {
	case NoteGolden:
		return '*'
	case NoteFreestyle:
		return 'F'
	case NoteRap:
		return 'R'
	case NoteRapGolden:
		return 'G'
	default:
		return ':'
	}
}

// NoteKindFromMarker maps a note line's leading character to its kind.
// The second return value is false when c does not start a note line.
func NoteKindFromMarker(c byte) (NoteKind, bool) {
	switch c {
	case ':':
		return NoteNormal, true
	case '*':
		return NoteGolden, true
	case 'F':
		return NoteFreestyle, true
	case 'R':
		return NoteRap, true
	case 'G':
		return NoteRapGolden, true
	default:
		return NoteNormal, false
	}
}

// Event is one entry of a song's event stream.
//
// The set of implementations is closed: Note, PhraseEnd and PlayerMarker.
// Consumers switch on the concrete type:
//
//	switch e := ev.(type) {
//	case types.Note:
//	case types.PhraseEnd:
//	case types.PlayerMarker:
//	}
type Event interface {
	isEvent()
}

// Note is a sung syllable.
type Note struct {
	Kind      NoteKind `json:"kind"`
	StartBeat int      `json:"start_beat"`
	Length    int      `json:"length"`
	Pitch     int      `json:"pitch"`
	Text      string   `json:"text"`
}

// EndBeat returns the beat on which the note stops sounding.
func (n Note) EndBeat() int {
	return n.StartBeat + n.Length
}

// PhraseEnd marks the end of a lyric line.
type PhraseEnd struct {
	StartBeat int `json:"start_beat"`
}

// PlayerMarker switches the singer in duet files ("P1", "P2", ...).
type PlayerMarker struct {
	Label string `json:"label"`
}

func (Note) isEvent()         {}
func (PhraseEnd) isEvent()    {}
func (PlayerMarker) isEvent() {}

// Song is the result of parsing one song file.
//
// A Song is never modified after parsing; re-parsing produces a new Song.
type Song struct {
	Metadata Metadata
	Events   []Event
	Warnings []Warning
}

// Notes returns the note events in parse order.
func (s *Song) Notes() []Note {
	notes := make([]Note, 0, len(s.Events))
	for _, ev := range s.Events {
		if n, ok := ev.(Note); ok {
			notes = append(notes, n)
		}
	}
	return notes
}

// Players returns the distinct player marker labels in order of appearance.
func (s *Song) Players() []string {
	var players []string
	seen := make(map[string]bool)
	for _, ev := range s.Events {
		if m, ok := ev.(PlayerMarker); ok && !seen[m.Label] {
			seen[m.Label] = true
			players = append(players, m.Label)
		}
	}
	return players
}
