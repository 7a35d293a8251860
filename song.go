package ultrastar

import (
	"github.com/simonhull/ultrastar/internal/parser"
	"github.com/simonhull/ultrastar/internal/textenc"
	"github.com/simonhull/ultrastar/internal/types"
)

// Song is an alias to types.Song.
type Song = types.Song

// Event is an alias to types.Event. It is one of Note, PhraseEnd or
// PlayerMarker.
type Event = types.Event

// Note is an alias to types.Note.
type Note = types.Note

// PhraseEnd is an alias to types.PhraseEnd.
type PhraseEnd = types.PhraseEnd

// PlayerMarker is an alias to types.PlayerMarker.
type PlayerMarker = types.PlayerMarker

// NoteKind is an alias to types.NoteKind.
type NoteKind = types.NoteKind

const (
	NoteNormal    = types.NoteNormal
	NoteGolden    = types.NoteGolden
	NoteFreestyle = types.NoteFreestyle
	NoteRap       = types.NoteRap
	NoteRapGolden = types.NoteRapGolden
)

// Metadata is an alias to types.Metadata.
type Metadata = types.Metadata

// NewMetadata builds a Metadata from a plain map.
func NewMetadata(fields map[string]string) Metadata {
	return types.NewMetadata(fields)
}

// Encoding is an alias to types.Encoding.
type Encoding = types.Encoding

const (
	EncodingUnknown     = types.EncodingUnknown
	EncodingUTF8BOM     = types.EncodingUTF8BOM
	EncodingUTF32LE     = types.EncodingUTF32LE
	EncodingUTF32BE     = types.EncodingUTF32BE
	EncodingUTF16LE     = types.EncodingUTF16LE
	EncodingUTF16BE     = types.EncodingUTF16BE
	EncodingUTF8        = types.EncodingUTF8
	EncodingWindows1252 = types.EncodingWindows1252
)

// Parse parses already decoded lines.
//
// Parse never fails; malformed content is reported in Song.Warnings.
func Parse(lines []string) *Song {
	return parser.Parse(lines)
}

// ParseBytes decodes and parses the contents of a song file.
func ParseBytes(data []byte) (*Song, error) {
	song, _, err := parser.ParseBytes(data)
	return song, err
}

// DecodeLines detects the encoding of data and splits it into lines.
func DecodeLines(data []byte) ([]string, Encoding, error) {
	return textenc.DecodeLines(data)
}
