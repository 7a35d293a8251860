package parser

import (
	"slices"
	"strings"
	"testing"

	"github.com/simonhull/ultrastar/internal/types"
)

func TestParse_Scenario(t *testing.T) {
	song := Parse([]string{
		"#TITLE:Hello",
		"#ARTIST:Someone",
		"#BPM:120",
		": 0 4 0 He",
		": 4 4 0 llo",
		"- 8",
		"E",
	})

	if title, _ := song.Metadata.Title(); title != "Hello" {
		t.Errorf("title = %q", title)
	}
	want := []types.Event{
		types.Note{Kind: types.NoteNormal, StartBeat: 0, Length: 4, Pitch: 0, Text: "He"},
		types.Note{Kind: types.NoteNormal, StartBeat: 4, Length: 4, Pitch: 0, Text: "llo"},
		types.PhraseEnd{StartBeat: 8},
	}
	if !slices.Equal(song.Events, want) {
		t.Errorf("events = %+v, want %+v", song.Events, want)
	}
	if len(song.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", song.Warnings)
	}
}

func TestParse_NoteLines(t *testing.T) {
	tests := []struct {
		name string
		line string
		want types.Note
	}{
		{"normal", ": 12 4 5 word", types.Note{Kind: types.NoteNormal, StartBeat: 12, Length: 4, Pitch: 5, Text: "word"}},
		{"golden", "* 1 2 3 gold", types.Note{Kind: types.NoteGolden, StartBeat: 1, Length: 2, Pitch: 3, Text: "gold"}},
		{"freestyle", "F 1 2 3 free", types.Note{Kind: types.NoteFreestyle, StartBeat: 1, Length: 2, Pitch: 3, Text: "free"}},
		{"rap", "R 1 2 3 rap", types.Note{Kind: types.NoteRap, StartBeat: 1, Length: 2, Pitch: 3, Text: "rap"}},
		{"rap golden", "G 1 2 3 rg", types.Note{Kind: types.NoteRapGolden, StartBeat: 1, Length: 2, Pitch: 3, Text: "rg"}},
		{"multi word lyric", ": 0 4 0 two words here", types.Note{StartBeat: 0, Length: 4, Text: "two words here"}},
		{"leading space in lyric kept", ": 0 4 0  world", types.Note{Length: 4, Text: " world"}},
		{"collapsed separators", ":  3   4  -2 x", types.Note{StartBeat: 3, Length: 4, Pitch: -2, Text: "x"}},
		{"no lyric", ": 3 4 5", types.Note{StartBeat: 3, Length: 4, Pitch: 5}},
		{"too few fields", ": 1 2", types.Note{}},
		{"too few fields keeps kind", "* 1", types.Note{Kind: types.NoteGolden}},
		{"bad numbers default individually", ": x 4 y la", types.Note{Length: 4, Text: "la"}},
		{"marker glued to beat", ":0 4 0 He", types.Note{StartBeat: 4, Length: 0, Pitch: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			song := Parse([]string{tt.line})
			if len(song.Events) != 1 {
				t.Fatalf("got %d events, want 1", len(song.Events))
			}
			got, ok := song.Events[0].(types.Note)
			if !ok {
				t.Fatalf("event is %T, want types.Note", song.Events[0])
			}
			if got != tt.want {
				t.Errorf("note = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParse_Tags(t *testing.T) {
	song := Parse([]string{
		"#title:first",
		"  #TITLE : second  ",
		"#:nokey",
		"#A",
		"#BPM:300,5",
		"#MP3:song.mp3",
		"#  :blank",
		"#URL:http://example.com/a:b",
	})

	md := song.Metadata
	if v, _ := md.Title(); v != "second" {
		t.Errorf("title = %q, want last write", v)
	}
	if v, ok := md.BPM(); !ok || v != 300.5 {
		t.Errorf("bpm = %v, %v", v, ok)
	}
	if v, _ := md.Audio(); v != "song.mp3" {
		t.Errorf("audio = %q", v)
	}
	if v, _ := md.Get("URL"); v != "http://example.com/a:b" {
		t.Errorf("value should keep text after the first colon, got %q", v)
	}
	if md.Len() != 4 {
		t.Errorf("Len() = %d, keys %v", md.Len(), md.Keys())
	}
	if len(song.Warnings) != 3 {
		t.Errorf("warnings = %v, want 3", song.Warnings)
	}
}

func TestParse_PhraseEndsAndPlayers(t *testing.T) {
	song := Parse([]string{
		"P1",
		": 0 1 0 a",
		"- 4",
		"-",
		"- x",
		"- 10 12",
		"P",
		"P2",
	})

	want := []types.Event{
		types.PlayerMarker{Label: "P1"},
		types.Note{Length: 1, Text: "a"},
		types.PhraseEnd{StartBeat: 4},
		types.PhraseEnd{StartBeat: 0},
		types.PhraseEnd{StartBeat: 10},
		types.PlayerMarker{Label: "P2"},
	}
	if !slices.Equal(song.Events, want) {
		t.Errorf("events = %+v\nwant %+v", song.Events, want)
	}
}

func TestParse_EndMarkerStops(t *testing.T) {
	song := Parse([]string{": 0 1 0 a", "E", ": 4 1 0 b", "#TITLE:late"})
	if len(song.Events) != 1 {
		t.Errorf("events after E should be ignored, got %+v", song.Events)
	}
	if _, ok := song.Metadata.Title(); ok {
		t.Error("tags after E should be ignored")
	}
}

func TestParse_WarningLines(t *testing.T) {
	song := Parse([]string{
		"#TITLE:x",
		"",
		"? what",
		": 1 2",
	})

	if len(song.Warnings) != 2 {
		t.Fatalf("warnings = %v", song.Warnings)
	}
	if song.Warnings[0].Line != 3 || song.Warnings[1].Line != 4 {
		t.Errorf("warning lines = %d, %d; want 3, 4", song.Warnings[0].Line, song.Warnings[1].Line)
	}
	for _, w := range song.Warnings {
		if w.Stage != "parse" {
			t.Errorf("stage = %q", w.Stage)
		}
	}
}

func TestParseBytes(t *testing.T) {
	data := []byte("#TITLE:Caf\xe9\r\n#BPM:100\r\n: 0 2 0 It\x92s\r\nE\r\n")
	song, enc, err := ParseBytes(data)
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if enc != types.EncodingWindows1252 {
		t.Errorf("encoding = %v", enc)
	}
	if v, _ := song.Metadata.Title(); v != "Café" {
		t.Errorf("title = %q", v)
	}
	notes := song.Notes()
	if len(notes) != 1 || notes[0].Text != "It’s" {
		t.Errorf("notes = %+v", notes)
	}
}

func TestSplitNoteLine(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{": 1 2 3 a b", []string{":", "1", "2", "3", "a b"}},
		{": 1 2 3  a", []string{":", "1", "2", "3", " a"}},
		{": 1 2", []string{":", "1", "2"}},
		{":", []string{":"}},
		{": 1 2 3", []string{":", "1", "2", "3"}},
	}
	for _, tt := range tests {
		if got := splitNoteLine(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("splitNoteLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	lines := []string{"#TITLE:Bench", "#BPM:300", "#GAP:1000"}
	for i := range 500 {
		lines = append(lines, ": "+strings.Repeat("1", 1+i%3)+" 4 5 la la")
		if i%8 == 7 {
			lines = append(lines, "- 999")
		}
	}
	lines = append(lines, "E")

	b.ResetTimer()
	for b.Loop() {
		Parse(lines)
	}
}
