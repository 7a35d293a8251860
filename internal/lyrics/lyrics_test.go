package lyrics

import (
	"testing"

	"github.com/simonhull/ultrastar/internal/parser"
	"github.com/simonhull/ultrastar/internal/timing"
	"github.com/simonhull/ultrastar/internal/types"
)

func parse(lines ...string) *types.Song {
	return parser.Parse(lines)
}

func TestBuildLines_SinglePhrase(t *testing.T) {
	song := parse("#TITLE:Song", "#BPM:120", "#GAP:0", ": 0 4 0 He", ": 4 4 0 llo", "- 8", "E")

	lines := BuildLines(song)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	line := lines[0]
	if line.Text != "He llo" {
		t.Errorf("Text = %q", line.Text)
	}
	if len(line.Tokens) != 2 || line.Tokens[0].Text != "He" || line.Tokens[1].Text != "llo" {
		t.Errorf("Tokens = %+v", line.Tokens)
	}
	if line.StartMs != 0 || line.EndMs != 1000 {
		t.Errorf("window = [%v, %v], want [0, 1000]", line.StartMs, line.EndMs)
	}
	if line.Tokens[1].StartMs != 500 || line.Tokens[1].EndMs != 1000 {
		t.Errorf("second token = %+v", line.Tokens[1])
	}
}

func TestBuildLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "two phrases",
			lines: []string{"#BPM:60", ": 0 4 0 Hi", "- 4", ": 4 4 0 There", "- 8"},
			want:  []string{"Hi", "There"},
		},
		{
			name:  "no trailing phrase end",
			lines: []string{"#BPM:120", ": 0 4 0 Hey", ": 4 4 0 you", "E"},
			want:  []string{"Hey you"},
		},
		{
			name:  "syllables joined with spaces",
			lines: []string{"#BPM:120", ": 0 4 0 Don", ": 4 4 0 't", ": 8 4 0 look", "- 12"},
			want:  []string{"Don 't look"},
		},
		{
			name:  "consecutive phrase ends emit no empty line",
			lines: []string{"#BPM:120", ": 0 4 0 a", "- 4", "- 6", ": 8 2 0 b", "- 12"},
			want:  []string{"a", "b"},
		},
		{
			name:  "sustain markers dropped",
			lines: []string{"#BPM:120", ": 0 4 0 Oh", ": 4 4 0 ~", ": 8 4 0 yeah", "- 12"},
			want:  []string{"Oh yeah"},
		},
		{
			name:  "curly apostrophes normalized",
			lines: []string{"#BPM:120", ": 0 4 0 It’s", ": 4 4 0 ‘me’", "- 8"},
			want:  []string{"It's 'me'"},
		},
		{
			name:  "line of only sustains keeps empty text",
			lines: []string{"#BPM:120", ": 0 4 0 ~", "- 4"},
			want:  []string{""},
		},
		{
			name:  "player markers ignored",
			lines: []string{"#BPM:120", "P1", ": 0 4 0 one", "- 4", "P2", ": 8 4 0 two"},
			want:  []string{"one", "two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := BuildLines(parse(tt.lines...))
			if len(lines) != len(tt.want) {
				t.Fatalf("got %d lines %+v, want %d", len(lines), lines, len(tt.want))
			}
			for i, want := range tt.want {
				if lines[i].Text != want {
					t.Errorf("line %d text = %q, want %q", i, lines[i].Text, want)
				}
			}
		})
	}
}

func TestBuildLines_NoTiming(t *testing.T) {
	for _, bpm := range []string{"", "#BPM:0", "#BPM:fast"} {
		song := parse(bpm, ": 0 4 0 la", "- 4")
		if lines := BuildLines(song); len(lines) != 0 {
			t.Errorf("%q: got %d lines, want none", bpm, len(lines))
		}
	}
}

func TestBuild_EndClampedToStart(t *testing.T) {
	events := []types.Event{
		types.Note{StartBeat: 10, Length: 2, Text: "late"},
		types.PhraseEnd{StartBeat: 4},
		types.Note{StartBeat: 20, Length: -5, Text: "neg"},
	}
	lines := Build(events, timing.MustNew(120, 0))
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	for i, line := range lines {
		if line.EndMs < line.StartMs {
			t.Errorf("line %d: end %v before start %v", i, line.EndMs, line.StartMs)
		}
		for _, tok := range line.Tokens {
			if tok.EndMs < tok.StartMs {
				t.Errorf("token %q: end %v before start %v", tok.Text, tok.EndMs, tok.StartMs)
			}
		}
	}
	if lines[0].StartMs != 1250 || lines[0].EndMs != 1250 {
		t.Errorf("first line window = [%v, %v]", lines[0].StartMs, lines[0].EndMs)
	}
}

func TestBuild_StartIsMinimumBeat(t *testing.T) {
	events := []types.Event{
		types.Note{StartBeat: 8, Length: 2, Text: "b"},
		types.Note{StartBeat: 4, Length: 2, Text: "a"},
		types.PhraseEnd{StartBeat: 12},
	}
	lines := Build(events, timing.MustNew(120, 100))
	if len(lines) != 1 || lines[0].StartMs != 600 {
		t.Errorf("lines = %+v", lines)
	}
	if lines[0].Text != "b a" {
		t.Errorf("tokens keep event order, text = %q", lines[0].Text)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := map[string]string{
		"~":       "",
		" ~":      "",
		"  ":      "",
		"don’t":   "don't",
		"‘quoted": "'quoted",
		" word ":  "word",
		"~la":     "~la",
	}
	for in, want := range tests {
		if got := NormalizeText(in); got != want {
			t.Errorf("NormalizeText(%q) = %q, want %q", in, got, want)
		}
	}
}
