package textenc

import (
	"slices"
	"testing"

	"github.com/simonhull/ultrastar/internal/types"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
		enc  types.Encoding
	}{
		{
			name: "utf8 with bom",
			data: []byte{0xEF, 0xBB, 0xBF, 'c', 'a', 'f', 0xC3, 0xA9},
			want: "café",
			enc:  types.EncodingUTF8BOM,
		},
		{
			name: "utf8 bom with invalid tail",
			data: []byte{0xEF, 0xBB, 0xBF, 'a', 0xFF},
			want: "a\uFFFD",
			enc:  types.EncodingUTF8BOM,
		},
		{
			name: "utf16 little endian",
			data: []byte{0xFF, 0xFE, 'H', 0x00, 'i', 0x00},
			want: "Hi",
			enc:  types.EncodingUTF16LE,
		},
		{
			name: "utf16 big endian",
			data: []byte{0xFE, 0xFF, 0x00, 'H', 0x00, 'i'},
			want: "Hi",
			enc:  types.EncodingUTF16BE,
		},
		{
			name: "utf32 little endian wins over utf16",
			data: []byte{0xFF, 0xFE, 0x00, 0x00, 'H', 0x00, 0x00, 0x00},
			want: "H",
			enc:  types.EncodingUTF32LE,
		},
		{
			name: "utf32 big endian",
			data: []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 'H'},
			want: "H",
			enc:  types.EncodingUTF32BE,
		},
		{
			name: "strict utf8 without bom",
			data: []byte("#TITLE:Ça ira"),
			want: "#TITLE:Ça ira",
			enc:  types.EncodingUTF8,
		},
		{
			name: "windows-1252 curly apostrophe",
			data: []byte{'I', 't', 0x92, 's'},
			want: "It\u2019s",
			enc:  types.EncodingWindows1252,
		},
		{
			name: "windows-1252 latin1 passthrough",
			data: []byte{'c', 'a', 'f', 0xE9},
			want: "café",
			enc:  types.EncodingWindows1252,
		},
		{
			name: "windows-1252 undefined bytes pass through",
			data: []byte{'a', 0x81, 0x8D, 0x8F, 0x90, 0x9D},
			want: "a\u0081\u008D\u008F\u0090\u009D",
			enc:  types.EncodingWindows1252,
		},
		{
			name: "empty input",
			data: nil,
			want: "",
			enc:  types.EncodingUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, enc, err := Decode(tt.data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, want %q", got, tt.want)
			}
			if enc != tt.enc {
				t.Errorf("Decode() encoding = %v, want %v", enc, tt.enc)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"unix", "a\nb", []string{"a", "b"}},
		{"windows", "a\r\nb", []string{"a", "b"}},
		{"old mac", "a\rb", []string{"a", "b"}},
		{"mixed", "a\r\nb\rc\nd", []string{"a", "b", "c", "d"}},
		{"trailing newline kept", "a\n", []string{"a", ""}},
		{"blank line kept", "a\n\nb", []string{"a", "", "b"}},
		{"empty", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.in); !slices.Equal(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeLines(t *testing.T) {
	data := []byte{0xFF, 0xFE, '#', 0, 'A', 0, '\r', 0, '\n', 0, 'E', 0}
	lines, enc, err := DecodeLines(data)
	if err != nil {
		t.Fatalf("DecodeLines() error = %v", err)
	}
	if enc != types.EncodingUTF16LE {
		t.Errorf("encoding = %v", enc)
	}
	if !slices.Equal(lines, []string{"#A", "E"}) {
		t.Errorf("lines = %q", lines)
	}
}
