// Package textenc turns raw song file bytes into text lines.
//
// Song files in the wild come in every encoding a text editor can produce:
// UTF-8 with and without a byte order mark, UTF-16 and UTF-32 from Windows
// tools, and legacy Windows-1252 from old editors. Detection is a fixed
// first-match chain; see Decode.
package textenc

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/simonhull/ultrastar/internal/types"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// bomDecoders is checked in order; UTF-32LE must precede UTF-16LE because
// their marks share a prefix.
var bomDecoders = []struct {
	bom      []byte
	encoding types.Encoding
	codec    encoding.Encoding
}{
	{bomUTF32LE, types.EncodingUTF32LE, utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)},
	{bomUTF32BE, types.EncodingUTF32BE, utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)},
	{bomUTF16LE, types.EncodingUTF16LE, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	{bomUTF16BE, types.EncodingUTF16BE, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
}

// Decode detects the encoding of data and returns its text.
//
// Detection order, first match wins:
//
//  1. UTF-8 byte order mark
//  2. UTF-32 little/big-endian byte order mark
//  3. UTF-16 little/big-endian byte order mark
//  4. strict UTF-8 (any invalid sequence fails this step)
//  5. Windows-1252
//
// The byte order mark is never part of the returned text. Malformed code
// units after a BOM are replaced with U+FFFD.
func Decode(data []byte) (string, types.Encoding, error) {
	if bytes.HasPrefix(data, bomUTF8) {
		return strings.ToValidUTF8(string(data[len(bomUTF8):]), "\uFFFD"), types.EncodingUTF8BOM, nil
	}

	for _, d := range bomDecoders {
		if !bytes.HasPrefix(data, d.bom) {
			continue
		}
		out, err := d.codec.NewDecoder().Bytes(data[len(d.bom):])
		if err != nil {
			return "", d.encoding, &types.DecodeError{Encoding: d.encoding.String(), Err: err}
		}
		return string(out), d.encoding, nil
	}

	if utf8.Valid(data) {
		return string(data), types.EncodingUTF8, nil
	}

	return decodeWindows1252(data), types.EncodingWindows1252, nil
}

// decodeWindows1252 maps each byte through the Windows-1252 table. The five
// bytes the table leaves undefined pass through as their Latin-1 code points.
func decodeWindows1252(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		r := charmap.Windows1252.DecodeByte(b)
		if r == utf8.RuneError {
			r = rune(b)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// SplitLines normalizes "\r\n" and lone "\r" to "\n" and splits on "\n".
//
// A trailing newline yields a trailing empty string; callers skip blank lines.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// DecodeLines is Decode followed by SplitLines.
func DecodeLines(data []byte) ([]string, types.Encoding, error) {
	text, enc, err := Decode(data)
	if err != nil {
		return nil, enc, err
	}
	return SplitLines(text), enc, nil
}
