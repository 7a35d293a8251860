package types

import (
	"iter"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Metadata is the header of a song file: the "#KEY:value" tags.
//
// Keys are case-insensitive; they are stored upper-cased and a repeated key
// replaces the earlier value. The typed accessors never fail: a missing or
// unparsable value is reported through the boolean return.
//
// The zero value is an empty, read-only-safe Metadata.
type Metadata struct {
	raw map[string]string
}

// NewMetadata builds a Metadata from a plain map, normalizing key case.
func NewMetadata(fields map[string]string) Metadata {
	var m Metadata
	for key, value := range fields {
		m.Set(key, value)
	}
	return m
}

// Set stores a tag value. Keys differing only in case collide; last write wins.
func (m *Metadata) Set(key, value string) {
	if m.raw == nil {
		m.raw = make(map[string]string)
	}
	m.raw[normalizeKey(key)] = value
}

// Get retrieves a raw tag value by key, ignoring case.
func (m Metadata) Get(key string) (string, bool) {
	if m.raw == nil {
		return "", false
	}
	value, ok := m.raw[normalizeKey(key)]
	return value, ok
}

// GetFirst tries multiple keys and returns the first one present.
//
//	audio, ok := md.GetFirst("AUDIO", "MP3")
func (m Metadata) GetFirst(keys ...string) (string, bool) {
	for _, key := range keys {
		if value, ok := m.Get(key); ok {
			return value, true
		}
	}
	return "", false
}

// Len returns the number of distinct tags.
func (m Metadata) Len() int {
	return len(m.raw)
}

// Keys returns the normalized tag keys in sorted order.
func (m Metadata) Keys() []string {
	return slices.Sorted(maps.Keys(m.raw))
}

// All returns an iterator over all tags in sorted key order.
//
//	for key, value := range song.Metadata.All() {
//		fmt.Printf("%s: %s\n", key, value)
//	}
func (m Metadata) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range m.Keys() {
			if !yield(key, m.raw[key]) {
				return
			}
		}
	}
}

// Fields returns a copy of the raw tag map.
func (m Metadata) Fields() map[string]string {
	return maps.Clone(m.raw)
}

func (m Metadata) Title() (string, bool)        { return m.Get("TITLE") }
func (m Metadata) Artist() (string, bool)       { return m.Get("ARTIST") }
func (m Metadata) Language() (string, bool)     { return m.Get("LANGUAGE") }
func (m Metadata) Genre() (string, bool)        { return m.Get("GENRE") }
func (m Metadata) Year() (string, bool)         { return m.Get("YEAR") }
func (m Metadata) Creator() (string, bool)      { return m.Get("CREATOR") }
func (m Metadata) Edition() (string, bool)      { return m.Get("EDITION") }
func (m Metadata) Cover() (string, bool)        { return m.Get("COVER") }
func (m Metadata) Background() (string, bool)   { return m.Get("BACKGROUND") }
func (m Metadata) Video() (string, bool)        { return m.Get("VIDEO") }
func (m Metadata) Vocals() (string, bool)       { return m.Get("VOCALS") }
func (m Metadata) Instrumental() (string, bool) { return m.Get("INSTRUMENTAL") }
func (m Metadata) Tags() (string, bool)         { return m.Get("TAGS") }
func (m Metadata) Version() (string, bool)      { return m.Get("VERSION") }

// Audio returns the audio file name, preferring AUDIO over the legacy MP3 tag.
func (m Metadata) Audio() (string, bool) {
	return m.GetFirst("AUDIO", "MP3")
}

// BPM returns the song tempo. Comma decimals ("120,5") are accepted.
func (m Metadata) BPM() (float64, bool) { return m.float("BPM") }

// GapMs returns the offset of beat 0 in milliseconds.
func (m Metadata) GapMs() (int, bool) { return m.int("GAP") }

// VideoGapMs returns the video offset in milliseconds.
func (m Metadata) VideoGapMs() (int, bool) { return m.int("VIDEOGAP") }

// EndMs returns the playback end in milliseconds.
func (m Metadata) EndMs() (int, bool) { return m.int("END") }

// PreviewStartSeconds returns the preview start position.
func (m Metadata) PreviewStartSeconds() (float64, bool) { return m.float("PREVIEWSTART") }

// RelativeTiming reports the RELATIVE flag; ok is false unless the value is YES or NO.
func (m Metadata) RelativeTiming() (value bool, ok bool) { return m.yesNo("RELATIVE") }

// CalcMedley reports the CALCMEDLEY flag; ok is false unless the value is YES or NO.
func (m Metadata) CalcMedley() (value bool, ok bool) { return m.yesNo("CALCMEDLEY") }

func (m Metadata) MedleyStartBeat() (int, bool) { return m.int("MEDLEYSTARTBEAT") }
func (m Metadata) MedleyEndBeat() (int, bool)   { return m.int("MEDLEYENDBEAT") }

func (m Metadata) int(key string) (int, bool) {
	value, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	return ParseInt(value)
}

func (m Metadata) float(key string) (float64, bool) {
	value, ok := m.Get(key)
	if !ok {
		return 0, false
	}
	return ParseFloat(value)
}

func (m Metadata) yesNo(key string) (bool, bool) {
	value, ok := m.Get(key)
	if !ok {
		return false, false
	}
	switch {
	case strings.EqualFold(value, "YES"):
		return true, true
	case strings.EqualFold(value, "NO"):
		return false, true
	}
	return false, false
}

// ParseInt parses a 32-bit decimal integer with optional sign and
// surrounding whitespace.
func ParseInt(s string) (int, bool) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// ParseFloat parses a decimal number, retrying with ',' read as the decimal
// separator. Hexadecimal forms, NaN and infinities are rejected.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if strings.ContainsAny(s, "xX_") {
		return 0, false
	}
	if v, ok := finite(s); ok {
		return v, true
	}
	return finite(strings.ReplaceAll(s, ",", "."))
}

func finite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
