// Package lrc writes lyric lines as LRC, the timed-lyrics format used by
// music players.
//
// The plain format has one "[mm:ss.cc]text" line per lyric line. The
// enhanced format adds "<mm:ss.cc>" before every token for word-level
// highlighting.
package lrc

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/simonhull/ultrastar/internal/lyrics"
	"github.com/simonhull/ultrastar/internal/registry"
	"github.com/simonhull/ultrastar/internal/types"
)

func init() {
	registry.Register("lrc", &Exporter{})
	registry.Register("lrc-enhanced", &Exporter{Enhanced: true})
}

// Exporter implements registry.Exporter.
type Exporter struct {
	// Enhanced adds per-token timestamps.
	Enhanced bool
}

func (e *Exporter) Extension() string { return ".lrc" }

// Export writes song as LRC. Songs without a usable BPM fail with
// types.ErrNoTiming.
func (e *Exporter) Export(w io.Writer, song *types.Song) error {
	lines := lyrics.BuildLines(song)
	if lines == nil {
		return fmt.Errorf("lrc: %w", types.ErrNoTiming)
	}

	bw := bufio.NewWriter(w)
	md := song.Metadata
	for _, tag := range []struct {
		name  string
		value func() (string, bool)
	}{
		{"ti", md.Title},
		{"ar", md.Artist},
		{"by", md.Creator},
	} {
		if v, ok := tag.value(); ok && v != "" {
			fmt.Fprintf(bw, "[%s:%s]\n", tag.name, v)
		}
	}

	for i, line := range lines {
		bw.WriteString(Timestamp(line.StartMs, '[', ']'))
		if e.Enhanced {
			bw.WriteString(enhancedText(line))
		} else {
			bw.WriteString(line.Text)
		}
		bw.WriteByte('\n')

		// Blank the display when the next line does not follow directly.
		if i == len(lines)-1 || lines[i+1].StartMs > line.EndMs {
			bw.WriteString(Timestamp(line.EndMs, '[', ']'))
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

func enhancedText(line lyrics.Line) string {
	var sb strings.Builder
	for i, tok := range line.Tokens {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(Timestamp(tok.StartMs, '<', '>'))
		sb.WriteString(tok.Text)
	}
	if len(line.Tokens) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(Timestamp(line.Tokens[len(line.Tokens)-1].EndMs, '<', '>'))
	}
	return sb.String()
}

// Timestamp formats ms as "mm:ss.cc" between open and close, rounding to
// the nearest centisecond. Negative times are written as zero.
func Timestamp(ms float64, open, close byte) string {
	cs := int(math.Round(max(ms, 0) / 10))
	return fmt.Sprintf("%c%02d:%02d.%02d%c", open, cs/6000, (cs/100)%60, cs%100, close)
}
