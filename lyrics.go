package ultrastar

import "github.com/simonhull/ultrastar/internal/lyrics"

// LyricLine is an alias to lyrics.Line.
type LyricLine = lyrics.Line

// LyricToken is an alias to lyrics.Token.
type LyricToken = lyrics.Token

// BuildLines groups a song's notes into timed lyric lines.
func BuildLines(song *Song) []LyricLine {
	return lyrics.BuildLines(song)
}
