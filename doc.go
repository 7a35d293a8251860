// Package ultrastar reads and plays back UltraStar karaoke song files.
//
// An UltraStar song is a text file: a header of "#KEY:value" tags followed
// by note, phrase-end and player lines, closed by an "E" line. ultrastar
// decodes such files whatever their encoding, parses them into an event
// stream, converts beats to milliseconds, groups notes into lyric lines and
// tracks the active line and syllable while the song plays.
//
// # Quick Start
//
// Reading a song and printing its lyrics:
//
//	file, err := ultrastar.Open("song.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	title, _ := file.Song.Metadata.Title()
//	fmt.Println(title)
//	for _, line := range file.Lines() {
//		fmt.Printf("%8.0fms  %s\n", line.StartMs, line.Text)
//	}
//
// # Playback
//
// A Tracker follows the audio clock. Feed it the elapsed time on every
// frame; it reports what to display and whether anything changed:
//
//	tracker := file.NewTracker()
//	for range ticker.C {
//		view, changed := tracker.Update(player.ElapsedMs())
//		if changed {
//			render(view)
//		}
//	}
//
// Seeking in either direction needs no special handling.
//
// # Graceful Degradation
//
// Song files are often hand-edited. Malformed lines never fail a parse:
// unparsable numbers become 0, broken lines are dropped, and every such
// decision is recorded in File.Warnings with its line number. A song
// without a BPM still loads; it simply has no lyric lines.
//
// Only problems reading the file itself are errors:
//
//	file, err := ultrastar.Open(path, ultrastar.WithStrictParsing())
//	// err != nil if the file has ANY warning
//
// # Encodings
//
// Files with a UTF-8, UTF-16 or UTF-32 byte order mark are decoded
// accordingly. Files without one are read as UTF-8 when valid and as
// Windows-1252 otherwise. File.Encoding reports which was used.
//
// # Libraries and Queues
//
// OpenLibrary scans a folder tree for songs and resolves each song's audio,
// video and image files. A Queue holds the songs waiting to be sung and is
// safe to share between the player and remote controls.
//
// # Export
//
// Songs can be exported as LRC lyrics or as a MIDI file of the vocal melody:
//
//	err := file.ExportFile("song.mid", "midi")
//
// # Concurrency
//
// OpenMany and library scans read files in parallel. Files, Songs and lyric
// lines are immutable after loading and safe to share. A Tracker is not;
// give each playback timeline its own.
//
// Options accept a *slog.Logger for diagnostics; the default discards them.
package ultrastar
