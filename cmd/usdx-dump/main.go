// Command usdx-dump prints what the ultrastar library reads from a song
// file: header tags, events, lyric lines and a simulated playback.
//
// Usage:
//
//	usdx-dump [-events] [-lines] [-play step] [-export format [-o file]] <song.txt>
//	usdx-dump -library <dir>
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"github.com/simonhull/ultrastar"
)

func main() {
	var (
		showEvents = flag.Bool("events", false, "print every parsed event")
		showLines  = flag.Bool("lines", true, "print lyric lines")
		playStep   = flag.Duration("play", 0, "simulate playback in steps of this size (e.g. 250ms)")
		exportFmt  = flag.String("export", "", "export format ("+strings.Join(ultrastar.ExportFormats(), ", ")+")")
		output     = flag.String("o", "", "export destination (default: song path with the format's extension)")
		strict     = flag.Bool("strict", false, "fail on any parse warning")
		libraryDir = flag.String("library", "", "scan a song folder tree instead of a single file")
	)
	flag.Parse()

	if *libraryDir != "" {
		dumpLibrary(*libraryDir)
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: usdx-dump [flags] <song.txt>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	var opts []ultrastar.Option
	if *strict {
		opts = append(opts, ultrastar.WithStrictParsing())
	}

	file, err := ultrastar.Open(flag.Arg(0), opts...)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	dumpHeader(file)
	if *showEvents {
		dumpEvents(file)
	}
	if *showLines {
		dumpLines(file)
	}
	if *playStep > 0 {
		simulate(file, *playStep)
	}
	if *exportFmt != "" {
		export(file, *exportFmt, *output)
	}
	dumpWarnings(file.Warnings)
}

func dumpHeader(file *ultrastar.File) {
	fmt.Printf("File:     %s (%s, %s)\n", file.Path, humanize.Bytes(uint64(file.Size)), file.Encoding)
	for key, value := range file.Song.Metadata.All() {
		fmt.Printf("  %-16s %s\n", key+":", value)
	}

	if t, ok := file.Timing(); ok {
		fmt.Printf("Timing:   %s\n", t)
		if first, ok := file.FirstNoteStartMs(); ok {
			fmt.Printf("First:    %s\n", formatMs(first))
		}
		if start, end, ok := t.MedleyRange(file.Song.Metadata); ok {
			fmt.Printf("Medley:   %s - %s\n", formatMs(start), formatMs(end))
		}
	} else {
		fmt.Println("Timing:   none (no usable BPM)")
	}
	fmt.Printf("Events:   %s\n", humanize.Comma(int64(len(file.Song.Events))))
}

func dumpEvents(file *ultrastar.File) {
	fmt.Println("\nEvents:")
	for i, ev := range file.Song.Events {
		switch e := ev.(type) {
		case ultrastar.Note:
			fmt.Printf("%5d  note  %-9s beat %5d len %3d pitch %3d %q\n",
				i, e.Kind, e.StartBeat, e.Length, e.Pitch, e.Text)
		case ultrastar.PhraseEnd:
			fmt.Printf("%5d  phrase end at beat %d\n", i, e.StartBeat)
		case ultrastar.PlayerMarker:
			fmt.Printf("%5d  player %s\n", i, e.Label)
		}
	}
}

func dumpLines(file *ultrastar.File) {
	lines := file.Lines()
	fmt.Printf("\nLines (%d):\n", len(lines))
	for i, line := range lines {
		fmt.Printf("%4d  %9s - %-9s  %s\n", i, formatMs(line.StartMs), formatMs(line.EndMs), line.Text)
	}
}

// simulate steps a tracker across the song and prints every change.
func simulate(file *ultrastar.File, step time.Duration) {
	lines := file.Lines()
	if len(lines) == 0 {
		fmt.Println("\nPlayback: nothing to show")
		return
	}

	tracker := file.NewTracker()
	first, hasFirst := file.FirstNoteStartMs()
	total := lines[len(lines)-1].EndMs + 1000
	stepMs := float64(step.Milliseconds())

	fmt.Println("\nPlayback:")
	for ms := 0.0; ms <= total; ms += stepMs {
		view, changed := tracker.Update(ms)
		if !changed {
			continue
		}
		status := ultrastar.StatusAt(ms, total, first, hasFirst)
		skip := ""
		if status.OfferSkip {
			skip = " [skip intro]"
		}
		fmt.Printf("%s %3.0f%% %-8s %s%s\n", status.Elapsed, status.Percent, view.State, highlight(view), skip)
	}
}

func highlight(view ultrastar.View) string {
	if len(view.Tokens) == 0 {
		return view.CurrentText
	}
	parts := make([]string, len(view.Tokens))
	for i, tok := range view.Tokens {
		if tok.Active {
			parts[i] = "[" + tok.Text + "]"
		} else {
			parts[i] = tok.Text
		}
	}
	return strings.Join(parts, " ")
}

func export(file *ultrastar.File, format, output string) {
	if output == "" {
		ext, err := ultrastar.ExportExtension(format)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
		output = strings.TrimSuffix(file.Path, filepath.Ext(file.Path)) + ext
	}
	if err := file.ExportFile(output, format, ultrastar.WithBackup(".bak")); err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("\nExported %s to %s\n", format, output)
}

func dumpLibrary(dir string) {
	start := time.Now()
	lib, err := ultrastar.OpenLibrary(context.Background(), dir)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	for _, e := range lib.Entries {
		title, _ := e.Metadata.Title()
		artist, _ := e.Metadata.Artist()
		audio := e.AudioPath
		if audio == "" {
			audio = "(no audio)"
		}
		fmt.Printf("%-40s %s - %s  %s\n", e.ID, artist, title, audio)
		dumpWarnings(e.Warnings)
	}
	fmt.Printf("\n%s songs in %s\n",
		humanize.Comma(int64(len(lib.Entries))), durafmt.Parse(time.Since(start)).LimitFirstN(2))
}

func dumpWarnings(warnings []ultrastar.Warning) {
	for _, w := range warnings {
		fmt.Printf("  ! %s\n", w)
	}
}

func formatMs(ms float64) string {
	d := time.Duration(ms * float64(time.Millisecond)).Round(10 * time.Millisecond)
	if d == 0 {
		return "0s"
	}
	return durafmt.Parse(d).LimitFirstN(2).String()
}
