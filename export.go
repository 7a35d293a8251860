package ultrastar

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/simonhull/ultrastar/internal/export/lrc"  // Register LRC exporters
	_ "github.com/simonhull/ultrastar/internal/export/midi" // Register MIDI exporter
	"github.com/simonhull/ultrastar/internal/registry"
)

// renameFile is replaced in tests to simulate rename failures.
var renameFile = os.Rename

// ExportFormats returns the names accepted by Export and ExportFile.
func ExportFormats() []string {
	return registry.Names()
}

// ExportExtension returns the conventional file extension for format,
// including the dot.
func ExportExtension(format string) (string, error) {
	exporter := registry.Get(format)
	if exporter == nil {
		return "", &UnsupportedExportError{Format: format}
	}
	return exporter.Extension(), nil
}

// Export writes song to w in the named format ("lrc", "lrc-enhanced", "midi").
//
// Songs without a usable BPM cannot be exported and return ErrNoTiming.
func Export(w io.Writer, song *Song, format string) error {
	exporter := registry.Get(format)
	if exporter == nil {
		return &UnsupportedExportError{Format: format}
	}
	if err := exporter.Export(w, song); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}

// Export writes the song to w in the named format.
func (f *File) Export(w io.Writer, format string) error {
	return Export(w, f.Song, format)
}

// ExportFile writes the song to outputPath in the named format.
//
// The output is written atomically: data goes to a temporary file in the
// same directory which is synced and renamed over outputPath. A failed
// export leaves any existing file untouched.
//
//	err := file.ExportFile("song.lrc", "lrc",
//	    ultrastar.WithBackup(".bak"),
//	)
func (f *File) ExportFile(outputPath, format string, opts ...ExportOption) error { //nolint:gocyclo // Atomic file operations require sequential steps
	options := defaultExportOptions()
	for _, opt := range opts {
		opt(options)
	}

	exporter := registry.Get(format)
	if exporter == nil {
		return &UnsupportedExportError{Format: format}
	}

	outputDir := filepath.Dir(outputPath)
	tempFile, err := os.CreateTemp(outputDir, ".ultrastar-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	success := false
	defer func() {
		if !success {
			_ = tempFile.Close()    //nolint:errcheck // Best effort cleanup
			_ = os.Remove(tempPath) //nolint:errcheck // Best effort cleanup
		}
	}()

	if err := exporter.Export(tempFile, f.Song); err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tempPath, options.mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	backupPath := ""
	if options.backupSuffix != "" {
		if _, err := os.Stat(outputPath); err == nil {
			backupPath = outputPath + options.backupSuffix
			if err := renameFile(outputPath, backupPath); err != nil {
				return fmt.Errorf("create backup: %w", err)
			}
		}
	}

	if err := renameFile(tempPath, outputPath); err != nil {
		if backupPath != "" {
			_ = renameFile(backupPath, outputPath) //nolint:errcheck // Best effort restore
		}
		return fmt.Errorf("rename temp to output: %w", err)
	}
	success = true

	// Source mtime lets sync tools see the export as current.
	if options.preserveModTime && f.Path != "" {
		if info, err := os.Stat(f.Path); err == nil {
			_ = os.Chtimes(outputPath, info.ModTime(), info.ModTime()) //nolint:errcheck // Non-fatal: file was written successfully
		}
	}

	return nil
}
