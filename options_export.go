package ultrastar

import "os"

// ExportOption configures ExportFile.
//
//	err := file.ExportFile("song.mid", "midi",
//	    ultrastar.WithBackup(".bak"),
//	    ultrastar.WithPreserveModTime(),
//	)
type ExportOption func(*exportOptions)

type exportOptions struct {
	backupSuffix    string      // Suffix for backup of an existing output
	preserveModTime bool        // Copy the song file's modification time
	mode            os.FileMode // Permissions of the written file
}

func defaultExportOptions() *exportOptions {
	return &exportOptions{
		mode: 0o644,
	}
}

// WithBackup keeps an existing output file by renaming it with suffix
// appended before the new export replaces it. For example,
// WithBackup(".bak") moves "song.lrc" to "song.lrc.bak".
//
// An existing backup is overwritten.
func WithBackup(suffix string) ExportOption {
	return func(o *exportOptions) {
		o.backupSuffix = suffix
	}
}

// WithPreserveModTime gives the exported file the song file's modification
// time.
func WithPreserveModTime() ExportOption {
	return func(o *exportOptions) {
		o.preserveModTime = true
	}
}

// WithFileMode sets the permissions of the exported file. Default is 0644.
func WithFileMode(mode os.FileMode) ExportOption {
	return func(o *exportOptions) {
		o.mode = mode
	}
}
