package library

import (
	"context"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Library is a scanned song collection.
//
// Entries is replaced wholesale by Refresh; a Library is not safe for
// concurrent Refresh and read.
type Library struct {
	// Root is the scanned folder inside the file system.
	Root string

	// Dir is the operating system directory backing the file system,
	// when the library was opened with Open. It is empty otherwise.
	Dir string

	Entries []Entry

	scanner *Scanner
}

// Load scans root inside fsys.
func Load(ctx context.Context, fsys fs.FS, root string, opts ...Option) (*Library, error) {
	lib := &Library{Root: root, scanner: NewScanner(fsys, opts...)}
	if err := lib.Refresh(ctx); err != nil {
		return nil, err
	}
	return lib, nil
}

// Open scans a directory on disk.
func Open(ctx context.Context, dir string, opts ...Option) (*Library, error) {
	lib, err := Load(ctx, os.DirFS(dir), ".", opts...)
	if err != nil {
		return nil, err
	}
	lib.Dir = dir
	return lib, nil
}

// Refresh rescans the library root.
func (l *Library) Refresh(ctx context.Context) error {
	entries, err := l.scanner.Scan(ctx, l.Root)
	if err != nil {
		return err
	}
	l.Entries = entries
	return nil
}

// Find returns the entry with the given ID. IDs are compared after
// normalization, so "Artist\Song" finds "Artist/Song".
func (l *Library) Find(id string) (Entry, bool) {
	id = NormalizeID(id)
	for _, e := range l.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Path converts a path inside the library file system to an operating
// system path. Without a backing directory it returns p unchanged.
func (l *Library) Path(p string) string {
	if l.Dir == "" || p == "" {
		return p
	}
	return filepath.Join(l.Dir, filepath.FromSlash(p))
}

// IDFor returns the ID of a song folder: its path relative to root.
func IDFor(root, folder string) string {
	root = path.Clean(root)
	folder = path.Clean(folder)
	if root == "." {
		return NormalizeID(folder)
	}
	if rel, ok := strings.CutPrefix(folder, root+"/"); ok {
		return NormalizeID(rel)
	}
	return NormalizeID(folder)
}

// NormalizeID maps an ID in either separator style to its canonical
// slash-separated form.
func NormalizeID(id string) string {
	id = strings.ReplaceAll(strings.TrimSpace(id), `\`, "/")
	if id == "" {
		return ""
	}
	return strings.TrimPrefix(path.Clean(id), "/")
}
