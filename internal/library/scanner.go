// Package library discovers song folders and resolves their media files.
//
// A song folder is any folder holding a .txt file. Folders are searched
// breadth-first from the root; once a folder is recognized as a song its
// subfolders are not searched. Each song's header is parsed to find the
// audio, video, cover and background files it names, falling back to the
// first file in the folder with a suitable extension.
//
// The scanner works on an fs.FS, so paths are slash-separated and relative
// to the file system root.
package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/ultrastar/internal/parser"
	"github.com/simonhull/ultrastar/internal/types"
)

var (
	audioExtensions = []string{".mp3", ".ogg", ".wav", ".flac"}
	videoExtensions = []string{".mp4", ".mkv", ".avi", ".webm"}
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp"}
)

// Entry is one song found in a library.
type Entry struct {
	// ID is the folder path relative to the library root.
	ID string

	Folder  string
	TxtPath string

	Metadata types.Metadata
	Encoding types.Encoding

	// Resolved media files; empty when none was found.
	AudioPath      string
	VideoPath      string
	CoverPath      string
	BackgroundPath string

	Warnings []types.Warning
}

// Scanner finds songs in a file system.
type Scanner struct {
	fsys fs.FS
	opts *scanOptions
}

// NewScanner returns a Scanner over fsys.
func NewScanner(fsys fs.FS, opts ...Option) *Scanner {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return &Scanner{fsys: fsys, opts: options}
}

// Scan returns the songs below root in discovery order.
//
// A missing root yields no entries and no error. A song file that cannot
// be read is still listed, with empty metadata and a warning.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Entry, error) {
	if root == "" {
		return nil, errors.New("scan: root folder is required")
	}
	root = path.Clean(root)

	songs, err := s.songFolders(ctx, root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.opts.logger.Debug("library root missing", "root", root)
			return nil, nil
		}
		return nil, err
	}
	s.opts.logger.Debug("song folders found", "root", root, "count", len(songs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)

	entries := make([]Entry, len(songs))
	var (
		mu     sync.Mutex
		loaded int
	)

	for i, song := range songs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			entries[i] = s.scanSong(root, song.folder, song.txt)

			if s.opts.progress != nil {
				mu.Lock()
				loaded++
				s.opts.progress(loaded)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

type songFolder struct {
	folder string
	txt    string
}

func (s *Scanner) songFolders(ctx context.Context, root string) ([]songFolder, error) {
	queue, err := s.subdirs(root)
	if err != nil {
		return nil, err
	}

	var songs []songFolder
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		folder := queue[0]
		queue = queue[1:]

		entries, err := fs.ReadDir(s.fsys, folder)
		if err != nil {
			s.opts.logger.Warn("skipping unreadable folder", "folder", folder, "error", err)
			continue
		}

		if txt, ok := firstWithExt(entries, []string{".txt"}); ok {
			songs = append(songs, songFolder{folder: folder, txt: path.Join(folder, txt)})
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				queue = append(queue, path.Join(folder, e.Name()))
			}
		}
	}
	return songs, nil
}

func (s *Scanner) subdirs(dir string) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read library root: %w", err)
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, path.Join(dir, e.Name()))
		}
	}
	return dirs, nil
}

func (s *Scanner) scanSong(root, folder, txt string) Entry {
	entry := Entry{
		ID:      IDFor(root, folder),
		Folder:  folder,
		TxtPath: txt,
	}

	data, err := fs.ReadFile(s.fsys, txt)
	if err != nil {
		s.opts.logger.Warn("song file unreadable", "path", txt, "error", err)
		entry.Warnings = append(entry.Warnings, types.Warning{
			Stage:   "library",
			Message: fmt.Sprintf("read %s: %v", txt, err),
		})
	} else if song, enc, err := parser.ParseBytes(data); err != nil {
		s.opts.logger.Warn("song file undecodable", "path", txt, "error", err)
		entry.Warnings = append(entry.Warnings, types.Warning{
			Stage:   "decode",
			Message: err.Error(),
		})
	} else {
		entry.Metadata = song.Metadata
		entry.Encoding = enc
		entry.Warnings = append(entry.Warnings, song.Warnings...)
	}

	files, err := fs.ReadDir(s.fsys, folder)
	if err != nil {
		files = nil
	}
	md := entry.Metadata
	entry.AudioPath = s.resolveMedia(folder, files, first(md.Audio()), audioExtensions)
	entry.VideoPath = s.resolveMedia(folder, files, first(md.Video()), videoExtensions)
	entry.CoverPath = s.resolveMedia(folder, files, first(md.Cover()), imageExtensions)
	entry.BackgroundPath = s.resolveMedia(folder, files, first(md.Background()), imageExtensions)
	return entry
}

// resolveMedia prefers the file named by the song header when it exists,
// then the first folder file with a matching extension.
func (s *Scanner) resolveMedia(folder string, files []fs.DirEntry, candidate string, exts []string) string {
	if candidate = strings.TrimSpace(candidate); candidate != "" {
		p := path.Join(folder, strings.ReplaceAll(candidate, `\`, "/"))
		if fs.ValidPath(p) {
			if info, err := fs.Stat(s.fsys, p); err == nil && !info.IsDir() {
				return p
			}
		}
	}
	if name, ok := firstWithExt(files, exts); ok {
		return path.Join(folder, name)
	}
	return ""
}

// firstWithExt returns the first regular file, in directory order, whose
// extension matches one of exts ignoring case.
func firstWithExt(entries []fs.DirEntry, exts []string) (string, bool) {
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if slices.ContainsFunc(exts, func(want string) bool { return strings.EqualFold(ext, want) }) {
			return e.Name(), true
		}
	}
	return "", false
}

func first(s string, _ bool) string { return s }
