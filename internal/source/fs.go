package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"flocc/internal/flocerr"
)

// FSWalker walks a filesystem subtree rooted at Path.
type FSWalker struct {
	Path string
}

// Root implements Walker.
func (w *FSWalker) Root() string {
	return w.Path
}

// Walk implements Walker. It walks the subtree depth-first, skipping any
// path component that begins with "." other than the root itself — a
// dotfile or dot-directory, and everything beneath a dot-directory, is
// invisible to the scan, and so is every entry that is not a regular file.
// A file that cannot be read is skipped without being passed to visit and
// without being logged; Walk itself only returns an error for problems
// that make the whole argument unusable (the root not existing, say).
func (w *FSWalker) Walk(visit func(Entry) error) error {
	info, err := os.Stat(w.Path)
	if err != nil {
		return &flocerr.PathError{Path: w.Path, Err: flocerr.ErrPathNotFound}
	}

	if !info.IsDir() {
		data, err := os.ReadFile(w.Path)
		if err != nil {
			return &flocerr.PathError{Path: w.Path, Err: err}
		}
		return visit(Entry{Path: filepath.Base(w.Path), Data: data})
	}

	return filepath.WalkDir(w.Path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, relErr := filepath.Rel(w.Path, p)
		if relErr != nil {
			return nil
		}
		if rel != "." && isDotComponent(rel) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, readErr := os.ReadFile(p)
		if readErr != nil {
			return nil
		}
		return visit(Entry{Path: filepath.ToSlash(rel), Data: data})
	})
}

// isDotComponent reports whether any path component of rel begins with a
// dot, which makes the whole path invisible to the scan.
func isDotComponent(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
