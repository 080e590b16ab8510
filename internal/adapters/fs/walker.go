// Package fs provides file system adapters: walking, hashing, runtime lookup and bundle emission.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every file below root as a slash-separated path relative to root.
// VCS directories are skipped, as is anything matching one of the doublestar excludes.
// A walk error is yielded once and ends the sequence.
func (w *Walker) WalkFiles(root string, excludes []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == root {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)

			if skip := w.shouldSkip(rel, d, excludes); skip != nil {
				if errors.Is(skip, errSkipFile) {
					return nil
				}
				return skip
			}
			if d.IsDir() {
				return nil
			}

			if !yield(rel, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", root))
		}
	}
}

// Files returns the sorted result of WalkFiles.
func (w *Walker) Files(root string, excludes []string) ([]string, error) {
	var files []string
	for rel, err := range w.WalkFiles(root, excludes) {
		if err != nil {
			return nil, err
		}
		files = append(files, rel)
	}
	slices.Sort(files)
	return files, nil
}

// errSkipFile tells the walk callback to drop a file without stopping.
var errSkipFile = zerr.New("skip file")

func (w *Walker) shouldSkip(rel string, d fs.DirEntry, excludes []string) error {
	if d.IsDir() && (d.Name() == ".git" || d.Name() == ".jj") {
		return filepath.SkipDir
	}

	for _, pattern := range excludes {
		if matched, _ := doublestar.Match(pattern, rel); matched {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return errSkipFile
		}
	}
	return nil
}
