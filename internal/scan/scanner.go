package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Candidate is one regular file selected for processing, with metadata
// captured at scan time.
type Candidate struct {
	// Path to the file as given or discovered, usable for I/O.
	Path string

	// Rel is the path relative to the scan root in slash form. For a
	// single-file scan it is the file's base name.
	Rel string

	// Size in bytes at scan time.
	Size int64
}

// Options control candidate selection during a scan.
type Options struct {
	// IncludeHidden selects files whose name starts with "." during
	// directory scans. Hidden directories are always traversed; only
	// file names are checked.
	IncludeHidden bool

	// Excludes holds glob patterns matched against each candidate's
	// root-relative path and its base name. A match drops the candidate.
	Excludes []string
}

// Scan resolves root into an ordered list of candidates.
//
// A regular file is returned as the single candidate, bypassing the
// hidden-name check and the exclude patterns: naming a file explicitly is
// the selection. A directory is walked recursively. Symbolic links are
// never followed, whether given as root or found during the walk.
func Scan(root string, opts Options) ([]Candidate, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %q: %w", root, err)
	}

	flt, err := newFilter(opts.Excludes)
	if err != nil {
		return nil, err
	}

	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		return nil, fmt.Errorf("%q is a symbolic link: links are not processed", root)
	case info.Mode().IsRegular():
		return []Candidate{{
			Path: root,
			Rel:  filepath.Base(root),
			Size: info.Size(),
		}}, nil
	case !info.IsDir():
		return nil, fmt.Errorf("%q is neither a regular file nor a directory", root)
	}

	candidates, err := walk(root, opts.IncludeHidden, flt)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		return strings.Compare(a.Path, b.Path)
	})

	return candidates, nil
}

// walk collects the regular files under root that pass the hidden-name
// check and the exclude filter.
func walk(root string, includeHidden bool, flt *filter) ([]Candidate, error) {
	var candidates []Candidate

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		// Symlinks and other non-regular entries (sockets, pipes) are
		// never candidates.
		if !d.Type().IsRegular() {
			return nil
		}

		name := d.Name()
		if !includeHidden && strings.HasPrefix(name, ".") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relativizing %q: %w", path, err)
		}

		rel = filepath.ToSlash(rel)
		if flt.excluded(rel, name) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %q: %w", path, err)
		}

		candidates = append(candidates, Candidate{
			Path: path,
			Rel:  rel,
			Size: info.Size(),
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", root, err)
	}

	return candidates, nil
}
