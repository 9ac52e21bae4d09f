// Package fileutil provides shared file operation helpers.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReplaceContext holds state for an atomic in-place file replacement. The
// temporary file is created in the target's own directory so the final
// rename never crosses a filesystem boundary.
type ReplaceContext struct {
	target  string
	perm    os.FileMode
	tmpFile *os.File
	tmpName string
}

// NewReplaceContext stats the target and creates a temporary file beside it.
// Caller must defer CleanupOnError.
func NewReplaceContext(target string) (*ReplaceContext, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("getting file info for %q: %w", target, err)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(target), ".lockstr-*")
	if err != nil {
		return nil, fmt.Errorf("creating temporary file: %w", err)
	}

	return &ReplaceContext{
		target:  target,
		perm:    info.Mode().Perm(),
		tmpFile: tmpFile,
		tmpName: tmpFile.Name(),
	}, nil
}

// Write appends data to the temporary file.
func (rc *ReplaceContext) Write(data []byte) error {
	if _, err := rc.tmpFile.Write(data); err != nil {
		return fmt.Errorf("writing temporary file: %w", err)
	}

	return nil
}

// Commit restores the target's permission bits on the temporary file,
// closes it, and renames it over the target. The target holds either its
// old content or the new content at every point, never a mix.
func (rc *ReplaceContext) Commit() error {
	if err := rc.tmpFile.Chmod(rc.perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := rc.tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}

	if err := os.Rename(rc.tmpName, rc.target); err != nil {
		return fmt.Errorf("replacing %q: %w", rc.target, err)
	}

	return nil
}

// CleanupOnError closes the temp file and removes it if the operation
// failed. After a successful Commit the rename has already consumed the
// temporary file and this is a no-op.
func (rc *ReplaceContext) CleanupOnError(errp *error) {
	rc.tmpFile.Close() //nolint:gosec // best-effort cleanup

	if *errp != nil {
		os.Remove(rc.tmpName) //nolint:gosec // best-effort cleanup
	}
}
