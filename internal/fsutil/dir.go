// Package fsutil holds small filesystem helpers shared by the setup steps.
package fsutil

import (
	"fmt"
	"os"
)

// EnsureDir creates a directory and all parents if missing. Mode 0755.
// A directory that already exists is not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", path, err)
	}
	return nil
}

// EnsureDirMode creates the directory like EnsureDir and then forces its
// permission bits to mode. MkdirAll alone is not enough: it leaves an
// existing directory's mode untouched and the process umask can narrow the
// mode of a fresh one.
func EnsureDirMode(path string, mode os.FileMode) error {
	if err := EnsureDir(path); err != nil {
		return err
	}
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
