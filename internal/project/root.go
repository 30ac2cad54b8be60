// Package project provides project layout checks and loading.
package project

import (
	"os"
	"path/filepath"

	"github.com/AndreyAkinshin/tisgen/internal/errors"
)

// Resolve turns a slash-separated path relative to root into a filesystem path.
func Resolve(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// CheckDir verifies that rel names a directory under root. The returned
// error reports rel, not the resolved path, so messages match the layout
// users see in the repository.
func CheckDir(root, rel string) error {
	info, err := os.Stat(Resolve(root, rel))
	if err != nil || !info.IsDir() {
		return errors.MissingDirectory(rel)
	}
	return nil
}

// CheckFile verifies that rel names a regular file under root.
func CheckFile(root, rel string) error {
	info, err := os.Stat(Resolve(root, rel))
	if err != nil || !info.Mode().IsRegular() {
		return errors.MissingFile(rel)
	}
	return nil
}
