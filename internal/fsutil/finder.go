// Package fsutil provides file system utility functions.
package fsutil

import (
	"os"
)

// ListRegularFiles returns the regular files located directly in dir. It does
// not recurse; directories, symlinks and other special entries are skipped.
// The returned entries are in the order os.ReadDir produced them.
func ListRegularFiles(dir string) ([]os.DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]os.DirEntry, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		files = append(files, e)
	}
	return files, nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
