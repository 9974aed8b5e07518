package mlog

import (
	"os"
	"path/filepath"
	"strings"
)

// ensureDir creates the parent directory of a log file path if it does not
// exist. An existing non-directory parent is an error.
func ensureDir(filePath string) error {
	dir := filepath.Dir(normalizePath(filePath))
	if dir == "" || dir == "." {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmtErrorf("log path parent '%s' exists and is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmtErrorf("failed to stat log directory '%s': %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmtErrorf("failed to create log directory '%s': %w", dir, err)
	}
	return nil
}

// normalizePath returns the cleaned form of a path.
func normalizePath(path string) string {
	if path == "" {
		return path
	}
	return filepath.Clean(path)
}

// isValidPath reports whether a path can name a log file.
func isValidPath(path string) bool {
	if strings.TrimSpace(path) == "" {
		return false
	}
	base := filepath.Base(normalizePath(path))
	switch base {
	case ".", "..", string(filepath.Separator):
		return false
	}
	return true
}
