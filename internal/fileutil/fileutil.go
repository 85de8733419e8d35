// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrPathEmpty   = errors.New("path cannot be empty")
	ErrIsDirectory = errors.New("path is a directory")
)

// HasExtensionFold reports whether path ends with ext, ignoring case.
// ext includes the leading dot, e.g. ".png".
//
// Examples:
//   - ("out.png", ".png") -> true
//   - ("OUT.PNG", ".png") -> true
//   - ("out.Png", ".png") -> true
//   - ("out.png.pdf", ".png") -> false
//   - ("png", ".png") -> false
func HasExtensionFold(path, ext string) bool {
	if len(path) < len(ext) {
		return false
	}
	return strings.EqualFold(path[len(path)-len(ext):], ext)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CheckReadable returns nil if path names an existing non-directory file.
// The returned error wraps os.ErrNotExist, os.ErrPermission or ErrIsDirectory.
func CheckReadable(path string) error {
	if path == "" {
		return ErrPathEmpty
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return nil
}

// SameFile reports whether a and b refer to the same file. Existing files are
// compared with os.SameFile so links are detected; otherwise the cleaned
// absolute paths are compared.
func SameFile(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	ia, errA := os.Stat(a)
	ib, errB := os.Stat(b)
	if errA == nil && errB == nil {
		return os.SameFile(ia, ib)
	}
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// ParentDirExists returns nil if the parent directory of path exists and is a
// directory. It does not create anything.
func ParentDirExists(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", dir, os.ErrInvalid)
	}
	return nil
}
