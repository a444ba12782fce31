// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Permissions for generated output.
const (
	DirPerm  os.FileMode = 0o750
	FilePerm os.FileMode = 0o644
)

// Sentinel errors for file utility operations.
var (
	ErrNotDirectory      = errors.New("not a directory")
	ErrUnsafeDestination = errors.New("unsafe copy destination")
)

// markdownExtensions are the source extensions turned into pages.
var markdownExtensions = []string{".md", ".markdown"}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "minimal" -> false (name)
//   - "./page.html" -> true (relative path)
//   - "/absolute/page.html" -> true (absolute)
//   - "C:\site\page.html" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// IsMarkdown reports whether path has a Markdown extension (case-insensitive).
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, m := range markdownExtensions {
		if ext == m {
			return true
		}
	}
	return false
}

// ReplaceExt returns path with its extension replaced by ext (including the dot).
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// WriteFile writes data to path, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// CopyStats summarizes a CopyDir run.
type CopyStats struct {
	Files int
	Dirs  int
	Bytes int64
}

// CopyDir replaces dst with a recursive copy of src.
// dst is removed first if it exists, then recreated. Symlinks are skipped.
// Returns ErrUnsafeDestination when dst is src, one of its ancestors or
// one of its descendants.
func CopyDir(src, dst string) (CopyStats, error) {
	var stats CopyStats

	info, err := os.Stat(src)
	if err != nil {
		return stats, fmt.Errorf("reading %s: %w", src, err)
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("%w: %s", ErrNotDirectory, src)
	}
	if err := checkDestination(src, dst); err != nil {
		return stats, err
	}

	if err := os.RemoveAll(dst); err != nil {
		return stats, fmt.Errorf("removing %s: %w", dst, err)
	}
	if err := os.MkdirAll(dst, DirPerm); err != nil {
		return stats, fmt.Errorf("creating %s: %w", dst, err)
	}

	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		target := filepath.Join(dst, rel)

		switch {
		case d.IsDir():
			stats.Dirs++
			return os.MkdirAll(target, DirPerm)
		case d.Type().IsRegular():
			n, err := copyFile(path, target)
			if err != nil {
				return err
			}
			stats.Files++
			stats.Bytes += n
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return stats, nil
}

func checkDestination(src, dst string) error {
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}
	if dst == "" || absDst == filepath.Dir(absDst) {
		return fmt.Errorf("%w: %q", ErrUnsafeDestination, dst)
	}
	if IsWithin(src, dst) {
		return fmt.Errorf("%w: %s contains source %s", ErrUnsafeDestination, dst, src)
	}
	if IsWithin(dst, src) {
		return fmt.Errorf("%w: %s is inside source %s", ErrUnsafeDestination, dst, src)
	}
	return nil
}

// IsWithin reports whether path is root or lies below it.
// Both are resolved to absolute paths; unresolvable paths are never within.
func IsWithin(path, root string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src) // #nosec G304 -- walking a user-selected directory
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePerm) // #nosec G304
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return n, err
}
