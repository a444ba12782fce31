package assets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// FilesystemLoader serves assets from a directory on disk.
// Symlinks may not lead outside that directory.
type FilesystemLoader struct {
	fsLoader
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
// Returns ErrInvalidBasePath unless basePath is a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	base, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	// Containment compares resolved paths, so resolve the base as well.
	if resolved, err := filepath.EvalSymlinks(base); err == nil {
		base = resolved
	}

	if !fileutil.DirExists(base) {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, base)
	}
	if _, err := os.ReadDir(base); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	l := &FilesystemLoader{basePath: base}
	l.fsLoader = fsLoader{fsys: os.DirFS(base), guard: l.contained}
	return l, nil
}

// contained rejects asset paths whose target resolves outside basePath.
// A missing file passes; reading it reports not found.
func (l *FilesystemLoader) contained(rel string) error {
	target := filepath.Join(l.basePath, filepath.FromSlash(rel))
	if resolved, err := filepath.EvalSymlinks(target); err == nil {
		target = resolved
	}
	if !fileutil.IsWithin(target, l.basePath) || target == l.basePath {
		return fmt.Errorf("%w: %s leaves %s", ErrPathTraversal, rel, l.basePath)
	}
	return nil
}

var _ AssetLoader = (*FilesystemLoader)(nil)
