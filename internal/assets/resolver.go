package assets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// AssetResolver looks assets up in a custom directory first and falls back
// to the built-in set when the custom directory lacks them.
type AssetResolver struct {
	layers []AssetLoader // highest priority first; the last is embedded
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath
// resolves against the built-in assets only.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{}
	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.layers = append(r.layers, custom)
	}
	r.layers = append(r.layers, NewEmbeddedLoader())
	return r, nil
}

func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

// first returns the first layer's asset. Only "not found" moves on to the
// next layer; validation and I/O errors stop the lookup.
func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, l := range r.layers {
		var content string
		if content, err = load(l); err == nil || !isNotFoundError(err) {
			return content, err
		}
	}
	return "", err
}

func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrTemplateNotFound)
}

// HasCustomLoader reports whether a custom directory is consulted.
func (r *AssetResolver) HasCustomLoader() bool {
	return len(r.layers) > 1
}

var _ AssetLoader = (*AssetResolver)(nil)

// Resolve returns the content named by value. A value that looks like a
// file (it contains a path separator or ends with the kind's extension) is
// read from disk; anything else is an asset name given to loader.
func Resolve(loader AssetLoader, kind Kind, value string) (string, error) {
	if !fileutil.IsFilePath(value) && !strings.HasSuffix(value, kind.Ext()) {
		if kind == Template {
			return loader.LoadTemplate(value)
		}
		return loader.LoadStyle(value)
	}

	data, err := os.ReadFile(value) // #nosec G304 -- user-provided asset path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAssetRead, err)
	}
	return string(data), nil
}
