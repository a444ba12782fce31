package assets

import "embed"

//go:embed styles/*.css templates/*.html
var builtin embed.FS

// EmbeddedLoader serves the assets compiled into the binary.
type EmbeddedLoader struct {
	fsLoader
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsLoader{fsys: builtin}}
}

// EmbeddedStyles returns the names of the built-in styles, sorted.
func EmbeddedStyles() []string {
	return fsLoader{fsys: builtin}.list(Style)
}

var _ AssetLoader = (*EmbeddedLoader)(nil)
