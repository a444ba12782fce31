package assets

import (
	"errors"
	"fmt"
	"io/fs"
)

// AssetLoader loads styles and page templates by name.
// Names carry no extension; a missing asset is ErrStyleNotFound or
// ErrTemplateNotFound and a malformed name is ErrInvalidAssetName.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// fsLoader reads assets laid out as styles/{name}.css and
// templates/{name}.html in a file system.
type fsLoader struct {
	fsys fs.FS

	// guard, when set, vets the path before it is opened.
	guard func(rel string) error
}

func (l fsLoader) LoadStyle(name string) (string, error) {
	return l.load(Style, name)
}

func (l fsLoader) LoadTemplate(name string) (string, error) {
	return l.load(Template, name)
}

func (l fsLoader) load(kind Kind, name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	rel := kind.file(name)
	if l.guard != nil {
		if err := l.guard(rel); err != nil {
			return "", err
		}
	}

	data, err := fs.ReadFile(l.fsys, rel)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("%w: %q", kind.notFound(), name)
	case err != nil:
		return "", fmt.Errorf("%w: %s %q: %v", ErrAssetRead, kind, name, err)
	}
	return string(data), nil
}

// list returns the names of every asset of kind, sorted.
func (l fsLoader) list(kind Kind) []string {
	matches, err := fs.Glob(l.fsys, kind.dir()+"/*"+kind.Ext())
	if err != nil {
		return nil
	}
	for i, m := range matches {
		matches[i] = m[len(kind.dir())+1:]
	}
	return kind.names(matches)
}
