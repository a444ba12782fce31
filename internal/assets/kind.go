package assets

import "strings"

// Kind selects a family of assets.
type Kind int

// Asset kinds.
const (
	Style    Kind = iota // CSS written next to the pages
	Template             // HTML page skeleton
)

func (k Kind) String() string {
	if k == Template {
		return "template"
	}
	return "style"
}

// dir is the subdirectory holding assets of this kind.
func (k Kind) dir() string {
	return k.String() + "s"
}

// Ext returns the file extension of this kind, with the dot.
func (k Kind) Ext() string {
	if k == Template {
		return ".html"
	}
	return ".css"
}

func (k Kind) notFound() error {
	if k == Template {
		return ErrTemplateNotFound
	}
	return ErrStyleNotFound
}

// file returns the slash-separated path of a named asset.
func (k Kind) file(name string) string {
	return k.dir() + "/" + name + k.Ext()
}

// names lists the asset names found in entries.
func (k Kind) names(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e, k.Ext()); ok {
			out = append(out, name)
		}
	}
	return out
}
