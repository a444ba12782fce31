package assets

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

// Notes:
// - Resolve treats anything with a separator or the kind's extension as a
//   path on disk; bare words go through the loader.
// - Kind.names drops entries of the other kind instead of failing.

func TestKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind     Kind
		str, ext string
		file     string
		notFound error
	}{
		{Style, "style", ".css", "styles/dark.css", ErrStyleNotFound},
		{Template, "template", ".html", "templates/dark.html", ErrTemplateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			t.Parallel()

			if got := tt.kind.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.kind.Ext(); got != tt.ext {
				t.Errorf("Ext() = %q, want %q", got, tt.ext)
			}
			if got := tt.kind.file("dark"); got != tt.file {
				t.Errorf("file() = %q, want %q", got, tt.file)
			}
			if err := tt.kind.notFound(); !errors.Is(err, tt.notFound) {
				t.Errorf("notFound() = %v, want %v", err, tt.notFound)
			}
		})
	}
}

func TestKind_Names(t *testing.T) {
	t.Parallel()

	got := Style.names([]string{"a.css", "b.html", "c.css"})
	if strings.Join(got, ",") != "a,c" {
		t.Errorf("names() = %v, want [a c]", got)
	}
}

// ---------------------------------------------------------------------------
// Resolve
// ---------------------------------------------------------------------------

func TestResolve(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeAsset(t, dir, "", "site.css", "h1 { margin: 0; }")
	writeAsset(t, dir, "", "page.html", "<body>{{ Content }}</body>")

	loader := NewEmbeddedLoader()
	builtinCSS, err := loader.LoadStyle("minimal")
	if err != nil {
		t.Fatalf("LoadStyle(minimal) error = %v", err)
	}

	tests := []struct {
		name    string
		kind    Kind
		value   string
		want    string
		wantErr error
	}{
		{"style by name", Style, "minimal", builtinCSS, nil},
		{"style file", Style, filepath.Join(dir, "site.css"), "h1 { margin: 0; }", nil},
		{"template file", Template, filepath.Join(dir, "page.html"), "<body>{{ Content }}</body>", nil},
		{"missing file", Style, filepath.Join(dir, "gone.css"), "", ErrAssetRead},
		{"unknown name", Template, "nonexistent-xyz", "", ErrTemplateNotFound},
		{"bare extension name is a file", Style, "nonexistent-xyz.css", "", ErrAssetRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Resolve(loader, tt.kind, tt.value)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Resolve(%q) error = %v, want %v", tt.value, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) unexpected error: %v", tt.value, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
