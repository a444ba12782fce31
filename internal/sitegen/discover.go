package sitegen

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// PageExt is the extension of generated pages.
const PageExt = ".html"

// Page is a Markdown source and the HTML file generated from it.
type Page struct {
	Source string // Markdown file
	Output string // Generated HTML file
	Rel    string // Source path relative to the content directory, slash-separated
}

// Discover walks contentDir and returns one Page per Markdown file, in
// lexical order. Output paths mirror the source tree under outputDir.
// Other files in the content tree are ignored.
func Discover(contentDir, outputDir string) ([]Page, error) {
	if !fileutil.DirExists(contentDir) {
		return nil, fmt.Errorf("%w: %s", ErrContentDir, contentDir)
	}

	var pages []Page
	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}

		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		pages = append(pages, Page{
			Source: path,
			Output: filepath.Join(outputDir, fileutil.ReplaceExt(rel, PageExt)),
			Rel:    filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", contentDir, err)
	}
	return pages, nil
}
