package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/alnah/go-mdsite/internal/markdown"
)

// Engine names accepted by NewHTMLConverter.
const (
	EngineDialect  = "dialect"
	EngineGoldmark = "goldmark"
)

// DefaultHighlightStyle is the chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// Sentinel errors for HTML conversion.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrUnknownEngine  = errors.New("unknown conversion engine")
)

// HTMLConverter converts a Markdown document to an HTML fragment.
// Root-relative URLs in the fragment are already rewritten to the base path.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// ConverterOptions configures NewHTMLConverter.
type ConverterOptions struct {
	BasePath       string
	HighlightStyle string // goldmark only
}

// NewHTMLConverter returns the converter for engine. An empty engine selects the dialect.
func NewHTMLConverter(engine string, opts ConverterOptions) (HTMLConverter, error) {
	switch engine {
	case "", EngineDialect:
		return NewDialectConverter(opts.BasePath), nil
	case EngineGoldmark:
		return NewGoldmarkConverter(opts.BasePath, opts.HighlightStyle), nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownEngine, engine, EngineDialect, EngineGoldmark)
	}
}

// ---------------------------------------------------------------------------
// Dialect engine
// ---------------------------------------------------------------------------

// DialectConverter compiles the constrained Markdown dialect to an htmlnode tree,
// rebases links on the tree, then renders it.
type DialectConverter struct {
	basePath string
}

// NewDialectConverter creates a DialectConverter.
func NewDialectConverter(basePath string) *DialectConverter {
	return &DialectConverter{basePath: NormalizeBasePath(basePath)}
}

// ToHTML returns the rendered <div> root. Dialect errors (unterminated
// delimiters, missing URLs) are returned unwrapped so callers can match them.
func (c *DialectConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	root, err := markdown.Compile(content)
	if err != nil {
		return "", err
	}
	RebaseTree(root, c.basePath)
	return root.Render()
}

// ---------------------------------------------------------------------------
// Goldmark engine
// ---------------------------------------------------------------------------

// GoldmarkConverter converts CommonMark with GFM extensions using goldmark.
type GoldmarkConverter struct {
	md       goldmark.Markdown
	basePath string
	style    string
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// class-based syntax highlighting in the given chroma style.
func NewGoldmarkConverter(basePath, highlightStyle string) *GoldmarkConverter {
	if highlightStyle == "" {
		highlightStyle = DefaultHighlightStyle
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithStyle(highlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // colors come from StyleCSS
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		// WithUnsafe is not set: raw HTML in sources is dropped.
	)
	return &GoldmarkConverter{md: md, basePath: NormalizeBasePath(basePath), style: highlightStyle}
}

// ToHTML converts content to an HTML fragment.
// Goldmark has no context support, so conversion runs in a goroutine and
// the call returns early on cancellation.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		out, err := RewriteBasePath(buf.String(), c.basePath)
		if err != nil {
			done <- result{err: fmt.Errorf("%w: rewriting base path: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: out}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// StyleCSS returns the stylesheet for the highlight classes emitted by ToHTML.
// Unknown style names fall back to chroma's default style.
func (c *GoldmarkConverter) StyleCSS() (string, error) {
	return HighlightCSS(c.style)
}

// HighlightCSS renders the chroma stylesheet for style.
func HighlightCSS(style string) (string, error) {
	var sb strings.Builder
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&sb, styles.Get(style)); err != nil {
		return "", fmt.Errorf("writing %s highlight CSS: %w", style, err)
	}
	return sb.String(), nil
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*DialectConverter)(nil)
	_ HTMLConverter = (*GoldmarkConverter)(nil)
)
