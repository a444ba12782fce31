package mdsite

import (
	"context"
	"fmt"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Engine names.
const (
	EngineDialect  = pipeline.EngineDialect
	EngineGoldmark = pipeline.EngineGoldmark
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.SourcePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.DialectConverter)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
)

// Input is a document to convert.
type Input struct {
	Markdown string
}

// Result holds a converted document.
type Result struct {
	Title string // Level-1 heading on the first line; empty if there is none
	HTML  string // HTML fragment
	Page  string // Complete page; empty without WithTemplate
}

// Option configures a Converter.
type Option func(*converterConfig)

type converterConfig struct {
	engine         string
	basePath       string
	highlightStyle string
	template       string
}

// WithEngine selects the conversion engine (EngineDialect or EngineGoldmark).
func WithEngine(name string) Option {
	return func(c *converterConfig) {
		c.engine = name
	}
}

// WithBasePath sets the prefix applied to root-relative URLs.
func WithBasePath(p string) Option {
	return func(c *converterConfig) {
		c.basePath = p
	}
}

// WithHighlightStyle sets the chroma style for code blocks (goldmark engine).
func WithHighlightStyle(style string) Option {
	return func(c *converterConfig) {
		c.highlightStyle = style
	}
}

// WithTemplate sets the page template used to fill Result.Page.
func WithTemplate(tmpl string) Option {
	return func(c *converterConfig) {
		c.template = tmpl
	}
}

// Converter turns Markdown documents into HTML.
// A Converter is safe for concurrent use.
type Converter struct {
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	template      string
	pageCSS       string
}

// NewConverter creates a Converter. The default engine is the dialect
// with base path "/".
func NewConverter(opts ...Option) (*Converter, error) {
	cfg := converterConfig{engine: EngineDialect, basePath: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}

	htmlConverter, err := pipeline.NewHTMLConverter(cfg.engine, pipeline.ConverterOptions{
		BasePath:       cfg.basePath,
		HighlightStyle: cfg.highlightStyle,
	})
	if err != nil {
		return nil, err
	}

	c := &Converter{
		preprocessor:  &pipeline.SourcePreprocessor{},
		htmlConverter: htmlConverter,
		cssInjector:   &pipeline.CSSInjection{},
	}

	if cfg.template != "" {
		if err := assets.ValidateTemplate("custom", cfg.template); err != nil {
			return nil, err
		}
		if c.template, err = pipeline.RewriteBasePath(cfg.template, cfg.basePath); err != nil {
			return nil, fmt.Errorf("rebasing template: %w", err)
		}
		if g, ok := htmlConverter.(*pipeline.GoldmarkConverter); ok {
			if c.pageCSS, err = g.StyleCSS(); err != nil {
				return nil, err
			}
		}
	}

	return c, nil
}

// Convert runs the pipeline on one document.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	md := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err := c.htmlConverter.ToHTML(ctx, md)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// A missing title only matters when filling a template.
	title, titleErr := markdown.ExtractTitle(md)

	res := &Result{Title: title, HTML: htmlContent}
	if c.template == "" {
		return res, nil
	}
	if titleErr != nil {
		return nil, titleErr
	}

	page := pipeline.Hydrate(c.template, title, htmlContent)
	res.Page = c.cssInjector.InjectCSS(ctx, page, c.pageCSS)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return res, nil
}

// ToHTML converts a document with the dialect engine and no base path
// rewriting. The result is a single <div> wrapping one element per block.
func ToHTML(md string) (string, error) {
	return markdown.ToHTML(md)
}

// ExtractTitle returns the text of the level-1 heading on the first line.
// Returns ErrNoTitle when the first line is not such a heading.
func ExtractTitle(md string) (string, error) {
	return markdown.ExtractTitle(md)
}
