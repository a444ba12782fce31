package sitegen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/logging"
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// StyleFile is the stylesheet written at the output root.
// The built-in template links it as /index.css.
const StyleFile = "index.css"

// Worker limits.
const (
	MinWorkers = 1
	MaxWorkers = 64
)

// DefaultDebounce is how long Watch waits for changes to settle.
const DefaultDebounce = 100 * time.Millisecond

// Exporter prints a generated page to another format.
type Exporter interface {
	Export(ctx context.Context, htmlPath, outPath string) error
}

// Options configures a Generator.
type Options struct {
	ContentDir string
	StaticDir  string // Empty = no static copy
	OutputDir  string
	BasePath   string // Applied to the template; the converter handles content
	Template   string // Template content with Title and Content placeholders
	Style      string // Stylesheet content written to StyleFile; empty = none
	Workers    int    // 0 = derived from GOMAXPROCS
	Debounce   time.Duration

	// Exporter, when set, also exports every page next to its HTML file
	// using ExportExt.
	Exporter  Exporter
	ExportExt string

	Logger zerolog.Logger
}

// Generator builds a site from Markdown sources.
type Generator struct {
	opts         Options
	template     string
	pageCSS      string
	converter    pipeline.HTMLConverter
	preprocessor pipeline.MarkdownPreprocessor
	injector     pipeline.CSSInjector
	log          zerolog.Logger
}

// highlighter is implemented by converters that emit class-based
// highlighting and need their stylesheet embedded in each page.
type highlighter interface {
	StyleCSS() (string, error)
}

// New creates a Generator. The template is validated and rebased once here.
func New(converter pipeline.HTMLConverter, opts Options) (*Generator, error) {
	if opts.ContentDir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrContentDir)
	}
	if opts.OutputDir == "" || fileutil.IsWithin(opts.ContentDir, opts.OutputDir) {
		return nil, fmt.Errorf("%w: %q", ErrUnsafeOutputDir, opts.OutputDir)
	}
	if opts.StaticDir != "" && fileutil.IsWithin(opts.OutputDir, opts.StaticDir) {
		return nil, fmt.Errorf("%w: %q is inside static directory %q", ErrUnsafeOutputDir, opts.OutputDir, opts.StaticDir)
	}
	if err := assets.ValidateTemplate("site", opts.Template); err != nil {
		return nil, err
	}

	tmpl, err := pipeline.RewriteBasePath(opts.Template, opts.BasePath)
	if err != nil {
		return nil, fmt.Errorf("rebasing template: %w", err)
	}

	var pageCSS string
	if h, ok := converter.(highlighter); ok {
		if pageCSS, err = h.StyleCSS(); err != nil {
			return nil, err
		}
	}

	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.ExportExt == "" {
		opts.ExportExt = ".pdf"
	}
	opts.Workers = ResolveWorkers(opts.Workers)

	return &Generator{
		opts:         opts,
		template:     tmpl,
		pageCSS:      pageCSS,
		converter:    converter,
		preprocessor: &pipeline.SourcePreprocessor{},
		injector:     &pipeline.CSSInjection{},
		log:          logging.Component(opts.Logger, "sitegen"),
	}, nil
}

// ResolveWorkers returns the number of page workers.
// Explicit values are clamped; 0 uses GOMAXPROCS.
func ResolveWorkers(workers int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return max(MinWorkers, min(workers, MaxWorkers))
}

// Build runs a full site build. The returned Report is non-nil whenever
// page generation started, even if the error is non-nil.
func (g *Generator) Build(ctx context.Context) (*Report, error) {
	start := time.Now()
	report := &Report{}

	if err := g.prepareOutput(report); err != nil {
		return nil, err
	}
	if err := g.writeStyle(); err != nil {
		return nil, err
	}

	pages, err := Discover(g.opts.ContentDir, g.opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		g.log.Warn().Str("dir", g.opts.ContentDir).Msg("no markdown pages found")
	}

	report.Pages = g.buildPages(ctx, pages)
	report.Duration = time.Since(start)

	for _, p := range report.Pages {
		if p.Err != nil {
			g.log.Error().Err(p.Err).Str("page", p.Page.Rel).Msg("page failed")
		}
	}
	g.log.Info().
		Int("pages", report.Succeeded()).
		Int("failed", report.Failed()).
		Int("static", report.Static.Files).
		Dur("took", report.Duration).
		Msg(report.Summary())

	if failed := report.Failed(); failed > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrPagesFailed, failed, len(report.Pages))
	}
	return report, nil
}

// prepareOutput replaces the output directory with a copy of the static
// directory. Without a static directory the output is only created, so
// pages from earlier builds are kept.
func (g *Generator) prepareOutput(report *Report) error {
	static := g.opts.StaticDir
	if static != "" && !fileutil.DirExists(static) {
		g.log.Warn().Str("dir", static).Msg("static directory not found, skipping copy")
		static = ""
	}

	if static == "" {
		if err := os.MkdirAll(g.opts.OutputDir, fileutil.DirPerm); err != nil {
			return fmt.Errorf("%w: %v", ErrStaticCopy, err)
		}
		return nil
	}

	stats, err := fileutil.CopyDir(static, g.opts.OutputDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStaticCopy, err)
	}
	report.Static = stats
	g.log.Debug().
		Str("from", static).
		Str("to", g.opts.OutputDir).
		Int("files", stats.Files).
		Msg("static files copied")
	return nil
}

// writeStyle writes the site stylesheet unless the static tree already
// provided one.
func (g *Generator) writeStyle() error {
	if g.opts.Style == "" {
		return nil
	}

	path := filepath.Join(g.opts.OutputDir, StyleFile)
	if fileutil.FileExists(path) {
		g.log.Debug().Str("path", path).Msg("keeping stylesheet from static directory")
		return nil
	}
	if err := fileutil.WriteFile(path, []byte(g.opts.Style)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteStyle, err)
	}
	return nil
}

// buildPages processes pages concurrently. Results keep the input order.
func (g *Generator) buildPages(ctx context.Context, pages []Page) []PageResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := min(g.opts.Workers, len(pages))
	results := make([]PageResult, len(pages))
	jobs := make(chan int, len(pages))

	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = PageResult{Page: pages[idx], Err: err}
					continue
				}
				results[idx] = g.buildPage(ctx, pages[idx])
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage generates a single page.
func (g *Generator) buildPage(ctx context.Context, p Page) (result PageResult) {
	start := time.Now()
	result.Page = p
	defer func() {
		result.Duration = time.Since(start)
		if result.Err == nil {
			g.log.Debug().
				Str("page", p.Rel).
				Int("bytes", result.Bytes).
				Dur("took", result.Duration).
				Msg("page built")
		}
	}()

	source, err := os.ReadFile(p.Source) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadPage, err)
		return result
	}

	page, err := g.Render(ctx, string(source))
	if err != nil {
		result.Err = err
		return result
	}

	if err := fileutil.WriteFile(p.Output, []byte(page)); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
		return result
	}
	result.Bytes = len(page)

	if g.opts.Exporter != nil {
		exportPath := fileutil.ReplaceExt(p.Output, g.opts.ExportExt)
		if err := g.opts.Exporter.Export(ctx, p.Output, exportPath); err != nil {
			result.Err = fmt.Errorf("%w: %w", ErrExportPage, err)
			return result
		}
		result.Exported = exportPath
	}
	return result
}

// Render turns Markdown source into a complete page: the source is
// normalized, its title extracted, its body converted and both are placed
// into the template.
func (g *Generator) Render(ctx context.Context, source string) (string, error) {
	source = g.preprocessor.PreprocessMarkdown(ctx, source)

	title, err := markdown.ExtractTitle(source)
	if err != nil {
		return "", err
	}

	content, err := g.converter.ToHTML(ctx, source)
	if err != nil {
		return "", err
	}

	page := pipeline.Hydrate(g.template, title, content)
	if g.pageCSS != "" {
		page = g.injector.InjectCSS(ctx, page, g.pageCSS)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return page, nil
}

// IsContentError reports whether err comes from page content rather than
// the environment.
func IsContentError(err error) bool {
	return errors.Is(err, markdown.ErrNoTitle) ||
		errors.Is(err, markdown.ErrUnterminatedDelimiter) ||
		errors.Is(err, markdown.ErrMissingURL)
}
