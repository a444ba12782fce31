package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	jsonLog bool
	noColor bool
}

// siteFlags holds flags that override config file fields.
type siteFlags struct {
	content        string
	static         string
	output         string
	basePath       string
	template       string
	style          string
	assetPath      string
	engine         string
	highlightStyle string
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	site    siteFlags
	workers int
	pdf     bool
	timeout string
	watch   bool

	// changed reports whether a flag was set on the command line.
	changed func(name string) bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show warnings and errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-page details")
	fs.BoolVar(&f.jsonLog, "json-log", false, "log as JSON lines")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored log output")
}

// addSiteFlags adds directory, page and engine flags to a FlagSet.
func addSiteFlags(fs *flag.FlagSet, f *siteFlags) {
	fs.StringVar(&f.content, "content", "", "Markdown content directory")
	fs.StringVar(&f.static, "static", "", "static files directory")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVar(&f.basePath, "base-path", "", "prefix for root-relative URLs")
	fs.StringVar(&f.template, "template", "", "page template name or path")
	fs.StringVar(&f.style, "style", "", "stylesheet name or path")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: dialect, goldmark")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "chroma style for code (goldmark)")
}

// registerBuildFlags adds every build flag to fs. Shared by parsing and
// shell completion.
func registerBuildFlags(fs *flag.FlagSet, f *buildFlags) {
	addCommonFlags(fs, &f.common)
	addSiteFlags(fs, &f.site)
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel page workers (0 = auto)")
	fs.BoolVar(&f.pdf, "pdf", false, "also export every page to PDF")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "build timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.watch, "watch", false, "rebuild when sources change")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &buildFlags{changed: fs.Changed}
	registerBuildFlags(fs, f)

	fs.Usage = func() { printBuildUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// initFlags holds flags for the init command.
type initFlags struct {
	output string
	force  bool
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string, usage io.Writer) (*initFlags, []string, error) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f := &initFlags{}

	fs.StringVarP(&f.output, "output", "o", defaultConfigFile, "config file to write")
	fs.BoolVarP(&f.force, "force", "f", false, "overwrite an existing file")

	fs.Usage = func() { printInitUsage(usage) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
