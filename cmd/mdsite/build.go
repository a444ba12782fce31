package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/logging"
	"github.com/alnah/go-mdsite/internal/pdf"
	"github.com/alnah/go-mdsite/internal/pipeline"
	"github.com/alnah/go-mdsite/internal/sitegen"
)

// runBuild builds the site once, then keeps rebuilding with --watch.
// An optional positional argument sets the base path.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseBuildFlags(args, env.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected at most one base path, got %d arguments", ErrUsage, len(positional))
	}

	log := logging.New(env.Stderr, logging.Options{
		Verbose: f.common.verbose,
		Quiet:   f.common.quiet,
		JSON:    f.common.jsonLog,
		NoColor: f.common.noColor,
	})
	if env.SetMaxProcs != nil {
		env.SetMaxProcs(func(format string, args ...any) {
			log.Debug().Msgf(format, args...)
		})
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(log)

	cfg, err := loadConfig(f.common.config, envCfg.ConfigPath, log)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(f, cfg)
	if len(positional) == 1 && !f.changed("base-path") {
		cfg.Site.BasePath = positional[0]
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	gen, closeExporter, err := newGenerator(cfg, env, log)
	if err != nil {
		return err
	}
	defer closeExporter()

	if err := buildOnce(ctx, gen, cfg); err != nil {
		if !f.watch || !errors.Is(err, sitegen.ErrPagesFailed) {
			return err
		}
		log.Warn().Err(err).Msg("initial build incomplete, watching anyway")
	}

	if !f.watch {
		return nil
	}

	log.Info().Str("content", cfg.Content.Dir).Msg("watching for changes, press Ctrl+C to stop")
	return gen.Watch(ctx, func(_ *sitegen.Report, err error) {
		if err != nil && !errors.Is(err, sitegen.ErrPagesFailed) {
			log.Error().Err(err).Msg("rebuild failed")
		}
	})
}

// buildOnce runs a single build bounded by the configured timeout.
func buildOnce(ctx context.Context, gen *sitegen.Generator, cfg *config.Config) error {
	timeout, err := cfg.Build.TimeoutDuration()
	if err != nil {
		return err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	report, err := gen.Build(ctx)
	if err != nil && report != nil {
		// Keep the first page error reachable so exit codes and hints
		// reflect what actually went wrong.
		if failed := report.Errors(); len(failed) > 0 {
			return fmt.Errorf("%w: %s: %w", err, failed[0].Page.Rel, failed[0].Err)
		}
	}
	return err
}

// loadConfig loads the explicit config if one was named, else the default
// config name. A missing default config falls back to built-in defaults.
func loadConfig(flagName, envName string, log zerolog.Logger) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name != "" {
		return config.LoadConfig(name)
	}

	cfg, err := config.LoadConfig(config.DefaultName)
	if errors.Is(err, config.ErrConfigNotFound) {
		log.Debug().Msg("no config file found, using defaults")
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// mergeFlags applies command-line flags to cfg. Only flags set explicitly
// override config values, so an empty --style disables the stylesheet.
func mergeFlags(f *buildFlags, cfg *config.Config) {
	strs := []struct {
		name  string
		value string
		field *string
	}{
		{"content", f.site.content, &cfg.Content.Dir},
		{"static", f.site.static, &cfg.Static.Dir},
		{"output", f.site.output, &cfg.Output.Dir},
		{"base-path", f.site.basePath, &cfg.Site.BasePath},
		{"template", f.site.template, &cfg.Site.Template},
		{"style", f.site.style, &cfg.Site.Style},
		{"asset-path", f.site.assetPath, &cfg.Assets.BasePath},
		{"engine", f.site.engine, &cfg.Engine.Name},
		{"highlight-style", f.site.highlightStyle, &cfg.Engine.HighlightStyle},
		{"timeout", f.timeout, &cfg.Build.Timeout},
	}
	for _, s := range strs {
		if f.changed(s.name) {
			*s.field = s.value
		}
	}

	if f.changed("workers") {
		cfg.Build.Workers = f.workers
	}
	if f.changed("pdf") {
		cfg.Build.PDF = f.pdf
	}
}

// newGenerator wires the converter, assets and optional PDF printer into a
// site generator. The returned func releases the browser, if any.
func newGenerator(cfg *config.Config, env *Environment, log zerolog.Logger) (*sitegen.Generator, func(), error) {
	noop := func() {}

	tmpl, style, err := loadSiteAssets(cfg, env)
	if err != nil {
		return nil, noop, err
	}

	converter, err := pipeline.NewHTMLConverter(cfg.Engine.Name, pipeline.ConverterOptions{
		BasePath:       cfg.Site.BasePath,
		HighlightStyle: cfg.Engine.HighlightStyle,
	})
	if err != nil {
		return nil, noop, err
	}

	opts := sitegen.Options{
		ContentDir: cfg.Content.Dir,
		StaticDir:  cfg.Static.Dir,
		OutputDir:  cfg.Output.Dir,
		BasePath:   cfg.Site.BasePath,
		Template:   tmpl,
		Style:      style,
		Workers:    cfg.Build.Workers,
		Logger:     log,
	}

	closeExporter := noop
	if cfg.Build.PDF {
		timeout, _ := cfg.Build.TimeoutDuration() // validated
		printer := pdf.NewPrinter(timeout)
		opts.Exporter = printer
		closeExporter = func() {
			if err := printer.Close(); err != nil {
				log.Warn().Err(err).Msg("closing browser")
			}
		}
	}

	gen, err := sitegen.New(converter, opts)
	if err != nil {
		closeExporter()
		return nil, noop, err
	}
	return gen, closeExporter, nil
}

// loadSiteAssets resolves the page template and stylesheet.
func loadSiteAssets(cfg *config.Config, env *Environment) (tmpl, style string, err error) {
	var loader assets.AssetLoader = env.AssetLoader
	if cfg.Assets.BasePath != "" {
		resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
		if err != nil {
			return "", "", err
		}
		loader = resolver
	}
	if loader == nil {
		loader = assets.NewEmbeddedLoader()
	}

	name := cfg.Site.Template
	if name == "" {
		name = assets.DefaultTemplateName
	}
	if tmpl, err = assets.Resolve(loader, assets.Template, name); err != nil {
		return "", "", err
	}

	if cfg.Site.Style != "" {
		if style, err = assets.Resolve(loader, assets.Style, cfg.Site.Style); err != nil {
			return "", "", err
		}
	}
	return tmpl, style, nil
}
