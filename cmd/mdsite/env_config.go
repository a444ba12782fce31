package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-mdsite/internal/config"
)

// envPrefix marks variables read by mdsite.
const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MDSITE_CONFIG: config file name or path
	ContentDir string // MDSITE_CONTENT_DIR
	StaticDir  string // MDSITE_STATIC_DIR
	OutputDir  string // MDSITE_OUTPUT_DIR
	BasePath   string // MDSITE_BASE_PATH
	Engine     string // MDSITE_ENGINE: dialect, goldmark
	Style      string // MDSITE_STYLE: style name or path
	Timeout    string // MDSITE_TIMEOUT: Go duration
	Workers    int    // MDSITE_WORKERS: page workers
}

// knownEnvVars lists valid MDSITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":      true,
	"MDSITE_CONTENT_DIR": true,
	"MDSITE_STATIC_DIR":  true,
	"MDSITE_OUTPUT_DIR":  true,
	"MDSITE_BASE_PATH":   true,
	"MDSITE_ENGINE":      true,
	"MDSITE_STYLE":       true,
	"MDSITE_TIMEOUT":     true,
	"MDSITE_WORKERS":     true,
	"MDSITE_CONTAINER":   true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Malformed MDSITE_WORKERS values are ignored; MDSITE_TIMEOUT is checked
// by config validation like any other timeout.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("MDSITE_CONFIG"),
		ContentDir: os.Getenv("MDSITE_CONTENT_DIR"),
		StaticDir:  os.Getenv("MDSITE_STATIC_DIR"),
		OutputDir:  os.Getenv("MDSITE_OUTPUT_DIR"),
		BasePath:   os.Getenv("MDSITE_BASE_PATH"),
		Engine:     os.Getenv("MDSITE_ENGINE"),
		Style:      os.Getenv("MDSITE_STYLE"),
		Timeout:    os.Getenv("MDSITE_TIMEOUT"),
	}

	if workers := os.Getenv("MDSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized MDSITE_* variable.
// Helps catch typos like MDSITE_OUTPUT instead of MDSITE_OUTPUT_DIR.
func warnUnknownEnvVars(log zerolog.Logger) {
	for _, env := range os.Environ() {
		name, _, _ := strings.Cut(env, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			log.Warn().Str("var", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig overrides config file values with environment values.
// Order: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	overrides := []struct {
		value string
		field *string
	}{
		{env.ContentDir, &cfg.Content.Dir},
		{env.StaticDir, &cfg.Static.Dir},
		{env.OutputDir, &cfg.Output.Dir},
		{env.BasePath, &cfg.Site.BasePath},
		{env.Engine, &cfg.Engine.Name},
		{env.Style, &cfg.Site.Style},
		{env.Timeout, &cfg.Build.Timeout},
	}
	for _, o := range overrides {
		if o.value != "" {
			*o.field = o.value
		}
	}

	if env.Workers > 0 {
		cfg.Build.Workers = env.Workers
	}
}
