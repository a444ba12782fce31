package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigExists    = errors.New("config file already exists")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory searched under os.UserConfigDir for named configs.
const AppDir = "go-mdsite"

// DefaultName is the config name looked up when no --config is given.
const DefaultName = "mdsite"

// Engine names accepted in engine.name.
const (
	EngineDialect  = "dialect"
	EngineGoldmark = "goldmark"
)

// Field length limits.
const (
	MaxPathLength     = 4096 // Directory and file paths
	MaxURLLength      = 2048 // Base path may be an absolute URL
	MaxNameLength     = 100  // Template, style and highlight style names
	MaxDurationLength = 20   // "90s", "2m30s"
	MaxWorkers        = 64
)

// Config holds all configuration for a site build.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Static  StaticConfig  `yaml:"static"`
	Output  OutputConfig  `yaml:"output"`
	Site    SiteConfig    `yaml:"site"`
	Assets  AssetsConfig  `yaml:"assets"`
	Engine  EngineConfig  `yaml:"engine"`
	Build   BuildConfig   `yaml:"build"`
}

// ContentConfig defines where Markdown pages are read from.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// StaticConfig defines the directory copied verbatim into the output.
type StaticConfig struct {
	Dir string `yaml:"dir"` // Empty = no static copy
}

// OutputConfig defines where the site is written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// SiteConfig defines page-level options.
type SiteConfig struct {
	BasePath string `yaml:"basePath"` // Prefix for root-relative URLs (default: "/")
	Template string `yaml:"template"` // Template name or path to an .html file
	Style    string `yaml:"style"`    // Style name or path to a .css file (empty = none)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// EngineConfig selects the Markdown engine.
type EngineConfig struct {
	Name           string `yaml:"name"`           // "dialect" or "goldmark"
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style (goldmark only)
}

// BuildConfig defines build execution options.
type BuildConfig struct {
	Workers int    `yaml:"workers"` // 0 = GOMAXPROCS
	PDF     bool   `yaml:"pdf"`     // Also print each page to PDF
	Timeout string `yaml:"timeout"` // Go duration; empty = no timeout
}

// DefaultConfig returns the configuration used without a config file:
// content/ and static/ are built into docs/ with the built-in template.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Dir: "content"},
		Static:  StaticConfig{Dir: "static"},
		Output:  OutputConfig{Dir: "docs"},
		Site: SiteConfig{
			BasePath: "/",
			Template: "default",
			Style:    "default",
		},
		Engine: EngineConfig{
			Name:           EngineDialect,
			HighlightStyle: "github",
		},
	}
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	paths := []struct {
		field, value string
	}{
		{"content.dir", c.Content.Dir},
		{"static.dir", c.Static.Dir},
		{"output.dir", c.Output.Dir},
		{"assets.basePath", c.Assets.BasePath},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("site.basePath", c.Site.BasePath, MaxURLLength); err != nil {
		return err
	}
	if bp := c.Site.BasePath; bp != "" && !strings.HasPrefix(bp, "/") && !fileutil.IsURL(bp) {
		return fmt.Errorf("%w: site.basePath %q (must start with / or be an http(s) URL)", ErrInvalidValue, bp)
	}
	if err := validateFieldLength("site.template", c.Site.Template, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("site.style", c.Site.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("engine.highlightStyle", c.Engine.HighlightStyle, MaxNameLength); err != nil {
		return err
	}

	switch c.Engine.Name {
	case "", EngineDialect, EngineGoldmark:
	default:
		return fmt.Errorf("%w: engine.name %q (must be %s or %s)", ErrInvalidValue, c.Engine.Name, EngineDialect, EngineGoldmark)
	}

	if c.Build.Workers < 0 || c.Build.Workers > MaxWorkers {
		return fmt.Errorf("%w: build.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Build.Workers)
	}
	if err := validateFieldLength("build.timeout", c.Build.Timeout, MaxDurationLength); err != nil {
		return err
	}
	if _, err := c.Build.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// TimeoutDuration parses Timeout. An empty value means no timeout (0).
func (b BuildConfig) TimeoutDuration() (time.Duration, error) {
	if b.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(b.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: build.timeout %q: %v", ErrInvalidValue, b.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: build.timeout must not be negative, got %s", ErrInvalidValue, b.Timeout)
	}
	return d, nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Tried: []string{configPath}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NotFoundError lists the locations searched for a config file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

// Is reports whether target is ErrConfigNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, {UserConfigDir}/go-mdsite/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", &NotFoundError{Tried: tried}
}

// WriteConfig marshals cfg to path. An existing file is only replaced when force is set.
func WriteConfig(path string, cfg *Config, force bool) error {
	if !force && fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return fileutil.WriteFile(path, data)
}
