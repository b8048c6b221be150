// Package config provides configuration types and defaults for facet.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/facet/internal/log"
	"github.com/zjrosen/facet/pkg/style"
)

// Config holds all configuration options for facet.
type Config struct {
	Theme     string `mapstructure:"theme"`      // Built-in theme name
	ThemeFile string `mapstructure:"theme_file"` // Path to a YAML theme file; wins over Theme
	Format    string `mapstructure:"format"`     // "html" (default) or "latex"
	Numbers   bool   `mapstructure:"numbers"`    // Number source lines
	Anchors   bool   `mapstructure:"anchors"`    // Anchor line numbers (HTML only)
	Titles    bool   `mapstructure:"titles"`     // Category title attributes (HTML only)
	Debug     bool   `mapstructure:"debug"`      // Debug logging to facet.log
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Theme:  style.Default.Name,
		Format: "html",
	}
}

// Validate checks a Config for errors. An empty value falls back to its
// default, so only set values are checked.
func Validate(cfg Config) error {
	switch cfg.Format {
	case "", "html", "latex":
	default:
		return fmt.Errorf("format must be \"html\" or \"latex\", got %q", cfg.Format)
	}

	// A theme file overrides the named theme, so the name only has to
	// resolve when no file is given.
	if cfg.Theme != "" && cfg.ThemeFile == "" {
		if _, ok := style.Lookup(cfg.Theme); !ok {
			return fmt.Errorf("unknown theme %q (available: %s)", cfg.Theme, strings.Join(style.Names(), ", "))
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Facet Configuration

# Built-in theme for stylesheet and macro derivation
# (run 'facet themes' to see available themes):
#   pygments  - Light pastel colors (default)
#   kate      - The Kate editor defaults
#   tango     - Tango palette on a light gray background
#   espresso  - Dark coffee background with bright colors
theme: pygments

# Custom theme file; overrides the theme above when set
# theme_file: ~/.config/facet/mytheme.yaml

# Output format: "html" or "latex"
format: html

# Number source lines
numbers: false

# Wrap line numbers in anchors for deep linking (HTML output)
anchors: false

# Add category names as title attributes, shown on hover (HTML output)
titles: false

# Write debug logs to facet.log in the working directory
debug: false
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
