// Package config handles global Quill configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultContentDir is where posts live inside a site when content_dir is not
// configured.
const DefaultContentDir = "content/posts"

// Config represents the global Quill configuration.
type Config struct {
	// DefaultSite is the name of the default site (from Sites map).
	DefaultSite string `toml:"default_site"`

	// Sites is a map of site names to paths.
	Sites map[string]string `toml:"sites"`

	// ContentDir is the posts directory relative to a site root.
	ContentDir string `toml:"content_dir"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`

	// MarkdownStyle sets the Glamour style used by 'quill read'.
	// Example values: "dark", "light", "dracula", "notty".
	MarkdownStyle string `toml:"markdown_style"`
}

// GetSitePath returns the path for a named site.
// If name is empty, returns the default site path.
func (c *Config) GetSitePath(name string) (string, error) {
	if name == "" {
		name = c.DefaultSite
	}
	if name == "" {
		return "", fmt.Errorf("no default site configured")
	}
	if c.Sites != nil {
		if path, ok := c.Sites[name]; ok {
			return path, nil
		}
	}
	return "", fmt.Errorf("site '%s' not found in config", name)
}

// GetContentDir returns the configured posts directory, relative to a site root.
func (c *Config) GetContentDir() string {
	if c.ContentDir != "" {
		return c.ContentDir
	}
	return DefaultContentDir
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/quill/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "quill", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "quill", "config.toml")
	}
	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	configPath := DefaultPath()
	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# Quill Configuration

# Default site name (must exist in [sites] below)
# default_site = "blog"

# Named sites
# [sites]
# blog = "/path/to/your/blog"

# Posts directory relative to the site root (default: content/posts)
# content_dir = "content/posts"

# Optional UI accent color for terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"
# markdown_style = "dark"
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configPath, nil
}
