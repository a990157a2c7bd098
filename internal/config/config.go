package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdcontent/internal/fileutil"
	"github.com/alnah/go-mdcontent/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidTimeout  = errors.New("invalid read timeout")
)

// Field length limits.
const (
	MaxPathLength   = 4096 // Content root
	MaxAnchorLength = 100  // "consultation", "pricing"
	MaxRouteLength  = 2048 // Browser URL limit
	MaxStyleLength  = 50   // Chroma style name
	MaxPrefixLength = 2048 // Asset URL prefix
	MaxRoutes       = 100
)

// Config holds all configuration for content loading and rendering.
type Config struct {
	Content ContentConfig `yaml:"content"`
	Links   LinksConfig   `yaml:"links"`
	Render  RenderConfig  `yaml:"render"`
}

// ContentConfig defines where markdown files live.
type ContentConfig struct {
	// Root is the content directory. A relative root read from a config file
	// is resolved against that file's directory; empty means "content" in
	// the working directory.
	Root        string `yaml:"root"`
	ReadTimeout string `yaml:"readTimeout"` // Go duration, e.g. "5s" (empty = loader default)
}

// LinksConfig maps in-page anchors to application routes.
type LinksConfig struct {
	Routes map[string]string `yaml:"routes"` // anchor (without '#') -> route
}

// RenderConfig defines markdown-to-HTML options.
type RenderConfig struct {
	HardWraps      bool   `yaml:"hardWraps"`
	HighlightStyle string `yaml:"highlightStyle"` // Chroma style name (empty = "github")
	AssetPrefix    string `yaml:"assetPrefix"`    // URL prefix for relative images (empty = unchanged)
	Standalone     bool   `yaml:"standalone"`     // Wrap output in a full HTML document
}

// ReadTimeoutDuration parses ReadTimeout. It returns 0 when unset, leaving
// the loader's own default in effect.
func (c ContentConfig) ReadTimeoutDuration() (time.Duration, error) {
	if c.ReadTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ReadTimeout)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: must be positive, got %s", ErrInvalidTimeout, c.ReadTimeout)
	}
	return d, nil
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("content.root", c.Content.Root, MaxPathLength); err != nil {
		return err
	}
	if _, err := c.Content.ReadTimeoutDuration(); err != nil {
		return fmt.Errorf("content.readTimeout: %w", err)
	}

	if len(c.Links.Routes) > MaxRoutes {
		return fmt.Errorf("links.routes: too many entries (%d, max %d)", len(c.Links.Routes), MaxRoutes)
	}
	for anchor, route := range c.Links.Routes {
		if err := validateFieldLength("links.routes key", anchor, MaxAnchorLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("links.routes[%s]", anchor), route, MaxRouteLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("render.highlightStyle", c.Render.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("render.assetPrefix", c.Render.AssetPrefix, MaxPrefixLength); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultRoot is the content root used when none is configured.
const DefaultRoot = "content"

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Content: ContentConfig{Root: DefaultRoot},
		Links:   LinksConfig{Routes: nil}, // nil = library default routes
		Render:  RenderConfig{},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	switch root := cfg.Content.Root; {
	case root == "":
		cfg.Content.Root = DefaultRoot
	case !filepath.IsAbs(root):
		cfg.Content.Root = filepath.Join(filepath.Dir(configPath), root)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdcontent/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdcontent", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
