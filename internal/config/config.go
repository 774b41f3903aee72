// Package config loads and validates the tool's YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-pdf2img/internal/fileutil"
	"github.com/alnah/go-pdf2img/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Validation bounds. DPI and spacing mirror the library limits; the
// background must be a #rgb or #rrggbb hex color.
const (
	MinDPI     = 1
	MaxDPI     = 1200
	MaxSpacing = 1000
)

// Config holds all configuration for PDF-to-image conversion.
type Config struct {
	Convert  ConvertConfig  `yaml:"convert"`
	Output   OutputConfig   `yaml:"output"`
	Download DownloadConfig `yaml:"download"`
}

// ConvertConfig defines rasterization and stitching options.
type ConvertConfig struct {
	DPI        int    `yaml:"dpi"`        // rasterization resolution (default: 150)
	Spacing    int    `yaml:"spacing"`    // pixel gap between pages (default: 10)
	Background string `yaml:"background"` // hex fill color (default: "#ffffff")
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = beside the input)
}

// DownloadConfig defines remote fetch options.
type DownloadConfig struct {
	Timeout string `yaml:"timeout"` // Go duration string (default: "30s")
}

// DefaultConfig returns the tool's built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{
			DPI:        150,
			Spacing:    10,
			Background: "#ffffff",
		},
		Output:   OutputConfig{DefaultDir: ""},
		Download: DownloadConfig{Timeout: "30s"},
	}
}

// Validate checks that configuration values are within bounds.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if c.Convert.DPI < MinDPI || c.Convert.DPI > MaxDPI {
		return fmt.Errorf("convert.dpi: must be between %d and %d, got %d", MinDPI, MaxDPI, c.Convert.DPI)
	}
	if c.Convert.Spacing < 0 || c.Convert.Spacing > MaxSpacing {
		return fmt.Errorf("convert.spacing: must be between 0 and %d, got %d", MaxSpacing, c.Convert.Spacing)
	}
	if err := validateHexColor(c.Convert.Background); err != nil {
		return fmt.Errorf("convert.background: %w", err)
	}
	if c.Download.Timeout != "" {
		d, err := time.ParseDuration(c.Download.Timeout)
		if err != nil {
			return fmt.Errorf("download.timeout: invalid duration %q", c.Download.Timeout)
		}
		if d <= 0 {
			return fmt.Errorf("download.timeout: must be positive, got %q", c.Download.Timeout)
		}
	}
	return nil
}

// validateHexColor accepts "#rgb" or "#rrggbb".
func validateHexColor(s string) error {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return fmt.Errorf("invalid hex color %q (must be #rgb or #rrggbb)", s)
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("invalid hex color %q (must be #rgb or #rrggbb)", s)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
// Fields the file omits keep their defaults.
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-pdf2img/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

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
			userPath := filepath.Join(userConfigDir, "go-pdf2img", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
