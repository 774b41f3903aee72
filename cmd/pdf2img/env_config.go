package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-pdf2img/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // PDF2IMG_CONFIG: config file name or path
	DPI        int    // PDF2IMG_DPI: rasterization resolution
	Spacing    int    // PDF2IMG_SPACING: pixel gap (negative = unset)
	Background string // PDF2IMG_BACKGROUND: hex fill color
	OutputDir  string // PDF2IMG_OUTPUT_DIR: default output directory
	Timeout    string // PDF2IMG_TIMEOUT: download timeout duration
}

// knownEnvVars lists valid PDF2IMG_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PDF2IMG_CONFIG":     true,
	"PDF2IMG_DPI":        true,
	"PDF2IMG_SPACING":    true,
	"PDF2IMG_BACKGROUND": true,
	"PDF2IMG_OUTPUT_DIR": true,
	"PDF2IMG_TIMEOUT":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized PDF2IMG_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("PDF2IMG_CONFIG"),
		Spacing:    spacingSentinel,
		Background: os.Getenv("PDF2IMG_BACKGROUND"),
		OutputDir:  os.Getenv("PDF2IMG_OUTPUT_DIR"),
		Timeout:    os.Getenv("PDF2IMG_TIMEOUT"),
	}

	if dpi := os.Getenv("PDF2IMG_DPI"); dpi != "" {
		if d, err := strconv.Atoi(dpi); err == nil && d > 0 {
			cfg.DPI = d
		}
	}

	if spacing := os.Getenv("PDF2IMG_SPACING"); spacing != "" {
		if s, err := strconv.Atoi(spacing); err == nil && s >= 0 {
			cfg.Spacing = s
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized PDF2IMG_* variables.
// Helps catch typos like PDF2IMG_SPACE instead of PDF2IMG_SPACING.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PDF2IMG_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Environment overrides the config file; CLI flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.DPI > 0 {
		cfg.Convert.DPI = env.DPI
	}
	if env.Spacing != spacingSentinel {
		cfg.Convert.Spacing = env.Spacing
	}
	if env.Background != "" {
		cfg.Convert.Background = env.Background
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Timeout != "" {
		cfg.Download.Timeout = env.Timeout
	}
}
