package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	pdf2img "github.com/alnah/go-pdf2img"
	"github.com/alnah/go-pdf2img/internal/config"
	"github.com/alnah/go-pdf2img/internal/fileutil"
	flag "github.com/spf13/pflag"
)

// run parses arguments, resolves configuration, and dispatches to the
// requested operation. It returns the process exit code.
func run(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	if flags.skillInfo {
		printJSON(env.Stdout, pdf2img.Info())
		return ExitSuccess
	}

	var pdfFile string
	if len(positional) > 0 {
		pdfFile = positional[0]
	}

	// No operation requested: print usage and exit cleanly.
	if pdfFile == "" && flags.url == "" && !flags.batch {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	cfg, timeout, err := resolveConfiguration(flags, env)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	background, err := pdf2img.ParseHexColor(cfg.Convert.Background)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	opts := []pdf2img.Option{pdf2img.WithTimeout(timeout)}
	if flags.verbose && !flags.quiet {
		opts = append(opts, pdf2img.WithLogWriter(env.Stderr))
	}
	conv := pdf2img.NewConverter(opts...)

	ctx := context.Background()

	switch {
	case flags.batch:
		if flags.pdfDir == "" {
			fmt.Fprintln(env.Stderr, "batch mode requires --pdf-dir")
			return ExitUsage
		}
		result, err := conv.ConvertDir(ctx, pdf2img.BatchInput{
			PDFDir:     flags.pdfDir,
			OutputDir:  cfg.Output.DefaultDir,
			DPI:        cfg.Convert.DPI,
			Spacing:    cfg.Convert.Spacing,
			Background: background,
		})
		if err != nil {
			printJSON(env.Stdout, pdf2img.FailureResult(err))
			return ExitSuccess
		}
		printJSON(env.Stdout, result)

	case flags.url != "":
		result, err := conv.ConvertFromURL(ctx, flags.url, pdf2img.Input{
			OutputPath: flags.output,
			DPI:        cfg.Convert.DPI,
			Spacing:    cfg.Convert.Spacing,
			Background: background,
		})
		if err != nil {
			printJSON(env.Stdout, pdf2img.FailureResult(err))
			return ExitSuccess
		}
		printJSON(env.Stdout, result)

	default:
		result, err := conv.Convert(ctx, pdf2img.Input{
			PDFPath:    pdfFile,
			OutputPath: resolveOutputPath(flags.output, pdfFile, cfg),
			DPI:        cfg.Convert.DPI,
			Spacing:    cfg.Convert.Spacing,
			Background: background,
		})
		if err != nil {
			printJSON(env.Stdout, pdf2img.FailureResult(err))
			return ExitSuccess
		}
		printJSON(env.Stdout, result)
	}

	return ExitSuccess
}

// resolveConfiguration layers defaults, config file, environment variables,
// and CLI flags, in increasing precedence.
func resolveConfiguration(flags *cliFlags, env *Environment) (*config.Config, time.Duration, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	configName := flags.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, 0, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	timeout, err := resolveTimeout(cfg)
	if err != nil {
		return nil, 0, err
	}

	return cfg, timeout, nil
}

// mergeFlags applies explicitly set CLI flags onto the config (CLI wins).
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.dpi != 0 {
		cfg.Convert.DPI = flags.dpi
	}
	if flags.spacing != spacingSentinel {
		cfg.Convert.Spacing = flags.spacing
	}
	if flags.background != "" {
		cfg.Convert.Background = flags.background
	}
	if flags.outputDir != "" {
		cfg.Output.DefaultDir = flags.outputDir
	}
	if flags.timeout != "" {
		cfg.Download.Timeout = flags.timeout
	}
}

// resolveTimeout parses the configured download timeout.
func resolveTimeout(cfg *config.Config) (time.Duration, error) {
	if cfg.Download.Timeout == "" {
		return 30 * time.Second, nil
	}
	d, err := time.ParseDuration(cfg.Download.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", cfg.Download.Timeout, err)
	}
	return d, nil
}

// resolveOutputPath picks the single-conversion output path: the explicit
// flag wins, then the configured default directory, then the library
// default (beside the input).
func resolveOutputPath(flagOutput, pdfFile string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	if cfg.Output.DefaultDir != "" {
		return filepath.Join(cfg.Output.DefaultDir, fileutil.Stem(pdfFile)+"_stitched.png")
	}
	return ""
}

// printJSON renders v as UTF-8 JSON with 2-space indentation.
// HTML escaping is off so URLs and file paths print verbatim.
func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
