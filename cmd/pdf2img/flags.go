package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// spacingSentinel detects if --spacing was explicitly set.
// Since 0 is a valid gap, we use an out-of-range sentinel.
const spacingSentinel = -1

// cliFlags holds all flags for the pdf2img CLI.
type cliFlags struct {
	output     string
	dpi        int
	spacing    int
	url        string
	batch      bool
	pdfDir     string
	outputDir  string
	background string
	timeout    string
	config     string
	quiet      bool
	verbose    bool
	skillInfo  bool
}

// parseFlags parses CLI flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("pdf2img", flag.ContinueOnError)
	f := &cliFlags{}

	// Single conversion
	fs.StringVarP(&f.output, "output", "o", "", "output image path (default: <input>_stitched.png)")
	fs.IntVarP(&f.dpi, "dpi", "d", 0, "rasterization DPI (default: 150)")
	fs.IntVarP(&f.spacing, "spacing", "s", spacingSentinel, "pixel gap between pages (default: 10)")
	fs.StringVar(&f.background, "background", "", "background fill color (hex, default: #ffffff)")

	// URL conversion
	fs.StringVarP(&f.url, "url", "u", "", "PDF file URL")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "download timeout (e.g., 30s, 2m)")

	// Batch conversion
	fs.BoolVarP(&f.batch, "batch", "b", false, "batch conversion mode")
	fs.StringVar(&f.pdfDir, "pdf-dir", "", "PDF directory (batch mode)")
	fs.StringVar(&f.outputDir, "output-dir", "", "output directory (batch mode, default: <pdf-dir>/converted)")

	// Common
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show progress output")
	fs.BoolVar(&f.skillInfo, "skill-info", false, "print tool capability metadata as JSON")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
