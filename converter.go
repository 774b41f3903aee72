package pdf2img

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/alnah/go-pdf2img/internal/fileutil"
)

// Compile-time interface implementation checks.
var (
	_ Rasterizer = FitzRasterizer{}
	_ Encoder    = PNGEncoder{}
)

// Converter orchestrates rasterization, stitching, and encoding.
// Create with NewConverter; a Converter is safe to reuse across conversions.
type Converter struct {
	cfg        converterConfig
	rasterizer Rasterizer
	encoder    Encoder
	client     *http.Client
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithRasterizer).
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg:        converterConfig{timeout: defaultTimeout, logW: io.Discard},
		rasterizer: FitzRasterizer{},
		encoder:    PNGEncoder{},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create HTTP client if not injected; the timeout covers the whole
	// download, there is no retry.
	if c.client == nil {
		c.client = &http.Client{Timeout: c.cfg.timeout}
	}

	return c
}

// Convert rasterizes one PDF and writes the stitched composite.
// Failures come back as typed errors; use FailureResult to turn them into
// the JSON result shape.
func (c *Converter) Convert(ctx context.Context, in Input) (*ConvertResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if !fileutil.FileExists(in.PDFPath) {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, in.PDFPath)
	}

	dpi := in.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}

	fmt.Fprintf(c.cfg.logW, "converting %s at %d dpi\n", in.PDFPath, dpi)
	pages, err := c.rasterizer.Rasterize(ctx, in.PDFPath, dpi)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(c.cfg.logW, "stitching %d pages (spacing %dpx)\n", len(pages), in.Spacing)
	composite, err := Stitch(pages, StitchOptions{Spacing: in.Spacing, Background: in.Background})
	if err != nil {
		return nil, err
	}

	outputPath := in.OutputPath
	if outputPath == "" {
		outputPath = defaultOutputPath(in.PDFPath)
	}

	fmt.Fprintf(c.cfg.logW, "writing %s\n", outputPath)
	if err := c.encoder.Encode(composite, outputPath); err != nil {
		return nil, err
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	mb, human := formatFileSize(info.Size())
	bounds := composite.Bounds()
	return &ConvertResult{
		Success:     true,
		OutputPath:  absPath(outputPath),
		FileSizeMB:  mb,
		FileSizeStr: human,
		Pages:       len(pages),
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
	}, nil
}

// defaultOutputPath places <stem>_stitched.png beside the input PDF.
func defaultOutputPath(pdfPath string) string {
	return filepath.Join(filepath.Dir(pdfPath), fileutil.Stem(pdfPath)+"_stitched.png")
}

// absPath resolves path for reporting; the relative path is still correct
// if resolution fails.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
