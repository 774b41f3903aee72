package pdf2img

import (
	"fmt"
	"image/color"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Conversion defaults.
const (
	DefaultDPI     = 150
	DefaultSpacing = 10
)

// DPI and spacing bounds.
const (
	MinDPI     = 1
	MaxDPI     = 1200
	MaxSpacing = 1000
)

// DefaultBackground fills the canvas behind and between pages.
var DefaultBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// StitchOptions configures the vertical composition of page images.
type StitchOptions struct {
	Spacing    int         // pixel gap between pages (>= 0)
	Background color.Color // canvas fill, nil = opaque white
}

// Input contains conversion parameters for a single PDF.
type Input struct {
	PDFPath    string
	OutputPath string      // empty = <stem>_stitched.png beside the input
	DPI        int         // rasterization resolution, 0 = DefaultDPI
	Spacing    int         // pixel gap between pages (0 is a valid gap)
	Background color.Color // nil = opaque white
}

// Validate checks that input parameters are within bounds.
func (in Input) Validate() error {
	if in.DPI != 0 && (in.DPI < MinDPI || in.DPI > MaxDPI) {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidDPI, in.DPI, MinDPI, MaxDPI)
	}
	if in.Spacing < 0 || in.Spacing > MaxSpacing {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidSpacing, in.Spacing, MaxSpacing)
	}
	return nil
}

// BatchInput contains parameters for directory conversion.
type BatchInput struct {
	PDFDir     string
	OutputDir  string // empty = <pdf-dir>/converted
	DPI        int
	Spacing    int
	Background color.Color
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
	logW    io.Writer
}

// defaultTimeout bounds the remote PDF download when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the download timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pdf2img: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithRasterizer replaces the PDF rasterizer (e.g., by tests).
func WithRasterizer(r Rasterizer) Option {
	return func(c *Converter) {
		c.rasterizer = r
	}
}

// WithEncoder replaces the image encoder (e.g., by tests).
func WithEncoder(e Encoder) Option {
	return func(c *Converter) {
		c.encoder = e
	}
}

// WithHTTPClient replaces the HTTP client used for remote PDFs.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Converter) {
		c.client = client
	}
}

// WithLogWriter directs progress output to w. Progress is silent by default.
func WithLogWriter(w io.Writer) Option {
	return func(c *Converter) {
		c.cfg.logW = w
	}
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q (must start with #)", ErrInvalidBackground, s)
	}

	switch len(hex) {
	case 3:
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
	case 6:
		// already full form
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q (must be #rgb or #rrggbb)", ErrInvalidBackground, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidBackground, s)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
