package pdf2img

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Stitch composes an ordered, non-empty sequence of page images into one
// vertically-stacked composite.
//
// The canvas width is the maximum page width; every page is pasted
// left-aligned at x=0, so no page is ever clipped. The canvas height is the
// sum of page heights plus Spacing between consecutive pages (a single page
// gets no gap). The canvas is filled with the background color before any
// page lands on it, so gaps and the area under partially transparent pages
// render as a solid fill. Compositing with source-over onto the opaque
// canvas flattens any source alpha; every pixel of the result is opaque.
//
// Stitching is deterministic: identical inputs produce byte-identical
// composites.
func Stitch(images []image.Image, opts StitchOptions) (*image.RGBA, error) {
	if len(images) == 0 {
		return nil, ErrEmptyImages
	}
	if opts.Spacing < 0 || opts.Spacing > MaxSpacing {
		return nil, fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidSpacing, opts.Spacing, MaxSpacing)
	}

	width := 0
	totalHeight := opts.Spacing * (len(images) - 1)
	for _, img := range images {
		b := img.Bounds()
		if b.Dx() > width {
			width = b.Dx()
		}
		totalHeight += b.Dy()
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, totalHeight))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opaque(opts.Background)), image.Point{}, draw.Src)

	y := 0
	for _, img := range images {
		b := img.Bounds()
		draw.Draw(canvas, image.Rect(0, y, b.Dx(), y+b.Dy()), img, b.Min, draw.Over)
		y += b.Dy() + opts.Spacing
	}

	return canvas, nil
}

// opaque forces the background to full opacity so a translucent fill can
// never leak alpha into the composite.
func opaque(bg color.Color) color.RGBA {
	if bg == nil {
		return DefaultBackground
	}
	r, g, b, _ := bg.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}
}
