package pdf2img

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Rasterizer turns a PDF file into one image per page, in page order.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath string, dpi int) ([]image.Image, error)
}

// FitzRasterizer renders pages through MuPDF (go-fitz).
type FitzRasterizer struct{}

// Rasterize opens the document and renders every page at the given DPI.
// The context is checked between pages so a long document can be canceled.
func (FitzRasterizer) Rasterize(ctx context.Context, pdfPath string, dpi int) ([]image.Image, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRasterize, err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	pages := make([]image.Image, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("%w: page %d: %v", ErrRasterize, i+1, err)
		}
		pages = append(pages, img)
	}

	return pages, nil
}
