// Package pdf2img converts PDF documents into a single vertically-stitched
// image, emulating a slideshow-style long screenshot.
//
// # Quick Start
//
// Create a converter and convert a local PDF:
//
//	conv := pdf2img.NewConverter()
//
//	result, err := conv.Convert(ctx, pdf2img.Input{
//	    PDFPath: "report.pdf",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath)
//
// The result carries the output path, the PNG file size, and the composite
// dimensions. When no output path is given, the image lands beside the input
// as <stem>_stitched.png.
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Page rasterization via MuPDF (go-fitz) at the requested DPI
//  2. Vertical stitching onto an opaque canvas (Stitch)
//  3. PNG encoding to the output path
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := pdf2img.NewConverter(
//	    pdf2img.WithTimeout(time.Minute),
//	    pdf2img.WithLogWriter(os.Stderr),
//	)
//
// Per-conversion options are passed via Input:
//
//	result, err := conv.Convert(ctx, pdf2img.Input{
//	    PDFPath:    "slides.pdf",
//	    OutputPath: "slides.png",
//	    DPI:        200,
//	    Spacing:    15,
//	    Background: color.White,
//	})
//
// # Remote and Batch Conversion
//
// ConvertFromURL downloads a PDF to a unique temporary file, converts it,
// and removes the temporary file on every exit path. ConvertDir converts
// every *.pdf in a directory sequentially; one file's failure is recorded
// in the batch result and never aborts the run.
package pdf2img
