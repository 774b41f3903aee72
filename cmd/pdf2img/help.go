package main

import (
	"fmt"
	"io"
)

// printUsage prints the CLI usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pdf2img [flags] [pdf_file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a PDF into a single vertically-stitched image.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  pdf_file                  Local PDF file to convert")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Conversion:")
	fmt.Fprintln(w, "  -o, --output <path>       Output image path (default: <input>_stitched.png)")
	fmt.Fprintln(w, "  -d, --dpi <n>             Rasterization DPI (default: 150)")
	fmt.Fprintln(w, "  -s, --spacing <n>         Pixel gap between pages (default: 10)")
	fmt.Fprintln(w, "      --background <hex>    Background fill color (default: #ffffff)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Remote:")
	fmt.Fprintln(w, "  -u, --url <url>           Download the PDF before converting")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Download timeout (default: 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Batch:")
	fmt.Fprintln(w, "  -b, --batch               Convert every *.pdf in a directory")
	fmt.Fprintln(w, "      --pdf-dir <dir>       PDF directory (required with --batch)")
	fmt.Fprintln(w, "      --output-dir <dir>    Output directory (default: <pdf-dir>/converted)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show progress output")
	fmt.Fprintln(w, "      --skill-info          Print tool capability metadata as JSON")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  pdf2img document.pdf")
	fmt.Fprintln(w, "  pdf2img document.pdf -o long.png -d 200 -s 15")
	fmt.Fprintln(w, "  pdf2img -u https://example.com/document.pdf")
	fmt.Fprintln(w, "  pdf2img -b --pdf-dir ./pdfs --output-dir ./output")
}
