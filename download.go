package pdf2img

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"

	"github.com/alnah/go-pdf2img/internal/fileutil"
)

// ConvertFromURL downloads a PDF and converts the local copy.
// The download lands in a unique per-invocation temporary file that is
// removed on every exit path, success or failure.
func (c *Converter) ConvertFromURL(ctx context.Context, pdfURL string, in Input) (*ConvertResult, error) {
	fmt.Fprintf(c.cfg.logW, "downloading %s\n", pdfURL)
	tmpPath, cleanup, err := c.download(ctx, pdfURL)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	in.PDFPath = tmpPath
	if in.OutputPath == "" {
		// Deriving the default name from the temp file would leak its
		// random suffix; use the URL's base name instead.
		in.OutputPath = outputPathFromURL(pdfURL)
	}

	return c.Convert(ctx, in)
}

// download streams the URL into a unique temp file.
// Returns the file path and a cleanup function that removes it.
func (c *Converter) download(ctx context.Context, pdfURL string) (tmpPath string, cleanup func(), err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pdfURL, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", nil, fmt.Errorf("%w: %s", ErrHTTPStatus, resp.Status)
	}

	tmp, err := os.CreateTemp("", "pdf2img-*.pdf")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrDownload, err)
	}
	tmpPath = tmp.Name()
	cleanup = func() { _ = os.Remove(tmpPath) }

	if _, copyErr := io.Copy(tmp, resp.Body); copyErr != nil {
		_ = tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("%w: %v", ErrDownload, copyErr)
	}

	if closeErr := tmp.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: %v", ErrDownload, closeErr)
	}

	return tmpPath, cleanup, nil
}

// outputPathFromURL derives <stem>_stitched.png in the working directory
// from the URL's base name.
func outputPathFromURL(pdfURL string) string {
	stem := "download"
	if u, err := url.Parse(pdfURL); err == nil {
		if base := path.Base(u.Path); base != "" && base != "." && base != "/" {
			stem = fileutil.Stem(base)
		}
	}
	return stem + "_stitched.png"
}
