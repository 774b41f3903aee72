package pdf2img

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyImages = errors.New("empty image sequence")
	ErrRasterize   = errors.New("PDF rasterization failed")
	ErrEncode      = errors.New("image encoding failed")
	ErrDownload    = errors.New("PDF download failed")
	ErrHTTPStatus  = errors.New("unexpected HTTP status")

	// Input validation errors.
	ErrInvalidDPI        = errors.New("invalid DPI")
	ErrInvalidSpacing    = errors.New("invalid spacing")
	ErrInvalidBackground = errors.New("invalid background color")

	// Lookup failures. The tool's user-facing surface is Chinese; these
	// strings appear verbatim in the JSON error field.
	ErrInputNotFound = errors.New("PDF 文件不存在")
	ErrDirNotFound   = errors.New("目录不存在")
	ErrNoPDFFiles    = errors.New("目录中没有找到 PDF 文件")
)
