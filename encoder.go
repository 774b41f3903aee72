package pdf2img

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Encoder persists a composite image to disk.
type Encoder interface {
	Encode(img image.Image, path string) error
}

// PNGEncoder writes PNG files with the default compression level.
type PNGEncoder struct{}

// Encode writes img to path, creating or truncating the file.
func (PNGEncoder) Encode(img image.Image, path string) error {
	f, err := os.Create(path) // #nosec G304 -- output path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}
