package pdf2img

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-pdf2img/internal/fileutil"
)

// dirPermissions is used for created output directories.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// ConvertDir converts every *.pdf in a directory, strictly one file at a
// time in listing order. A single file's failure is recorded in the result
// and counted; it never aborts the batch.
func (c *Converter) ConvertDir(ctx context.Context, in BatchInput) (*BatchResult, error) {
	info, err := os.Stat(in.PDFDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, in.PDFDir)
	}

	files, err := listPDFs(in.PDFDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoPDFFiles, in.PDFDir)
	}

	outputDir := in.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(in.PDFDir, "converted")
	}
	if err := os.MkdirAll(outputDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &BatchResult{Success: true, Total: len(files)}
	for i, file := range files {
		fmt.Fprintf(c.cfg.logW, "[%d/%d] %s\n", i+1, len(files), filepath.Base(file))

		res, err := c.Convert(ctx, Input{
			PDFPath:    file,
			OutputPath: filepath.Join(outputDir, fileutil.Stem(file)+"_stitched.png"),
			DPI:        in.DPI,
			Spacing:    in.Spacing,
			Background: in.Background,
		})
		if err != nil {
			res = FailureResult(err)
		}

		result.Results = append(result.Results, BatchEntry{File: filepath.Base(file), Result: res})
		if res.Success {
			result.SuccessCount++
		} else {
			result.FailCount++
		}
	}

	return result, nil
}

// listPDFs returns the *.pdf files directly under dir, case-insensitive,
// in the sorted order os.ReadDir guarantees. No recursion.
func listPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
