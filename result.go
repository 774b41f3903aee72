package pdf2img

import "fmt"

// ConvertResult reports the outcome of a single conversion.
// Rendered as the tool's JSON output surface.
type ConvertResult struct {
	Success     bool    `json:"success"`
	OutputPath  string  `json:"output_path,omitempty"`
	FileSizeMB  float64 `json:"file_size_mb,omitempty"`
	FileSizeStr string  `json:"file_size_str,omitempty"`
	Pages       int     `json:"pages,omitempty"`
	Width       int     `json:"width,omitempty"`
	Height      int     `json:"height,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// BatchEntry pairs a file name with its conversion outcome.
type BatchEntry struct {
	File   string         `json:"file"`
	Result *ConvertResult `json:"result"`
}

// BatchResult aggregates a directory conversion.
type BatchResult struct {
	Success      bool         `json:"success"`
	Total        int          `json:"total"`
	SuccessCount int          `json:"success_count"`
	FailCount    int          `json:"fail_count"`
	Results      []BatchEntry `json:"results"`
}

// FailureResult converts an error into a result value for JSON rendering.
func FailureResult(err error) *ConvertResult {
	return &ConvertResult{Error: err.Error()}
}

// formatFileSize renders a byte count the way the tool reports it:
// two-decimal megabytes at or above 1 MB, whole kilobytes below.
func formatFileSize(bytes int64) (mb float64, human string) {
	mb = float64(bytes) / (1024 * 1024)
	if mb >= 1 {
		return mb, fmt.Sprintf("%.2f MB", mb)
	}
	return mb, fmt.Sprintf("%.0f KB", mb*1024)
}
