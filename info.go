package pdf2img

// Tool identity. The user-facing strings follow the tool's Chinese surface.
const (
	ToolName        = "PDF 转换为长图片"
	ToolVersion     = "1.0.0"
	ToolDescription = "将 PDF 文件转换并拼接为一张长图片，类似幻灯片效果"
)

// ToolInfo is the static capability document exposed by --skill-info.
type ToolInfo struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Author      string   `json:"author"`
	Icon        string   `json:"icon"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Language    string   `json:"language"`
	Framework   string   `json:"framework"`
	Features    []string `json:"features"`
}

// Info returns the tool's capability metadata.
func Info() ToolInfo {
	return ToolInfo{
		Name:        ToolName,
		Version:     ToolVersion,
		Description: ToolDescription,
		Author:      "go-pdf2img",
		Icon:        "📄",
		Category:    "工具",
		Tags:        []string{"PDF", "图片", "转换", "文档", "幻灯片"},
		Language:    "Go",
		Framework:   "go-fitz, image/png",
		Features: []string{
			"PDF 转换为图片",
			"图片纵向拼接",
			"自定义 DPI",
			"自定义图片间距",
			"批量转换",
			"URL 下载转换",
		},
	}
}
