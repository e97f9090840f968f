package blueprint

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown 与 sanitizePolicy 均为并发安全的只读实例，进程内共享。
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

var sanitizePolicy = bluemonday.UGCPolicy()

// renderMarkdown 把蓝图描述渲染为 HTML 并做 XSS 清洗。
// 渲染结果在写入时落库，列表与详情直接读冗余列，不做按次渲染。
func renderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("渲染描述失败: %w", err)
	}
	return sanitizePolicy.Sanitize(buf.String()), nil
}
