package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// StandardOptions goldmark 扩展配置（聊天消息风格）
//
// WithHardWraps: 聊天消息里的单个换行就是换行。
// WithUnsafe: pill 替换产生的 HTML 片段（emote <img>、mention <a>）
// 必须原样通过，不能被转义。
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM, // GitHub Flavored Markdown (tables, strikethrough, tasklists)
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
		html.WithUnsafe(),
	),
}

// ToHTML 将 Markdown 消息体渲染为 HTML
//
// 单段落的输出会去掉外层 <p> 包裹（聊天消息体不需要段落标签）。
func ToHTML(source string) (string, error) {
	md := goldmark.New(StandardOptions...)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return unwrapParagraph(strings.TrimSpace(buf.String())), nil
}

// unwrapParagraph 去掉单段落输出的外层 <p>...</p>
func unwrapParagraph(s string) string {
	if !strings.HasPrefix(s, "<p>") || !strings.HasSuffix(s, "</p>") {
		return s
	}
	inner := s[len("<p>") : len(s)-len("</p>")]
	if strings.Contains(inner, "<p>") {
		return s
	}
	return inner
}
