package pillify

import (
	"context"

	"github.com/riverfjs/pillify-go/internal/imageinfo"
	"github.com/riverfjs/pillify-go/internal/markdown"
)

// ComposeMessage 完整管道：buffer → 可发送的消息内容
//
// 步骤：
//  1. sticker 分类：整个 buffer 恰好是一个 sticker 可用的 emote
//     → Sticker（调用方提供了图片字节时附带 ImageInfo）
//  2. pill 渲染：把已收敛的 annotations 替换进消息体
//     → Formatted（Markdown flavor 时经 goldmark 生成 HTML formatted body）
//  3. 没有 pill 且不强制格式化 → Plain（原文直发）
//
// 所有步骤都是纯计算，不做任何 I/O。
func ComposeMessage(ctx context.Context, buf Buffer, opts *ComposeOptions) (Content, error) {
	if opts == nil {
		opts = defaultComposeOptions()
	}
	config := opts.Config
	if config == nil {
		config = DefaultConfig()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateBounds(buf); err != nil {
		return nil, err
	}

	// Sticker 短路
	if emote, ok := StickerEmote(buf, config); ok {
		return composeSticker(emote), nil
	}

	body, transformed, err := Render(buf, opts.Flavor, config)
	if err != nil {
		return nil, err
	}

	if !transformed && !NeedsFormatting(buf) && !opts.ForceFormatted {
		return &Plain{
			Text: buf.Text,
			ContentTrace: ContentTrace{
				SourceType: "plain",
			},
		}, nil
	}
	if !transformed {
		body = buf.Text
	}

	if opts.Flavor == FlavorHTML {
		// HTML flavor 直接得到 formatted body；可读回退用原文
		return &Formatted{
			Body:          buf.Text,
			FormattedBody: body,
			Format:        "html",
			ContentTrace: ContentTrace{
				SourceType: "pills",
				Extra: map[string]interface{}{
					"flavor": FlavorHTML.String(),
				},
			},
		}, nil
	}

	htmlBody, err := markdown.ToHTML(body)
	if err != nil {
		return nil, err
	}
	return &Formatted{
		Body:          body,
		FormattedBody: htmlBody,
		Format:        "html",
		ContentTrace: ContentTrace{
			SourceType: "pills",
			Extra: map[string]interface{}{
				"flavor": FlavorMarkdown.String(),
			},
		},
	}, nil
}

// composeSticker 组装 sticker 消息内容
func composeSticker(emote *Emote) *Sticker {
	sticker := &Sticker{
		Emote: emote,
		Body:  emote.Name,
		ContentTrace: ContentTrace{
			SourceType: "sticker",
		},
	}
	if len(emote.ImageData) > 0 {
		info, err := imageinfo.Probe(emote.ImageData)
		if err != nil {
			// 图片字节不可解析不是致命错误，sticker 照发，只是没有元数据
			Logger.Printf("emote %s image probe failed: %v", emote.ID, err)
		} else {
			sticker.Info = info
		}
	}
	return sticker
}
