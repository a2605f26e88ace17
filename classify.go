package pillify

import "github.com/riverfjs/pillify-go/internal/util"

// NeedsFormatting 判断 buffer 是否包含无法以纯文本表示的 annotation
//
// Emote 引用必须用 markup 内嵌的 <img> 才能表达，只要存在一个 emote
// annotation，调用方就必须以富文本消息体发送，即使没有其他富内容。
func NeedsFormatting(buf Buffer) bool {
	emotes, err := extractAnnotations(buf, func(a Annotation) bool {
		return a.Kind == KindEmote
	})
	if err != nil {
		// 越界的 annotation 无法分类；主转换路径会把错误报出来
		return false
	}
	return len(emotes) > 0
}

// StickerEmote 判断 buffer 是否恰好是一个可按 sticker 发送的 emote
//
// 条件（全部满足才返回 emote）：
//   - buffer 上恰好存在一个 emote annotation；
//   - 该 annotation 覆盖整个非空 buffer（[0, UTF16Len(text))，别无其他内容）；
//   - emote 的用途标签为空（不限用途）或显式包含 sticker 标签。
//
// config 为 nil 时使用默认配置。
func StickerEmote(buf Buffer, config *RenderConfig) (*Emote, bool) {
	if config == nil {
		config = DefaultConfig()
	}

	emotes, err := extractAnnotations(buf, func(a Annotation) bool {
		return a.Kind == KindEmote
	})
	if err != nil || len(emotes) != 1 {
		return nil, false
	}

	a := emotes[0]
	if a.Emote == nil {
		return nil, false
	}
	length := util.UTF16Len(buf.Text)
	if length == 0 {
		// 空 buffer 不是可发送的消息
		return nil, false
	}
	if a.Start != 0 || a.End != length {
		return nil, false
	}
	if !a.Emote.StickerEligible(config.StickerUsage) {
		return nil, false
	}
	return a.Emote, true
}
