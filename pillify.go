// Package pillify 将编辑器 buffer 上的富文本标注（"pills"）收敛并序列化为
// 可传输的 markup 字符串
//
// 聊天输入框里的自动补全、粘贴和手工编辑会在文本上留下引用标注：
// 用户提及、房间提及、全员广播标记、自定义行内图片（emote）。
// 这些标注可能互相重叠或嵌套，发送前必须确定性地收敛为不重叠的集合，
// 再拼接出 HTML 或 Markdown 消息体。
//
// 核心功能：
//   - 重叠收敛：排序 + 包含/较长者胜出裁剪
//   - markup 渲染：字面文本与 pill 片段交替拼接
//   - 格式化分类：buffer 是否必须以富文本发送
//   - sticker 分类：buffer 是否恰好是一个整块 emote
//
// 主要 API：
//   - Compose(): 完整管道，返回 Plain / Formatted / Sticker 消息内容
//   - Render(): 底层转换，返回 (markup, 是否需要转换)
//   - NeedsFormatting() / StickerEmote(): 两个分类器
//
// 示例：
//
//	buf := pillify.Buffer{
//	    Text: "hi @bob:example.org bye",
//	    Annotations: []pillify.Annotation{
//	        {Kind: pillify.KindUserMention, Start: 3, End: 19, ID: "@bob:example.org"},
//	    },
//	}
//	content, err := pillify.Compose(ctx, buf)
//	switch c := content.(type) {
//	case *pillify.Plain:
//	    // 发送纯文本消息
//	case *pillify.Formatted:
//	    // 发送富文本消息（c.Body + c.FormattedBody）
//	case *pillify.Sticker:
//	    // 按 sticker 消息发送
//	}
package pillify

import (
	"context"
)

// Compose 将 buffer 与其 pill annotations 转换为可发送的消息内容
//
// 这是主要的顶层 API。对于较低级别的纯 markup 转换，使用 Render()。
//
// 参数：
//   - ctx: 上下文
//   - buf: 文本 + annotation 列表的不可变快照
//   - opts: 可选配置（flavor、强制格式化、自定义模板）
//
// 返回：
//   - Content: Plain、Formatted 或 Sticker 之一
//   - error: annotation 越界或 markup 渲染失败
func Compose(ctx context.Context, buf Buffer, opts ...Option) (Content, error) {
	return ComposeMessage(ctx, buf, applyOptions(opts...))
}
