package pillify

import (
	"fmt"

	"github.com/riverfjs/pillify-go/internal/buffer"
	"github.com/riverfjs/pillify-go/internal/util"
)

// Render 将 buffer 与其 pill annotations 序列化为目标 markup 字符串
//
// 返回值：
//   - string: 渲染结果
//   - bool: 是否发生了转换。false 表示 buffer 没有任何需要替换的
//     annotation（"无需转换"，与 "输出为空串" 是不同的信号）
//   - error: annotation 越界时返回 ErrAnnotationBounds
//
// 渲染过程：游标从 0 开始，对每个已收敛的 annotation 依次输出
// [cursor, Start) 的字面文本、该 annotation 的片段，然后 cursor = End；
// 循环结束后补上 [cursor, len) 的尾部字面文本。
func Render(buf Buffer, flavor Flavor, config *RenderConfig) (string, bool, error) {
	if config == nil {
		config = DefaultConfig()
	}

	pills, err := pillAnnotations(buf)
	if err != nil {
		return "", false, err
	}
	if len(pills) == 0 {
		// 无需转换
		return "", false, nil
	}

	resolved := ResolveOverlaps(pills)
	tmpl := config.Template(flavor)

	out := buffer.New()
	cursor := 0
	for _, a := range resolved {
		if a.Start > cursor {
			out.Write(util.SliceUTF16(buf.Text, cursor, a.Start))
			cursor = a.Start
		}
		if a.Start == a.End {
			// 零长度 annotation 不产生渲染范围
			continue
		}
		out.Write(renderFragment(a, tmpl, config))
		if a.End > cursor {
			cursor = a.End
		}
	}
	out.Write(util.SliceUTF16(buf.Text, cursor, util.UTF16Len(buf.Text)))

	return out.String(), true, nil
}

// renderFragment 渲染单个 annotation 的替换片段
func renderFragment(a Annotation, tmpl string, config *RenderConfig) string {
	switch a.Kind {
	case KindEmote:
		return emoteFragment(a.Emote, config)
	case KindUserMention, KindRoomMention:
		// 两个占位符都填引用标识符：显示文本 == 链接目标
		return fmt.Sprintf(tmpl, a.ID, a.ID)
	case KindEveryoneMention:
		// Filtered out before resolution; never reaches the renderer.
		return ""
	default:
		return ""
	}
}

// emoteFragment 渲染 emote 的行内图片片段
//
// 无论目标 flavor 是什么都输出 HTML <img>：Markdown 的原生图片语法
// 无法携带 data-emote-id 元数据属性，所以即使整体输出是 Markdown，
// 这段 HTML 也原样嵌入。显示名称同时作为 alt 与 title。
func emoteFragment(e *Emote, config *RenderConfig) string {
	if e == nil {
		return ""
	}
	if config.EmoteHeight > 0 {
		return fmt.Sprintf(`<img data-emote-id=%q src=%q alt=%q title=%q height="%d">`,
			e.ID, e.ImageURL, e.Name, e.Name, config.EmoteHeight)
	}
	return fmt.Sprintf(`<img data-emote-id=%q src=%q alt=%q title=%q>`,
		e.ID, e.ImageURL, e.Name, e.Name)
}
