package types

// ReferenceKind 标识 pill annotation 引用的实体类别
type ReferenceKind int

const (
	// KindUserMention 用户提及
	KindUserMention ReferenceKind = iota
	// KindRoomMention 房间提及
	KindRoomMention
	// KindEveryoneMention 全员广播提及（渲染时保留原文，不替换为链接）
	KindEveryoneMention
	// KindEmote 自定义行内图片（emote）
	KindEmote
)

// String 返回 ReferenceKind 的字符串表示
func (k ReferenceKind) String() string {
	switch k {
	case KindUserMention:
		return "user_mention"
	case KindRoomMention:
		return "room_mention"
	case KindEveryoneMention:
		return "everyone_mention"
	case KindEmote:
		return "emote"
	default:
		return "unknown"
	}
}

// Emote 表示一个自定义行内图片引用
type Emote struct {
	ID       string   // 稳定标识符
	Name     string   // 显示名称（用作 alt 与 title）
	ImageURL string   // 图片地址
	Usage    []string // 用途标签；为空表示不限用途
	// ImageData 可选的图片原始字节，由调用方提供，仅用于 sticker 元数据探测。
	// 本库不做任何网络请求。
	ImageData []byte
}

// StickerEligible reports whether the emote may be sent as a sticker.
// An empty usage set means unrestricted.
func (e *Emote) StickerEligible(usageTag string) bool {
	if len(e.Usage) == 0 {
		return true
	}
	for _, u := range e.Usage {
		if u == usageTag {
			return true
		}
	}
	return false
}

// Annotation 表示 buffer 上的一个 pill 标注
//
// Start/End 以 UTF-16 code units 计（与 buffer 文本的索引单位一致），
// 区间为 [Start, End)。不变式：0 ≤ Start ≤ End ≤ UTF16Len(text)。
// Start == End 的零长度标注是合法输入，但不产生渲染范围。
type Annotation struct {
	Kind  ReferenceKind
	Start int
	End   int
	// ID 被引用实体的标识符（用户 ID、房间 ID/别名）。
	// 对 KindEmote 无意义，emote 信息在 Emote 字段中。
	ID    string
	Emote *Emote
}

// Length returns the annotation span length in UTF-16 code units.
func (a Annotation) Length() int {
	return a.End - a.Start
}

// Buffer 是编辑器缓冲区的不可变快照：纯文本 + 显式的 annotation 列表
//
// 本库从不修改 Buffer；所有操作都是纯函数。
type Buffer struct {
	Text        string
	Annotations []Annotation
}

// Flavor 输出 markup 的风格
type Flavor int

const (
	// FlavorHTML HTML 输出
	FlavorHTML Flavor = iota
	// FlavorMarkdown Markdown 输出
	FlavorMarkdown
)

// String 返回 Flavor 的字符串表示
func (f Flavor) String() string {
	switch f {
	case FlavorHTML:
		return "html"
	case FlavorMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// RenderConfig 渲染配置
//
// Mention 模板由外部提供，含两个位置占位符，渲染时都以引用标识符填充
// （markup 以此表达 "显示文本 == 链接目标"）。本库不对模板做任何转义。
type RenderConfig struct {
	HTMLTemplate     string // HTML flavor 的 mention 模板
	MarkdownTemplate string // Markdown flavor 的 mention 模板
	StickerUsage     string // sticker 用途标签
	EmoteHeight      int    // emote <img> 的 height 属性；0 表示省略
}

// Template 返回指定 flavor 的 mention 模板
func (c *RenderConfig) Template(f Flavor) string {
	if f == FlavorMarkdown {
		return c.MarkdownTemplate
	}
	return c.HTMLTemplate
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		HTMLTemplate:     `<a href="https://matrix.to/#/%s">%s</a>`,
		MarkdownTemplate: `[%s](https://matrix.to/#/%s)`,
		StickerUsage:     "sticker",
		EmoteHeight:      32,
	}
}
