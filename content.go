package pillify

import "github.com/riverfjs/pillify-go/internal/imageinfo"

// ImageInfo 导出类型别名
type ImageInfo = imageinfo.Info

// ContentType represents the type of content.
type ContentType int

const (
	// ContentTypePlain represents a plain text message.
	ContentTypePlain ContentType = iota
	// ContentTypeFormatted represents a rich text message with a markup body.
	ContentTypeFormatted
	// ContentTypeSticker represents a sticker message.
	ContentTypeSticker
)

// String returns the string representation of ContentType.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypePlain:
		return "plain"
	case ContentTypeFormatted:
		return "formatted"
	case ContentTypeSticker:
		return "sticker"
	default:
		return "unknown"
	}
}

// ContentTrace tracks the source and metadata of content.
type ContentTrace struct {
	SourceType string
	Extra      map[string]interface{}
}

// Content represents a piece of message content ready to be sent.
type Content interface {
	GetContentType() ContentType
	GetContentTrace() ContentTrace
}

// Plain represents a plain text message: the raw buffer text, untransformed.
type Plain struct {
	Text         string
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypePlain.
func (p *Plain) GetContentType() ContentType {
	return ContentTypePlain
}

// GetContentTrace returns the content trace.
func (p *Plain) GetContentTrace() ContentTrace {
	return p.ContentTrace
}

// Formatted represents a rich text message.
//
// Body is the readable fallback body; FormattedBody is the markup body in
// the format named by Format (currently always "html").
type Formatted struct {
	Body          string
	FormattedBody string
	Format        string
	ContentTrace  ContentTrace
}

// GetContentType returns ContentTypeFormatted.
func (f *Formatted) GetContentType() ContentType {
	return ContentTypeFormatted
}

// GetContentTrace returns the content trace.
func (f *Formatted) GetContentTrace() ContentTrace {
	return f.ContentTrace
}

// Sticker represents a message that is exactly one whole-buffer emote.
type Sticker struct {
	Emote        *Emote
	Body         string     // 可读回退文本（emote 的显示名称）
	Info         *ImageInfo // 图片元数据；调用方未提供图片字节时为 nil
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeSticker.
func (s *Sticker) GetContentType() ContentType {
	return ContentTypeSticker
}

// GetContentTrace returns the content trace.
func (s *Sticker) GetContentTrace() ContentTrace {
	return s.ContentTrace
}
