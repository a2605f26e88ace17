package imageinfo

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// Info 描述 emote/sticker 图片的基础元数据
type Info struct {
	MimeType string // e.g. "image/webp"
	Width    int
	Height   int
	Size     int // 字节数
}

// Probe 从调用方提供的图片字节中解析尺寸与 mime 类型
//
// 支持 PNG/JPEG/GIF（标准库）与 WEBP（x/image）。只解码图片头，
// 不做完整解码，也不做任何网络请求。
func Probe(data []byte) (*Info, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("imageinfo: empty image data")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imageinfo: decode config: %w", err)
	}
	return &Info{
		MimeType: "image/" + format,
		Width:    cfg.Width,
		Height:   cfg.Height,
		Size:     len(data),
	}, nil
}
