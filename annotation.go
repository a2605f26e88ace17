package pillify

import (
	"errors"
	"fmt"

	"github.com/riverfjs/pillify-go/internal/types"
	"github.com/riverfjs/pillify-go/internal/util"
)

// 导出类型别名
type (
	Annotation    = types.Annotation
	Buffer        = types.Buffer
	Emote         = types.Emote
	ReferenceKind = types.ReferenceKind
	Flavor        = types.Flavor
)

// Reference kinds.
const (
	KindUserMention     = types.KindUserMention
	KindRoomMention     = types.KindRoomMention
	KindEveryoneMention = types.KindEveryoneMention
	KindEmote           = types.KindEmote
)

// Output flavors.
const (
	FlavorHTML     = types.FlavorHTML
	FlavorMarkdown = types.FlavorMarkdown
)

// ErrAnnotationBounds is returned when an annotation's [Start, End) range
// does not fit the buffer. Bounds violations are a contract breach by the
// annotation producer; they are rejected loudly instead of clamped, because
// clamping can silently duplicate or truncate literal text in the splice.
var ErrAnnotationBounds = errors.New("pillify: annotation out of buffer range")

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Annotation offsets are measured in UTF-16 code units, not Go string bytes
// or runes. Characters outside the BMP take 2 code units; all others take 1.
func UTF16Len(text string) int {
	return util.UTF16Len(text)
}

// validateBounds checks every annotation against 0 <= Start <= End <= UTF16Len(text).
func validateBounds(buf Buffer) error {
	limit := util.UTF16Len(buf.Text)
	for _, a := range buf.Annotations {
		if a.Start < 0 || a.End < a.Start || a.End > limit {
			return fmt.Errorf("%w: kind=%s start=%d end=%d buffer=%d",
				ErrAnnotationBounds, a.Kind, a.Start, a.End, limit)
		}
	}
	return nil
}

// extractAnnotations 按谓词提取 buffer 上的 annotations
//
// 主转换与两个分类器共用这一步，各自传入自己的谓词。
// 返回 nil 表示没有符合条件的 annotation。
func extractAnnotations(buf Buffer, keep func(Annotation) bool) ([]Annotation, error) {
	if err := validateBounds(buf); err != nil {
		return nil, err
	}
	var out []Annotation
	for _, a := range buf.Annotations {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// pillAnnotations returns the annotations to substitute during rendering.
//
// Everyone mentions are excluded here, before resolution: they are rendered
// as their raw surface text, never as a link, so they must not be treated as
// a pill at all. A nil result tells the caller to skip the transform.
func pillAnnotations(buf Buffer) ([]Annotation, error) {
	return extractAnnotations(buf, func(a Annotation) bool {
		switch a.Kind {
		case KindUserMention, KindRoomMention, KindEmote:
			return true
		case KindEveryoneMention:
			return false
		default:
			return false
		}
	})
}
