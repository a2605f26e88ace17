package pillify

import "slices"

// ResolveOverlaps 将一组 annotations 整理为按 Start 升序、两两不重叠的序列
//
// 自由编辑（输入、粘贴、自动补全）产生的 annotations 可能互相重叠或嵌套，
// 渲染前必须确定性地收敛为不重叠的集合。
//
// 规则：
//  1. 按 Start 稳定排序（相同 Start 之间保持输入顺序）。
//  2. 相邻对 (a, b) 若 b.Start 落在 [a.Start, a.End) 内：
//     b 被 a 完全包含则丢弃 b；否则较长者胜出，较短者被丢弃。
//     较长的 annotation 通常对应更完整的自动补全选择，按长度裁剪
//     与扫描顺序无关，结果只由内容决定。
//  3. 丢弃之后不跳过幸存者：它要与新邻居重新比较，移除可能暴露新的重叠。
//
// 等长部分重叠时两个 annotation 都保留（输出中允许这一处重叠）。
// 这是沿袭的历史行为，未必是有意设计，调用方依赖它之前请三思。
func ResolveOverlaps(annotations []Annotation) []Annotation {
	out := slices.Clone(annotations)
	if len(out) <= 1 {
		return out
	}

	slices.SortStableFunc(out, func(a, b Annotation) int {
		return a.Start - b.Start
	})

	i := 0
	for i < len(out)-1 {
		a, b := out[i], out[i+1]
		if b.Start >= a.End {
			// No overlap
			i++
			continue
		}
		switch {
		case b.End <= a.End:
			// b fully contained in a: drop b
			out = slices.Delete(out, i+1, i+2)
		case a.Length() > b.Length():
			// a strictly longer: drop b
			out = slices.Delete(out, i+1, i+2)
		case a.Length() < b.Length():
			// b strictly longer: drop a, then step back so the survivor
			// is re-tested against its new left neighbor
			out = slices.Delete(out, i, i+1)
			if i > 0 {
				i--
			}
		default:
			// Equal length, partial overlap, neither contains the other:
			// both retained even though they still overlap.
			i++
		}
	}
	return out
}
