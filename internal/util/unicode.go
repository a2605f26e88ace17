package util

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Annotation offsets and lengths are measured in UTF-16 code units,
// not Go string bytes or runes. Characters outside the BMP (codepoint > 0xFFFF)
// take 2 UTF-16 code units (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	count := 0
	for _, r := range text {
		if r > 0xFFFF {
			count += 2
		} else {
			count++
		}
	}
	return count
}

// SliceUTF16 returns the substring of s covering UTF-16 code units [start, end).
//
// Boundaries that fall inside a surrogate pair are moved forward to the next
// rune boundary; both ends use the same rule, so consecutive slices taken with
// a shared cursor never duplicate or drop text.
func SliceUTF16(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if start >= end {
		return ""
	}

	byteStart := -1
	byteEnd := len(s)
	cu := 0
	for i, r := range s {
		if byteStart == -1 && cu >= start {
			byteStart = i
		}
		if cu >= end {
			byteEnd = i
			break
		}
		if r > 0xFFFF {
			cu += 2
		} else {
			cu++
		}
	}
	if byteStart == -1 {
		byteStart = len(s)
	}
	return s[byteStart:byteEnd]
}
