package buffer

// utf16Len returns the length of text measured in UTF-16 code units.
func utf16Len(text string) int {
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

// TextBuffer accumulates rendered output and tracks the current UTF-16 offset.
type TextBuffer struct {
	parts       []string
	utf16Offset int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts:       make([]string, 0),
		utf16Offset: 0,
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.utf16Offset += utf16Len(text)
}

// UTF16Offset returns the current UTF-16 offset.
func (tb *TextBuffer) UTF16Offset() int {
	return tb.utf16Offset
}

// Fragments returns the number of parts written so far.
func (tb *TextBuffer) Fragments() int {
	return len(tb.parts)
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	// Calculate total length
	totalLen := 0
	for _, p := range tb.parts {
		totalLen += len(p)
	}
	// Build result efficiently
	result := make([]byte, 0, totalLen)
	for _, p := range tb.parts {
		result = append(result, []byte(p)...)
	}
	return string(result)
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
	tb.utf16Offset = 0
}
