package util

import "testing"

// TestUTF16Len 测试 UTF-16 code unit 计数
func TestUTF16Len(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"你好", 2},
		{"🎉", 2},
		{"A🎉B你好", 6},
	}
	for _, tt := range tests {
		if got := UTF16Len(tt.text); got != tt.want {
			t.Errorf("UTF16Len(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

// TestSliceUTF16 测试按 UTF-16 code unit 区间切片
func TestSliceUTF16(t *testing.T) {
	tests := []struct {
		name  string
		s     string
		start int
		end   int
		want  string
	}{
		{name: "ascii middle", s: "hi @bob bye", start: 3, end: 7, want: "@bob"},
		{name: "ascii prefix", s: "hi @bob bye", start: 0, end: 3, want: "hi "},
		{name: "ascii suffix", s: "hi @bob bye", start: 7, end: 11, want: " bye"},
		{name: "empty range", s: "hello", start: 2, end: 2, want: ""},
		{name: "inverted range", s: "hello", start: 4, end: 2, want: ""},
		{name: "whole string", s: "hello", start: 0, end: 5, want: "hello"},
		{name: "past end clamps", s: "hello", start: 3, end: 99, want: "lo"},
		{name: "negative start clamps", s: "hello", start: -2, end: 2, want: "he"},
		{name: "after surrogate pair", s: "🎉 x", start: 2, end: 4, want: " x"},
		{name: "surrogate pair itself", s: "🎉 x", start: 0, end: 2, want: "🎉"},
		{name: "cjk", s: "你好世界", start: 1, end: 3, want: "好世"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SliceUTF16(tt.s, tt.start, tt.end); got != tt.want {
				t.Errorf("SliceUTF16(%q, %d, %d) = %q, want %q", tt.s, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

// TestSliceUTF16_ConsecutiveCursor 测试共享游标的连续切片覆盖全文且不重复
func TestSliceUTF16_ConsecutiveCursor(t *testing.T) {
	s := "a🎉b你c"
	total := UTF16Len(s)
	cuts := []int{0, 1, 3, 4, 5, total}
	rebuilt := ""
	for i := 0; i+1 < len(cuts); i++ {
		rebuilt += SliceUTF16(s, cuts[i], cuts[i+1])
	}
	if rebuilt != s {
		t.Errorf("consecutive slices rebuilt %q, want %q", rebuilt, s)
	}
}
