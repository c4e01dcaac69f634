package utils

import (
	"reflect"
	"testing"
)

func TestFormatSpeed(t *testing.T) {
	tests := []struct {
		speed float64
		want  string
	}{
		{0, "000.0"},
		{8.04, "008.0"},
		{88, "088.0"},
		{94.96, "095.0"},
		{250, "188.0"},
	}

	for _, tt := range tests {
		if got := FormatSpeed(tt.speed); got != tt.want {
			t.Errorf("FormatSpeed(%v) = %q, want %q", tt.speed, got, tt.want)
		}
	}
}

// TestWrapText 测试按单词换行
func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"空字符串", "", 10, nil},
		{"单行", "Great Scott!", 20, []string{"Great Scott!"}},
		{"按单词换行", "This is heavy! The radio is broken!", 15,
			[]string{"This is heavy!", "The radio is", "broken!"}},
		{"超长单词独占一行", "1.21 gigawatts!!!!!!!!!!", 8,
			[]string{"1.21", "gigawatts!!!!!!!!!!"}},
		{"折叠多余空白", "  Marty   McFly  ", 40, []string{"Marty McFly"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapText(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestClipLines(t *testing.T) {
	lines := []string{"a", "b", "c"}

	if got := ClipLines(lines, 3); !reflect.DeepEqual(got, lines) {
		t.Errorf("ClipLines(3) = %q, want unchanged", got)
	}

	got := ClipLines(lines, 2)
	want := []string{"a", "b..."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ClipLines(2) = %q, want %q", got, want)
	}
	if lines[1] != "b" {
		t.Errorf("ClipLines modified its input: %q", lines)
	}
}
