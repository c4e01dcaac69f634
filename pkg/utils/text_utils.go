package utils

import (
	"fmt"
	"math"
	"strings"
)

// SpeedDisplayCap 速度表的最大显示值
const SpeedDisplayCap = 188

// FormatSpeed 速度表读数，形如 "088.0"（超过 188 按 188 显示）
func FormatSpeed(speed float64) string {
	return fmt.Sprintf("%05.1f", math.Min(speed, SpeedDisplayCap))
}

// WrapText 将文本按单词换行
// 参数:
//   - textStr: 要换行的文本（连续空白会被折叠）
//   - width: 每行最多字符数
//
// 返回:
//   - []string: 换行后的文本，空文本返回 nil
//
// 单个单词超过 width 时独占一行，不在单词内部断开。
func WrapText(textStr string, width int) []string {
	words := strings.Fields(textStr)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

// ClipLines 截断到最多 max 行，被截断时最后一行以 "..." 结尾
func ClipLines(lines []string, max int) []string {
	if len(lines) <= max {
		return lines
	}
	clipped := append([]string(nil), lines[:max]...)
	clipped[max-1] += "..."
	return clipped
}
