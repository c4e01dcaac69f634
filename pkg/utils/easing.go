// Package utils 两个前端共用的小工具：缓动、插值与 HUD 文本格式化
package utils

import "math"

// EaseOutQuad 二次方缓出
// 输入进度 t ∈ [0, 1]（超出范围会被截断），开始较快，结束慢
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - (1-t)*(1-t)
}

// Lerp 线性插值
// 公式：a + (b - a) * t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
