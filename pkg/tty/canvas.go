// Package tty 终端前端（tcell 屏幕 + beep 合成主题曲）
//
// 与窗口前端共用同一个 game.World：同样的调参、同样的状态机、同样的碰撞投影。
// 渲染先写入内存中的 Canvas，每帧整体刷新到 tcell.Screen。
package tty

import (
	"image/color"
	"strings"

	"github.com/decker502/timetrain/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// Cell 终端的一个字符格
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// Canvas 字符格缓冲区
type Canvas struct {
	w, h  int
	cells []Cell
}

// NewCanvas 创建 w×h 的画布
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Size 返回列数与行数
func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

// Resize 调整尺寸并清空内容
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	c.w, c.h = w, h
	c.cells = make([]Cell, w*h)
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// Clear 用背景色填满空格
func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.cells {
		c.cells[i] = Cell{Rune: ' ', FG: bg, BG: bg}
	}
}

// Set 写入一个字符格，越界时忽略
func (c *Canvas) Set(x, y int, r rune, fg, bg color.RGBA) {
	if !c.inside(x, y) {
		return
	}
	c.cells[y*c.w+x] = Cell{Rune: r, FG: fg, BG: bg}
}

// SetFG 只写字符与前景色，保留原背景
func (c *Canvas) SetFG(x, y int, r rune, fg color.RGBA) {
	if !c.inside(x, y) {
		return
	}
	cell := &c.cells[y*c.w+x]
	cell.Rune = r
	cell.FG = fg
}

// At 读取一个字符格，越界时返回零值
func (c *Canvas) At(x, y int) Cell {
	if !c.inside(x, y) {
		return Cell{}
	}
	return c.cells[y*c.w+x]
}

// Fill 填充 [x0, x1) × [y0, y1)
func (c *Canvas) Fill(x0, y0, x1, y1 int, r rune, fg, bg color.RGBA) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, c.w), min(y1, c.h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.cells[y*c.w+x] = Cell{Rune: r, FG: fg, BG: bg}
		}
	}
}

// Text 从 (x, y) 开始写一行文字，保留背景色
func (c *Canvas) Text(x, y int, s string, fg color.RGBA) {
	for _, r := range s {
		c.SetFG(x, y, r, fg)
		x++
	}
}

// TextCentered 在第 y 行居中写文字
func (c *Canvas) TextCentered(y int, s string, fg color.RGBA) {
	c.Text((c.w-len([]rune(s)))/2, y, s, fg)
}

// Blend 把所有颜色向 target 混合 t（0..1），用于穿越闪光
func (c *Canvas) Blend(target color.RGBA, t float64) {
	if t <= 0 {
		return
	}
	for i := range c.cells {
		c.cells[i].FG = lerpColor(c.cells[i].FG, target, t)
		c.cells[i].BG = lerpColor(c.cells[i].BG, target, t)
	}
}

// Row 返回第 y 行的字符（测试与调试用）
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.h {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < c.w; x++ {
		sb.WriteRune(c.cells[y*c.w+x].Rune)
	}
	return sb.String()
}

// Flush 将画布写入屏幕并显示
func (c *Canvas) Flush(screen tcell.Screen) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cell := c.cells[y*c.w+x]
			style := tcell.StyleDefault.Foreground(toTcell(cell.FG)).Background(toTcell(cell.BG))
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
	screen.Show()
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(utils.Lerp(float64(x), float64(y), t) + 0.5)
	}
	return color.RGBA{ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B), 0xff}
}
