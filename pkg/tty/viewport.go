package tty

import (
	"image/color"
	"math"
)

// Viewport 将 800×600 逻辑坐标缩放到终端字符格
//
// 字符格大约是 1:2 的竖长方形，整屏拉伸填满终端，
// 与窗口前端相比横纵比例会有偏差，但投影公式完全一致。
type Viewport struct {
	Cols, Rows    int
	Width, Height float64 // 逻辑尺寸

	// 震屏偏移（逻辑像素）
	OffsetX, OffsetY float64
}

// CellX 逻辑X -> 列
func (v Viewport) CellX(x float64) int {
	return int(math.Floor((x + v.OffsetX) * float64(v.Cols) / v.Width))
}

// CellY 逻辑Y -> 行
func (v Viewport) CellY(y float64) int {
	return int(math.Floor((y + v.OffsetY) * float64(v.Rows) / v.Height))
}

// RowCenterY 返回第 row 行中心对应的逻辑Y（不含震屏偏移）
func (v Viewport) RowCenterY(row int) float64 {
	return (float64(row)+0.5)*v.Height/float64(v.Rows) - v.OffsetY
}

// CellRect 将逻辑矩形映射为字符格范围 [x0, x1) × [y0, y1)
// 非空矩形至少占一个字符格
func (v Viewport) CellRect(x, y, w, h float64) (x0, y0, x1, y1 int) {
	x0, y0 = v.CellX(x), v.CellY(y)
	x1, y1 = v.CellX(x+w), v.CellY(y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// FillRect 以逻辑坐标填充
func (v Viewport) FillRect(c *Canvas, x, y, w, h float64, r rune, fg, bg color.RGBA) {
	x0, y0, x1, y1 := v.CellRect(x, y, w, h)
	c.Fill(x0, y0, x1, y1, r, fg, bg)
}

// Line 以逻辑坐标画线段（按较长轴逐格采样）
func (v Viewport) Line(c *Canvas, x0, y0, x1, y1 float64, r rune, fg color.RGBA) {
	cx0, cy0 := v.CellX(x0), v.CellY(y0)
	cx1, cy1 := v.CellX(x1), v.CellY(y1)
	steps := max(abs(cx1-cx0), abs(cy1-cy0), 1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.SetFG(cx0+int(math.Round(float64(cx1-cx0)*t)), cy0+int(math.Round(float64(cy1-cy0)*t)), r, fg)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
