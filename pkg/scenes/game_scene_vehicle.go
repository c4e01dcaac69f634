package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DeLorean 像素画，每个格子 4 像素，车身 13×24 格（52×96）
const pixelSize = 4

// cell 以格为单位填充矩形
func cell(dst *ebiten.Image, ox, oy float64, cx, cy, cw, ch int, clr color.Color) {
	fillRect(dst, ox+float64(cx*pixelSize), oy+float64(cy*pixelSize), float64(cw*pixelSize), float64(ch*pixelSize), clr)
}

// drawVehicle 绘制俯视的 DeLorean（车头朝上）
func (s *GameScene) drawVehicle(dst *ebiten.Image) {
	ox, oy := s.vehicleOrigin()

	// 阴影
	fillRect(dst, ox+4, oy+4, s.tuning.Layout.CarWidth, s.tuning.Layout.CarHeight, colorShadow)

	// 前保险杠与转向灯
	cell(dst, ox, oy, 1, 0, 11, 1, colorBumper)
	cell(dst, ox, oy, 1, 0, 2, 1, colorLightsOrange)
	cell(dst, ox, oy, 10, 0, 2, 1, colorLightsOrange)

	// 引擎盖
	cell(dst, ox, oy, 0, 1, 13, 5, colorCarBody)
	cell(dst, ox, oy, 2, 1, 2, 4, colorCarHighlight)
	cell(dst, ox, oy, 6, 2, 1, 3, colorCarHighlight)

	// 后视镜
	cell(dst, ox, oy, -1, 6, 1, 1, colorCarDark)
	cell(dst, ox, oy, 13, 6, 1, 1, colorCarDark)

	// 挡风玻璃
	cell(dst, ox, oy, 0, 6, 13, 3, colorCarBody)
	cell(dst, ox, oy, 1, 6, 11, 3, colorGlass)

	// 车顶与鸥翼门缝
	cell(dst, ox, oy, 0, 9, 13, 6, colorCarBody)
	cell(dst, ox, oy, 2, 10, 9, 4, colorCarHighlight)
	cell(dst, ox, oy, 1, 9, 1, 6, colorCarDark)
	cell(dst, ox, oy, 11, 9, 1, 6, colorCarDark)

	// 后盖与散热百叶
	cell(dst, ox, oy, 0, 15, 13, 7, colorCarBody)
	for row := 16; row <= 20; row += 2 {
		cell(dst, ox, oy, 1, row, 6, 1, colorCarDark)
	}

	// Mr. Fusion
	cell(dst, ox, oy, 8, 17, 3, 3, colorPaper)
	cell(dst, ox, oy, 9, 18, 1, 1, colorCarDark)

	// 后保险杠与尾灯
	cell(dst, ox, oy, 0, 22, 13, 2, colorBumper)
	cell(dst, ox, oy, 1, 22, 3, 1, colorLightsRed)
	cell(dst, ox, oy, 9, 22, 3, 1, colorLightsRed)

	// 挂钩（伸出车尾，末端对准 hookY）
	cell(dst, ox, oy, 10, 22, 1, 8, colorHook)
	cell(dst, ox, oy, 9, 29, 3, 1, colorHook)

	// 通量条纹
	for _, y := range s.fluxBands {
		fillRect(dst, ox, oy+y, s.tuning.Layout.CarWidth, 2, colorFluxBand)
	}
}
