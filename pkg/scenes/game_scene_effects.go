package scenes

import (
	"image/color"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	boltGlowWidth = 7
	boltCoreWidth = 3
	arcSteps      = 6
)

// drawFire 绘制车尾火焰拖尾（外焰 + 内焰）
func (s *GameScene) drawFire(dst *ebiten.Image) {
	ox, oy := s.vehicleOrigin()
	for _, p := range s.effects.Particles() {
		if p.Kind != components.EffectFire {
			continue
		}
		x, y := ox+p.OffsetX, oy+p.OffsetY
		fillRect(dst, x, y, p.Width, p.Height, p.Color)
		fillRect(dst, x+p.Width/4, y, p.Width/2, p.Height*0.6, systems.FireMidColor)
	}
}

// drawSparks 绘制车轮火花
func (s *GameScene) drawSparks(dst *ebiten.Image) {
	ox, oy := s.vehicleOrigin()
	for _, p := range s.effects.Particles() {
		if p.Kind != components.EffectSpark {
			continue
		}
		fillRect(dst, ox+p.OffsetX, oy+p.OffsetY, p.Width, p.Height, p.Color)
	}
}

func strokePolyline(dst *ebiten.Image, pts []systems.Point, width float64, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		strokeLine(dst, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, clr)
	}
}

// drawLightning 绘制闪电与车身周围的等离子电弧
func (s *GameScene) drawLightning(dst *ebiten.Image) {
	for _, bolt := range s.bolts {
		strokePolyline(dst, bolt, boltGlowWidth, colorBoltGlow)
		strokePolyline(dst, bolt, boltCoreWidth, colorBoltCore)
	}
	for _, arc := range s.arcs {
		pts := arc.ArcPoints(arcSteps)
		strokePolyline(dst, pts, boltCoreWidth, colorBoltGlow)
	}
}

// drawFlash 绘制穿越时的白色闪光遮罩
func (s *GameScene) drawFlash(dst *ebiten.Image) {
	alpha := s.world.OverlayOpacity()
	if alpha <= 0 {
		return
	}
	l := &s.tuning.Layout
	fillRect(dst, 0, 0, l.ScreenWidth, l.ScreenHeight, color.NRGBA{0xff, 0xff, 0xff, uint8(alpha * 255)})
}
