package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/timetrain/pkg/types"
	"github.com/decker502/timetrain/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	radioLineChars = 34
	radioMaxLines  = 4
)

// drawText 在 (x, y) 处绘制文字，scale 为整数倍放大
func (s *GameScene) drawText(dst *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, s.face, op)
}

// drawTextCentered 以 cx 为中心绘制文字
func (s *GameScene) drawTextCentered(dst *ebiten.Image, str string, cx, y, scale float64, clr color.Color) {
	w := text.Advance(str, s.face) * scale
	s.drawText(dst, str, cx-w/2, y, scale, clr)
}

func (s *GameScene) drawPanel(dst *ebiten.Image, x, y, w, h float64, border color.Color) {
	fillRect(dst, x, y, w, h, colorHUDPanel)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 2, border, false)
}

// blink 以 period 帧为周期闪烁
func (s *GameScene) blink(period uint64) bool {
	return (s.world.State().Frame/period)%2 == 0
}

// drawHUD 绘制速度表与 Doc Brown 电台
func (s *GameScene) drawHUD(dst *ebiten.Image) {
	st := s.world.State()
	speed := st.Vehicle.Speed
	fluxing := speed >= s.tuning.Physics.WinSpeed

	// 速度表（左上）
	s.drawPanel(dst, 16, 16, 190, 78, colorHUDBorder)
	readout := colorHUDAccent
	if fluxing {
		readout = colorHUDDanger
	}
	s.drawText(dst, utils.FormatSpeed(speed), 28, 26, 4, readout)
	s.drawText(dst, "MPH", 160, 62, 2, colorHUDText)
	if fluxing && s.blink(10) {
		fillRect(dst, 16, 100, 190, 24, colorHUDDanger)
		s.drawTextCentered(dst, "FLUXING!", 111, 104, 2, colorHUDText)
	}

	// 电台（右上）
	l := &s.tuning.Layout
	const panelW, panelH = 330.0, 120.0
	px := l.ScreenWidth - panelW - 16
	s.drawPanel(dst, px, 16, panelW, panelH, colorHUDAccent)
	s.drawText(dst, "DOC BROWN", px+12, 24, 2, colorHUDAccent)
	if s.radio.Loading() {
		if s.blink(20) {
			s.drawText(dst, "TRANSMITTING...", px+12, 56, 2, colorHUDGold)
		}
		return
	}
	lines := utils.ClipLines(utils.WrapText(`"`+s.radio.Message()+`"`, radioLineChars), radioMaxLines)
	for i, line := range lines {
		s.drawText(dst, line, px+12, 52+float64(i)*18, 1.5, colorHUDText)
	}
}

func (s *GameScene) dim(dst *ebiten.Image, alpha float64) {
	l := &s.tuning.Layout
	c := colorOverlayDim
	c.A = uint8(float64(c.A) * alpha)
	fillRect(dst, 0, 0, l.ScreenWidth, l.ScreenHeight, c)
}

// drawStartOverlay 开始界面：标题、任务目标、投币提示
func (s *GameScene) drawStartOverlay(dst *ebiten.Image) {
	l := &s.tuning.Layout
	cx := l.ScreenWidth / 2
	s.dim(dst, 1)

	s.drawTextCentered(dst, "88 MPH", cx, 170, 6, colorHUDGold)
	s.drawTextCentered(dst, "PROJECT: TIME TRAIN", cx, 250, 3, colorHUDAccent)

	objectives := []string{
		"MISSION OBJECTIVES",
		"HOLD SPACE TO ACCELERATE",
		"ARROWS TO DODGE CATS AND NEWSPAPERS",
		"HIT THE WIRE AT EXACTLY 88 MPH",
	}
	for i, line := range objectives {
		clr := colorHUDText
		if i == 0 {
			clr = colorHUDDanger
		}
		s.drawTextCentered(dst, line, cx, 310+float64(i)*26, 2, clr)
	}

	if s.blink(30) {
		s.drawTextCentered(dst, "INSERT COIN / START [SPACE]", cx, 440, 2, colorHUDGold)
	}
}

// drawCrashOverlay 撞车/撞楼结算
func (s *GameScene) drawCrashOverlay(dst *ebiten.Image) {
	st := s.world.State()
	l := &s.tuning.Layout
	cx := l.ScreenWidth / 2
	s.dim(dst, 0.8)

	s.drawTextCentered(dst, "CRASHED!", cx, 200, 6, colorHUDDanger)
	reason := "YOU HIT AN OBSTACLE"
	if st.Phase == types.PhaseBuildingCrash {
		reason = "YOU NEVER HIT 88 MPH"
	}
	s.drawTextCentered(dst, reason, cx, 290, 2, colorHUDText)
	s.drawTextCentered(dst, fmt.Sprintf("IMPACT SPEED: %.1f MPH", st.FinalSpeed), cx, 320, 2, colorHUDGold)

	if s.blink(30) {
		s.drawTextCentered(dst, "TRY AGAIN [ENTER]", cx, 400, 3, colorHUDAccent)
	}
}

// drawWonOverlay 穿越成功结算，动画结束后淡入
func (s *GameScene) drawWonOverlay(dst *ebiten.Image) {
	if s.resultAlpha <= 0 {
		return
	}
	l := &s.tuning.Layout
	cx := l.ScreenWidth / 2
	a := utils.EaseOutQuad(s.resultAlpha)
	s.dim(dst, a)

	fade := func(c color.RGBA) color.RGBA {
		return color.RGBA{uint8(float64(c.R) * a), uint8(float64(c.G) * a), uint8(float64(c.B) * a), uint8(float64(c.A) * a)}
	}

	s.drawTextCentered(dst, "TIME TRAVEL SUCCESSFUL!", cx, 200, 3, fade(colorHUDAccent))
	s.drawTextCentered(dst, "DESTINATION TIME", cx, 260, 2, fade(colorHUDText))
	s.drawTextCentered(dst, "NOV 12 1955 06:00 AM", cx, 290, 3, fade(colorHUDDanger))
	s.drawTextCentered(dst, "REBOOT SYSTEM [ENTER]", cx, 400, 2, fade(colorHUDGold))
}
