package tty

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/decker502/timetrain/pkg/systems"
	"github.com/decker502/timetrain/pkg/types"
	"github.com/decker502/timetrain/pkg/utils"
)

// 终端调色板（与窗口前端同色系）
var (
	colorSky       = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	colorRoad      = color.RGBA{0x26, 0x2b, 0x44, 0xff}
	colorCurbDark  = color.RGBA{0x33, 0x33, 0x33, 0xff}
	colorCurbLight = color.RGBA{0x55, 0x55, 0x55, 0xff}
	colorLaneLine  = color.RGBA{0xc2, 0xc3, 0xc7, 0xff}
	colorCarBody   = color.RGBA{0x8d, 0xaa, 0xb9, 0xff}
	colorGlass     = color.RGBA{0x2e, 0x33, 0x42, 0xff}
	colorLights    = color.RGBA{0xcc, 0x22, 0x22, 0xff}
	colorCat       = color.RGBA{0xff, 0xa3, 0x00, 0xff}
	colorPaper     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorPole      = color.RGBA{0x6d, 0x4c, 0x41, 0xff}
	colorCable     = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	colorMarker    = color.RGBA{0xff, 0x00, 0x00, 0xff}
	colorBuilding  = color.RGBA{0x44, 0x44, 0x44, 0xff}
	colorDoor      = color.RGBA{0x55, 0x77, 0xff, 0xff}
	colorBolt      = color.RGBA{0x00, 0xff, 0xff, 0xff}
	colorFlash     = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorText      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorAccent    = color.RGBA{0x00, 0xff, 0xff, 0xff}
	colorDanger    = color.RGBA{0xff, 0x00, 0x44, 0xff}
	colorGold      = color.RGBA{0xff, 0xec, 0x27, 0xff}
	colorPanel     = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

const (
	curbWidth      = 20
	buildingWidth  = 600
	buildingHeight = 400
	doorWidth      = 200
	doorHeight     = 100
	poleWidth      = 40
	poleHeight     = 120
	poleRise       = 100
	markerSpacing  = 60
	radioWidth     = 34
	radioLines     = 3
)

// Frame 渲染一帧所需的非世界状态
type Frame struct {
	Particles      []*components.EffectParticleComponent
	Bolts          [][]systems.Point
	ShakeX, ShakeY float64
	Message        string
	Loading        bool
	MusicOn        bool
}

// Renderer 终端渲染器，只读取世界状态
type Renderer struct {
	tuning *config.TuningConfig
}

// NewRenderer 创建渲染器
func NewRenderer(tuning *config.TuningConfig) *Renderer {
	return &Renderer{tuning: tuning}
}

// CurbBand 路肩明暗（0 或 1）
// 只取决于世界位置：distance 与 y 同时增加相同量时结果不变
func CurbBand(distance, y, segment float64) int {
	b := int(math.Floor((distance-y)/segment)) % 2
	if b < 0 {
		b += 2
	}
	return b
}

// Render 按从后到前的顺序绘制整帧
func (r *Renderer) Render(c *Canvas, w *game.World, f Frame) {
	cols, rows := c.Size()
	l := &r.tuning.Layout
	st := w.State()
	view := Viewport{
		Cols: cols, Rows: rows,
		Width: l.ScreenWidth, Height: l.ScreenHeight,
		OffsetX: f.ShakeX, OffsetY: f.ShakeY,
	}

	c.Clear(colorSky)
	r.drawRoad(c, view, st.Vehicle.DistanceTraveled)
	r.drawObstacles(c, view, st)
	r.drawCable(c, view, st.Vehicle.DistanceTraveled)
	r.drawBuilding(c, view, st.Vehicle.DistanceTraveled)
	r.drawParticles(c, view, st, f.Particles, components.EffectFire)
	if w.VehicleVisible() {
		r.drawVehicle(c, view, st)
	}
	r.drawParticles(c, view, st, f.Particles, components.EffectSpark)
	for _, bolt := range f.Bolts {
		for i := 1; i < len(bolt); i++ {
			view.Line(c, bolt[i-1].X, bolt[i-1].Y, bolt[i].X, bolt[i].Y, '*', colorBolt)
		}
	}
	c.Blend(colorFlash, w.OverlayOpacity())

	r.drawHUD(c, w, f)
	switch st.Phase {
	case types.PhaseStart:
		r.drawStartOverlay(c)
	case types.PhaseCrashed, types.PhaseBuildingCrash:
		r.drawCrashOverlay(c, st)
	case types.PhaseWon:
		if st.WinSequence.Countdown == 0 {
			r.drawWonOverlay(c)
		}
	}
}

func (r *Renderer) roadLeft() float64 {
	l := &r.tuning.Layout
	return (l.ScreenWidth - l.RoadWidth) / 2
}

func (r *Renderer) inRenderWindow(y float64) bool {
	l := &r.tuning.Layout
	return y > -l.RenderMargin && y < l.ScreenHeight+l.RenderMargin
}

// drawRoad 路面、路肩与中心虚线，每行按其中心的逻辑Y取样
func (r *Renderer) drawRoad(c *Canvas, view Viewport, dist float64) {
	l := &r.tuning.Layout
	seg := l.SegmentSize
	left := r.roadLeft()
	x0, x1 := view.CellX(left), view.CellX(left+l.RoadWidth)
	cl0, cr1 := view.CellX(left-curbWidth), view.CellX(left+l.RoadWidth+curbWidth)
	center := view.CellX(l.ScreenWidth / 2)

	_, rows := c.Size()
	for row := 0; row < rows; row++ {
		y := view.RowCenterY(row)
		curb := colorCurbDark
		if CurbBand(dist, y, seg) == 1 {
			curb = colorCurbLight
		}
		c.Fill(min(cl0, x0-1), row, x0, row+1, ' ', curb, curb)
		c.Fill(x0, row, x1, row+1, ' ', colorRoad, colorRoad)
		c.Fill(x1, row, max(cr1, x1+1), row+1, ' ', curb, curb)

		phase := math.Mod(dist-y, seg)
		if phase < 0 {
			phase += seg
		}
		if phase < seg/2 {
			c.SetFG(center, row, '|', colorLaneLine)
		}
	}
}

func (r *Renderer) drawObstacles(c *Canvas, view Viewport, st *game.RunState) {
	l := &r.tuning.Layout
	dist := st.Vehicle.DistanceTraveled
	for i := range st.Obstacles {
		o := &st.Obstacles[i]
		if !r.inRenderWindow(systems.ProjectTrackY(o.TrackDistance, dist, l)) {
			continue
		}
		rect := systems.ObstacleRect(o, dist, l)
		x := l.ScreenWidth/2 + rect.Left

		glyph, clr := '&', colorCat
		if o.Type == types.ObstacleNewspaper {
			glyph, clr = '#', colorPaper
		}
		if st.Phase == types.PhaseCrashed && o.ID == st.CrashedObstacleID {
			glyph, clr = 'X', colorDanger
		}
		view.FillRect(c, x, rect.Top, o.Width, o.Height, glyph, clr, colorRoad)
	}
}

// drawCable 电线杆、电缆与红色标记
func (r *Renderer) drawCable(c *Canvas, view Viewport, dist float64) {
	l := &r.tuning.Layout
	y := systems.ProjectTrackY(r.tuning.Track.CableDistance, dist, l)
	if !r.inRenderWindow(y) {
		return
	}
	left := r.roadLeft()
	right := left + l.RoadWidth

	view.FillRect(c, left-curbWidth-poleWidth, y-poleRise, poleWidth, poleHeight, ' ', colorPole, colorPole)
	view.FillRect(c, right+curbWidth, y-poleRise, poleWidth, poleHeight, ' ', colorPole, colorPole)
	view.Line(c, left-curbWidth-poleWidth/2, y, right+curbWidth+poleWidth/2, y, '=', colorCable)
	for x := left; x < right; x += markerSpacing {
		c.SetFG(view.CellX(x), view.CellY(y), 'o', colorMarker)
	}
}

// drawBuilding 终点建筑，底边位于 buildingDistance 的投影处
func (r *Renderer) drawBuilding(c *Canvas, view Viewport, dist float64) {
	l := &r.tuning.Layout
	base := systems.ProjectTrackY(r.tuning.Track.BuildingDistance, dist, l)
	top := base - buildingHeight
	if base < -l.RenderMargin || top > l.ScreenHeight+l.RenderMargin {
		return
	}
	x := (l.ScreenWidth - buildingWidth) / 2
	view.FillRect(c, x, top, buildingWidth, buildingHeight, ' ', colorBuilding, colorBuilding)
	view.FillRect(c, x+(buildingWidth-doorWidth)/2, base-doorHeight, doorWidth, doorHeight, ' ', colorDoor, colorDoor)
	c.SetFG(view.CellX(l.ScreenWidth/2), view.CellY(top+90), '@', colorText)
}

func (r *Renderer) vehicleOrigin(st *game.RunState) (float64, float64) {
	l := &r.tuning.Layout
	return l.ScreenWidth/2 + st.Vehicle.LateralOffset - l.CarWidth/2, l.VehicleScreenY
}

// drawVehicle 车身、挡风玻璃与尾灯
func (r *Renderer) drawVehicle(c *Canvas, view Viewport, st *game.RunState) {
	l := &r.tuning.Layout
	x, y := r.vehicleOrigin(st)
	view.FillRect(c, x, y, l.CarWidth, l.CarHeight, ' ', colorCarBody, colorCarBody)
	view.FillRect(c, x+l.CarWidth*0.2, y+l.CarHeight*0.2, l.CarWidth*0.6, l.CarHeight*0.25, ' ', colorGlass, colorGlass)
	view.FillRect(c, x, y+l.CarHeight*0.9, l.CarWidth, l.CarHeight*0.1, '=', colorLights, colorCarBody)
	c.SetFG(view.CellX(x+l.CarWidth/2), view.CellY(l.HookScreenY()), 'v', colorCable)
}

func (r *Renderer) drawParticles(c *Canvas, view Viewport, st *game.RunState, ps []*components.EffectParticleComponent, kind components.EffectKind) {
	ox, oy := r.vehicleOrigin(st)
	glyph := '*'
	if kind == components.EffectFire {
		glyph = '^'
	}
	for _, p := range ps {
		if p.Kind != kind {
			continue
		}
		x0, y0, x1, y1 := view.CellRect(ox+p.OffsetX, oy+p.OffsetY, p.Width, p.Height)
		for yy := y0; yy < y1; yy++ {
			for xx := x0; xx < x1; xx++ {
				c.SetFG(xx, yy, glyph, p.Color)
			}
		}
	}
}

// drawHUD 左上速度表，右上电台
func (r *Renderer) drawHUD(c *Canvas, w *game.World, f Frame) {
	st := w.State()
	speed := st.Vehicle.Speed
	fluxing := speed >= r.tuning.Physics.WinSpeed

	readout := colorAccent
	if fluxing {
		readout = colorDanger
	}
	c.Fill(0, 0, 16, 2, ' ', colorPanel, colorPanel)
	c.Text(1, 0, utils.FormatSpeed(speed)+" MPH", readout)
	if fluxing && (st.Frame/10)%2 == 0 {
		c.Text(1, 1, "FLUXING!", colorDanger)
	} else if !f.MusicOn {
		c.Text(1, 1, "MUSIC OFF", colorCurbLight)
	}

	cols, _ := c.Size()
	x := cols - radioWidth - 2
	c.Fill(x-1, 0, cols, radioLines+1, ' ', colorPanel, colorPanel)
	c.Text(x, 0, "DOC BROWN", colorAccent)
	if f.Loading {
		if (st.Frame/20)%2 == 0 {
			c.Text(x, 1, "TRANSMITTING...", colorGold)
		}
		return
	}
	lines := utils.ClipLines(utils.WrapText(`"`+f.Message+`"`, radioWidth), radioLines)
	for i, line := range lines {
		c.Text(x, 1+i, line, colorText)
	}
}

func (r *Renderer) drawStartOverlay(c *Canvas) {
	_, rows := c.Size()
	y := rows/2 - 5
	c.TextCentered(y, "88 MPH", colorGold)
	c.TextCentered(y+1, "PROJECT: TIME TRAIN", colorAccent)
	c.TextCentered(y+3, "MISSION OBJECTIVES", colorDanger)
	c.TextCentered(y+4, "HOLD SPACE TO ACCELERATE", colorText)
	c.TextCentered(y+5, "ARROWS TO DODGE CATS AND NEWSPAPERS", colorText)
	c.TextCentered(y+6, "HIT THE WIRE AT EXACTLY 88 MPH", colorText)
	c.TextCentered(y+8, "INSERT COIN / START [SPACE]", colorGold)
	c.TextCentered(y+9, "[M] MUSIC  [-/+] VOLUME  [ESC] QUIT", colorCurbLight)
}

func (r *Renderer) drawCrashOverlay(c *Canvas, st *game.RunState) {
	_, rows := c.Size()
	y := rows/2 - 3
	reason := "YOU HIT AN OBSTACLE"
	if st.Phase == types.PhaseBuildingCrash {
		reason = "YOU NEVER HIT 88 MPH"
	}
	c.TextCentered(y, "CRASHED!", colorDanger)
	c.TextCentered(y+2, reason, colorText)
	c.TextCentered(y+3, fmt.Sprintf("IMPACT SPEED: %.1f MPH", st.FinalSpeed), colorGold)
	c.TextCentered(y+5, "TRY AGAIN [ENTER]", colorAccent)
}

func (r *Renderer) drawWonOverlay(c *Canvas) {
	_, rows := c.Size()
	y := rows/2 - 3
	c.TextCentered(y, "TIME TRAVEL SUCCESSFUL!", colorAccent)
	c.TextCentered(y+2, "DESTINATION TIME", colorText)
	c.TextCentered(y+3, "NOV 12 1955 06:00 AM", colorDanger)
	c.TextCentered(y+5, "REBOOT SYSTEM [ENTER]", colorGold)
}
