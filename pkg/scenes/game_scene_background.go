package scenes

import (
	"image/color"
	"math"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/systems"
	"github.com/decker502/timetrain/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	curbWidth      = 20
	laneLineWidth  = 8
	laneLineLength = 40

	poleWidth       = 40
	poleHeight      = 120
	poleRise        = 100 // 电线杆顶部高出电缆的距离
	cableWidth      = 4
	markerSize      = 10
	markerSpacing   = 60
	buildingWidth   = 600
	buildingHeight  = 400
	doorWidth       = 200
	doorHeight      = 100
	clockFaceRadius = 36
)

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func strokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

// inRenderWindow 投影Y是否在绘制窗口 (-margin, screenHeight+margin) 内
func (s *GameScene) inRenderWindow(y float64) bool {
	l := &s.tuning.Layout
	return y > -l.RenderMargin && y < l.ScreenHeight+l.RenderMargin
}

// drawRoad 绘制路面、路肩和中心线
//
// 路肩与中心线按 segmentSize 分段，随行驶距离向下滚动：
// 偏移为 floor(distance) mod segmentSize，明暗按 floor((distance - y) / segmentSize) mod 2 交替，
// 因此相同世界位置始终是同一种颜色。
func (s *GameScene) drawRoad(dst *ebiten.Image) {
	l := &s.tuning.Layout
	dist := s.world.State().Vehicle.DistanceTraveled
	left := s.roadLeft()
	right := left + l.RoadWidth
	seg := l.SegmentSize

	fillRect(dst, left, 0, l.RoadWidth, l.ScreenHeight, colorRoad)

	offset := math.Mod(math.Floor(dist), seg)
	for y := -seg; y < l.ScreenHeight+seg; y += seg {
		drawY := y + offset
		band := int(math.Floor((dist-y)/seg)) % 2
		base, top := colorCurbDark, colorCurbLight
		if band != 0 {
			base, top = colorCurbLight, colorCurbDark
		}

		fillRect(dst, left-curbWidth, drawY, curbWidth, seg, base)
		fillRect(dst, left-curbWidth, drawY, curbWidth, seg/2, top)
		fillRect(dst, right, drawY, curbWidth, seg, base)
		fillRect(dst, right, drawY, curbWidth, seg/2, top)

		fillRect(dst, l.ScreenWidth/2-laneLineWidth/2, drawY+laneLineLength/2, laneLineWidth, laneLineLength, colorLaneLine)
	}
}

// drawObstacles 绘制可见窗口内的障碍物
func (s *GameScene) drawObstacles(dst *ebiten.Image) {
	st := s.world.State()
	layout := &s.tuning.Layout

	for i := range st.Obstacles {
		o := &st.Obstacles[i]
		y := systems.ProjectTrackY(o.TrackDistance, st.Vehicle.DistanceTraveled, layout)
		if !s.inRenderWindow(y) {
			continue
		}
		r := systems.ObstacleRect(o, st.Vehicle.DistanceTraveled, layout)
		x := s.laneToScreenX(r.Left)

		switch o.Type {
		case types.ObstacleCat:
			drawCat(dst, x, r.Top, o)
		case types.ObstacleNewspaper:
			drawNewspaper(dst, x, r.Top, o)
		}
	}
}

// drawCat 俯视的橘猫：身体、条纹、耳朵和尾巴
func drawCat(dst *ebiten.Image, x, y float64, o *components.Obstacle) {
	w, h := o.Width, o.Height
	fillRect(dst, x+w*0.2, y+h*0.25, w*0.6, h*0.7, colorCat)
	fillRect(dst, x+w*0.25, y, w*0.5, h*0.3, colorCat)
	// 耳朵
	fillRect(dst, x+w*0.25, y-4, 4, 4, colorCat)
	fillRect(dst, x+w*0.75-4, y-4, 4, 4, colorCat)
	// 条纹
	for i := 0; i < 3; i++ {
		fillRect(dst, x+w*0.2, y+h*(0.4+0.18*float64(i)), w*0.6, 3, colorCatStripe)
	}
	// 尾巴
	fillRect(dst, x+w*0.8, y+h*0.8, w*0.2, 4, colorCatStripe)
	// 眼睛
	fillRect(dst, x+w*0.35, y+h*0.1, 3, 3, colorCarDark)
	fillRect(dst, x+w*0.65-3, y+h*0.1, 3, 3, colorCarDark)
}

// drawNewspaper 折叠的报纸：外框、内页与文字行
func drawNewspaper(dst *ebiten.Image, x, y float64, o *components.Obstacle) {
	w, h := o.Width, o.Height
	fillRect(dst, x, y, w, h, colorPaper)
	fillRect(dst, x+3, y+3, w-6, h-6, colorPaperInner)
	fillRect(dst, x+5, y+6, w-10, 5, colorCarDark)
	for i := 0; i < 3; i++ {
		fillRect(dst, x+5, y+15+float64(i)*5, w-10, 2, colorPaper)
	}
}

// drawCable 绘制电线杆、电缆和红色标记
func (s *GameScene) drawCable(dst *ebiten.Image) {
	l := &s.tuning.Layout
	cableY := systems.ProjectTrackY(s.tuning.Track.CableDistance, s.world.State().Vehicle.DistanceTraveled, l)
	if !s.inRenderWindow(cableY) {
		return
	}

	left := s.roadLeft()
	right := left + l.RoadWidth
	fillRect(dst, left-curbWidth-poleWidth, cableY-poleRise, poleWidth, poleHeight, colorPole)
	fillRect(dst, right+curbWidth, cableY-poleRise, poleWidth, poleHeight, colorPole)

	fillRect(dst, left-curbWidth-poleWidth/2, cableY-cableWidth/2, l.RoadWidth+2*curbWidth+poleWidth, cableWidth, colorCable)
	for x := left; x < right; x += markerSpacing {
		fillRect(dst, x, cableY-markerSize/2, markerSize, markerSize, colorMarker)
	}
}

// drawBuilding 绘制终点的钟楼建筑
// 建筑底边位于 buildingDistance 的投影处
func (s *GameScene) drawBuilding(dst *ebiten.Image) {
	l := &s.tuning.Layout
	baseY := systems.ProjectTrackY(s.tuning.Track.BuildingDistance, s.world.State().Vehicle.DistanceTraveled, l)
	top := baseY - buildingHeight
	if baseY < -l.RenderMargin || top > l.ScreenHeight+l.RenderMargin {
		return
	}

	x := (l.ScreenWidth - buildingWidth) / 2
	fillRect(dst, x, top, buildingWidth, buildingHeight, colorBuilding)
	fillRect(dst, x+(buildingWidth-doorWidth)/2, top+buildingHeight-doorHeight, doorWidth, doorHeight, colorDoor)

	// 钟面指向 10:04
	cx, cy := float32(l.ScreenWidth/2), float32(top+90)
	vector.DrawFilledCircle(dst, cx, cy, clockFaceRadius, colorClockFace, true)
	vector.StrokeCircle(dst, cx, cy, clockFaceRadius, 4, colorCarDark, true)
	hour := -math.Pi/2 + (10.0/12.0)*2*math.Pi
	minute := -math.Pi/2 + (4.0/60.0)*2*math.Pi
	strokeLine(dst, float64(cx), float64(cy), float64(cx)+math.Cos(hour)*18, float64(cy)+math.Sin(hour)*18, 4, colorCarDark)
	strokeLine(dst, float64(cx), float64(cy), float64(cx)+math.Cos(minute)*28, float64(cy)+math.Sin(minute)*28, 3, colorCarDark)
}
