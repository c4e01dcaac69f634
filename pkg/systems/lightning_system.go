package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/config"
)

const (
	LightningSegments = 8
	LightningJitter   = 25
)

// Point 屏幕坐标点
type Point struct {
	X, Y float64
}

// LightningPath 生成一条锯齿闪电折线
//
// 在起点与终点之间均分 segments 段，中间各点在两个轴上随机偏移 ±jitter，
// 端点保持不动，保证闪电准确落在电缆和挂钩上。
func LightningPath(rng *rand.Rand, from, to Point, segments int, jitter float64) []Point {
	if segments < 1 {
		segments = 1
	}
	points := make([]Point, 0, segments+1)
	points = append(points, from)
	for i := 1; i < segments; i++ {
		t := float64(i) / float64(segments)
		points = append(points, Point{
			X: from.X + (to.X-from.X)*t + (rng.Float64()*2-1)*jitter,
			Y: from.Y + (to.Y-from.Y)*t + (rng.Float64()*2-1)*jitter,
		})
	}
	return append(points, to)
}

// LightningBolts 生成放电阶段的闪电折线
//
// 主闪电从屏幕外劈到电缆，约一半的帧会多一道平行闪电；
// 最后一道沿电缆打到车尾挂钩。
func LightningBolts(rng *rand.Rand, tuning *config.TuningConfig, v *components.VehicleComponent) [][]Point {
	l := &tuning.Layout

	cx := l.ScreenWidth / 2
	cableY := ProjectTrackY(tuning.Track.CableDistance, v.DistanceTraveled, l)
	strike := Point{X: cx + 20, Y: cableY}

	carX := cx + v.LateralOffset - l.CarWidth/2
	hook := Point{X: carX + 42, Y: l.HookScreenY()}

	bolts := [][]Point{
		LightningPath(rng, Point{X: cx - 200, Y: -50}, strike, LightningSegments, LightningJitter),
	}
	if rng.Float64() > 0.5 {
		bolts = append(bolts, LightningPath(rng, Point{X: cx - 180, Y: -50}, strike, LightningSegments, LightningJitter))
	}
	return append(bolts, LightningPath(rng, strike, hook, LightningSegments, LightningJitter))
}

// PlasmaArc 车身周围的一条等离子电弧
type PlasmaArc struct {
	Center     Point
	Radius     float64
	StartAngle float64 // 弧度
	Sweep      float64 // 弧度
}

// PlasmaArcs 生成放电阶段环绕车身的 count 条随机电弧，半径在 [50, 90)
func PlasmaArcs(rng *rand.Rand, center Point, count int) []PlasmaArc {
	arcs := make([]PlasmaArc, count)
	for i := range arcs {
		arcs[i] = PlasmaArc{
			Center:     center,
			Radius:     50 + rng.Float64()*40,
			StartAngle: rng.Float64() * 2 * math.Pi,
			Sweep:      0.5 + rng.Float64(),
		}
	}
	return arcs
}

// ArcPoints 将电弧离散为折线
func (a PlasmaArc) ArcPoints(steps int) []Point {
	if steps < 1 {
		steps = 1
	}
	points := make([]Point, steps+1)
	for i := 0; i <= steps; i++ {
		angle := a.StartAngle + a.Sweep*float64(i)/float64(steps)
		points[i] = Point{
			X: a.Center.X + math.Cos(angle)*a.Radius,
			Y: a.Center.Y + math.Sin(angle)*a.Radius,
		}
	}
	return points
}
