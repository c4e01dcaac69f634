package systems

import (
	"math"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/config"
)

// Rect 轴对齐矩形（屏幕坐标，X 相对路中心）
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Overlaps 检查两个矩形是否重叠
//
// 四个半平面均为严格不等式：仅边缘接触不算碰撞。
func Overlaps(a, b Rect) bool {
	return a.Left < b.Right &&
		a.Right > b.Left &&
		a.Top < b.Bottom &&
		a.Bottom > b.Top
}

// ProjectTrackY 将赛道位置投影到屏幕Y坐标
//
// 车辆顶部固定在 vehicleScreenY，前方（更远）的物体在上方。
// 碰撞检测与两个渲染器都必须使用此函数，保证"看到的"就是"撞到的"。
func ProjectTrackY(trackDistance, distanceTraveled float64, layout *config.LayoutConfig) float64 {
	return layout.VehicleScreenY - (trackDistance - distanceTraveled)
}

// VehicleHitbox 返回车辆碰撞盒（左右各内缩 hitboxInset）
func VehicleHitbox(v *components.VehicleComponent, layout *config.LayoutConfig) Rect {
	half := layout.CarWidth / 2
	return Rect{
		Left:   v.LateralOffset - half + layout.HitboxInset,
		Right:  v.LateralOffset + half - layout.HitboxInset,
		Top:    layout.VehicleScreenY,
		Bottom: layout.VehicleScreenY + layout.CarHeight,
	}
}

// ObstacleRect 返回障碍物在当前帧的屏幕矩形（以投影点为中心）
func ObstacleRect(o *components.Obstacle, distanceTraveled float64, layout *config.LayoutConfig) Rect {
	y := ProjectTrackY(o.TrackDistance, distanceTraveled, layout)
	return Rect{
		Left:   o.LateralPosition - o.Width/2,
		Right:  o.LateralPosition + o.Width/2,
		Top:    y - o.Height/2,
		Bottom: y + o.Height/2,
	}
}

// CollisionReport 一帧的碰撞检测结果
// 多个字段可能同时为真，由状态机按优先级裁决
type CollisionReport struct {
	Crashed         bool
	ObstacleID      int // Crashed 为真时有效
	CableReached    bool
	BuildingReached bool
}

// DetectCollisions 在物理积分之后检测本帧的碰撞
//
// 参数:
//   - v: 积分后的车辆状态
//   - prevDistance: 积分前的行驶距离，用于电缆的扫掠检测
//   - obstacles: 本局障碍物（按赛道位置升序）
//   - tuning: 调参配置
func DetectCollisions(v *components.VehicleComponent, prevDistance float64, obstacles []components.Obstacle, tuning *config.TuningConfig) CollisionReport {
	var report CollisionReport
	layout := &tuning.Layout

	hitbox := VehicleHitbox(v, layout)
	for i := range obstacles {
		o := &obstacles[i]
		y := ProjectTrackY(o.TrackDistance, v.DistanceTraveled, layout)
		// 只检测可见窗口内的障碍物
		if y <= layout.CollisionWindowTop || y >= layout.ScreenHeight {
			continue
		}
		if Overlaps(hitbox, ObstacleRect(o, v.DistanceTraveled, layout)) {
			report.Crashed = true
			report.ObstacleID = o.ID
			break
		}
	}

	report.CableReached = CableReached(prevDistance, v.DistanceTraveled, tuning)
	report.BuildingReached = v.DistanceTraveled >= tuning.Track.BuildingDistance

	return report
}

// CableReached 判断车尾挂钩本帧是否触及电缆
//
// 两种情况算触及：
//   - 电缆投影与挂钩的纵向距离小于 cableTolerance
//   - 上一帧电缆在挂钩上方，本帧已在挂钩下方（单帧位移超过容差带时的扫掠保护）
func CableReached(prevDistance, distance float64, tuning *config.TuningConfig) bool {
	layout := &tuning.Layout
	hookY := layout.HookScreenY()
	cableY := ProjectTrackY(tuning.Track.CableDistance, distance, layout)

	if math.Abs(cableY-hookY) < layout.CableTolerance {
		return true
	}

	prevCableY := ProjectTrackY(tuning.Track.CableDistance, prevDistance, layout)
	return prevCableY < hookY && cableY >= hookY
}
