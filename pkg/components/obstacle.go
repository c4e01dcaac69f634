package components

import "github.com/decker502/timetrain/pkg/types"

// Obstacle 赛道上的静态障碍物（猫或报纸）
//
// 障碍物在开局时一次性生成，整局内不移动；
// 屏幕位置由 systems.ProjectTrackY 根据车辆行驶距离计算。
type Obstacle struct {
	ID              int
	Type            types.ObstacleType
	LateralPosition float64 // 中心横向位置（相对路中心）
	TrackDistance   float64 // 沿赛道的位置
	Width           float64
	Height          float64
}
