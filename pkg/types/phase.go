// Package types 定义共享的基础类型
package types

// Phase 定义一局游戏所处的阶段
// 任一时刻只有一个阶段处于激活状态
type Phase int

const (
	// PhaseStart 初始阶段（等待开始）
	PhaseStart Phase = iota
	// PhasePlaying 驾驶中，只有此阶段推进物理
	PhasePlaying
	// PhaseWon 在 88 MPH 以上撞上电缆，播放穿越动画
	PhaseWon
	// PhaseCrashed 撞上障碍物
	PhaseCrashed
	// PhaseBuildingCrash 未达速度，撞上终点建筑
	PhaseBuildingCrash
)

// String 返回阶段名称（用于日志）
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhasePlaying:
		return "PLAYING"
	case PhaseWon:
		return "WON"
	case PhaseCrashed:
		return "CRASHED"
	case PhaseBuildingCrash:
		return "BUILDING_CRASH"
	default:
		return "UNKNOWN"
	}
}

// IsOutcome 判断是否为结局阶段（Won / Crashed / BuildingCrash）
// 结局阶段会触发电台解说
func (p Phase) IsOutcome() bool {
	return p == PhaseWon || p == PhaseCrashed || p == PhaseBuildingCrash
}
