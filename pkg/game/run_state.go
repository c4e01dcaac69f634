package game

import (
	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/types"
)

// RunState 一局游戏的完整状态
//
// 由 World 独占写入；渲染器和前端只读。
type RunState struct {
	Phase       types.Phase
	Vehicle     components.VehicleComponent
	Obstacles   []components.Obstacle
	WinSequence components.WinSequenceComponent

	// 结局信息，进入结局阶段时记录
	FinalSpeed        float64
	CrashedObstacleID int

	// Frame 自程序启动以来的帧计数（只用于动画相位，如霓虹闪烁）
	Frame uint64
}
