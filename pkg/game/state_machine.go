package game

import (
	"log"

	"github.com/decker502/timetrain/pkg/systems"
	"github.com/decker502/timetrain/pkg/types"
)

// EventKind 状态机事件类型
type EventKind int

const (
	EventStart           EventKind = iota // 玩家按下开始
	EventCrash                            // 撞上障碍物
	EventCableReached                     // 挂钩触及电缆（携带速度）
	EventBuildingReached                  // 到达终点建筑
	EventRestart                          // 玩家按下重新开始
)

// String 返回事件名称（日志用）
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "Start"
	case EventCrash:
		return "Crash"
	case EventCableReached:
		return "CableReached"
	case EventBuildingReached:
		return "BuildingReached"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// Event 状态机输入事件
type Event struct {
	Kind       EventKind
	Speed      float64 // 事件发生时的车速
	ObstacleID int     // EventCrash 时有效
}

// Transition 游戏阶段的唯一合法转换表
//
//	START          --Start-------------------> PLAYING
//	PLAYING        --Crash-------------------> CRASHED
//	PLAYING        --CableReached(>=88)------> WON
//	PLAYING        --BuildingReached---------> BUILDING_CRASH
//	WON/CRASHED/BUILDING_CRASH --Restart-----> START
//
// 电缆事件速度不足时不转换，车辆继续行驶直到撞上建筑。
// 其余组合均为非法，返回 (phase, false)。
func Transition(phase types.Phase, ev Event, winSpeed float64) (types.Phase, bool) {
	switch phase {
	case types.PhaseStart:
		if ev.Kind == EventStart {
			return types.PhasePlaying, true
		}
	case types.PhasePlaying:
		switch ev.Kind {
		case EventCrash:
			return types.PhaseCrashed, true
		case EventCableReached:
			if ev.Speed >= winSpeed {
				return types.PhaseWon, true
			}
		case EventBuildingReached:
			return types.PhaseBuildingCrash, true
		}
	case types.PhaseWon, types.PhaseCrashed, types.PhaseBuildingCrash:
		if ev.Kind == EventRestart {
			return types.PhaseStart, true
		}
	}
	return phase, false
}

// TransitionListener 阶段转换回调
// 在阶段已更新之后同步调用，按注册顺序执行
type TransitionListener func(from, to types.Phase, ev Event)

// Machine 持有当前阶段并分发转换副作用
//
// 所有阶段修改都必须经过 Apply；渲染器只读取 Phase()。
type Machine struct {
	phase     types.Phase
	winSpeed  float64
	listeners []TransitionListener
}

// NewMachine 创建状态机，初始阶段为 START
func NewMachine(winSpeed float64) *Machine {
	return &Machine{
		phase:    types.PhaseStart,
		winSpeed: winSpeed,
	}
}

// Phase 返回当前阶段
func (m *Machine) Phase() types.Phase {
	return m.phase
}

// OnTransition 注册转换监听器
func (m *Machine) OnTransition(l TransitionListener) {
	m.listeners = append(m.listeners, l)
}

// Apply 尝试应用事件
//
// 返回:
//   - bool: 是否发生了转换
func (m *Machine) Apply(ev Event) bool {
	next, ok := Transition(m.phase, ev, m.winSpeed)
	if !ok {
		return false
	}

	from := m.phase
	m.phase = next
	log.Printf("[StateMachine] %s --%s(%.1f MPH)--> %s", from, ev.Kind, ev.Speed, next)

	for _, l := range m.listeners {
		l(from, next, ev)
	}
	return true
}

// ApplyReport 按优先级把一帧的碰撞结果转换为事件
//
// 优先级：Crash > CableReached > BuildingReached，一帧最多发生一次转换。
// 电缆速度不足时不转换，此时仍会检查建筑。
func (m *Machine) ApplyReport(report systems.CollisionReport, speed float64) bool {
	if report.Crashed {
		return m.Apply(Event{Kind: EventCrash, Speed: speed, ObstacleID: report.ObstacleID})
	}
	if report.CableReached && m.Apply(Event{Kind: EventCableReached, Speed: speed}) {
		return true
	}
	if report.BuildingReached {
		return m.Apply(Event{Kind: EventBuildingReached, Speed: speed})
	}
	return false
}
