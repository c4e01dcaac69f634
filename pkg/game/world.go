package game

import (
	"math/rand"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/entities"
	"github.com/decker502/timetrain/pkg/systems"
	"github.com/decker502/timetrain/pkg/types"
)

// World 单线程的游戏核心：物理、碰撞、状态机、穿越动画
//
// 两个前端（窗口/终端）都只做三件事：采样输入调用 Step，
// 读取 State() 渲染，以及通过 OnTransition 挂接音频与电台。
type World struct {
	tuning  *config.TuningConfig
	rng     *rand.Rand
	machine *Machine
	winSeq  *systems.WinSequenceSystem
	state   RunState
}

// NewWorld 创建游戏世界，初始处于 START 并已生成障碍物
func NewWorld(tuning *config.TuningConfig, rng *rand.Rand) *World {
	w := &World{
		tuning:  tuning,
		rng:     rng,
		machine: NewMachine(tuning.Physics.WinSpeed),
		winSeq:  systems.NewWinSequenceSystem(tuning.WinSequence),
	}
	w.resetRun()

	// 内部副作用最先注册，保证外部监听器看到的是更新后的状态
	w.machine.OnTransition(w.applyTransition)
	return w
}

// OnTransition 注册外部阶段转换监听器（音频、电台等）
func (w *World) OnTransition(l TransitionListener) {
	w.machine.OnTransition(l)
}

// State 返回只读状态
func (w *World) State() *RunState {
	return &w.state
}

// Tuning 返回调参配置
func (w *World) Tuning() *config.TuningConfig {
	return w.tuning
}

// WinSequence 返回穿越动画系统（渲染器用于计算遮罩与可见性）
func (w *World) WinSequence() *systems.WinSequenceSystem {
	return w.winSeq
}

// Step 推进一个固定帧
//
// 帧内顺序：
//  1. 若帧开始时处于 WON，倒计时减 1（进入 WON 的那一帧渲染完整的 120）
//  2. 按阶段处理输入：START 等待开始；PLAYING 积分物理并检测碰撞；结局阶段等待重开
func (w *World) Step(in components.InputSnapshot) {
	w.state.Frame++

	if w.state.Phase == types.PhaseWon {
		w.winSeq.Tick(&w.state.WinSequence)
	}

	switch w.state.Phase {
	case types.PhaseStart:
		if in.Accelerate {
			w.machine.Apply(Event{Kind: EventStart})
		}

	case types.PhasePlaying:
		v := &w.state.Vehicle
		prevDistance := v.DistanceTraveled
		systems.IntegrateVehicle(v, in, w.tuning)
		report := systems.DetectCollisions(v, prevDistance, w.state.Obstacles, w.tuning)
		w.machine.ApplyReport(report, v.Speed)

	case types.PhaseWon, types.PhaseCrashed, types.PhaseBuildingCrash:
		if in.Restart {
			w.machine.Apply(Event{Kind: EventRestart, Speed: w.state.Vehicle.Speed})
		}
	}
}

// Discharging 当前是否处于穿越放电阶段
func (w *World) Discharging() bool {
	return w.state.Phase == types.PhaseWon && w.winSeq.IsDischarging(w.state.WinSequence.Countdown)
}

// VehicleVisible 当前车辆是否可见
func (w *World) VehicleVisible() bool {
	return w.winSeq.VehicleVisible(w.state.Phase, w.state.WinSequence.Countdown)
}

// OverlayOpacity 当前白屏遮罩不透明度
func (w *World) OverlayOpacity() float64 {
	if w.state.Phase != types.PhaseWon {
		return 0
	}
	return w.winSeq.OverlayOpacity(w.state.WinSequence.Countdown)
}

// Fluxing 通量电容是否在放电（速度达标或穿越放电中）
func (w *World) Fluxing() bool {
	return systems.IsFluxing(w.state.Vehicle.Speed, w.Discharging(), w.tuning)
}

// applyTransition 状态机的内部副作用
func (w *World) applyTransition(from, to types.Phase, ev Event) {
	w.state.Phase = to

	switch {
	case to == types.PhaseStart:
		w.resetRun()
	case from == types.PhaseStart && to == types.PhasePlaying:
		w.resetRun()
	case to == types.PhaseWon:
		w.winSeq.Arm(&w.state.WinSequence)
	}

	if to.IsOutcome() {
		w.state.FinalSpeed = ev.Speed
		w.state.CrashedObstacleID = ev.ObstacleID
	}
}

// resetRun 重置车辆、倒计时并重新生成障碍物
func (w *World) resetRun() {
	w.state.Phase = w.machine.Phase()
	w.state.Vehicle = components.VehicleComponent{}
	w.state.WinSequence = components.WinSequenceComponent{}
	w.state.FinalSpeed = 0
	w.state.CrashedObstacleID = 0
	w.state.Obstacles = entities.GenerateObstacles(w.rng, w.tuning)
}
