package game

import (
	"sync/atomic"

	"github.com/decker502/timetrain/pkg/components"
)

const inputKeyCount = int(components.KeyRestart) + 1

// InputState 跨 goroutine 共享的按键状态
//
// 输入源（ebiten 采样或 tcell 事件 goroutine）调用 SetHeld 写入，
// 帧循环在每帧开始时调用 Snapshot 读取。读写都是原子操作，帧循环永不阻塞。
type InputState struct {
	held [inputKeyCount]atomic.Bool
}

// NewInputState 创建空的按键状态
func NewInputState() *InputState {
	return &InputState{}
}

// SetHeld 设置按键是否按下
func (s *InputState) SetHeld(key components.InputKey, held bool) {
	if int(key) < 0 || int(key) >= inputKeyCount {
		return
	}
	s.held[key].Store(held)
}

// IsHeld 查询按键是否按下
func (s *InputState) IsHeld(key components.InputKey) bool {
	if int(key) < 0 || int(key) >= inputKeyCount {
		return false
	}
	return s.held[key].Load()
}

// Snapshot 读取本帧的输入快照
func (s *InputState) Snapshot() components.InputSnapshot {
	return components.InputSnapshot{
		Accelerate: s.IsHeld(components.KeyAccelerate),
		SteerLeft:  s.IsHeld(components.KeySteerLeft),
		SteerRight: s.IsHeld(components.KeySteerRight),
		Restart:    s.IsHeld(components.KeyRestart),
	}
}

// ReleaseAll 松开所有按键（失去焦点或退出时）
func (s *InputState) ReleaseAll() {
	for i := range s.held {
		s.held[i].Store(false)
	}
}
