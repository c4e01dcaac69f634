package tty

import (
	"time"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/gdamore/tcell/v2"
)

const (
	// HoldWindow 终端没有按键抬起事件：超过该时间没有重复事件即视为松开
	HoldWindow = 150 * time.Millisecond
	// InitialHold 首次按下时的保持时间，覆盖终端自动重复前的延迟
	InitialHold = 500 * time.Millisecond
)

// Action 非游戏按键的界面动作
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionToggleMusic
	ActionVolumeDown
	ActionVolumeUp
)

// MapKey 将 tcell 按键事件映射为游戏按键或界面动作
func MapKey(ev *tcell.EventKey) (components.InputKey, Action, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, ActionQuit, false
	case tcell.KeyUp:
		return components.KeyAccelerate, ActionNone, true
	case tcell.KeyLeft:
		return components.KeySteerLeft, ActionNone, true
	case tcell.KeyRight:
		return components.KeySteerRight, ActionNone, true
	case tcell.KeyEnter:
		return components.KeyRestart, ActionNone, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w', 'W':
			return components.KeyAccelerate, ActionNone, true
		case 'a', 'A':
			return components.KeySteerLeft, ActionNone, true
		case 'd', 'D':
			return components.KeySteerRight, ActionNone, true
		case 'm', 'M':
			return 0, ActionToggleMusic, false
		case '-', '_':
			return 0, ActionVolumeDown, false
		case '=', '+':
			return 0, ActionVolumeUp, false
		case 'q', 'Q':
			return 0, ActionQuit, false
		}
	}
	return 0, ActionNone, false
}

// HoldTracker 用按键重复事件模拟"按住"
//
// 只在帧循环 goroutine 中使用，不需要加锁；
// 结果写入 game.InputState，供 World.Step 读取快照。
type HoldTracker struct {
	state    *game.InputState
	deadline map[components.InputKey]time.Time
}

// NewHoldTracker 创建按键保持跟踪器
func NewHoldTracker(state *game.InputState) *HoldTracker {
	return &HoldTracker{
		state:    state,
		deadline: make(map[components.InputKey]time.Time),
	}
}

// Press 记录一次按键事件（首次按下或自动重复）
func (h *HoldTracker) Press(key components.InputKey, now time.Time) {
	hold := HoldWindow
	if !h.state.IsHeld(key) {
		hold = InitialHold
	}
	if d, ok := h.deadline[key]; !ok || now.Add(hold).After(d) {
		h.deadline[key] = now.Add(hold)
	}
	h.state.SetHeld(key, true)
}

// Expire 松开所有超时的按键
func (h *HoldTracker) Expire(now time.Time) {
	for key, d := range h.deadline {
		if !now.Before(d) {
			h.state.SetHeld(key, false)
			delete(h.deadline, key)
		}
	}
}

// ReleaseAll 松开所有按键
func (h *HoldTracker) ReleaseAll() {
	clear(h.deadline)
	h.state.ReleaseAll()
}
