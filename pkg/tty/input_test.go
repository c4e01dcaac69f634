package tty

import (
	"testing"
	"time"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/gdamore/tcell/v2"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		name       string
		ev         *tcell.EventKey
		wantKey    components.InputKey
		wantAction Action
		wantOK     bool
	}{
		{"空格加速", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), components.KeyAccelerate, ActionNone, true},
		{"W 加速", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), components.KeyAccelerate, ActionNone, true},
		{"上箭头加速", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), components.KeyAccelerate, ActionNone, true},
		{"左箭头", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), components.KeySteerLeft, ActionNone, true},
		{"A 左转", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), components.KeySteerLeft, ActionNone, true},
		{"右箭头", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), components.KeySteerRight, ActionNone, true},
		{"D 右转", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone), components.KeySteerRight, ActionNone, true},
		{"回车重开", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), components.KeyRestart, ActionNone, true},
		{"M 切换音乐", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), 0, ActionToggleMusic, false},
		{"- 减小音量", tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), 0, ActionVolumeDown, false},
		{"= 增大音量", tcell.NewEventKey(tcell.KeyRune, '=', tcell.ModNone), 0, ActionVolumeUp, false},
		{"+ 增大音量", tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), 0, ActionVolumeUp, false},
		{"Esc 退出", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), 0, ActionQuit, false},
		{"Ctrl-C 退出", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), 0, ActionQuit, false},
		{"无关按键", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), 0, ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, action, ok := MapKey(tt.ev)
			if ok != tt.wantOK || action != tt.wantAction || (ok && key != tt.wantKey) {
				t.Errorf("MapKey() = (%v, %v, %v), want (%v, %v, %v)",
					key, action, ok, tt.wantKey, tt.wantAction, tt.wantOK)
			}
		})
	}
}

func TestHoldTrackerInitialPress(t *testing.T) {
	state := game.NewInputState()
	h := NewHoldTracker(state)
	t0 := time.Unix(1000, 0)

	h.Press(components.KeyAccelerate, t0)
	if !state.IsHeld(components.KeyAccelerate) {
		t.Fatal("key not held after press")
	}

	h.Expire(t0.Add(InitialHold - time.Millisecond))
	if !state.IsHeld(components.KeyAccelerate) {
		t.Error("key released before the initial hold elapsed")
	}

	h.Expire(t0.Add(InitialHold))
	if state.IsHeld(components.KeyAccelerate) {
		t.Error("key still held after the initial hold")
	}
}

func TestHoldTrackerRepeatsExtend(t *testing.T) {
	state := game.NewInputState()
	h := NewHoldTracker(state)
	t0 := time.Unix(1000, 0)

	h.Press(components.KeySteerLeft, t0)
	// 自动重复开始后每次延长 HoldWindow
	last := t0.Add(450 * time.Millisecond)
	h.Press(components.KeySteerLeft, t0.Add(30*time.Millisecond))
	h.Press(components.KeySteerLeft, last)

	h.Expire(last.Add(HoldWindow - time.Millisecond))
	if !state.IsHeld(components.KeySteerLeft) {
		t.Error("key released within the hold window of the last repeat")
	}

	h.Expire(last.Add(HoldWindow))
	if state.IsHeld(components.KeySteerLeft) {
		t.Error("key still held after the hold window")
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	state := game.NewInputState()
	h := NewHoldTracker(state)
	now := time.Unix(1000, 0)

	h.Press(components.KeyAccelerate, now)
	h.Press(components.KeySteerRight, now)
	h.ReleaseAll()

	if snap := state.Snapshot(); snap.Accelerate || snap.SteerRight {
		t.Errorf("snapshot after ReleaseAll = %+v, want all released", snap)
	}
	// 释放后再次按下重新使用首次保持时间
	h.Press(components.KeyAccelerate, now)
	h.Expire(now.Add(HoldWindow))
	if !state.IsHeld(components.KeyAccelerate) {
		t.Error("re-press after ReleaseAll should use the initial hold")
	}
}
