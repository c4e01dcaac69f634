package game

import (
	"testing"

	"github.com/decker502/timetrain/pkg/systems"
	"github.com/decker502/timetrain/pkg/types"
)

func TestTransitionTable(t *testing.T) {
	const win = 88.0

	tests := []struct {
		name   string
		from   types.Phase
		ev     Event
		want   types.Phase
		wantOK bool
	}{
		{"开始", types.PhaseStart, Event{Kind: EventStart}, types.PhasePlaying, true},
		{"开始阶段不能撞车", types.PhaseStart, Event{Kind: EventCrash}, types.PhaseStart, false},
		{"开始阶段不能重开", types.PhaseStart, Event{Kind: EventRestart}, types.PhaseStart, false},
		{"撞车", types.PhasePlaying, Event{Kind: EventCrash}, types.PhaseCrashed, true},
		{"88 MPH 触及电缆", types.PhasePlaying, Event{Kind: EventCableReached, Speed: 88}, types.PhaseWon, true},
		{"速度不足触及电缆不转换", types.PhasePlaying, Event{Kind: EventCableReached, Speed: 87.9}, types.PhasePlaying, false},
		{"撞上建筑", types.PhasePlaying, Event{Kind: EventBuildingReached}, types.PhaseBuildingCrash, true},
		{"驾驶中不能重开", types.PhasePlaying, Event{Kind: EventRestart}, types.PhasePlaying, false},
		{"驾驶中再次开始无效", types.PhasePlaying, Event{Kind: EventStart}, types.PhasePlaying, false},
		{"胜利后重开", types.PhaseWon, Event{Kind: EventRestart}, types.PhaseStart, true},
		{"撞车后重开", types.PhaseCrashed, Event{Kind: EventRestart}, types.PhaseStart, true},
		{"撞楼后重开", types.PhaseBuildingCrash, Event{Kind: EventRestart}, types.PhaseStart, true},
		{"胜利后不能再撞车", types.PhaseWon, Event{Kind: EventCrash}, types.PhaseWon, false},
		{"撞车后不能直接开始", types.PhaseCrashed, Event{Kind: EventStart}, types.PhaseCrashed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Transition(tt.from, tt.ev, win)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Transition(%v, %v) = (%v, %v), want (%v, %v)",
					tt.from, tt.ev.Kind, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestMachineListeners(t *testing.T) {
	m := NewMachine(88)

	var calls []string
	m.OnTransition(func(from, to types.Phase, ev Event) {
		calls = append(calls, "first:"+from.String()+"->"+to.String())
		if m.Phase() != to {
			t.Errorf("listener sees phase %v, want %v", m.Phase(), to)
		}
	})
	m.OnTransition(func(from, to types.Phase, ev Event) {
		calls = append(calls, "second")
	})

	if m.Apply(Event{Kind: EventRestart}) {
		t.Fatal("illegal event should not transition")
	}
	if len(calls) != 0 {
		t.Fatalf("listeners called for illegal event: %v", calls)
	}

	if !m.Apply(Event{Kind: EventStart}) {
		t.Fatal("Start should transition")
	}
	if len(calls) != 2 || calls[0] != "first:START->PLAYING" || calls[1] != "second" {
		t.Errorf("unexpected listener calls: %v", calls)
	}
}

func TestApplyReportPriority(t *testing.T) {
	tests := []struct {
		name   string
		report systems.CollisionReport
		speed  float64
		want   types.Phase
	}{
		{
			name:   "撞车优先于电缆",
			report: systems.CollisionReport{Crashed: true, ObstacleID: 3, CableReached: true},
			speed:  90,
			want:   types.PhaseCrashed,
		},
		{
			name:   "电缆优先于建筑",
			report: systems.CollisionReport{CableReached: true, BuildingReached: true},
			speed:  90,
			want:   types.PhaseWon,
		},
		{
			name:   "速度不足时落到建筑",
			report: systems.CollisionReport{CableReached: true, BuildingReached: true},
			speed:  60,
			want:   types.PhaseBuildingCrash,
		},
		{
			name:   "速度不足只触及电缆",
			report: systems.CollisionReport{CableReached: true},
			speed:  60,
			want:   types.PhasePlaying,
		},
		{
			name:   "无事发生",
			report: systems.CollisionReport{},
			speed:  40,
			want:   types.PhasePlaying,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine(88)
			m.Apply(Event{Kind: EventStart})

			transitions := 0
			m.OnTransition(func(from, to types.Phase, ev Event) { transitions++ })

			m.ApplyReport(tt.report, tt.speed)
			if m.Phase() != tt.want {
				t.Errorf("phase = %v, want %v", m.Phase(), tt.want)
			}
			if transitions > 1 {
				t.Errorf("%d transitions in one frame, want at most 1", transitions)
			}
		})
	}
}
