package scenes

import (
	"testing"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestInputSamplerBindings(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		want    components.InputSnapshot
	}{
		{"无按键", nil, components.InputSnapshot{}},
		{"空格加速", []ebiten.Key{ebiten.KeySpace}, components.InputSnapshot{Accelerate: true}},
		{"A 键左转", []ebiten.Key{ebiten.KeyA}, components.InputSnapshot{SteerLeft: true}},
		{"方向键组合", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeySpace},
			components.InputSnapshot{Accelerate: true, SteerLeft: true, SteerRight: true}},
		{"回车重开", []ebiten.Key{ebiten.KeyEnter}, components.InputSnapshot{Restart: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			down := make(map[ebiten.Key]bool)
			for _, k := range tt.pressed {
				down[k] = true
			}

			state := game.NewInputState()
			s := NewInputSampler(state)
			s.pressed = func(k ebiten.Key) bool { return down[k] }
			s.Sample()

			if got := state.Snapshot(); got != tt.want {
				t.Errorf("Snapshot() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInputSamplerReleases(t *testing.T) {
	state := game.NewInputState()
	s := NewInputSampler(state)

	held := true
	s.pressed = func(k ebiten.Key) bool { return held && k == ebiten.KeySpace }
	s.Sample()
	if !state.Snapshot().Accelerate {
		t.Fatal("Accelerate should be held")
	}

	held = false
	s.Sample()
	if state.Snapshot().Accelerate {
		t.Error("Accelerate should be released after key up")
	}
}
