package scenes

import (
	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBinding 逻辑按键与物理按键的映射
type KeyBinding struct {
	Key  components.InputKey
	Keys []ebiten.Key
}

// DefaultBindings 默认键位
var DefaultBindings = []KeyBinding{
	{Key: components.KeyAccelerate, Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp}},
	{Key: components.KeySteerLeft, Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{Key: components.KeySteerRight, Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
	{Key: components.KeyRestart, Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
}

// InputSampler 每帧把 ebiten 的键盘状态写入 InputState
type InputSampler struct {
	state    *game.InputState
	bindings []KeyBinding
	pressed  func(ebiten.Key) bool
}

// NewInputSampler 创建使用默认键位的采样器
func NewInputSampler(state *game.InputState) *InputSampler {
	return &InputSampler{
		state:    state,
		bindings: DefaultBindings,
		pressed:  ebiten.IsKeyPressed,
	}
}

// Sample 采样一次
func (s *InputSampler) Sample() {
	for _, b := range s.bindings {
		held := false
		for _, k := range b.Keys {
			if s.pressed(k) {
				held = true
				break
			}
		}
		s.state.SetHeld(b.Key, held)
	}
}
