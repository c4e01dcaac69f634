package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one fixed tick.
	// deltaTime is the tick length in seconds (1/60).
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，场景在程序退出时释放资源
// （取消电台请求、停止音乐）
type Closer interface {
	Close()
}
