package game

import (
	"log"

	"github.com/decker502/timetrain/pkg/types"
)

// MusicPlayer 主题曲播放接口
//
// 窗口前端使用 ebiten/audio 播放 mp3/ogg，终端前端使用 beep 合成；
// 加载失败时使用 NopMusic，游戏照常进行。
type MusicPlayer interface {
	// PlayLoop 从头开始循环播放
	PlayLoop()
	// StopAndRewind 停止并回到开头
	StopAndRewind()
	// SetEnabled 开关音乐（M 键），关闭期间 PlayLoop 只记录意图
	SetEnabled(enabled bool)
	// SetVolume 调整音量 0.0 ~ 1.0（- / = 键）
	SetVolume(volume float64)
}

// NopMusic 静音实现
type NopMusic struct{}

func (NopMusic) PlayLoop()         {}
func (NopMusic) StopAndRewind()    {}
func (NopMusic) SetEnabled(bool)   {}
func (NopMusic) SetVolume(float64) {}

// MusicListener 返回驱动主题曲的状态机监听器
//
// START -> PLAYING 开始循环播放；离开 PLAYING（任何结局）停止并回到开头。
func MusicListener(player MusicPlayer) TransitionListener {
	return func(from, to types.Phase, ev Event) {
		switch {
		case to == types.PhasePlaying:
			log.Printf("[Music] Start theme loop")
			player.PlayLoop()
		case from == types.PhasePlaying:
			log.Printf("[Music] Stop theme (%s)", to)
			player.StopAndRewind()
		}
	}
}
