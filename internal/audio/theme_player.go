// Package audio 窗口前端的主题曲播放（ebiten/audio）
package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
)

// SampleRate 音频上下文采样率
const SampleRate = 48000

type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

// ThemePlayer 循环播放的主题曲，实现 game.MusicPlayer
type ThemePlayer struct {
	player  *audio.Player
	enabled bool
	wanted  bool // PLAYING 阶段期望播放（音乐关闭时保留意图）
}

// LoadThemeFile 从文件加载主题曲
//
// 参数:
//   - ctx: ebiten 音频上下文（全局唯一）
//   - path: 音频文件路径，支持 .mp3 / .ogg
//   - volume: 音量 0.0 ~ 1.0
//   - enabled: 初始是否启用
func LoadThemeFile(ctx *audio.Context, path string, volume float64, enabled bool) (*ThemePlayer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}

	stream, err := decodeStream(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode theme %s: %w", path, err)
	}

	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create theme player: %w", err)
	}
	player.SetVolume(volume)

	log.Printf("[ThemePlayer] Loaded %s (volume: %.2f)", path, volume)
	return &ThemePlayer{player: player, enabled: enabled}, nil
}

// decodeStream 按扩展名解码为不重采样的 PCM 流
func decodeStream(data []byte, ext string) (lengthStream, error) {
	reader := bytes.NewReader(data)
	switch strings.ToLower(ext) {
	case ".mp3":
		return mp3.DecodeWithoutResampling(reader)
	case ".ogg":
		return vorbis.DecodeWithoutResampling(reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}
}

// PlayLoop 从头开始循环播放
func (t *ThemePlayer) PlayLoop() {
	t.wanted = true
	if !t.enabled {
		return
	}
	if err := t.player.Rewind(); err != nil {
		log.Printf("[ThemePlayer] Warning: Failed to rewind: %v", err)
	}
	t.player.Play()
}

// StopAndRewind 停止并回到开头
func (t *ThemePlayer) StopAndRewind() {
	t.wanted = false
	t.player.Pause()
	if err := t.player.Rewind(); err != nil {
		log.Printf("[ThemePlayer] Warning: Failed to rewind: %v", err)
	}
}

// SetEnabled 开关音乐
// 驾驶中重新打开时从当前位置继续
func (t *ThemePlayer) SetEnabled(enabled bool) {
	t.enabled = enabled
	if !enabled {
		t.player.Pause()
		return
	}
	if t.wanted && !t.player.IsPlaying() {
		t.player.Play()
	}
}

// SetVolume 调整音量
func (t *ThemePlayer) SetVolume(volume float64) {
	t.player.SetVolume(volume)
}

// Close 释放播放器
func (t *ThemePlayer) Close() error {
	t.player.Pause()
	return t.player.Close()
}
