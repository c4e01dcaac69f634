package tty

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	themeBPM   = 120
)

// 和弦进行 Am - F - C - G，每个和弦一小节（根音频率 Hz）
var themeChords = [][3]float64{
	{220.00, 261.63, 329.63},
	{174.61, 220.00, 261.63},
	{261.63, 329.63, 392.00},
	{196.00, 246.94, 293.66},
}

// ThemeGenerator 合成波风格的主题曲循环
//
// 每拍一个底鼓，八分音符贝斯，十六分音符琶音，四小节一循环。
// 输出是位置的纯函数，Rewind 后完全重复。
type ThemeGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewThemeGenerator 创建主题曲发生器
func NewThemeGenerator(sr beep.SampleRate) *ThemeGenerator {
	return &ThemeGenerator{sr: sr}
}

// LoopLength 一个循环的采样数
func (g *ThemeGenerator) LoopLength() int {
	return g.beatSamples() * 4 * len(themeChords)
}

func (g *ThemeGenerator) beatSamples() int {
	return g.sr.N(time.Minute / themeBPM)
}

// Rewind 回到循环开头
func (g *ThemeGenerator) Rewind() {
	g.pos = 0
}

// Sample 返回循环内第 pos 个采样值，范围 [-1, 1]
func (g *ThemeGenerator) Sample(pos int) float64 {
	beat := g.beatSamples()
	pos %= g.LoopLength()

	bar := pos / (beat * 4)
	chord := themeChords[bar]
	inBeat := pos % beat
	t := float64(pos) / float64(g.sr)

	// 底鼓：每拍开头 100ms 的下滑正弦
	kick := 0.0
	kickLen := g.sr.N(100 * time.Millisecond)
	if inBeat < kickLen {
		env := 1 - float64(inBeat)/float64(kickLen)
		kick = 0.35 * env * math.Sin(2*math.Pi*60*(1+2*env)*float64(inBeat)/float64(g.sr))
	}

	// 贝斯：八分音符，根音降八度，锯齿波
	eighth := beat / 2
	bassPhase := math.Mod(t*chord[0]/2, 1)
	bassEnv := 1 - 0.6*float64(pos%eighth)/float64(eighth)
	bass := 0.2 * bassEnv * (2*bassPhase - 1)

	// 琶音：十六分音符依次循环和弦音，方波
	sixteenth := beat / 4
	note := chord[(pos/sixteenth)%3] * 2
	lead := -0.1
	if math.Mod(t*note, 1) < 0.5 {
		lead = 0.1
	}
	lead *= 1 - float64(pos%sixteenth)/float64(sixteenth)

	return math.Max(-1, math.Min(1, kick+bass+lead))
}

// Stream 实现 beep.Streamer，无限循环
func (g *ThemeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := g.Sample(g.pos)
		samples[i][0] = v
		samples[i][1] = v
		g.pos = (g.pos + 1) % g.LoopLength()
	}
	return len(samples), true
}

// Err 实现 beep.Streamer
func (g *ThemeGenerator) Err() error {
	return nil
}

// ThemeSynth 终端前端的主题曲播放器，实现 game.MusicPlayer
//
// 发生器与控制器由 speaker 的回调 goroutine 读取，所有修改都在 speaker.Lock 内进行。
type ThemeSynth struct {
	mu      sync.Mutex
	gen     *ThemeGenerator
	gain    *effects.Gain
	ctrl    *beep.Ctrl
	enabled bool
	wanted  bool
}

// NewThemeSynth 初始化扬声器并挂上暂停状态的主题曲
//
// 参数:
//   - volume: 音量 0.0 ~ 1.0
//   - enabled: 初始是否启用（M 键切换）
func NewThemeSynth(volume float64, enabled bool) (*ThemeSynth, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}

	gen := NewThemeGenerator(sampleRate)
	gain := &effects.Gain{Streamer: gen, Gain: volume - 1}
	ctrl := &beep.Ctrl{Streamer: gain, Paused: true}
	speaker.Play(ctrl)

	log.Printf("[ThemeSynth] Speaker initialized (%d Hz, volume %.2f)", sampleRate, volume)
	return &ThemeSynth{gen: gen, gain: gain, ctrl: ctrl, enabled: enabled}, nil
}

// PlayLoop 从头开始循环播放
func (s *ThemeSynth) PlayLoop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wanted = true
	speaker.Lock()
	s.gen.Rewind()
	s.ctrl.Paused = !s.enabled
	speaker.Unlock()
}

// StopAndRewind 停止并回到开头
func (s *ThemeSynth) StopAndRewind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wanted = false
	speaker.Lock()
	s.ctrl.Paused = true
	s.gen.Rewind()
	speaker.Unlock()
}

// SetEnabled 开关音乐，驾驶中重新打开时从当前位置继续
func (s *ThemeSynth) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
	speaker.Lock()
	s.ctrl.Paused = !(enabled && s.wanted)
	speaker.Unlock()
}

// SetVolume 调整音量（effects.Gain 以 0 为原始音量）
func (s *ThemeSynth) SetVolume(volume float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker.Lock()
	s.gain.Gain = volume - 1
	speaker.Unlock()
}

// Close 停止播放并关闭扬声器
func (s *ThemeSynth) Close() {
	s.StopAndRewind()
	speaker.Clear()
	speaker.Close()
	log.Printf("[ThemeSynth] Closed")
}
