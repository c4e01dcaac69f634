package tty

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/ecs"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/decker502/timetrain/pkg/narrative"
	"github.com/decker502/timetrain/pkg/systems"
	"github.com/decker502/timetrain/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// Config 终端前端配置
type Config struct {
	// TuningPath 外部调参文件，为空则使用内置默认值
	TuningPath string
	// CredentialsPath 电台凭据文件，为空则只读取环境变量
	CredentialsPath string
	// Mute 不初始化扬声器
	Mute bool
	// Settings 玩家设置，为 nil 时使用仅内存的默认设置
	Settings *game.SettingsManager
}

// Game 终端前端
//
// 事件由单独的 goroutine 从 tcell 读取并转发到帧循环；
// 世界、特效与渲染只在帧循环中访问。
type Game struct {
	screen   tcell.Screen
	world    *game.World
	tuning   *config.TuningConfig
	input    *game.InputState
	hold     *HoldTracker
	radio    *narrative.Radio
	music    game.MusicPlayer
	synth    *ThemeSynth
	settings *game.SettingsManager
	effects  *systems.EffectSystem
	fx       *rand.Rand
	renderer *Renderer
	canvas   *Canvas
	step     *FixedStep

	shakeX, shakeY float64
	bolts          [][]systems.Point

	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

// NewGame 创建终端前端
//
// 参数:
//   - screen: 已调用 Init 的 tcell 屏幕（测试中使用 SimulationScreen）
//   - cfg: 前端配置
func NewGame(screen tcell.Screen, cfg Config) (*Game, error) {
	tuning := config.DefaultTuning()
	if cfg.TuningPath != "" {
		t, err := config.LoadTuningConfig(cfg.TuningPath)
		if err != nil {
			return nil, fmt.Errorf("调参配置加载失败: %w", err)
		}
		tuning = t
		log.Printf("[Tuning] Loaded %s", cfg.TuningPath)
	}
	narrativeCfg := config.DefaultNarrative()

	settings := cfg.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}

	var music game.MusicPlayer = game.NopMusic{}
	var synth *ThemeSynth
	if !cfg.Mute {
		s := settings.Settings()
		var err error
		synth, err = NewThemeSynth(s.MusicVolume, s.MusicEnabled)
		if err != nil {
			log.Printf("[TTY] Warning: %v (running without music)", err)
		} else {
			music = synth
		}
	}

	creds, err := config.LoadRadioCredentials(cfg.CredentialsPath)
	if err != nil {
		log.Printf("[TTY] Warning: %v", err)
		creds = &config.RadioCredentials{}
	}

	seed := time.Now().UnixNano()
	world := game.NewWorld(tuning, rand.New(rand.NewSource(seed)))
	ctx, cancel := context.WithCancel(context.Background())
	radio := narrative.NewRadio(ctx, narrative.NewDocBrownFromCredentials(ctx, creds, narrativeCfg), narrativeCfg)

	fx := rand.New(rand.NewSource(seed + 1))
	input := game.NewInputState()
	cols, rows := screen.Size()

	g := &Game{
		screen:   screen,
		world:    world,
		tuning:   tuning,
		input:    input,
		hold:     NewHoldTracker(input),
		radio:    radio,
		music:    music,
		synth:    synth,
		settings: settings,
		effects:  systems.NewEffectSystem(ecs.NewEntityManager(), fx, tuning),
		fx:       fx,
		renderer: NewRenderer(tuning),
		canvas:   NewCanvas(cols, rows),
		step:     NewFixedStep(config.TicksPerSecond),
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	world.OnTransition(radio.OnTransition)
	world.OnTransition(game.MusicListener(music))
	world.OnTransition(func(from, to types.Phase, ev game.Event) {
		if to == types.PhaseStart || to == types.PhasePlaying {
			g.effects.Reset()
		}
	})

	log.Printf("[TTY] Created (%dx%d cells)", cols, rows)
	return g, nil
}

// World 返回游戏核心
func (g *Game) World() *game.World {
	return g.world
}

// Canvas 返回最近一帧的画布
func (g *Game) Canvas() *Canvas {
	return g.canvas
}

// Run 运行帧循环，直到退出键或 Close
func (g *Game) Run() error {
	events := make(chan tcell.Event, 64)
	go g.pollEvents(events)

	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-g.done:
			return nil
		case ev := <-events:
			if !g.HandleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			steps := g.step.Advance(now.Sub(last))
			last = now
			g.hold.Expire(now)
			for i := 0; i < steps; i++ {
				g.Tick()
			}
			if steps > 0 {
				g.Draw()
			}
		}
	}
}

// pollEvents 将 tcell 事件转发到帧循环，屏幕 Fini 后 PollEvent 返回 nil 即退出
func (g *Game) pollEvents(events chan<- tcell.Event) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-g.done:
			return
		}
	}
}

// HandleEvent 处理一个终端事件，返回 false 表示退出
func (g *Game) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, action, ok := MapKey(ev)
		switch action {
		case ActionQuit:
			return false
		case ActionToggleMusic:
			enabled := g.settings.ToggleMusic()
			g.music.SetEnabled(enabled)
			log.Printf("[TTY] Music enabled: %v", enabled)
		case ActionVolumeDown, ActionVolumeUp:
			delta := game.VolumeStep
			if action == ActionVolumeDown {
				delta = -delta
			}
			volume := g.settings.StepMusicVolume(delta)
			g.music.SetVolume(volume)
			log.Printf("[TTY] Music volume: %.1f", volume)
		}
		if ok {
			g.hold.Press(key, now)
		}
	case *tcell.EventResize:
		cols, rows := g.screen.Size()
		g.canvas.Resize(cols, rows)
		g.screen.Sync()
	}
	return true
}

// Tick 推进一个逻辑帧
func (g *Game) Tick() {
	g.world.Step(g.input.Snapshot())
	g.radio.Update()

	st := g.world.State()
	discharging := g.world.Discharging()
	g.effects.Update(systems.EffectFrame{
		Phase:       st.Phase,
		Speed:       st.Vehicle.Speed,
		Discharging: discharging,
		Visible:     g.world.VehicleVisible(),
	})

	g.shakeX, g.shakeY = 0, 0
	if amp, ok := systems.ShakeAmplitude(st.Vehicle.Speed, discharging, &g.tuning.Effects); ok {
		g.shakeX, g.shakeY = systems.ShakeOffset(g.fx, amp)
	}

	g.bolts = nil
	if discharging {
		g.bolts = systems.LightningBolts(g.fx, g.tuning, &st.Vehicle)
	}
}

// Draw 渲染并刷新到屏幕
func (g *Game) Draw() {
	g.renderer.Render(g.canvas, g.world, Frame{
		Particles: g.effects.Particles(),
		Bolts:     g.bolts,
		ShakeX:    g.shakeX,
		ShakeY:    g.shakeY,
		Message:   g.radio.Message(),
		Loading:   g.radio.Loading(),
		MusicOn:   g.settings.Settings().MusicEnabled,
	})
	g.canvas.Flush(g.screen)
}

// Close 停止帧循环、取消电台请求、停止音乐并恢复终端
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		close(g.done)
		g.hold.ReleaseAll()
		g.music.StopAndRewind()
		g.radio.Close()
		g.cancel()
		if g.synth != nil {
			g.synth.Close()
		}
		g.screen.Fini()
		log.Printf("[TTY] Closed")
	})
}
