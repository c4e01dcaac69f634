// Package app 提供窗口前端的应用包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载嵌入配置、打开设置存储、
// 初始化音频、连接 Doc Brown 电台，并把它们注册为状态机监听器。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	themeaudio "github.com/decker502/timetrain/internal/audio"
	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/embedded"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/decker502/timetrain/pkg/narrative"
	"github.com/decker502/timetrain/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ThemePath 主题曲文件（可选，缺失时静音运行）
const ThemePath = "assets/audio/game-theme.mp3"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// TuningPath 外部调参文件，为空则使用嵌入的 data/tuning.yaml
	TuningPath string
	// CredentialsPath 电台凭据文件，为空则使用 ~/.config/timetrain/radio.toml
	CredentialsPath string
}

// App 是窗口前端的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	settings     *game.SettingsManager
	radio        *narrative.Radio
	theme        *themeaudio.ThemePlayer
	cancel       context.CancelFunc

	width, height int

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, err := loadTuning(cfg.TuningPath)
	if err != nil {
		return nil, fmt.Errorf("调参配置加载失败: %w", err)
	}

	narrativeData, err := embedded.ReadFile("data/narrative.yaml")
	if err != nil {
		return nil, fmt.Errorf("电台配置读取失败: %w", err)
	}
	narrativeCfg, err := config.ParseNarrativeConfig(narrativeData)
	if err != nil {
		return nil, fmt.Errorf("电台配置加载失败: %w", err)
	}

	// 设置存储失败时降级为仅内存设置
	store, err := game.OpenSettingsStore("timetrain")
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
	}
	settings := game.NewSettingsManager(store)
	ebiten.SetFullscreen(settings.Settings().Fullscreen)

	// 主题曲
	var music game.MusicPlayer = game.NopMusic{}
	audioContext := audio.NewContext(themeaudio.SampleRate)
	s := settings.Settings()
	theme, err := themeaudio.LoadThemeFile(audioContext, ThemePath, s.MusicVolume, s.MusicEnabled)
	if err != nil {
		log.Printf("[App] Warning: %v (running without music)", err)
	} else {
		music = theme
	}

	// 世界与监听器：世界自身的重置逻辑最先注册
	world := game.NewWorld(tuning, rand.New(rand.NewSource(time.Now().UnixNano())))

	credsPath := cfg.CredentialsPath
	if credsPath == "" {
		credsPath = config.RadioCredentialsPath()
	}
	creds, err := config.LoadRadioCredentials(credsPath)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
		creds = &config.RadioCredentials{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	radio := narrative.NewRadio(ctx, narrative.NewDocBrownFromCredentials(ctx, creds, narrativeCfg), narrativeCfg)
	world.OnTransition(radio.OnTransition)
	world.OnTransition(game.MusicListener(music))

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(world, radio, music, settings))
	log.Printf("[App] Initialized")

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		radio:        radio,
		theme:        theme,
		cancel:       cancel,
		width:        int(tuning.Layout.ScreenWidth),
		height:       int(tuning.Layout.ScreenHeight),
	}, nil
}

// loadTuning 优先读取外部文件，否则读取嵌入的默认配置
func loadTuning(path string) (*config.TuningConfig, error) {
	if path != "" {
		log.Printf("[Tuning] Loading %s", path)
		return config.LoadTuningConfig(path)
	}
	data, err := embedded.ReadFile("data/tuning.yaml")
	if err != nil {
		return nil, err
	}
	return config.ParseTuningConfig(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（固定 60 TPS）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		wasFullscreen := ebiten.IsFullscreen()
		if wasFullscreen {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(!wasFullscreen)
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 像素风画面使用最近邻采样，全屏时左右 letterbox 为黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Close 取消电台请求、停止音乐并释放场景
func (a *App) Close() {
	a.sceneManager.Close()
	a.cancel()
	if a.theme != nil {
		if err := a.theme.Close(); err != nil {
			log.Printf("[App] Warning: failed to close theme player: %v", err)
		}
	}
	log.Printf("[App] Closed")
}
