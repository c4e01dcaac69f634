package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/ecs"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/decker502/timetrain/pkg/narrative"
	"github.com/decker502/timetrain/pkg/systems"
	"github.com/decker502/timetrain/pkg/types"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// 调色板
var (
	colorSky       = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	colorRoad      = color.RGBA{0x26, 0x2b, 0x44, 0xff}
	colorCurbDark  = color.RGBA{0x33, 0x33, 0x33, 0xff}
	colorCurbLight = color.RGBA{0x55, 0x55, 0x55, 0xff}
	colorLaneLine  = color.RGBA{0xc2, 0xc3, 0xc7, 0xff}

	colorCarBody      = color.RGBA{0x8d, 0xaa, 0xb9, 0xff}
	colorCarHighlight = color.RGBA{0xa4, 0xc2, 0xd1, 0xff}
	colorCarDark      = color.RGBA{0x1d, 0x1d, 0x21, 0xff}
	colorGlass        = color.RGBA{0x2e, 0x33, 0x42, 0xff}
	colorBumper       = color.RGBA{0x55, 0x55, 0x66, 0xff}
	colorLightsOrange = color.RGBA{0xff, 0xaa, 0x00, 0xff}
	colorLightsRed    = color.RGBA{0xcc, 0x22, 0x22, 0xff}
	colorHook         = color.RGBA{0x8b, 0x9b, 0xb4, 0xff}
	colorShadow       = color.NRGBA{0x00, 0x00, 0x00, 0x60}
	colorFluxBand     = color.NRGBA{0x00, 0xff, 0xff, 0x66}

	colorCat        = color.RGBA{0xff, 0xa3, 0x00, 0xff}
	colorCatStripe  = color.RGBA{0xcc, 0x88, 0x00, 0xff}
	colorPaper      = color.RGBA{0xc2, 0xc3, 0xc7, 0xff}
	colorPaperInner = color.RGBA{0xff, 0xff, 0xff, 0xff}

	colorPole       = color.RGBA{0x3e, 0x27, 0x23, 0xff}
	colorCable      = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorMarker     = color.RGBA{0xff, 0x00, 0x00, 0xff}
	colorBuilding   = color.RGBA{0x22, 0x22, 0x22, 0xff}
	colorDoor       = color.RGBA{0x55, 0x77, 0xff, 0xff}
	colorClockFace  = color.RGBA{0xe8, 0xe0, 0xc8, 0xff}
	colorBoltCore   = color.RGBA{0xe0, 0xff, 0xff, 0xff}
	colorBoltGlow   = color.RGBA{0x00, 0xcc, 0xff, 0xff}
	colorHUDPanel   = color.NRGBA{0x00, 0x00, 0x00, 0xb0}
	colorHUDBorder  = color.RGBA{0x41, 0xa6, 0xf6, 0xff}
	colorHUDText    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorHUDAccent  = color.RGBA{0x00, 0xff, 0xff, 0xff}
	colorHUDDanger  = color.RGBA{0xff, 0x00, 0x44, 0xff}
	colorHUDGold    = color.RGBA{0xff, 0xec, 0x27, 0xff}
	colorOverlayDim = color.NRGBA{0x00, 0x00, 0x00, 0xc0}
)

const (
	plasmaArcCount   = 8
	fluxBandCount    = 3
	resultFadeFrames = 30
)

// GameScene 主游戏场景
//
// 每个 tick：采样输入 -> World.Step -> 电台收信 -> 特效推进 -> 预生成本帧的随机视觉元素。
// Draw 只读取状态，不修改任何游戏数据。
type GameScene struct {
	world    *game.World
	tuning   *config.TuningConfig
	input    *game.InputState
	sampler  *InputSampler
	radio    *narrative.Radio
	music    game.MusicPlayer
	settings *game.SettingsManager
	effects  *systems.EffectSystem

	// 视觉随机源，与障碍物生成的随机源分开
	fx *rand.Rand

	offscreen *ebiten.Image
	face      text.Face

	// 本帧预生成的视觉元素
	shakeX, shakeY float64
	bolts          [][]systems.Point
	arcs           []systems.PlasmaArc
	fluxBands      []float64

	// 胜利结算界面的淡入进度 0..1
	resultAlpha float64
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - world: 游戏核心
//   - radio: Doc Brown 电台（已注册为状态机监听器）
//   - music: 主题曲播放器
//   - settings: 玩家设置
func NewGameScene(world *game.World, radio *narrative.Radio, music game.MusicPlayer, settings *game.SettingsManager) *GameScene {
	tuning := world.Tuning()
	input := game.NewInputState()
	fx := rand.New(rand.NewSource(time.Now().UnixNano()))

	s := &GameScene{
		world:     world,
		tuning:    tuning,
		input:     input,
		sampler:   NewInputSampler(input),
		radio:     radio,
		music:     music,
		settings:  settings,
		effects:   systems.NewEffectSystem(ecs.NewEntityManager(), fx, tuning),
		fx:        fx,
		offscreen: ebiten.NewImage(int(tuning.Layout.ScreenWidth), int(tuning.Layout.ScreenHeight)),
		face:      text.NewGoXFace(bitmapfont.Face),
	}

	world.OnTransition(func(from, to types.Phase, ev game.Event) {
		if to == types.PhaseStart || to == types.PhasePlaying {
			s.effects.Reset()
			s.resultAlpha = 0
		}
	})

	log.Printf("[GameScene] Created (%dx%d)", int(tuning.Layout.ScreenWidth), int(tuning.Layout.ScreenHeight))
	return s
}

// Update 推进一个固定 tick
func (s *GameScene) Update(deltaTime float64) {
	s.sampler.Sample()

	if inpututil.IsKeyJustPressed(ebiten.KeyM) && s.settings != nil {
		enabled := s.settings.ToggleMusic()
		s.music.SetEnabled(enabled)
		log.Printf("[GameScene] Music enabled: %v", enabled)
	}
	if s.settings != nil {
		delta := 0.0
		if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
			delta -= game.VolumeStep
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
			delta += game.VolumeStep
		}
		if delta != 0 {
			volume := s.settings.StepMusicVolume(delta)
			s.music.SetVolume(volume)
			log.Printf("[GameScene] Music volume: %.1f", volume)
		}
	}

	s.world.Step(s.input.Snapshot())
	s.radio.Update()

	st := s.world.State()
	s.effects.Update(systems.EffectFrame{
		Phase:       st.Phase,
		Speed:       st.Vehicle.Speed,
		Discharging: s.world.Discharging(),
		Visible:     s.world.VehicleVisible(),
	})

	if st.Phase == types.PhaseWon && st.WinSequence.Countdown == 0 {
		s.resultAlpha = min(1, s.resultAlpha+1.0/resultFadeFrames)
	}

	s.prepareFrameEffects()
}

// prepareFrameEffects 预生成震屏偏移、闪电与通量条纹
func (s *GameScene) prepareFrameEffects() {
	st := s.world.State()
	discharging := s.world.Discharging()

	s.shakeX, s.shakeY = 0, 0
	if amp, ok := systems.ShakeAmplitude(st.Vehicle.Speed, discharging, &s.tuning.Effects); ok {
		s.shakeX, s.shakeY = systems.ShakeOffset(s.fx, amp)
	}

	s.bolts = s.bolts[:0]
	s.arcs = nil
	if discharging {
		s.bolts = append(s.bolts, systems.LightningBolts(s.fx, s.tuning, &st.Vehicle)...)
		s.arcs = systems.PlasmaArcs(s.fx, s.vehicleCenter(), plasmaArcCount)
	}

	s.fluxBands = s.fluxBands[:0]
	if s.world.Fluxing() && s.world.VehicleVisible() {
		for i := 0; i < fluxBandCount; i++ {
			s.fluxBands = append(s.fluxBands, s.fx.Float64()*s.tuning.Layout.CarHeight)
		}
	}
}

// Draw 按从后到前的顺序绘制
func (s *GameScene) Draw(screen *ebiten.Image) {
	st := s.world.State()

	s.offscreen.Fill(colorSky)
	s.drawRoad(s.offscreen)
	s.drawObstacles(s.offscreen)
	s.drawCable(s.offscreen)
	s.drawBuilding(s.offscreen)
	s.drawFire(s.offscreen)
	if s.world.VehicleVisible() {
		s.drawVehicle(s.offscreen)
	}
	s.drawSparks(s.offscreen)
	s.drawLightning(s.offscreen)

	screen.Fill(colorSky)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.shakeX, s.shakeY)
	screen.DrawImage(s.offscreen, op)

	s.drawFlash(screen)
	s.drawHUD(screen)

	switch st.Phase {
	case types.PhaseStart:
		s.drawStartOverlay(screen)
	case types.PhaseCrashed, types.PhaseBuildingCrash:
		s.drawCrashOverlay(screen)
	case types.PhaseWon:
		s.drawWonOverlay(screen)
	}
}

// Close 取消电台请求并停止音乐
func (s *GameScene) Close() {
	s.input.ReleaseAll()
	s.music.StopAndRewind()
	s.radio.Close()
	log.Printf("[GameScene] Closed")
}

// roadLeft 路面左边缘屏幕X
func (s *GameScene) roadLeft() float64 {
	l := &s.tuning.Layout
	return (l.ScreenWidth - l.RoadWidth) / 2
}

// laneToScreenX 将相对路中心的横向坐标转换为屏幕X
func (s *GameScene) laneToScreenX(x float64) float64 {
	return s.tuning.Layout.ScreenWidth/2 + x
}

// vehicleOrigin 车身左上角屏幕坐标
func (s *GameScene) vehicleOrigin() (float64, float64) {
	l := &s.tuning.Layout
	v := &s.world.State().Vehicle
	return s.laneToScreenX(v.LateralOffset) - l.CarWidth/2, l.VehicleScreenY
}

func (s *GameScene) vehicleCenter() systems.Point {
	x, y := s.vehicleOrigin()
	l := &s.tuning.Layout
	return systems.Point{X: x + l.CarWidth/2, Y: y + l.CarHeight/2}
}
