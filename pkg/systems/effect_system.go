package systems

import (
	"image/color"
	"math/rand"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/ecs"
	"github.com/decker502/timetrain/pkg/types"
)

// 特效调色板
var (
	SparkColor   = color.RGBA{0x00, 0xff, 0xff, 0xff}
	FireOutColor = color.RGBA{0xff, 0x00, 0x44, 0xff}
	FireMidColor = color.RGBA{0xff, 0xec, 0x27, 0xff}
)

const (
	sparksPerFrame  = 3
	sparkSize       = 4
	sparkLifeFrames = 4
	fireLifeFrames  = 1
	fireWidth       = 8
	fireBaseLength  = 50
	fireRandLength  = 100
	fireWonBonus    = 200
)

// EffectFrame 特效系统每帧需要的只读状态
type EffectFrame struct {
	Phase       types.Phase
	Speed       float64
	Discharging bool
	Visible     bool // 车辆是否可见，不可见时不再生成粒子
}

// EffectSystem 生成并推进纯视觉粒子（火花、火焰拖尾）
//
// 粒子不参与碰撞，也不影响游戏状态；两个前端共享同一份粒子数据。
type EffectSystem struct {
	em       *ecs.EntityManager
	lifetime *LifetimeSystem
	rng      *rand.Rand
	tuning   *config.TuningConfig
}

// NewEffectSystem 创建特效系统
func NewEffectSystem(em *ecs.EntityManager, rng *rand.Rand, tuning *config.TuningConfig) *EffectSystem {
	return &EffectSystem{
		em:       em,
		lifetime: NewLifetimeSystem(em),
		rng:      rng,
		tuning:   tuning,
	}
}

// Update 推进一帧：老化、移动、生成新粒子，并清理过期实体
func (s *EffectSystem) Update(frame EffectFrame) {
	s.lifetime.Update()
	s.em.RemoveMarkedEntities()

	for _, id := range ecs.GetEntitiesWith1[*components.EffectParticleComponent](s.em) {
		p, _ := ecs.GetComponent[*components.EffectParticleComponent](s.em, id)
		p.OffsetX += p.VelocityX
		p.OffsetY += p.VelocityY
	}

	if !frame.Visible {
		return
	}

	if frame.Phase == types.PhasePlaying && frame.Speed > s.tuning.Effects.SparkSpeed {
		s.spawnSparks(frame.Speed)
	}

	discharging := frame.Phase == types.PhaseWon && frame.Discharging
	if (frame.Phase == types.PhasePlaying && IsFluxing(frame.Speed, false, s.tuning)) || discharging {
		s.spawnFire(frame.Phase == types.PhaseWon)
	}
}

// Reset 清除所有粒子（重开一局时调用）
func (s *EffectSystem) Reset() {
	s.em.Clear()
}

// Particles 返回当前存活的粒子，按生成顺序
func (s *EffectSystem) Particles() []*components.EffectParticleComponent {
	ids := ecs.GetEntitiesWith1[*components.EffectParticleComponent](s.em)
	result := make([]*components.EffectParticleComponent, 0, len(ids))
	for _, id := range ids {
		if p, ok := ecs.GetComponent[*components.EffectParticleComponent](s.em, id); ok {
			result = append(result, p)
		}
	}
	return result
}

// spawnSparks 在左右后轮附近生成火花，随路面向下漂移
func (s *EffectSystem) spawnSparks(speed float64) {
	layout := &s.tuning.Layout
	drift := speed * s.tuning.Physics.DistanceScale
	for i := 0; i < sparksPerFrame; i++ {
		x := s.rng.Float64() * layout.CarWidth
		y := layout.CarHeight - 10 + s.rng.Float64()*20
		s.spawn(&components.EffectParticleComponent{
			Kind:      components.EffectSpark,
			OffsetX:   x,
			OffsetY:   y,
			VelocityX: (s.rng.Float64()*2 - 1) * 2,
			VelocityY: drift,
			Width:     sparkSize,
			Height:    sparkSize,
			Color:     SparkColor,
		}, sparkLifeFrames)
	}
}

// spawnFire 在两个车尾灯处各生成一条火焰拖尾
func (s *EffectSystem) spawnFire(won bool) {
	layout := &s.tuning.Layout
	for _, x := range []float64{8, layout.CarWidth - 8 - fireWidth} {
		length := s.rng.Float64()*fireRandLength + fireBaseLength
		if won {
			length += fireWonBonus
		}
		s.spawn(&components.EffectParticleComponent{
			Kind:    components.EffectFire,
			OffsetX: x,
			OffsetY: layout.CarHeight,
			Width:   fireWidth,
			Height:  length,
			Color:   FireOutColor,
		}, fireLifeFrames)
	}
}

func (s *EffectSystem) spawn(p *components.EffectParticleComponent, frames int) {
	id := s.em.CreateEntity()
	ecs.AddComponent(s.em, id, p)
	ecs.AddComponent(s.em, id, &components.LifetimeComponent{MaxFrames: frames})
}
