package components

import "image/color"

// EffectKind 视觉特效类型
type EffectKind int

const (
	EffectSpark EffectKind = iota // 车轮火花（青色小方块）
	EffectFire                    // 车尾火焰拖尾
)

// EffectParticleComponent 单个视觉粒子
//
// 坐标为相对车辆锚点（车身左上角）的屏幕偏移，渲染时再加上车辆屏幕位置，
// 因此车辆转向时粒子随车移动。
// 纯数据组件，由 systems.EffectSystem 更新。
type EffectParticleComponent struct {
	Kind EffectKind

	OffsetX, OffsetY     float64 // 相对车辆锚点
	VelocityX, VelocityY float64 // 每帧位移

	Width, Height float64 // 火焰的 Height 即拖尾长度
	Color         color.RGBA
}
