package components

// LifetimeComponent 管理特效实体的生命周期
// 火花、火焰拖尾等实体在存活帧数用尽后由 LifetimeSystem 清理
type LifetimeComponent struct {
	MaxFrames int  // 最大存活帧数
	Age       int  // 已存活帧数
	IsExpired bool // 是否已过期
}
