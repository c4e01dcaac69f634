package systems

import (
	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/types"
)

// WinSequenceSystem 穿越动画序列
//
// 倒计时从 duration 开始，每帧减 1（以默认阈值为例）：
//
//	120..81 放电 │ 90..61 白屏淡入 │ 60..1 白屏淡出，车辆已消失 │ 0 结束
//
// 只有状态机调用 Arm；Tick 由世界步进在每个以 WON 开始的帧头调用。
type WinSequenceSystem struct {
	cfg config.WinSequenceConfig
}

// NewWinSequenceSystem 创建穿越动画系统
func NewWinSequenceSystem(cfg config.WinSequenceConfig) *WinSequenceSystem {
	return &WinSequenceSystem{cfg: cfg}
}

// Arm 开始倒计时
func (s *WinSequenceSystem) Arm(c *components.WinSequenceComponent) {
	c.Countdown = s.cfg.Duration
}

// Tick 倒计时减 1，最低为 0
func (s *WinSequenceSystem) Tick(c *components.WinSequenceComponent) {
	if c.Countdown > 0 {
		c.Countdown--
	}
}

// OverlayOpacity 返回白色闪光遮罩的不透明度 [0, 1]
//
//	countdown > 90         -> 0
//	60 < countdown <= 90   -> (90 - countdown) / 30
//	0 < countdown <= 60    -> countdown / 60
//	countdown == 0         -> 0
func (s *WinSequenceSystem) OverlayOpacity(countdown int) float64 {
	in, out := s.cfg.FadeInFrom, s.cfg.FadeOutFrom
	switch {
	case countdown > in:
		return 0
	case countdown > out:
		return float64(in-countdown) / float64(in-out)
	case countdown > 0:
		return float64(countdown) / float64(out)
	default:
		return 0
	}
}

// IsDischarging 是否处于放电阶段（闪电、电弧、震屏）
func (s *WinSequenceSystem) IsDischarging(countdown int) bool {
	return countdown > s.cfg.DischargeAbove
}

// VehicleVisible 车辆是否可见
// WON 阶段白屏达到峰值后（countdown <= 60）车辆消失
func (s *WinSequenceSystem) VehicleVisible(phase types.Phase, countdown int) bool {
	return !(phase == types.PhaseWon && countdown <= s.cfg.FadeOutFrom)
}
