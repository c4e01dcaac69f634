package tty

import "time"

// FixedStep 固定步长累加器
//
// 每帧逻辑按 60 Hz 推进，与窗口前端的 TPS 一致；
// 终端刷新慢或被挂起时，一次最多补 MaxSteps 步，多余的积压直接丢弃。
type FixedStep struct {
	Step     time.Duration
	MaxSteps int

	acc time.Duration
}

// NewFixedStep 创建 tps 次/秒的累加器
func NewFixedStep(tps int) *FixedStep {
	return &FixedStep{
		Step:     time.Second / time.Duration(tps),
		MaxSteps: 5,
	}
}

// Advance 累加经过的时间，返回本次应执行的逻辑步数
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	f.acc += elapsed
	n := int(f.acc / f.Step)
	f.acc -= time.Duration(n) * f.Step
	if n > f.MaxSteps {
		n = f.MaxSteps
	}
	return n
}
