package components

// WinSequenceComponent 穿越动画倒计时
//
// 进入 WON 时被置为 winSequence.duration（120 帧），之后每帧减 1，最低为 0。
// 阶段划分（以默认阈值为例）：
//   - 120..81: 放电（闪电、等离子电弧、震屏）
//   - 90..61:  白屏淡入
//   - 60..1:   白屏淡出，车辆已消失
//   - 0:       结束，显示结算界面
type WinSequenceComponent struct {
	Countdown int
}
