package components

// InputKey 游戏逻辑按键（与具体输入设备无关）
type InputKey int

const (
	KeyAccelerate InputKey = iota // 加速 / 开始（Space）
	KeySteerLeft                  // 左转（←/A）
	KeySteerRight                 // 右转（→/D）
	KeyRestart                    // 重新开始（Enter）
)

// String 返回按键名称（日志用）
func (k InputKey) String() string {
	switch k {
	case KeyAccelerate:
		return "Accelerate"
	case KeySteerLeft:
		return "SteerLeft"
	case KeySteerRight:
		return "SteerRight"
	case KeyRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputSnapshot 一帧开始时采样的按键状态
//
// 帧内只读；左右同时按下时两者都生效，互相抵消。
type InputSnapshot struct {
	Accelerate bool
	SteerLeft  bool
	SteerRight bool
	Restart    bool
}
