package systems

import (
	"math"
	"math/rand"

	"github.com/decker502/timetrain/pkg/config"
)

// ShakeAmplitude 计算镜头震动幅度
//
// 速度超过 shakeSpeed（85）或处于放电阶段时震动，
// 幅度为 max(shakeBase, shakeBase + (speed - shakeSpeed) × shakeGain)。
//
// 返回:
//   - float64: 幅度（像素）
//   - bool: 本帧是否震动
func ShakeAmplitude(speed float64, discharging bool, effects *config.EffectsConfig) (float64, bool) {
	if speed <= effects.ShakeSpeed && !discharging {
		return 0, false
	}
	amp := effects.ShakeBase + (speed-effects.ShakeSpeed)*effects.ShakeGain
	return math.Max(effects.ShakeBase, amp), true
}

// ShakeOffset 返回一次随机平移，每个轴都在 [-amp/2, amp/2) 内
func ShakeOffset(rng *rand.Rand, amp float64) (dx, dy float64) {
	dx = (rng.Float64() - 0.5) * amp
	dy = (rng.Float64() - 0.5) * amp
	return dx, dy
}
