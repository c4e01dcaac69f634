package systems

import (
	"math"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/config"
)

// IntegrateVehicle 推进车辆一帧的运动状态
//
// 只在 PLAYING 阶段调用。规则：
//   - 按住加速且未达最高速：speed += accelRate
//   - 否则速度大于 0 时：speed -= decelRate
//   - 速度超过 steeringThreshold 时才能转向，每帧横移 steeringStep
//   - distance += speed × distanceScale
//
// 每次修改后都会夹取到合法区间，因此不存在错误路径。
//
// 参数:
//   - v: 车辆状态（原地修改）
//   - in: 本帧输入快照
//   - tuning: 调参配置
func IntegrateVehicle(v *components.VehicleComponent, in components.InputSnapshot, tuning *config.TuningConfig) {
	p := &tuning.Physics

	if in.Accelerate && v.Speed < p.MaxSpeed {
		v.Speed += p.AccelRate
	} else if v.Speed > 0 {
		v.Speed -= p.DecelRate
	}
	v.Speed = clamp(v.Speed, 0, p.MaxSpeed)

	if v.Speed > p.SteeringThreshold {
		if in.SteerLeft {
			v.LateralOffset -= p.SteeringStep
		}
		if in.SteerRight {
			v.LateralOffset += p.SteeringStep
		}
	}
	limit := tuning.Layout.MaxLateralOffset()
	v.LateralOffset = clamp(v.LateralOffset, -limit, limit)

	v.DistanceTraveled += v.Speed * p.DistanceScale
}

// IsFluxing 判断通量电容是否处于"放电"视觉状态
// 速度达到胜利阈值，或处于穿越动画的放电阶段
func IsFluxing(speed float64, discharging bool, tuning *config.TuningConfig) bool {
	return speed >= tuning.Physics.WinSpeed || discharging
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
