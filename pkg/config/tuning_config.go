package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TuningConfig 玩法调参配置
//
// 包含赛道地标、物理速率、屏幕布局、障碍物生成、穿越动画和特效阈值。
// 所有速率都是"每帧"常量，按 60 TPS 调校，修改时需同步考虑帧率。
//
// 配置文件位置: data/tuning.yaml
type TuningConfig struct {
	Track       TrackConfig       `yaml:"track"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Layout      LayoutConfig      `yaml:"layout"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	WinSequence WinSequenceConfig `yaml:"winSequence"`
	Effects     EffectsConfig     `yaml:"effects"`
}

// TrackConfig 赛道地标（世界距离单位）
type TrackConfig struct {
	Length           float64 `yaml:"length"`
	CableDistance    float64 `yaml:"cableDistance"`
	BuildingDistance float64 `yaml:"buildingDistance"`
}

// PhysicsConfig 物理积分参数（每帧）
type PhysicsConfig struct {
	AccelRate         float64 `yaml:"accelRate"`
	DecelRate         float64 `yaml:"decelRate"`
	MaxSpeed          float64 `yaml:"maxSpeed"`
	WinSpeed          float64 `yaml:"winSpeed"`          // 胜利阈值（88）
	SteeringThreshold float64 `yaml:"steeringThreshold"` // 速度超过此值才能转向
	SteeringStep      float64 `yaml:"steeringStep"`      // 每帧横向位移
	DistanceScale     float64 `yaml:"distanceScale"`     // 速度 -> 每帧行驶距离
}

// LayoutConfig 屏幕布局（世界单位 = 逻辑像素）
type LayoutConfig struct {
	ScreenWidth        float64 `yaml:"screenWidth"`
	ScreenHeight       float64 `yaml:"screenHeight"`
	RoadWidth          float64 `yaml:"roadWidth"`
	CarWidth           float64 `yaml:"carWidth"`
	CarHeight          float64 `yaml:"carHeight"`
	VehicleScreenY     float64 `yaml:"vehicleScreenY"` // 车辆顶部固定屏幕Y
	HitboxInset        float64 `yaml:"hitboxInset"`    // 碰撞盒左右内缩
	HookOffset         float64 `yaml:"hookOffset"`     // 挂钩在车尾下方的偏移
	CableTolerance     float64 `yaml:"cableTolerance"` // 挂钩与电缆的纵向容差
	CollisionWindowTop float64 `yaml:"collisionWindowTop"`
	RenderMargin       float64 `yaml:"renderMargin"`
	SegmentSize        float64 `yaml:"segmentSize"` // 路肩条纹长度
}

// ObstacleConfig 障碍物生成参数
type ObstacleConfig struct {
	StartOffset       float64 `yaml:"startOffset"`
	CableSafetyMargin float64 `yaml:"cableSafetyMargin"`
	GapMin            float64 `yaml:"gapMin"`
	GapMax            float64 `yaml:"gapMax"`
	LaneMargin        float64 `yaml:"laneMargin"`
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
}

// WinSequenceConfig 穿越动画倒计时阈值（帧）
type WinSequenceConfig struct {
	Duration       int `yaml:"duration"`
	DischargeAbove int `yaml:"dischargeAbove"`
	FadeInFrom     int `yaml:"fadeInFrom"`
	FadeOutFrom    int `yaml:"fadeOutFrom"`
}

// EffectsConfig 纯视觉特效阈值
type EffectsConfig struct {
	SparkSpeed float64 `yaml:"sparkSpeed"`
	ShakeSpeed float64 `yaml:"shakeSpeed"`
	ShakeBase  float64 `yaml:"shakeBase"`
	ShakeGain  float64 `yaml:"shakeGain"`
}

// DefaultTuning 返回与 data/tuning.yaml 一致的默认配置
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		Track: TrackConfig{
			Length:           10000,
			CableDistance:    8800,
			BuildingDistance: 9800,
		},
		Physics: PhysicsConfig{
			AccelRate:         0.148,
			DecelRate:         0.05,
			MaxSpeed:          95,
			WinSpeed:          88,
			SteeringThreshold: 1,
			SteeringStep:      4,
			DistanceScale:     0.15,
		},
		Layout: LayoutConfig{
			ScreenWidth:        800,
			ScreenHeight:       600,
			RoadWidth:          400,
			CarWidth:           52,
			CarHeight:          96,
			VehicleScreenY:     450,
			HitboxInset:        8,
			HookOffset:         20,
			CableTolerance:     20,
			CollisionWindowTop: -50,
			RenderMargin:       100,
			SegmentSize:        80,
		},
		Obstacles: ObstacleConfig{
			StartOffset:       800,
			CableSafetyMargin: 800,
			GapMin:            300,
			GapMax:            800,
			LaneMargin:        60,
			Width:             32,
			Height:            32,
		},
		WinSequence: WinSequenceConfig{
			Duration:       120,
			DischargeAbove: 80,
			FadeInFrom:     90,
			FadeOutFrom:    60,
		},
		Effects: EffectsConfig{
			SparkSpeed: 80,
			ShakeSpeed: 85,
			ShakeBase:  3,
			ShakeGain:  0.5,
		},
	}
}

// LoadTuningConfig 从文件系统加载调参配置
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *TuningConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadTuningConfig(path string) (*TuningConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuningConfig(data)
}

// ParseTuningConfig 解析 YAML 格式的调参配置
// 未出现在 YAML 中的字段保留默认值
func ParseTuningConfig(data []byte) (*TuningConfig, error) {
	config := DefaultTuning()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 地标顺序：0 < 电缆 < 建筑 <= 赛道长度
//   - 物理速率为正，胜利阈值不超过最高速度
//   - 车辆宽度不超过路宽
//   - 障碍物间距范围合法，且生成区间落在电缆安全距离之前
//   - 动画阈值满足 duration >= fadeInFrom > fadeOutFrom > 0
func (c *TuningConfig) Validate() error {
	t := c.Track
	if t.CableDistance <= 0 || t.CableDistance >= t.BuildingDistance {
		return fmt.Errorf("cable distance (%.1f) must be positive and before building (%.1f)",
			t.CableDistance, t.BuildingDistance)
	}
	if t.BuildingDistance > t.Length {
		return fmt.Errorf("building distance (%.1f) exceeds track length (%.1f)",
			t.BuildingDistance, t.Length)
	}

	p := c.Physics
	if p.AccelRate <= 0 || p.DecelRate <= 0 || p.DistanceScale <= 0 {
		return fmt.Errorf("physics rates must be positive: accel=%.3f decel=%.3f scale=%.3f",
			p.AccelRate, p.DecelRate, p.DistanceScale)
	}
	if p.WinSpeed <= 0 || p.WinSpeed > p.MaxSpeed {
		return fmt.Errorf("win speed (%.1f) must be in (0, maxSpeed=%.1f]", p.WinSpeed, p.MaxSpeed)
	}

	l := c.Layout
	if l.CarWidth <= 0 || l.CarWidth > l.RoadWidth {
		return fmt.Errorf("car width (%.1f) must be in (0, roadWidth=%.1f]", l.CarWidth, l.RoadWidth)
	}
	if l.HitboxInset*2 >= l.CarWidth {
		return fmt.Errorf("hitbox inset (%.1f) leaves no hitbox for car width %.1f", l.HitboxInset, l.CarWidth)
	}
	if l.SegmentSize <= 0 {
		return fmt.Errorf("segment size must be positive, got %.1f", l.SegmentSize)
	}

	o := c.Obstacles
	if o.GapMin <= 0 || o.GapMin > o.GapMax {
		return fmt.Errorf("obstacle gap range invalid: min(%.1f) > max(%.1f)", o.GapMin, o.GapMax)
	}
	if o.StartOffset < 0 || o.StartOffset > t.CableDistance-o.CableSafetyMargin {
		return fmt.Errorf("obstacle start offset (%.1f) is past the cable safety margin", o.StartOffset)
	}
	if o.LaneMargin*2 > l.RoadWidth {
		return fmt.Errorf("lane margin (%.1f) wider than half the road", o.LaneMargin)
	}

	w := c.WinSequence
	if !(w.Duration >= w.FadeInFrom && w.FadeInFrom > w.FadeOutFrom && w.FadeOutFrom > 0) {
		return fmt.Errorf("win sequence thresholds must satisfy duration(%d) >= fadeInFrom(%d) > fadeOutFrom(%d) > 0",
			w.Duration, w.FadeInFrom, w.FadeOutFrom)
	}

	return nil
}

// MaxLateralOffset 返回车辆中心允许的最大横向偏移
// (roadWidth - carWidth) / 2
func (l LayoutConfig) MaxLateralOffset() float64 {
	return (l.RoadWidth - l.CarWidth) / 2
}

// HookScreenY 返回车尾挂钩的屏幕Y坐标
func (l LayoutConfig) HookScreenY() float64 {
	return l.VehicleScreenY + l.CarHeight + l.HookOffset
}

// ObstacleLaneHalfWidth 返回障碍物横向分布的半宽
func (c *TuningConfig) ObstacleLaneHalfWidth() float64 {
	return c.Layout.RoadWidth/2 - c.Obstacles.LaneMargin
}

// ObstacleSpawnLimit 返回障碍物生成的上界（不含）
func (c *TuningConfig) ObstacleSpawnLimit() float64 {
	return c.Track.CableDistance - c.Obstacles.CableSafetyMargin
}
