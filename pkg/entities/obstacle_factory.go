package entities

import (
	"log"
	"math/rand"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/types"
)

// GenerateObstacles 生成一局的障碍物布局
//
// 规则:
//   - 第一个障碍物位于 obstacles.startOffset（800）
//   - 相邻间距在 [gapMin, gapMax) 内均匀随机（300~800）
//   - 不会出现在 cableDistance - cableSafetyMargin（8000）及之后，保证电缆前有一段无障碍直道
//   - 类型为猫/报纸各一半；横向位置在 ±(roadWidth/2 - laneMargin) 内均匀随机
//
// 参数:
//   - rng: 随机源（测试时传入固定种子）
//   - tuning: 调参配置
//
// 返回:
//   - []components.Obstacle: 按 TrackDistance 升序，ID 从 1 开始递增
func GenerateObstacles(rng *rand.Rand, tuning *config.TuningConfig) []components.Obstacle {
	cfg := &tuning.Obstacles
	limit := tuning.ObstacleSpawnLimit()
	halfLane := tuning.ObstacleLaneHalfWidth()

	obstacles := make([]components.Obstacle, 0, int(limit/cfg.GapMin)+1)
	nextID := 1
	for pos := cfg.StartOffset; pos < limit; pos += cfg.GapMin + rng.Float64()*(cfg.GapMax-cfg.GapMin) {
		obstacleType := types.ObstacleNewspaper
		if rng.Float64() > 0.5 {
			obstacleType = types.ObstacleCat
		}

		obstacles = append(obstacles, components.Obstacle{
			ID:              nextID,
			Type:            obstacleType,
			LateralPosition: (rng.Float64()*2 - 1) * halfLane,
			TrackDistance:   pos,
			Width:           cfg.Width,
			Height:          cfg.Height,
		})
		nextID++
	}

	log.Printf("[ObstacleFactory] Generated %d obstacles in [%.0f, %.0f)", len(obstacles), cfg.StartOffset, limit)
	return obstacles
}
