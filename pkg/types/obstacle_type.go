package types

// ObstacleType 定义障碍物类型
type ObstacleType int

const (
	ObstacleCat       ObstacleType = iota // 猫
	ObstacleNewspaper                     // 报纸
)

// String 返回障碍物类型名称
func (t ObstacleType) String() string {
	switch t {
	case ObstacleCat:
		return "CAT"
	case ObstacleNewspaper:
		return "NEWSPAPER"
	default:
		return "UNKNOWN"
	}
}
