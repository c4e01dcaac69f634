package components

// VehicleComponent 时间机器（DeLorean）的运动状态
//
// 不变式（由 systems.IntegrateVehicle 在每次修改后维护）：
//   - 0 <= Speed <= maxSpeed
//   - |LateralOffset| <= (roadWidth - carWidth) / 2
//   - DistanceTraveled 单调不减
type VehicleComponent struct {
	Speed            float64 // 速度（MPH）
	LateralOffset    float64 // 车身中心相对路中心的横向偏移（像素），左负右正
	DistanceTraveled float64 // 已行驶的赛道距离（世界单位）
}
