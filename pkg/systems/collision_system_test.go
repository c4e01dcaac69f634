package systems

import (
	"testing"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/types"
)

func TestOverlapsStrict(t *testing.T) {
	base := Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"完全重叠", Rect{2, 2, 8, 8}, true},
		{"部分重叠", Rect{9, 9, 20, 20}, true},
		{"右边缘接触", Rect{10, 0, 20, 10}, false},
		{"下边缘接触", Rect{0, 10, 10, 20}, false},
		{"角接触", Rect{10, 10, 20, 20}, false},
		{"分离", Rect{11, 11, 20, 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(base, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", base, tt.b, got, tt.want)
			}
			// 对称性
			if got := Overlaps(tt.b, base); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, base, got, tt.want)
			}
		})
	}
}

func TestProjectTrackY(t *testing.T) {
	layout := &config.DefaultTuning().Layout

	if got := ProjectTrackY(1000, 1000, layout); got != 450 {
		t.Errorf("object at vehicle distance should project to 450, got %f", got)
	}
	if got := ProjectTrackY(1100, 1000, layout); got != 350 {
		t.Errorf("object 100 ahead should project to 350, got %f", got)
	}
}

func TestVehicleHitbox(t *testing.T) {
	layout := &config.DefaultTuning().Layout
	box := VehicleHitbox(&components.VehicleComponent{LateralOffset: 10}, layout)

	want := Rect{Left: -8, Top: 450, Right: 28, Bottom: 546}
	if box != want {
		t.Errorf("VehicleHitbox = %+v, want %+v", box, want)
	}
}

func obstacleAt(id int, lateral, track float64) components.Obstacle {
	return components.Obstacle{
		ID:              id,
		Type:            types.ObstacleCat,
		LateralPosition: lateral,
		TrackDistance:   track,
		Width:           32,
		Height:          32,
	}
}

func TestDetectCollisionsObstacles(t *testing.T) {
	tuning := config.DefaultTuning()
	const dist = 2000.0

	tests := []struct {
		name      string
		obstacle  components.Obstacle
		wantCrash bool
	}{
		// 车辆碰撞盒 X ∈ (-18, 18)，顶部 450
		{"正前方贴合", obstacleAt(1, 0, dist+15), true},
		{"横向边缘接触不算碰撞", obstacleAt(2, 34, dist+15), false},
		{"横向稍有重叠", obstacleAt(3, 33.9, dist+15), true},
		{"纵向边缘接触不算碰撞", obstacleAt(4, 0, dist+16), false},
		{"已经驶过", obstacleAt(5, 0, dist-200), false},
		{"远在前方", obstacleAt(6, 0, dist+400), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &components.VehicleComponent{Speed: 40, DistanceTraveled: dist}
			report := DetectCollisions(v, dist-6, []components.Obstacle{tt.obstacle}, tuning)
			if report.Crashed != tt.wantCrash {
				t.Errorf("Crashed = %v, want %v", report.Crashed, tt.wantCrash)
			}
			if tt.wantCrash && report.ObstacleID != tt.obstacle.ID {
				t.Errorf("ObstacleID = %d, want %d", report.ObstacleID, tt.obstacle.ID)
			}
		})
	}
}

func TestDetectCollisionsWindow(t *testing.T) {
	tuning := config.DefaultTuning()
	// 把碰撞窗口收窄到车辆上方，车辆所在位置的障碍物也不再检测
	tuning.Layout.ScreenHeight = 440

	v := &components.VehicleComponent{DistanceTraveled: 1000}
	report := DetectCollisions(v, 1000, []components.Obstacle{obstacleAt(1, 0, 1000)}, tuning)
	if report.Crashed {
		t.Error("obstacle outside the collision window should be ignored")
	}
}

func TestCableReached(t *testing.T) {
	tuning := config.DefaultTuning()
	// 挂钩Y = 566；电缆Y = 450 - (8800 - d)，两者相等时 d = 8916

	tests := []struct {
		name     string
		prev     float64
		distance float64
		want     bool
	}{
		{"正中电缆", 8903, 8916, true},
		{"容差带内", 8890, 8900, true},
		{"尚未到达", 8880, 8890, false},
		{"刚好在容差边界", 8880, 8896, false},
		{"单帧跨越容差带", 8880, 8950, true},
		{"已经驶过", 8950, 8960, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CableReached(tt.prev, tt.distance, tuning); got != tt.want {
				t.Errorf("CableReached(%v, %v) = %v, want %v", tt.prev, tt.distance, got, tt.want)
			}
		})
	}
}

func TestDetectCollisionsBuilding(t *testing.T) {
	tuning := config.DefaultTuning()

	v := &components.VehicleComponent{DistanceTraveled: 9799.9}
	if DetectCollisions(v, 9790, nil, tuning).BuildingReached {
		t.Error("building should not be reached before 9800")
	}

	v.DistanceTraveled = 9800
	if !DetectCollisions(v, 9790, nil, tuning).BuildingReached {
		t.Error("building should be reached at 9800")
	}
}
