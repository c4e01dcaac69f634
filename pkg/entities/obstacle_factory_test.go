package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/types"
)

func TestGenerateObstaclesLayout(t *testing.T) {
	tuning := config.DefaultTuning()

	for seed := int64(1); seed <= 50; seed++ {
		obstacles := GenerateObstacles(rand.New(rand.NewSource(seed)), tuning)

		if len(obstacles) == 0 {
			t.Fatalf("seed %d: no obstacles generated", seed)
		}
		if obstacles[0].TrackDistance != 800 {
			t.Errorf("seed %d: first obstacle at %f, want 800", seed, obstacles[0].TrackDistance)
		}

		for i, o := range obstacles {
			if o.TrackDistance >= 8000 {
				t.Errorf("seed %d: obstacle %d at %f inside the cable safety zone", seed, o.ID, o.TrackDistance)
			}
			if math.Abs(o.LateralPosition) > 140 {
				t.Errorf("seed %d: obstacle %d lateral %f outside ±140", seed, o.ID, o.LateralPosition)
			}
			if o.Width != 32 || o.Height != 32 {
				t.Errorf("seed %d: obstacle %d size %fx%f, want 32x32", seed, o.ID, o.Width, o.Height)
			}
			if o.ID != i+1 {
				t.Errorf("seed %d: obstacle %d has ID %d, want %d", seed, i, o.ID, i+1)
			}
			if i == 0 {
				continue
			}
			gap := o.TrackDistance - obstacles[i-1].TrackDistance
			if gap < 300 || gap >= 800 {
				t.Errorf("seed %d: gap %f between obstacles %d and %d outside [300, 800)", seed, gap, i, i+1)
			}
		}
	}
}

func TestGenerateObstaclesCountBounds(t *testing.T) {
	tuning := config.DefaultTuning()

	// 区间长 7200，间距 [300, 800)：最多 25 个，最少 10 个
	for seed := int64(1); seed <= 50; seed++ {
		n := len(GenerateObstacles(rand.New(rand.NewSource(seed)), tuning))
		if n < 10 || n > 25 {
			t.Errorf("seed %d: %d obstacles, want within [10, 25]", seed, n)
		}
	}
}

func TestGenerateObstaclesBothTypes(t *testing.T) {
	tuning := config.DefaultTuning()
	counts := map[types.ObstacleType]int{}

	for seed := int64(1); seed <= 20; seed++ {
		for _, o := range GenerateObstacles(rand.New(rand.NewSource(seed)), tuning) {
			counts[o.Type]++
		}
	}

	if counts[types.ObstacleCat] == 0 || counts[types.ObstacleNewspaper] == 0 {
		t.Errorf("expected both obstacle types, got %v", counts)
	}
}

func TestGenerateObstaclesDeterministic(t *testing.T) {
	tuning := config.DefaultTuning()

	a := GenerateObstacles(rand.New(rand.NewSource(42)), tuning)
	b := GenerateObstacles(rand.New(rand.NewSource(42)), tuning)

	if len(a) != len(b) {
		t.Fatalf("same seed produced %d and %d obstacles", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
