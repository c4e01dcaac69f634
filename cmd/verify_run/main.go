// verify_run 无界面跑完整局，验证调参与状态机
//
// 自动驾驶：一直加速（可用 -coast-at 在指定速度后松油门），
// 前方障碍物与车身横向重叠时向空旷一侧转向。
//
// 用法:
//
//	go run ./cmd/verify_run -runs 50 -seed 1
//	go run ./cmd/verify_run -coast-at 80 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/timetrain/pkg/components"
	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/decker502/timetrain/pkg/systems"
	"github.com/decker502/timetrain/pkg/types"
)

var (
	runs       = flag.Int("runs", 20, "运行局数")
	seed       = flag.Int64("seed", 1, "第一局的随机种子（后续局依次 +1）")
	coastAt    = flag.Float64("coast-at", 0, "达到该速度后松开油门（0 表示一直加速）")
	tuningPath = flag.String("tuning", "", "外部调参文件")
	maxFrames  = flag.Int("max-frames", 60*60, "单局最大帧数")
	verbose    = flag.Bool("verbose", false, "显示状态机日志")
)

// lookahead 自动驾驶观察前方的距离（屏幕像素）
const lookahead = 250

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	tuning := config.DefaultTuning()
	if *tuningPath != "" {
		t, err := config.LoadTuningConfig(*tuningPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "加载调参失败: %v\n", err)
			os.Exit(1)
		}
		tuning = t
	}

	outcomes := map[types.Phase]int{}
	for i := 0; i < *runs; i++ {
		phase, frames, speed := runOnce(tuning, *seed+int64(i))
		outcomes[phase]++
		fmt.Printf("run %3d seed %-4d -> %-13s frame %4d speed %5.1f\n", i, *seed+int64(i), phase, frames, speed)
	}

	fmt.Println("----")
	for _, p := range []types.Phase{types.PhaseWon, types.PhaseCrashed, types.PhaseBuildingCrash, types.PhasePlaying} {
		fmt.Printf("%-13s %d\n", p, outcomes[p])
	}
}

// runOnce 运行一局，返回结局、帧数和最终速度
func runOnce(tuning *config.TuningConfig, seed int64) (types.Phase, int, float64) {
	world := game.NewWorld(tuning, rand.New(rand.NewSource(seed)))
	st := world.State()

	world.Step(components.InputSnapshot{Accelerate: true})
	for frame := 1; frame < *maxFrames; frame++ {
		if st.Phase != types.PhasePlaying {
			return st.Phase, frame, st.FinalSpeed
		}
		world.Step(autopilot(st, tuning))
	}
	return st.Phase, *maxFrames, st.Vehicle.Speed
}

// autopilot 根据当前状态生成输入
func autopilot(st *game.RunState, tuning *config.TuningConfig) components.InputSnapshot {
	v := &st.Vehicle
	in := components.InputSnapshot{Accelerate: *coastAt <= 0 || v.Speed < *coastAt}

	l := &tuning.Layout
	hitbox := systems.VehicleHitbox(v, l)
	margin := tuning.Physics.SteeringStep * 2
	for i := range st.Obstacles {
		o := &st.Obstacles[i]
		r := systems.ObstacleRect(o, v.DistanceTraveled, l)
		if r.Bottom < hitbox.Top-lookahead || r.Top > hitbox.Bottom {
			continue
		}
		if r.Right+margin <= hitbox.Left || r.Left-margin >= hitbox.Right {
			continue
		}
		// 障碍物在右侧且左边还有空间时向左，否则向右
		roomLeft := v.LateralOffset > -l.MaxLateralOffset()+margin
		atRightEdge := v.LateralOffset >= l.MaxLateralOffset()-margin
		if (o.LateralPosition >= v.LateralOffset && roomLeft) || atRightEdge {
			in.SteerLeft = true
		} else {
			in.SteerRight = true
		}
		break
	}
	return in
}
