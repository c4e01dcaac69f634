package tty

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/game"
	"github.com/decker502/timetrain/pkg/types"
)

func renderWorld(t *testing.T, w *game.World, f Frame) *Canvas {
	t.Helper()
	c := NewCanvas(80, 30)
	NewRenderer(w.Tuning()).Render(c, w, f)
	return c
}

func canvasContains(c *Canvas, s string) bool {
	_, rows := c.Size()
	for y := 0; y < rows; y++ {
		if strings.Contains(c.Row(y), s) {
			return true
		}
	}
	return false
}

func newTestWorld() *game.World {
	return game.NewWorld(config.DefaultTuning(), rand.New(rand.NewSource(1)))
}

func TestCurbBand(t *testing.T) {
	tests := []struct {
		dist, y float64
		want    int
	}{
		{0, 0, 0},
		{0, 40, 1},
		{0, -40, 0},
		{100, 0, 1},
		{160, 0, 0},
	}
	for _, tt := range tests {
		if got := CurbBand(tt.dist, tt.y, 80); got != tt.want {
			t.Errorf("CurbBand(%v, %v) = %d, want %d", tt.dist, tt.y, got, tt.want)
		}
	}

	// 同一世界位置：距离与屏幕Y同时增加
	for d := 0.0; d < 400; d += 7 {
		if CurbBand(d, 123, 80) != CurbBand(d+33, 156, 80) {
			t.Fatalf("band changed for the same world position at distance %v", d)
		}
	}
}

func TestRenderStartScreen(t *testing.T) {
	c := renderWorld(t, newTestWorld(), Frame{Message: "Marty! Hit 88 MPH at the wire! Don't crash!", MusicOn: true})

	if !strings.Contains(c.Row(0), "000.0 MPH") {
		t.Errorf("speedometer missing from row 0: %q", c.Row(0))
	}
	for _, s := range []string{"88 MPH", "PROJECT: TIME TRAIN", "INSERT COIN / START [SPACE]", "DOC BROWN"} {
		if !canvasContains(c, s) {
			t.Errorf("start screen missing %q", s)
		}
	}

	// 车身（车辆顶部 Y=450 映射到第 22 行，第 25 行为车身）
	if got := c.At(37, 25).BG; got != colorCarBody {
		t.Errorf("vehicle cell BG = %v, want %v", got, colorCarBody)
	}
	if got := c.At(30, 5).BG; got != colorRoad {
		t.Errorf("road cell BG = %v, want %v", got, colorRoad)
	}
	if got := c.At(19, 5).BG; got != colorCurbDark && got != colorCurbLight {
		t.Errorf("curb cell BG = %v, want a curb color", got)
	}
}

func TestRenderRadioPanel(t *testing.T) {
	w := newTestWorld()

	c := renderWorld(t, w, Frame{Loading: true})
	if !canvasContains(c, "TRANSMITTING...") {
		t.Error("loading radio should show TRANSMITTING...")
	}

	c = renderWorld(t, w, Frame{Message: "Great Scott!"})
	if !canvasContains(c, `"Great Scott!"`) {
		t.Error("radio message should be quoted")
	}
	if canvasContains(c, "TRANSMITTING...") {
		t.Error("idle radio should not show TRANSMITTING...")
	}
}

func TestRenderOutcomeOverlays(t *testing.T) {
	tests := []struct {
		name      string
		phase     types.Phase
		countdown int
		want      []string
		absent    string
	}{
		{"撞车", types.PhaseCrashed, 0, []string{"CRASHED!", "YOU HIT AN OBSTACLE", "IMPACT SPEED: 42.5 MPH", "TRY AGAIN [ENTER]"}, ""},
		{"撞楼", types.PhaseBuildingCrash, 0, []string{"CRASHED!", "YOU NEVER HIT 88 MPH"}, ""},
		{"穿越结束", types.PhaseWon, 0, []string{"TIME TRAVEL SUCCESSFUL!", "NOV 12 1955 06:00 AM", "REBOOT SYSTEM [ENTER]"}, ""},
		{"穿越动画中", types.PhaseWon, 50, nil, "TIME TRAVEL SUCCESSFUL!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			st := w.State()
			st.Phase = tt.phase
			st.FinalSpeed = 42.5
			st.WinSequence.Countdown = tt.countdown

			c := renderWorld(t, w, Frame{})
			for _, s := range tt.want {
				if !canvasContains(c, s) {
					t.Errorf("overlay missing %q", s)
				}
			}
			if tt.absent != "" && canvasContains(c, tt.absent) {
				t.Errorf("overlay should not show %q yet", tt.absent)
			}
		})
	}
}

func TestRenderFluxingSpeedometer(t *testing.T) {
	w := newTestWorld()
	st := w.State()
	st.Phase = types.PhasePlaying
	st.Vehicle.Speed = 88

	c := renderWorld(t, w, Frame{MusicOn: true})
	if !strings.Contains(c.Row(0), "088.0 MPH") {
		t.Errorf("row 0 = %q, want 088.0 MPH", c.Row(0))
	}
	if got := c.At(1, 0).FG; got != colorDanger {
		t.Errorf("fluxing readout color = %v, want %v", got, colorDanger)
	}
	if !strings.Contains(c.Row(1), "FLUXING!") {
		t.Errorf("row 1 = %q, want FLUXING!", c.Row(1))
	}
}
