package game

import (
	"math"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStore 在临时 HOME 下打开 gdata 存储
func openTestStore(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	store, err := gdata.Open(gdata.Config{AppName: "timetrain_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return store
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.MusicVolume != 0.5 {
		t.Errorf("MusicVolume: got %v, want 0.5", s.MusicVolume)
	}
	if !s.MusicEnabled {
		t.Error("MusicEnabled: got false, want true")
	}
	if s.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

func TestSettingsManagerNilStore(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.Settings().MusicVolume != 0.5 {
		t.Errorf("MusicVolume: got %v, want 0.5", sm.Settings().MusicVolume)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
	if sm.ToggleMusic() {
		t.Error("ToggleMusic() should turn music off")
	}
}

func TestSettingsPersist(t *testing.T) {
	store := openTestStore(t)

	sm := NewSettingsManager(store)
	sm.SetMusicVolume(0.25)
	sm.SetFullscreen(true)
	if sm.ToggleMusic() {
		t.Fatal("ToggleMusic() should turn music off")
	}

	reloaded := NewSettingsManager(store)
	got := reloaded.Settings()
	if got.MusicVolume != 0.25 {
		t.Errorf("MusicVolume: got %v, want 0.25", got.MusicVolume)
	}
	if got.MusicEnabled {
		t.Error("MusicEnabled should persist as false")
	}
	if !got.Fullscreen {
		t.Error("Fullscreen should persist as true")
	}
}

func TestSetMusicVolumeClamp(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   float64
	}{
		{"正常值", 0.3, 0.3},
		{"负值", -0.5, 0.0},
		{"超过上限", 1.5, 1.0},
		{"边界 0", 0.0, 0.0},
		{"边界 1", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil)
			sm.SetMusicVolume(tt.volume)
			if got := sm.Settings().MusicVolume; got != tt.want {
				t.Errorf("SetMusicVolume(%v): got %v, want %v", tt.volume, got, tt.want)
			}
		})
	}
}

func TestStepMusicVolume(t *testing.T) {
	store := openTestStore(t)
	sm := NewSettingsManager(store)

	if got := sm.StepMusicVolume(-VolumeStep); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("StepMusicVolume(-step) = %v, want 0.4", got)
	}
	for i := 0; i < 20; i++ {
		sm.StepMusicVolume(VolumeStep)
	}
	if got := sm.Settings().MusicVolume; got != 1.0 {
		t.Errorf("volume after many steps up = %v, want 1.0", got)
	}

	// 每次调整都立即保存
	if got := NewSettingsManager(store).Settings().MusicVolume; got != 1.0 {
		t.Errorf("reloaded volume = %v, want 1.0", got)
	}
}
