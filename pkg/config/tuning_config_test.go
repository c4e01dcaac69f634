package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseTuningConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *TuningConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
physics:
  maxSpeed: 100
  winSpeed: 90
`,
			validate: func(t *testing.T, cfg *TuningConfig) {
				if cfg.Physics.MaxSpeed != 100 {
					t.Errorf("expected maxSpeed = 100, got %f", cfg.Physics.MaxSpeed)
				}
				if cfg.Physics.WinSpeed != 90 {
					t.Errorf("expected winSpeed = 90, got %f", cfg.Physics.WinSpeed)
				}
				// 未覆盖的字段保持默认
				if cfg.Physics.AccelRate != 0.148 {
					t.Errorf("expected default accelRate = 0.148, got %f", cfg.Physics.AccelRate)
				}
				if cfg.Track.CableDistance != 8800 {
					t.Errorf("expected default cableDistance = 8800, got %f", cfg.Track.CableDistance)
				}
			},
		},
		{
			name: "cable after building",
			yamlContent: `
track:
  cableDistance: 9900
  buildingDistance: 9800
`,
			wantErr:     true,
			errContains: "before building",
		},
		{
			name: "building beyond track",
			yamlContent: `
track:
  length: 9000
`,
			wantErr:     true,
			errContains: "exceeds track length",
		},
		{
			name: "win speed above max",
			yamlContent: `
physics:
  winSpeed: 120
`,
			wantErr:     true,
			errContains: "win speed",
		},
		{
			name: "inverted gap range",
			yamlContent: `
obstacles:
  gapMin: 900
  gapMax: 300
`,
			wantErr:     true,
			errContains: "gap range",
		},
		{
			name: "win thresholds out of order",
			yamlContent: `
winSequence:
  fadeInFrom: 50
  fadeOutFrom: 60
`,
			wantErr:     true,
			errContains: "win sequence",
		},
		{
			name:        "malformed yaml",
			yamlContent: "track: [1, 2",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseTuningConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

// TestTuningFileMatchesDefaults 确保 data/tuning.yaml 与 DefaultTuning() 保持一致
func TestTuningFileMatchesDefaults(t *testing.T) {
	cfg, err := LoadTuningConfig(filepath.Join("..", "..", "data", "tuning.yaml"))
	if err != nil {
		t.Fatalf("LoadTuningConfig() error: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultTuning()) {
		t.Errorf("data/tuning.yaml differs from DefaultTuning():\n file: %+v\n code: %+v", cfg, DefaultTuning())
	}
}

func TestLoadTuningConfigMissingFile(t *testing.T) {
	_, err := LoadTuningConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadTuningConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  steeringStep: 6\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadTuningConfig(path)
	if err != nil {
		t.Fatalf("LoadTuningConfig() error: %v", err)
	}
	if cfg.Physics.SteeringStep != 6 {
		t.Errorf("SteeringStep = %v, want 6", cfg.Physics.SteeringStep)
	}
}

func TestDerivedLayoutValues(t *testing.T) {
	cfg := DefaultTuning()

	if got := cfg.Layout.MaxLateralOffset(); got != 174 {
		t.Errorf("MaxLateralOffset() = %v, want 174", got)
	}
	if got := cfg.Layout.HookScreenY(); got != 566 {
		t.Errorf("HookScreenY() = %v, want 566", got)
	}
	if got := cfg.ObstacleLaneHalfWidth(); got != 140 {
		t.Errorf("ObstacleLaneHalfWidth() = %v, want 140", got)
	}
	if got := cfg.ObstacleSpawnLimit(); got != 8000 {
		t.Errorf("ObstacleSpawnLimit() = %v, want 8000", got)
	}
}
