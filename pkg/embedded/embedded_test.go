package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/tuning.yaml": {Data: []byte("track:\n  length: 10000\n")},
	}
}

func TestNotInitialized(t *testing.T) {
	initialized = false
	dataFS = nil

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}
	_, err := ReadFile("data/tuning.yaml")
	if err == nil || err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error: %v", err)
	}
	if Exists("data/tuning.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer func() { initialized = false }()

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "data/tuning.yaml", false},
		{"带 ./ 前缀", "./data/tuning.yaml", false},
		{"文件不存在", "data/missing.yaml", true},
		{"未知前缀", "assets/theme.mp3", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Errorf("ReadFile(%q) returned empty data", tt.path)
			}
			if got := Exists(tt.path); got == tt.wantErr {
				t.Errorf("Exists(%q) = %v", tt.path, got)
			}
		})
	}
}
