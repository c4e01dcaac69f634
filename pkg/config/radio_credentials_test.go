package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRadioCredentialsMissingFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	creds, err := LoadRadioCredentials(filepath.Join(t.TempDir(), "radio.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if creds.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", creds.APIKey)
	}
}

func TestRadioCredentialsRoundTrip(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")

	path := filepath.Join(t.TempDir(), "timetrain", "radio.toml")
	want := &RadioCredentials{APIKey: "file-key", Model: "gemini-2.5-pro"}
	if err := SaveRadioCredentials(path, want); err != nil {
		t.Fatalf("SaveRadioCredentials() error: %v", err)
	}

	got, err := LoadRadioCredentials(path)
	if err != nil {
		t.Fatalf("LoadRadioCredentials() error: %v", err)
	}
	if *got != *want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestRadioCredentialsEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radio.toml")
	if err := os.WriteFile(path, []byte("APIKey = \"file-key\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	tests := []struct {
		name   string
		gemini string
		apiKey string
		want   string
	}{
		{"file only", "", "", "file-key"},
		{"API_KEY overrides file", "", "env-key", "env-key"},
		{"GEMINI_API_KEY wins", "gemini-key", "env-key", "gemini-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GEMINI_API_KEY", tt.gemini)
			t.Setenv("API_KEY", tt.apiKey)

			creds, err := LoadRadioCredentials(path)
			if err != nil {
				t.Fatalf("LoadRadioCredentials() error: %v", err)
			}
			if creds.APIKey != tt.want {
				t.Errorf("APIKey = %q, want %q", creds.APIKey, tt.want)
			}
		})
	}
}

func TestLoadRadioCredentialsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radio.toml")
	if err := os.WriteFile(path, []byte("APIKey = \n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadRadioCredentials(path); err == nil {
		t.Fatal("expected parse error")
	}
}
