package audio

import (
	"strings"
	"testing"
)

func TestDecodeStreamUnsupportedFormat(t *testing.T) {
	tests := []string{".wav", ".au", ""}

	for _, ext := range tests {
		_, err := decodeStream([]byte("RIFF"), ext)
		if err == nil {
			t.Errorf("decodeStream(%q) should fail", ext)
			continue
		}
		if !strings.Contains(err.Error(), "unsupported audio format") {
			t.Errorf("decodeStream(%q) error = %v", ext, err)
		}
	}
}

func TestDecodeStreamCorruptMP3(t *testing.T) {
	if _, err := decodeStream([]byte("not an mp3"), ".MP3"); err == nil {
		t.Error("corrupt mp3 data should fail to decode")
	}
}
