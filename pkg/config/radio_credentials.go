package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// RadioCredentials 电台服务凭据（用户级配置）
//
// 文件位置: ~/.config/timetrain/radio.toml
//
//	APIKey = "..."
//	Model = "gemini-2.5-flash"
//
// 环境变量 GEMINI_API_KEY / API_KEY 优先于文件中的 APIKey。
type RadioCredentials struct {
	APIKey string
	Model  string
}

// RadioCredentialsPath 返回默认的凭据文件路径
func RadioCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "timetrain", "radio.toml")
}

// LoadRadioCredentials 加载电台凭据
//
// 文件不存在不是错误（返回空凭据，由调用方降级为固定台词）。
//
// 参数:
//   - path: 凭据文件路径，为空时只读取环境变量
func LoadRadioCredentials(path string) (*RadioCredentials, error) {
	creds := &RadioCredentials{}

	if path != "" {
		if _, err := toml.DecodeFile(path, creds); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to parse radio credentials %s: %w", path, err)
		}
	}

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		creds.APIKey = key
	} else if key := os.Getenv("API_KEY"); key != "" {
		creds.APIKey = key
	}

	return creds, nil
}

// SaveRadioCredentials 将凭据写入 TOML 文件（用于 -radio-key 首次配置）
func SaveRadioCredentials(path string, creds *RadioCredentials) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create radio credentials: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(creds); err != nil {
		return fmt.Errorf("failed to encode radio credentials: %w", err)
	}
	return nil
}
