package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PlayerSettings 玩家偏好设置
// 只保存偏好，不保存成绩（每局独立）
type PlayerSettings struct {
	MusicVolume  float64 `yaml:"musicVolume"`  // 主题曲音量 0.0 ~ 1.0
	MusicEnabled bool    `yaml:"musicEnabled"` // 主题曲开关（M 键切换）
	Fullscreen   bool    `yaml:"fullscreen"`   // 启动时是否全屏（F11 切换）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *PlayerSettings {
	return &PlayerSettings{
		MusicVolume:  0.5,
		MusicEnabled: true,
		Fullscreen:   false,
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	store    *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings *PlayerSettings
}

// VolumeStep 每次按音量键调整的幅度
const VolumeStep = 0.1

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
//
// 参数：
//   - store: gdata 存储管理器，可为 nil
//
// 加载失败不是致命错误，记录警告后使用默认设置。
func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// OpenSettingsStore 打开 gdata 存储
// 失败时返回 nil 和错误，调用方可以继续以降级模式运行
func OpenSettingsStore(appName string) (*gdata.Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	return store, nil
}

// Load 从 gdata 加载设置
// 降级模式或尚未保存过时使用默认设置
func (sm *SettingsManager) Load() error {
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.MusicVolume = clampVolume(loaded.MusicVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded (music=%v volume=%.2f fullscreen=%v)",
		loaded.MusicEnabled, loaded.MusicVolume, loaded.Fullscreen)
	return nil
}

// Save 保存设置
// 降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Settings 返回当前设置
func (sm *SettingsManager) Settings() *PlayerSettings {
	return sm.settings
}

// SetMusicVolume 设置音量（限制在 0.0 ~ 1.0），需调用 Save 持久化
func (sm *SettingsManager) SetMusicVolume(volume float64) {
	sm.settings.MusicVolume = clampVolume(volume)
}

// StepMusicVolume 按 delta 调整音量并立即保存
//
// 返回:
//   - float64: 调整后的音量
func (sm *SettingsManager) StepMusicVolume(delta float64) float64 {
	sm.SetMusicVolume(sm.settings.MusicVolume + delta)
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
	return sm.settings.MusicVolume
}

// ToggleMusic 切换主题曲开关并立即保存
//
// 返回:
//   - bool: 切换后的开关状态
func (sm *SettingsManager) ToggleMusic() bool {
	sm.settings.MusicEnabled = !sm.settings.MusicEnabled
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
	return sm.settings.MusicEnabled
}

// SetFullscreen 设置全屏并立即保存
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
	if err := sm.Save(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	}
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
