package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NarrativeConfig Doc Brown 电台配置
//
// 配置文件位置: data/narrative.yaml
type NarrativeConfig struct {
	// Model 使用的生成模型名称
	Model string `yaml:"model"`

	// StartMessage 回到开始阶段时显示的固定台词
	StartMessage string `yaml:"startMessage"`

	Fallback NarrativeFallback `yaml:"fallback"`
	Prompts  NarrativePrompts  `yaml:"prompts"`
}

// NarrativeFallback 服务不可用时的降级台词
type NarrativeFallback struct {
	MissingKey   string `yaml:"missingKey"`
	ServiceError string `yaml:"serviceError"`
	EmptyReply   string `yaml:"emptyReply"`
}

// NarrativePrompts 各结局的提示词模板，包含一个 %.1f 占位符（最终速度）
type NarrativePrompts struct {
	Won           string `yaml:"won"`
	Crashed       string `yaml:"crashed"`
	BuildingCrash string `yaml:"buildingCrash"`
}

// DefaultNarrative 返回与 data/narrative.yaml 一致的默认配置
func DefaultNarrative() *NarrativeConfig {
	return &NarrativeConfig{
		Model:        "gemini-2.5-flash",
		StartMessage: "Marty! Hit 88 MPH at the wire! Don't crash!",
		Fallback: NarrativeFallback{
			MissingKey:   "Great Scott! The API Key is missing!",
			ServiceError: "This is heavy! The radio is broken!",
			EmptyReply:   "Great Scott!",
		},
		Prompts: NarrativePrompts{
			Won:           "You are Doc Brown from Back to the Future. The user just successfully hit the lightning cable at %.1f MPH and time traveled! Give a short, ecstatic congratulatory remark (max 2 sentences). Mention 1.21 gigawatts.",
			Crashed:       "You are Doc Brown. The user crashed the DeLorean into an obstacle at %.1f MPH. Give a short, frantic warning or scolding about being careful with the time machine (max 2 sentences).",
			BuildingCrash: "You are Doc Brown. The user failed to reach 88 MPH (only hit %.1f MPH) and crashed into the theater/building at the end of the street. Express despair that we are stuck in this timeline (max 2 sentences).",
		},
	}
}

// LoadNarrativeConfig 从文件系统加载电台配置
func LoadNarrativeConfig(path string) (*NarrativeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read narrative config: %w", err)
	}
	return ParseNarrativeConfig(data)
}

// ParseNarrativeConfig 解析 YAML 格式的电台配置，缺省字段保留默认值
func ParseNarrativeConfig(data []byte) (*NarrativeConfig, error) {
	config := DefaultNarrative()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse narrative config: %w", err)
	}
	if config.Model == "" {
		return nil, fmt.Errorf("invalid narrative config: model is empty")
	}
	return config, nil
}
