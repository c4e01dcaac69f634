// Package narrative 实现 Doc Brown 电台：在每局结束时请求一句解说
//
// 解说请求在独立 goroutine 中执行，帧循环只通过 Radio.Update 非阻塞地接收结果。
package narrative

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/decker502/timetrain/pkg/config"
	"github.com/decker502/timetrain/pkg/types"
	"google.golang.org/genai"
)

// Commentator 根据结局生成一句解说
//
// 实现必须总是返回可显示的文本：服务失败时返回降级台词而不是错误。
type Commentator interface {
	Commentary(ctx context.Context, phase types.Phase, speed float64) string
}

// TextGenerator 文本生成服务的最小接口
type TextGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// GenaiGenerator 基于 google.golang.org/genai 的 TextGenerator
type GenaiGenerator struct {
	client *genai.Client
}

// NewGenaiGenerator 创建 Gemini API 客户端
func NewGenaiGenerator(ctx context.Context, apiKey string) (*GenaiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GenaiGenerator{client: client}, nil
}

// GenerateText 发送单轮文本提示并返回回复文本
func (g *GenaiGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}

// DocBrown 默认解说员
type DocBrown struct {
	generator TextGenerator // 为 nil 表示缺少凭据
	model     string
	cfg       *config.NarrativeConfig
}

// NewDocBrown 创建解说员
//
// 参数:
//   - generator: 文本生成服务，为 nil 时所有解说都返回 "API Key 缺失" 台词
//   - model: 模型名称，为空时使用配置文件中的模型
//   - cfg: 电台配置（提示词与降级台词）
func NewDocBrown(generator TextGenerator, model string, cfg *config.NarrativeConfig) *DocBrown {
	if model == "" {
		model = cfg.Model
	}
	return &DocBrown{generator: generator, model: model, cfg: cfg}
}

// NewDocBrownFromCredentials 根据凭据创建解说员
// 没有 API Key 或客户端创建失败时返回降级解说员，不返回错误
func NewDocBrownFromCredentials(ctx context.Context, creds *config.RadioCredentials, cfg *config.NarrativeConfig) *DocBrown {
	if creds == nil || creds.APIKey == "" {
		log.Printf("[Radio] Warning: no API key configured, radio runs in fallback mode")
		return NewDocBrown(nil, "", cfg)
	}

	generator, err := NewGenaiGenerator(ctx, creds.APIKey)
	if err != nil {
		log.Printf("[Radio] Warning: %v", err)
		return NewDocBrown(nil, creds.Model, cfg)
	}
	return NewDocBrown(generator, creds.Model, cfg)
}

// Commentary 实现 Commentator
//
// 非结局阶段没有可解说的内容，直接返回空回复台词，不请求服务。
func (d *DocBrown) Commentary(ctx context.Context, phase types.Phase, speed float64) string {
	if !phase.IsOutcome() {
		return d.cfg.Fallback.EmptyReply
	}
	if d.generator == nil {
		return d.cfg.Fallback.MissingKey
	}

	prompt := d.Prompt(phase, speed)
	text, err := d.generator.GenerateText(ctx, d.model, prompt)
	if err != nil {
		log.Printf("[Radio] Warning: request for %s failed: %v", phase, err)
		return d.cfg.Fallback.ServiceError
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return d.cfg.Fallback.EmptyReply
	}
	return text
}

// Prompt 返回结局对应的提示词（速度保留一位小数）
// 非结局阶段返回空字符串
func (d *DocBrown) Prompt(phase types.Phase, speed float64) string {
	var tmpl string
	switch phase {
	case types.PhaseWon:
		tmpl = d.cfg.Prompts.Won
	case types.PhaseCrashed:
		tmpl = d.cfg.Prompts.Crashed
	case types.PhaseBuildingCrash:
		tmpl = d.cfg.Prompts.BuildingCrash
	default:
		return ""
	}
	return fmt.Sprintf(tmpl, speed)
}
