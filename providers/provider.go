package providers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rjbiz/jams/config"
	"github.com/rjbiz/jams/consts"
	"github.com/rjbiz/jams/models"
	"github.com/tidwall/gjson"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completion 归一化后的对话结果
type Completion struct {
	Content       string
	Usage         models.Usage
	Raw           []byte // {"choices":[{"message":{...}}],"usage":{...}}
	UpstreamModel string // 实际发给上游的模型名
}

type Provider interface {
	Chat(ctx context.Context, model string, messages []Message) (*Completion, error)
}

// Registry 按服务商类型持有适配器
type Registry struct {
	providers map[consts.ProviderKind]Provider
}

func NewRegistry(cfg *config.Config) *Registry {
	client := GetClient(cfg.App.UpstreamTimeout())
	return &Registry{
		providers: map[consts.ProviderKind]Provider{
			consts.ProviderOpenRouter: NewOpenRouter(cfg.OpenRouter, client),
			consts.ProviderMiniMax:    NewMiniMax(cfg.MiniMax, client),
			consts.ProviderChutes:     NewChutes(cfg.Chutes, client),
		},
	}
}

// Set 替换某个服务商的适配器
func (r *Registry) Set(kind consts.ProviderKind, provider Provider) {
	if r.providers == nil {
		r.providers = make(map[consts.ProviderKind]Provider)
	}
	r.providers[kind] = provider
}

func (r *Registry) Get(kind consts.ProviderKind) (Provider, error) {
	provider, ok := r.providers[kind]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", kind)
	}
	return provider, nil
}

// completionFromJSON 从 OpenAI 兼容响应中提取内容和用量
func completionFromJSON(raw []byte, upstreamModel string) *Completion {
	content := gjson.GetBytes(raw, "choices.0.message.content").String()
	if content == "" {
		content = gjson.GetBytes(raw, "message.content").String()
	}
	if content == "" {
		content = string(raw)
	}
	return &Completion{
		Content:       content,
		Usage:         usageFromJSON(raw),
		Raw:           raw,
		UpstreamModel: upstreamModel,
	}
}

func usageFromJSON(raw []byte) models.Usage {
	usage := gjson.GetBytes(raw, "usage")
	if !usage.IsObject() {
		return models.Usage{}
	}
	return models.Usage{
		PromptTokens:     usage.Get("prompt_tokens").Int(),
		CompletionTokens: usage.Get("completion_tokens").Int(),
		TotalTokens:      usage.Get("total_tokens").Int(),
		Raw:              json.RawMessage(usage.Raw),
	}
}
