package providers

import (
	"context"
	"net/http"

	"github.com/rjbiz/jams/config"
	"github.com/rjbiz/jams/consts"
)

// OpenRouter 透传模型名和消息，响应本身已是归一化格式
type OpenRouter struct {
	compat openAICompatible
}

func NewOpenRouter(cfg config.OpenRouterConfig, client *http.Client) *OpenRouter {
	return &OpenRouter{
		compat: openAICompatible{
			kind:    consts.ProviderOpenRouter,
			baseURL: cfg.BaseURL,
			apiKey:  cfg.Key(),
			headers: map[string]string{
				"HTTP-Referer": cfg.Referer,
				"X-Title":      cfg.Title,
			},
			client: client,
		},
	}
}

func (o *OpenRouter) Chat(ctx context.Context, model string, messages []Message) (*Completion, error) {
	if o.compat.apiKey == "" {
		return nil, &ConfigurationError{Provider: consts.ProviderOpenRouter, Setting: "API key"}
	}
	return o.compat.complete(ctx, model, messages)
}
