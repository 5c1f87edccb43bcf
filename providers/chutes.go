package providers

import (
	"context"
	"net/http"
	"strings"

	"github.com/rjbiz/jams/config"
	"github.com/rjbiz/jams/consts"
)

const (
	chutesDefaultModel  = "deepseek-ai/DeepSeek-R1"
	chutesDevstralModel = "chutesai/Devstral-Small-2505"
)

type Chutes struct {
	compat openAICompatible
}

func NewChutes(cfg config.ChutesConfig, client *http.Client) *Chutes {
	return &Chutes{
		compat: openAICompatible{
			kind:    consts.ProviderChutes,
			baseURL: cfg.BaseURL,
			apiKey:  cfg.APIKey,
			client:  client,
		},
	}
}

// ChutesModel 把客户端模型名映射为 Chutes 上游模型 id
//
//	chutesai/deepseek-ai/DeepSeek-R1       -> deepseek-ai/DeepSeek-R1
//	chutesai/chutesai/Devstral-Small-2505  -> chutesai/Devstral-Small-2505
func ChutesModel(model string) string {
	switch {
	case strings.Contains(model, "chutesai/"):
		return strings.Replace(model, "chutesai/", "", 1)
	case strings.Contains(model, "deepseek"):
		return chutesDefaultModel
	case strings.Contains(model, "devstral"):
		return chutesDevstralModel
	default:
		return chutesDefaultModel
	}
}

func (c *Chutes) Chat(ctx context.Context, model string, messages []Message) (*Completion, error) {
	if c.compat.apiKey == "" {
		return nil, &ConfigurationError{Provider: consts.ProviderChutes, Setting: "API key"}
	}
	return c.compat.complete(ctx, ChutesModel(model), messages)
}
