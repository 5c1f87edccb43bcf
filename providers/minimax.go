package providers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rjbiz/jams/config"
	"github.com/rjbiz/jams/consts"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	minimaxM1Model   = "MiniMax-M1"
	minimaxTextModel = "MiniMax-Text-01"
)

// MiniMax 调用 chatcompletion_v2，按 GroupId 区分账户
type MiniMax struct {
	BaseURL string
	APIKey  string
	GroupID string
	client  *http.Client
}

func NewMiniMax(cfg config.MiniMaxConfig, client *http.Client) *MiniMax {
	return &MiniMax{
		BaseURL: cfg.BaseURL,
		APIKey:  cfg.APIKey,
		GroupID: cfg.GroupID,
		client:  client,
	}
}

// MiniMaxModel 只认两个具体模型，其余一律回落到 MiniMax-M1
func MiniMaxModel(model string) string {
	switch {
	case strings.Contains(model, "MiniMax-M1") || strings.Contains(model, "m1"):
		return minimaxM1Model
	case strings.Contains(model, "MiniMax-Text") || strings.Contains(model, "text-01"):
		return minimaxTextModel
	default:
		return minimaxM1Model
	}
}

func (m *MiniMax) BuildReq(ctx context.Context, model string, messages []Message) (*http.Request, error) {
	body, err := sjson.SetBytes([]byte(`{}`), "model", model)
	if err != nil {
		return nil, err
	}
	if body, err = sjson.SetBytes(body, "messages", messages); err != nil {
		return nil, err
	}
	if body, err = sjson.SetBytes(body, "stream", false); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/text/chatcompletion_v2?GroupId=%s", strings.TrimRight(m.BaseURL, "/"), url.QueryEscape(m.GroupID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", m.APIKey))
	return req, nil
}

func (m *MiniMax) Chat(ctx context.Context, model string, messages []Message) (*Completion, error) {
	if m.APIKey == "" {
		return nil, &ConfigurationError{Provider: consts.ProviderMiniMax, Setting: "API key"}
	}
	if m.GroupID == "" {
		return nil, &ConfigurationError{Provider: consts.ProviderMiniMax, Setting: "group id"}
	}

	upstreamModel := MiniMaxModel(model)
	req, err := m.BuildReq(ctx, upstreamModel, messages)
	if err != nil {
		return nil, err
	}

	client := m.client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, &UpstreamError{Provider: consts.ProviderMiniMax, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &UpstreamError{Provider: consts.ProviderMiniMax, Err: err}
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, &UpstreamError{Provider: consts.ProviderMiniMax, StatusCode: res.StatusCode, Body: string(body)}
	}

	return normalizeMiniMax(body, upstreamModel)
}

// normalizeMiniMax 把 {choices} 或 {reply} 转成统一的 choices 结构
func normalizeMiniMax(body []byte, upstreamModel string) (*Completion, error) {
	content := gjson.GetBytes(body, "choices.0.message.content").String()
	if content == "" {
		content = gjson.GetBytes(body, "reply").String()
	}
	if content == "" {
		content = string(body)
	}

	usage := usageFromJSON(body)
	normalized, err := sjson.SetBytes([]byte(`{"choices":[{"message":{}}]}`), "choices.0.message.content", content)
	if err != nil {
		return nil, err
	}
	if normalized, err = sjson.SetBytes(normalized, "choices.0.message.role", "assistant"); err != nil {
		return nil, err
	}
	if normalized, err = sjson.SetRawBytes(normalized, "usage", usage.JSON()); err != nil {
		return nil, err
	}

	return &Completion{
		Content:       content,
		Usage:         usage,
		Raw:           normalized,
		UpstreamModel: upstreamModel,
	}, nil
}
