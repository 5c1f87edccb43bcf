package providers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/rjbiz/jams/consts"
)

// openAICompatible 调用 OpenAI 兼容的 /chat/completions 接口，不重试、不流式
type openAICompatible struct {
	kind    consts.ProviderKind
	baseURL string
	apiKey  string
	headers map[string]string
	client  *http.Client
}

func (o *openAICompatible) complete(ctx context.Context, model string, messages []Message) (*Completion, error) {
	opts := []option.RequestOption{
		option.WithBaseURL(withTrailingSlash(o.baseURL)),
		option.WithAPIKey(o.apiKey),
		option.WithMaxRetries(0),
		option.WithJSONSet("stream", false),
		option.WithMiddleware(upstreamStatusGuard(o.kind)),
	}
	if o.client != nil {
		opts = append(opts, option.WithHTTPClient(o.client))
	}
	for key, value := range o.headers {
		opts = append(opts, option.WithHeader(key, value))
	}
	client := openai.NewClient(opts...)

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: toOpenAIMessages(messages),
	})
	if err != nil {
		return nil, o.wrapError(err)
	}
	return completionFromJSON([]byte(completion.RawJSON()), model), nil
}

func (o *openAICompatible) wrapError(err error) error {
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr
	}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		body := apiErr.RawJSON()
		if body == "" {
			body = apiErr.Error()
		}
		return &UpstreamError{Provider: o.kind, StatusCode: apiErr.StatusCode, Body: body, Err: err}
	}
	return &UpstreamError{Provider: o.kind, Err: err}
}

// upstreamStatusGuard 非 2xx 时直接读取原始响应体，保留状态码和错误文本
func upstreamStatusGuard(kind consts.ProviderKind) option.Middleware {
	return func(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		res, err := next(req)
		if err != nil {
			return res, err
		}
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			defer res.Body.Close()
			body, _ := io.ReadAll(res.Body)
			return nil, &UpstreamError{Provider: kind, StatusCode: res.StatusCode, Body: string(body)}
		}
		return res, nil
	}
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			params = append(params, openai.SystemMessage(m.Content))
		case "assistant":
			params = append(params, openai.AssistantMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}
	return params
}

func withTrailingSlash(base string) string {
	if strings.HasSuffix(base, "/") {
		return base
	}
	return base + "/"
}
