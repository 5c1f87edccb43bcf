package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rjbiz/jams/consts"
	"github.com/rjbiz/jams/metrics"
	"github.com/rjbiz/jams/providers"
)

// ValidationError 请求参数缺失，对应 400
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RunError 上游或配置失败，带上已选中的服务商
type RunError struct {
	Provider consts.ProviderKind
	Err      error
}

func (e *RunError) Error() string {
	return e.Err.Error()
}

func (e *RunError) Unwrap() error {
	return e.Err
}

type AgentRunRequest struct {
	AgentName string `json:"agent_name"`
	Task      string `json:"task"`
	Model     string `json:"model"`
	Stream    bool   `json:"stream"` // 接受但忽略
}

type AgentRunResult struct {
	Agent     string              `json:"agent"`
	Model     string              `json:"model"`
	Provider  consts.ProviderKind `json:"provider"`
	Result    string              `json:"result"`
	Usage     json.RawMessage     `json:"usage"`
	Timestamp string              `json:"timestamp"`
}

type Gateway struct {
	registry     *providers.Registry
	tracker      *Tracker
	defaultModel string
	now          func() time.Time
}

func NewGateway(registry *providers.Registry, tracker *Tracker, defaultModel string) *Gateway {
	return &Gateway{
		registry:     registry,
		tracker:      tracker,
		defaultModel: defaultModel,
		now:          time.Now,
	}
}

func (g *Gateway) Tracker() *Tracker {
	return g.tracker
}

// ResolveModel 请求模型 > DEFAULT_MODEL > deepseek/deepseek-chat
func (g *Gateway) ResolveModel(model string) string {
	if model != "" {
		return model
	}
	if g.defaultModel != "" {
		return g.defaultModel
	}
	return consts.FallbackModel
}

func systemPrompt(agentName string) string {
	persona := agentName
	if persona == "" {
		persona = consts.DefaultPersona
	}
	return fmt.Sprintf("You are %s. Provide expert guidance and execute tasks efficiently.", persona)
}

// RunAgent 选服务商、调用一次上游并累计成本。成本写入失败只记日志
func (g *Gateway) RunAgent(ctx context.Context, req AgentRunRequest) (*AgentRunResult, error) {
	if req.Task == "" {
		return nil, &ValidationError{Message: "Task required"}
	}

	model := g.ResolveModel(req.Model)
	kind := providers.Classify(model)

	provider, err := g.registry.Get(kind)
	if err != nil {
		return nil, &RunError{Provider: kind, Err: err}
	}

	messages := []providers.Message{
		{Role: "system", Content: systemPrompt(req.AgentName)},
		{Role: "user", Content: req.Task},
	}

	start := time.Now()
	completion, err := provider.Chat(ctx, model, messages)
	if err != nil {
		metrics.RecordAgentRun(kind.String(), time.Since(start), 0, err)
		slog.Error("agent run failed", "provider", kind, "model", model, "error", err)
		return nil, &RunError{Provider: kind, Err: err}
	}
	metrics.RecordAgentRun(kind.String(), time.Since(start), completion.Usage.TotalTokens, nil)

	cost, err := g.tracker.Accrue(ctx, completion.Usage, model, kind, completion.UpstreamModel)
	if err != nil {
		metrics.RecordAccrualError()
		slog.Error("cost accrual failed", "provider", kind, "model", model, "error", err)
	} else {
		metrics.RecordCost(kind.String(), cost.InexactFloat64())
	}

	agent := req.AgentName
	if agent == "" {
		agent = consts.UnknownAgent
	}

	return &AgentRunResult{
		Agent:     agent,
		Model:     model,
		Provider:  kind,
		Result:    completion.Content,
		Usage:     completion.Usage.JSON(),
		Timestamp: g.now().UTC().Format(consts.TimestampLayout),
	}, nil
}
