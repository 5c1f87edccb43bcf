package service

import (
	"fmt"

	"github.com/rjbiz/jams/consts"
	"github.com/rjbiz/jams/models"
	"github.com/samber/lo"
)

const agentsPerDepartment = 10

var departments = []string{
	"Composition", "Sound Design", "Recording", "Editing", "Mixing",
	"Mastering", "Post-Production", "Quality Control", "Metadata", "Distribution", "Orchestration",
}

// 目录是静态的，启动时生成一次
var agentCatalog = buildAgents()

func buildAgents() []models.Agent {
	return lo.FlatMap(departments, func(dept string, d int) []models.Agent {
		return lo.Times(agentsPerDepartment, func(i int) models.Agent {
			n := i + 1
			return models.Agent{
				ID:           fmt.Sprintf("agent-%d-%d", d+1, n),
				Name:         fmt.Sprintf("%s Agent %d", dept, n),
				Department:   dept,
				Status:       "idle",
				Capabilities: []string{fmt.Sprintf("%s task %d", dept, n)},
			}
		})
	})
}

func Departments() []string {
	return departments
}

// ListAgents 返回 agent 目录的副本；department 为空时返回全部
func ListAgents(department string) []models.Agent {
	if department == "" {
		return append([]models.Agent(nil), agentCatalog...)
	}
	return lo.Filter(agentCatalog, func(a models.Agent, _ int) bool {
		return a.Department == department
	})
}

// AgentByID 占位记录，不查目录
func AgentByID(id string) models.Agent {
	return models.Agent{
		ID:         id,
		Name:       "Agent " + id,
		Status:     "idle",
		Department: "Production",
	}
}

func textModel(id, name string, provider consts.ProviderKind, cost float64, context int) models.ModelInfo {
	return models.ModelInfo{ID: id, Name: name, Provider: provider.String(), Cost: cost, Context: context}
}

var modelCatalog = []models.ModelInfo{
	// OpenRouter 免费
	textModel("openrouter/sherlock-dash-alpha", "Sherlock Dash Alpha (Free)", consts.ProviderOpenRouter, 0, 1840000),
	textModel("openrouter/sherlock-think-alpha", "Sherlock Think Alpha (Free)", consts.ProviderOpenRouter, 0, 1840000),
	textModel("google/gemini-2.0-flash-exp:free", "Google Gemini 2.0 Flash Experimental (Free)", consts.ProviderOpenRouter, 0, 1048576),
	textModel("deepseek/deepseek-r1:free", "DeepSeek R1 (Free)", consts.ProviderOpenRouter, 0, 163840),
	textModel("meta-llama/llama-3.3-70b-instruct:free", "Meta Llama 3.3 70B (Free)", consts.ProviderOpenRouter, 0, 131072),
	textModel("qwen/qwen-2.5-72b-instruct:free", "Qwen 2.5 72B (Free)", consts.ProviderOpenRouter, 0, 32768),
	textModel("mistralai/mistral-small-24b-instruct-2501:free", "Mistral Small 3 (Free)", consts.ProviderOpenRouter, 0, 32768),

	// OpenRouter 付费
	textModel("deepseek/deepseek-chat", "DeepSeek Chat", consts.ProviderOpenRouter, 0.00014, 64000),
	textModel("deepseek/deepseek-r1", "DeepSeek R1", consts.ProviderOpenRouter, 0.00014, 163840),
	textModel("qwen/qwen-2.5-72b-instruct", "Qwen 2.5 72B Instruct", consts.ProviderOpenRouter, 0.00007, 32768),
	textModel("openai/gpt-4o-mini", "OpenAI GPT-4o Mini", consts.ProviderOpenRouter, 0.00015, 128000),
	textModel("anthropic/claude-3-haiku", "Anthropic Claude 3 Haiku", consts.ProviderOpenRouter, 0.00025, 200000),
	textModel("mistralai/mistral-small", "Mistral Small", consts.ProviderOpenRouter, 0.00020, 32768),
	textModel("mistralai/mistral-nemo", "Mistral Nemo", consts.ProviderOpenRouter, 0.00002, 131072),
	textModel("meta-llama/llama-3.3-70b-instruct", "Meta Llama 3.3 70B", consts.ProviderOpenRouter, 0.00013, 131072),
	textModel("google/gemini-2.0-flash-001", "Google Gemini 2.0 Flash", consts.ProviderOpenRouter, 0.00010, 1048576),

	// OpenRouter 代码
	textModel("deepseek/deepseek-r1-distill-llama-70b", "DeepSeek R1 Distill Llama 70B", consts.ProviderOpenRouter, 0.00003, 131072),
	textModel("mistralai/codestral-2508", "Mistral Codestral 2508", consts.ProviderOpenRouter, 0.00030, 256000),

	// OpenRouter 音乐制作
	textModel("qwen/qwen-2.5-vl-72b-instruct", "Qwen 2.5 VL 72B (Multimodal)", consts.ProviderOpenRouter, 0.00008, 32768),
	textModel("qwen/qwen3-30b-a3b", "Qwen3 30B A3B", consts.ProviderOpenRouter, 0.00006, 40960),

	// MiniMax
	{ID: "minimax/MiniMax-M1", Name: "MiniMax M1 (80K CoT, 1M Context)", Provider: "minimax", Cost: 0.00020, Context: 1000192, Features: []string{"streaming", "function_calling", "reasoning"}},
	textModel("minimax/MiniMax-Text-01", "MiniMax Text-01", consts.ProviderMiniMax, 0.00015, 1000192),
	{ID: "minimax/speech-2.5-hd-preview", Name: "MiniMax Speech 2.5 HD (TTS)", Provider: "minimax", Cost: 0.00015, Type: "audio", Languages: 40, Emotions: 7},
	{ID: "minimax/speech-2.5-turbo-preview", Name: "MiniMax Speech 2.5 Turbo (TTS)", Provider: "minimax", Cost: 0.00010, Type: "audio", Languages: 40, Emotions: 7},
	{ID: "minimax/speech-02-hd", Name: "MiniMax Speech 02 HD", Provider: "minimax", Cost: 0.00012, Type: "audio", Languages: 24},
	{ID: "minimax/speech-02-turbo", Name: "MiniMax Speech 02 Turbo", Provider: "minimax", Cost: 0.00008, Type: "audio", Languages: 24},
	{ID: "minimax/music-1.5", Name: "MiniMax Music 1.5 (Music Generation)", Provider: "minimax", Cost: 0.00050, Type: "music"},
	{ID: "minimax/video-hailuo-02", Name: "MiniMax Hailuo 02 (Text/Image to Video)", Provider: "minimax", Cost: 0.00100, Type: "video", Resolution: "1080p/768p/512p", FPS: 24},
	{ID: "minimax/video-t2v-director", Name: "MiniMax T2V Director (Text to Video)", Provider: "minimax", Cost: 0.00080, Type: "video", Resolution: "720p", FPS: 25},

	// Chutes
	textModel("chutesai/deepseek-ai/DeepSeek-R1", "DeepSeek R1 (via Chutes)", consts.ProviderChutes, 0.00014, 163840),
	textModel("chutesai/chutesai/Devstral-Small-2505", "Devstral Small 2505", consts.ProviderChutes, 0.00006, 128000),
	textModel("chutesai/moonshotai/Kimi-K2-Instruct-75k", "Kimi K2 Instruct 75k", consts.ProviderChutes, 0.00010, 75000),
	textModel("chutesai/all-hands/openhands-lm-32b-v0.1-ep3", "OpenHands LM 32B", consts.ProviderChutes, 0.00008, 32768),
	textModel("chutesai/nousresearch/DeepHermes-3-Mistral-24B-Preview", "DeepHermes 3 Mistral 24B", consts.ProviderChutes, 0.00015, 32768),
}

func ListModels() []models.ModelInfo {
	return modelCatalog
}
