package providers

import (
	"testing"

	"github.com/rjbiz/jams/consts"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		model string
		want  consts.ProviderKind
	}{
		{"minimax/MiniMax-M1", consts.ProviderMiniMax},
		{"MiniMax-Text-01", consts.ProviderMiniMax},
		{"some-MINIMAX-variant", consts.ProviderMiniMax},
		{"chutesai/deepseek-ai/DeepSeek-R1", consts.ProviderChutes},
		{"vendor/chutes-special", consts.ProviderChutes},
		{"deepseek/deepseek-chat", consts.ProviderOpenRouter},
		{"google/gemini-2.0-flash-exp:free", consts.ProviderOpenRouter},
		{"openrouter/sherlock-dash-alpha", consts.ProviderOpenRouter},
		{"", consts.ProviderOpenRouter},
		// minimax has precedence over chutes
		{"chutesai/minimax-proxy", consts.ProviderMiniMax},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.model))
		})
	}
}

func TestChutesModel(t *testing.T) {
	assert.Equal(t, "deepseek-ai/DeepSeek-R1", ChutesModel("chutesai/deepseek-ai/DeepSeek-R1"))
	assert.Equal(t, "chutesai/Devstral-Small-2505", ChutesModel("chutesai/chutesai/Devstral-Small-2505"))
	assert.Equal(t, "deepseek-ai/DeepSeek-R1", ChutesModel("chutes-deepseek"))
	assert.Equal(t, "chutesai/Devstral-Small-2505", ChutesModel("chutes-devstral"))
	assert.Equal(t, "deepseek-ai/DeepSeek-R1", ChutesModel("chutes"))
}

func TestMiniMaxModel(t *testing.T) {
	assert.Equal(t, "MiniMax-M1", MiniMaxModel("minimax/MiniMax-M1"))
	assert.Equal(t, "MiniMax-Text-01", MiniMaxModel("minimax/MiniMax-Text-01"))
	assert.Equal(t, "MiniMax-Text-01", MiniMaxModel("minimax/text-01"))
	assert.Equal(t, "MiniMax-M1", MiniMaxModel("minimax/speech-02-hd"))
}
