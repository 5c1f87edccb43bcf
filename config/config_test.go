package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8787", cfg.App.Port)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 110, cfg.App.MaxAgents)
	assert.Equal(t, time.Duration(0), cfg.App.UpstreamTimeout())
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
	assert.Equal(t, "https://api.minimax.io/v1", cfg.MiniMax.BaseURL)
	assert.Equal(t, "https://llm.chutes.ai/v1", cfg.Chutes.BaseURL)
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	t.Setenv("MAX_AGENTS", "42")
	t.Setenv("DEFAULT_MODEL", "minimax/MiniMax-M1")
	t.Setenv("UPSTREAM_TIMEOUT_SECONDS", "15")
	t.Setenv("MINIMAX_GROUP_ID", "group-1")
	t.Setenv("MUSIC_STORAGE", "jams-music")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.App.Environment)
	assert.Equal(t, 42, cfg.App.MaxAgents)
	assert.Equal(t, "minimax/MiniMax-M1", cfg.App.DefaultModel)
	assert.Equal(t, 15*time.Second, cfg.App.UpstreamTimeout())
	assert.Equal(t, "group-1", cfg.MiniMax.GroupID)
	assert.Equal(t, "jams-music", cfg.Storage.MusicBucket)
}

func TestFromEnvInvalidNumber(t *testing.T) {
	t.Setenv("MAX_AGENTS", "many")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestOpenRouterKeyFallback(t *testing.T) {
	assert.Equal(t, "primary", OpenRouterConfig{APIKey: "primary", APIKeyAlt: "alt"}.Key())
	assert.Equal(t, "alt", OpenRouterConfig{APIKeyAlt: "alt"}.Key())
	assert.Empty(t, OpenRouterConfig{}.Key())
}
