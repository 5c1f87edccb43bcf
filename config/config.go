package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App        AppConfig
	OpenRouter OpenRouterConfig
	MiniMax    MiniMaxConfig
	Chutes     ChutesConfig
	Cache      CacheConfig
	Storage    StorageConfig
	Database   DatabaseConfig
}

type AppConfig struct {
	Port                   string `envconfig:"JAMS_SERVER_PORT" default:"8787"`
	Environment            string `envconfig:"ENVIRONMENT" default:"production"`
	DefaultModel           string `envconfig:"DEFAULT_MODEL"`
	MaxAgents              int    `envconfig:"MAX_AGENTS" default:"110"`
	UpstreamTimeoutSeconds int    `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"0"` // 0 不限制
}

type OpenRouterConfig struct {
	APIKey    string `envconfig:"OPENROUTER_API_KEY"`
	APIKeyAlt string `envconfig:"OPENROUTER_API_KEY_ALT"`
	BaseURL   string `envconfig:"OPENROUTER_BASE_URL" default:"https://openrouter.ai/api/v1"`
	Referer   string `envconfig:"OPENROUTER_REFERER" default:"https://rjbizsolution.com"`
	Title     string `envconfig:"OPENROUTER_TITLE" default:"Jukeyman AGI Music Studio (JAMS) API"`
}

// Key 主 key 为空时回退到备用 key
func (c OpenRouterConfig) Key() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return c.APIKeyAlt
}

type MiniMaxConfig struct {
	APIKey  string `envconfig:"MINIMAX_API_KEY"`
	GroupID string `envconfig:"MINIMAX_GROUP_ID"`
	BaseURL string `envconfig:"MINIMAX_BASE_URL" default:"https://api.minimax.io/v1"`
}

type ChutesConfig struct {
	APIKey  string `envconfig:"CHUTES_API_KEY"`
	BaseURL string `envconfig:"CHUTES_BASE_URL" default:"https://llm.chutes.ai/v1"`
}

// CacheConfig 对应 CACHE 绑定：优先 Redis，其次进程内存储，都未配置则关闭成本统计
type CacheConfig struct {
	RedisURL string `envconfig:"REDIS_URL"`
	Driver   string `envconfig:"CACHE_DRIVER"`
}

// StorageConfig 对应 MUSIC_STORAGE 绑定，当前仅用于健康检查上报
type StorageConfig struct {
	MusicBucket string `envconfig:"MUSIC_STORAGE"`
}

type DatabaseConfig struct {
	Driver string `envconfig:"DATABASE_DRIVER" default:"postgres"`
	DSN    string `envconfig:"DATABASE_DSN"`
}

func (c AppConfig) UpstreamTimeout() time.Duration {
	if c.UpstreamTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}

// Load 读取环境变量，存在 .env 时先加载
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv 只读取当前进程环境变量
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.App.MaxAgents <= 0 {
		cfg.App.MaxAgents = 110
	}
	return &cfg, nil
}
