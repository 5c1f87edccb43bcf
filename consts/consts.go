package consts

import "time"

const (
	Version     = "1.0.0"
	ServiceName = "Jukeyman AGI Music Studio (JAMS) API"
	Domain      = "api.rjbizsolution.com"
	DefaultPort = "8787"
)

const (
	// 未指定模型且未配置 DEFAULT_MODEL 时使用
	FallbackModel = "deepseek/deepseek-chat"
	// 未指定 agent_name 时的系统提示身份
	DefaultPersona = "a music production assistant"
	UnknownAgent   = "Unknown"
)

const (
	// 日成本计数键前缀，完整键为 cost:YYYY-MM-DD（UTC）
	CostKeyPrefix = "cost:"
	CostTTL       = 30 * 24 * time.Hour
	CostDayLayout = "2006-01-02"
	Currency      = "USD"
)

// TimestampLayout 响应里的时间戳，UTC 精确到毫秒，与 JS Date.toISOString 一致
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverMySQL    = "mysql"
)

// ProviderKind 上游模型服务商
type ProviderKind string

const (
	ProviderOpenRouter ProviderKind = "openrouter"
	ProviderMiniMax    ProviderKind = "minimax"
	ProviderChutes     ProviderKind = "chutes"
)

func (k ProviderKind) String() string {
	return string(k)
}

// DisplayName 用于错误信息
func (k ProviderKind) DisplayName() string {
	switch k {
	case ProviderMiniMax:
		return "MiniMax"
	case ProviderChutes:
		return "Chutes"
	default:
		return "OpenRouter"
	}
}
