package kvstore

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Store 日成本计数存储。IncrBy 必须是原子操作，并且每次写入都会重置过期时间
type Store interface {
	Get(ctx context.Context, key string) (decimal.Decimal, bool, error)
	MGet(ctx context.Context, keys ...string) ([]decimal.Decimal, error)
	IncrBy(ctx context.Context, key string, delta decimal.Decimal, ttl time.Duration) (decimal.Decimal, error)
	Ping(ctx context.Context) error
	Name() string
}
