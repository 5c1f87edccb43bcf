package kvstore

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rjbiz/jams/consts"
	"github.com/shopspring/decimal"
)

type RedisStore struct {
	redis *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client}
}

// Connect 解析 REDIS_URL 并测试连接
func Connect(ctx context.Context, redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewRedisStore(client), nil
}

func (s *RedisStore) Name() string {
	return consts.CacheDriverRedis
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (decimal.Decimal, bool, error) {
	data, err := s.redis.Get(ctx, key).Result()
	if err == redis.Nil {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	value, err := decimal.NewFromString(data)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("invalid counter value %q at %s: %w", data, key, err)
	}
	return value, true, nil
}

func (s *RedisStore) MGet(ctx context.Context, keys ...string) ([]decimal.Decimal, error) {
	values := make([]decimal.Decimal, len(keys))
	if len(keys) == 0 {
		return values, nil
	}
	res, err := s.redis.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range res {
		str, ok := v.(string)
		if !ok {
			values[i] = decimal.Zero
			continue
		}
		value, err := decimal.NewFromString(str)
		if err != nil {
			return nil, fmt.Errorf("invalid counter value %q at %s: %w", str, keys[i], err)
		}
		values[i] = value
	}
	return values, nil
}

// IncrBy 在同一个事务里执行 INCRBYFLOAT 和 EXPIRE，并发请求不会丢失更新
func (s *RedisStore) IncrBy(ctx context.Context, key string, delta decimal.Decimal, ttl time.Duration) (decimal.Decimal, error) {
	pipe := s.redis.TxPipeline()
	incr := pipe.IncrByFloat(ctx, key, delta.InexactFloat64())
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return decimal.Zero, fmt.Errorf("redis incr %s: %w", key, err)
	}
	return decimal.NewFromFloat(incr.Val()), nil
}

func (s *RedisStore) Close() error {
	return s.redis.Close()
}
