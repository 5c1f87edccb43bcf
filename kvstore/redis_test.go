package kvstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStoreIncrBy(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	_, ok, err := store.Get(ctx, "cost:2026-10-18")
	require.NoError(t, err)
	assert.False(t, ok)

	total, err := store.IncrBy(ctx, "cost:2026-10-18", decimal.RequireFromString("0.00014"), 30*24*time.Hour)
	require.NoError(t, err)
	assert.InDelta(t, 0.00014, total.InexactFloat64(), 1e-12)
	assert.Equal(t, 30*24*time.Hour, mr.TTL("cost:2026-10-18"))

	value, ok, err := store.Get(ctx, "cost:2026-10-18")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 0.00014, value.InexactFloat64(), 1e-12)
}

func TestRedisStoreConcurrentIncr(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.IncrBy(ctx, "cost:race", decimal.NewFromInt(1), time.Hour)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	value, _, err := store.Get(ctx, "cost:race")
	require.NoError(t, err)
	assert.Equal(t, "50", value.String())
}

func TestRedisStoreMGet(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)
	require.NoError(t, mr.Set("cost:2026-10-17", "0.5"))

	values, err := store.MGet(ctx, "cost:2026-10-17", "cost:2026-10-18")
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "0.5", values[0].String())
	assert.True(t, values[1].IsZero())
}

func TestRedisStoreInvalidValue(t *testing.T) {
	store, mr := newTestRedisStore(t)
	require.NoError(t, mr.Set("cost:bad", "not-a-number"))

	_, _, err := store.Get(context.Background(), "cost:bad")
	assert.Error(t, err)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := Connect(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, "redis", store.Name())

	_, err = Connect(context.Background(), "::not a url")
	assert.Error(t, err)
}
