package kvstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreIncrBy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "cost:2026-10-18")
	require.NoError(t, err)
	assert.False(t, ok)

	total, err := store.IncrBy(ctx, "cost:2026-10-18", decimal.RequireFromString("0.00014"), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "0.00014", total.String())

	total, err = store.IncrBy(ctx, "cost:2026-10-18", decimal.RequireFromString("0.00006"), time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "0.0002", total.String())

	value, ok, err := store.Get(ctx, "cost:2026-10-18")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, value.Equal(decimal.RequireFromString("0.0002")))
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	_, err := store.IncrBy(ctx, "k", decimal.NewFromInt(1), time.Minute)
	require.NoError(t, err)

	now = now.Add(50 * time.Second)
	// 每次写入都重置过期时间
	_, err = store.IncrBy(ctx, "k", decimal.NewFromInt(1), time.Minute)
	require.NoError(t, err)

	now = now.Add(50 * time.Second)
	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2", value.String())

	now = now.Add(time.Minute)
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreConcurrentIncr(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	delta := decimal.RequireFromString("0.001")

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.IncrBy(ctx, "cost:race", delta, time.Hour)
		}()
	}
	wg.Wait()

	value, _, err := store.Get(ctx, "cost:race")
	require.NoError(t, err)
	assert.Equal(t, "0.1", value.String())
}

func TestMemoryStoreMGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_, err := store.IncrBy(ctx, "a", decimal.NewFromInt(3), 0)
	require.NoError(t, err)

	values, err := store.MGet(ctx, "a", "missing")
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "3", values[0].String())
	assert.True(t, values[1].IsZero())
}
