package kvstore

import (
	"context"
	"sync"
	"time"

	"github.com/rjbiz/jams/consts"
	"github.com/shopspring/decimal"
)

type memoryEntry struct {
	value  decimal.Decimal
	expiry time.Time // 零值表示不过期
}

// MemoryStore 进程内存储，只适合单实例部署
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Name() string {
	return consts.CacheDriverMemory
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) Get(_ context.Context, key string) (decimal.Decimal, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.load(key)
	if !ok {
		return decimal.Zero, false, nil
	}
	return entry.value, true, nil
}

func (s *MemoryStore) MGet(_ context.Context, keys ...string) ([]decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values := make([]decimal.Decimal, len(keys))
	for i, key := range keys {
		if entry, ok := s.load(key); ok {
			values[i] = entry.value
		}
	}
	return values, nil
}

func (s *MemoryStore) IncrBy(_ context.Context, key string, delta decimal.Decimal, ttl time.Duration) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, _ := s.load(key)
	entry.value = entry.value.Add(delta)
	if ttl > 0 {
		entry.expiry = s.now().Add(ttl)
	}
	s.entries[key] = entry
	return entry.value, nil
}

// load 调用方需持有锁，过期条目顺带清理
func (s *MemoryStore) load(key string) (memoryEntry, bool) {
	entry, ok := s.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !entry.expiry.IsZero() && s.now().After(entry.expiry) {
		delete(s.entries, key)
		return memoryEntry{}, false
	}
	return entry, true
}
