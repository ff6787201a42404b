package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache keeps JSON-encoded values in process memory. It is the default
// backend and the fallback when Redis is unreachable.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]memoryItem
	defaultTTL time.Duration
	now        func() time.Time
	closed     bool
}

func NewMemoryCache(defaultTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		data:       make(map[string]memoryItem),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string, value any) (bool, error) {
	raw, ok, err := m.Raw(key)
	if err != nil || !ok {
		return false, err
	}

	if err := json.Unmarshal(raw, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (m *MemoryCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	return m.SetRaw(key, data, ttl)
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrCacheClosed
	}

	delete(m.data, key)

	return nil
}

// Raw returns the stored bytes for key without decoding them.
func (m *MemoryCache) Raw(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, false, ErrCacheClosed
	}

	item, ok := m.data[key]
	if !ok || m.expired(item) {
		return nil, false, nil
	}

	return item.value, true, nil
}

// SetRaw stores data for key as-is.
func (m *MemoryCache) SetRaw(key string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrCacheClosed
	}

	if ttl <= 0 {
		ttl = m.defaultTTL
	}

	item := memoryItem{value: data}
	if ttl > 0 {
		item.expiresAt = m.now().Add(ttl)
	}

	m.data[key] = item

	return nil
}

func (m *MemoryCache) Ping(context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return ErrCacheClosed
	}

	return nil
}

func (m *MemoryCache) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = make(map[string]memoryItem)

	return nil
}

func (m *MemoryCache) expired(item memoryItem) bool {
	return !item.expiresAt.IsZero() && m.now().After(item.expiresAt)
}
