package cache

import (
	"context"
	"sync"

	"github.com/golang/groupcache/lru"
)

// DefaultMemoryEntries bounds the in-process cache when no size is given.
const DefaultMemoryEntries = 256

// Memory is an in-process LRU cache safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	items *lru.Cache
}

var _ Cache = (*Memory)(nil)

// NewMemory returns an LRU cache holding at most maxEntries payloads.
func NewMemory(maxEntries int) *Memory {
	if maxEntries <= 0 {
		maxEntries = DefaultMemoryEntries
	}
	return &Memory{items: lru.New(maxEntries)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value, ok := m.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	stored := value.([]byte)
	out := make([]byte, len(stored))
	copy(out, stored)
	return out, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.items.Add(key, stored)
	return nil
}

// Len reports the number of cached entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items.Len()
}
