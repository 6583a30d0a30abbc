package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process dedupe store with expiration, used when Redis is disabled
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]time.Time
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		items: make(map[string]time.Time),
		now:   time.Now,
		stop:  make(chan struct{}),
	}

	// Start cleanup goroutine to remove expired items
	go store.cleanupExpired(5 * time.Minute)

	return store
}

// Claim records key for ttl. It returns false if key is already held.
func (ms *MemoryStore) Claim(_ context.Context, key string, ttl time.Duration) (bool, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	if expires, ok := ms.items[key]; ok && now.Before(expires) {
		return false, nil
	}
	ms.items[key] = now.Add(ttl)
	return true, nil
}

// Release forgets key
func (ms *MemoryStore) Release(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.items, key)
	return nil
}

// Close stops the cleanup goroutine
func (ms *MemoryStore) Close() error {
	ms.once.Do(func() { close(ms.stop) })
	return nil
}

// cleanupExpired periodically removes expired items
func (ms *MemoryStore) cleanupExpired(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ms.stop:
			return
		case <-ticker.C:
			ms.mu.Lock()
			now := ms.now()
			for key, expires := range ms.items {
				if !now.Before(expires) {
					delete(ms.items, key)
				}
			}
			ms.mu.Unlock()
		}
	}
}
