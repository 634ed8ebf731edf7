package cache

import (
	"context"
	"sync"
	"time"
)

// PermissionCache stores the permission codes resolved for a user.
type PermissionCache interface {
	Get(ctx context.Context, userID uint) ([]string, bool)
	Set(ctx context.Context, userID uint, codes []string)
	Purge(ctx context.Context)
}

type memoryEntry struct {
	codes     []string
	expiresAt time.Time
}

// MemoryCache is a process-local PermissionCache with a fixed TTL.
type MemoryCache struct {
	entries sync.Map // userID -> memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: time.Now}
}

func (m *MemoryCache) Get(_ context.Context, userID uint) ([]string, bool) {
	v, ok := m.entries.Load(userID)
	if !ok {
		return nil, false
	}
	entry := v.(memoryEntry)
	if !m.now().Before(entry.expiresAt) {
		m.entries.Delete(userID)
		return nil, false
	}
	return entry.codes, true
}

func (m *MemoryCache) Set(_ context.Context, userID uint, codes []string) {
	m.entries.Store(userID, memoryEntry{codes: codes, expiresAt: m.now().Add(m.ttl)})
}

func (m *MemoryCache) Purge(_ context.Context) {
	m.entries.Range(func(key, _ any) bool {
		m.entries.Delete(key)
		return true
	})
}
