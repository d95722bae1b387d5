package querycache

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrKeyNotFound   = errors.New("key not found")
	ErrEntryExpired  = errors.New("entry expired")
	ErrCacheDisabled = errors.New("cache disabled")
)

// Entry is a stored cache value with its expiry.
type Entry struct {
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired checks whether the entry is past its expiry.
func (e *Entry) IsExpired() bool {
	return !e.ExpiresAt.IsZero() && time.Now().After(e.ExpiresAt)
}

// Backend is a storage backend for cached query results. Implementations
// must be safe for concurrent use.
type Backend interface {
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, entry *Entry) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
	Clear(ctx context.Context) error
	Has(ctx context.Context, key string) bool
}

// MemoryBackend is an in-memory cache backend with bounded size.
type MemoryBackend struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	maxSize int
}

// NewMemoryBackend creates a new memory backend holding at most maxSize
// entries. When full, the entry closest to expiry is evicted.
func NewMemoryBackend(maxSize int) *MemoryBackend {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	return &MemoryBackend{
		entries: make(map[string]*Entry),
		maxSize: maxSize,
	}
}

// Get retrieves an entry by key.
func (b *MemoryBackend) Get(ctx context.Context, key string) (*Entry, error) {
	b.mu.RLock()
	entry, ok := b.entries[key]
	b.mu.RUnlock()

	if !ok {
		return nil, ErrKeyNotFound
	}

	if entry.IsExpired() {
		b.mu.Lock()
		delete(b.entries, key)
		b.mu.Unlock()

		return nil, ErrEntryExpired
	}

	return entry, nil
}

// Set stores an entry, evicting the soonest-expiring entry when full.
func (b *MemoryBackend) Set(ctx context.Context, key string, entry *Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.entries[key]; !exists && len(b.entries) >= b.maxSize {
		b.evictOldest()
	}

	b.entries[key] = entry

	return nil
}

// Delete removes an entry by key.
func (b *MemoryBackend) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	delete(b.entries, key)
	b.mu.Unlock()

	return nil
}

// DeletePrefix removes every entry whose key starts with prefix.
func (b *MemoryBackend) DeletePrefix(ctx context.Context, prefix string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key := range b.entries {
		if strings.HasPrefix(key, prefix) {
			delete(b.entries, key)
		}
	}

	return nil
}

// Clear removes all entries.
func (b *MemoryBackend) Clear(ctx context.Context) error {
	b.mu.Lock()
	b.entries = make(map[string]*Entry)
	b.mu.Unlock()

	return nil
}

// Has checks whether a live entry exists for the key.
func (b *MemoryBackend) Has(ctx context.Context, key string) bool {
	b.mu.RLock()
	entry, ok := b.entries[key]
	b.mu.RUnlock()

	return ok && !entry.IsExpired()
}

// Cleanup removes expired entries. Callers run it on a timer.
func (b *MemoryBackend) Cleanup() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, entry := range b.entries {
		if entry.IsExpired() {
			delete(b.entries, key)
		}
	}
}

// evictOldest removes the entry closest to expiry. Caller must hold the
// lock.
func (b *MemoryBackend) evictOldest() {
	var (
		oldestKey  string
		oldestTime time.Time
	)

	for key, entry := range b.entries {
		if oldestKey == "" || entry.ExpiresAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.ExpiresAt
		}
	}

	if oldestKey != "" {
		delete(b.entries, oldestKey)
	}
}

// NoopBackend is a backend that stores nothing, disabling caching.
type NoopBackend struct{}

// NewNoopBackend creates a new no-op backend.
func NewNoopBackend() *NoopBackend {
	return &NoopBackend{}
}

// Get always reports a disabled cache.
func (b *NoopBackend) Get(ctx context.Context, key string) (*Entry, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing.
func (b *NoopBackend) Set(ctx context.Context, key string, entry *Entry) error {
	return nil
}

// Delete does nothing.
func (b *NoopBackend) Delete(ctx context.Context, key string) error {
	return nil
}

// DeletePrefix does nothing.
func (b *NoopBackend) DeletePrefix(ctx context.Context, prefix string) error {
	return nil
}

// Clear does nothing.
func (b *NoopBackend) Clear(ctx context.Context) error {
	return nil
}

// Has always returns false.
func (b *NoopBackend) Has(ctx context.Context, key string) bool {
	return false
}
