// Package querycache provides keyed caching and request deduplication for
// catalog queries, plus mutation helpers that invalidate cached resource
// families and surface user-facing notifications.
package querycache

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/storekit-io/catalog-admin-client/pkg/catalog"
)

// DefaultTTL bounds how long a cached query result lives without being
// invalidated by a mutation.
const DefaultTTL = 5 * time.Minute

// Key identifies one cached query: a resource family plus the parameters
// that shaped the request. Keys with equal parameters are the same query.
type Key struct {
	Resource string
	Params   map[string]string
}

// NewKey creates a cache key for a resource and its parameters.
func NewKey(resource string, params map[string]string) Key {
	return Key{Resource: resource, Params: params}
}

// String renders the canonical key. Parameters are sorted so the same
// query always hits the same entry.
func (k Key) String() string {
	if len(k.Params) == 0 {
		return k.Resource
	}

	names := make([]string, 0, len(k.Params))
	for name := range k.Params {
		names = append(names, name)
	}

	sort.Strings(names)

	var builder strings.Builder

	builder.WriteString(k.Resource)
	builder.WriteByte(':')

	for i, name := range names {
		if i > 0 {
			builder.WriteByte(',')
		}

		builder.WriteString(name)
		builder.WriteByte('=')
		builder.WriteString(k.Params[name])
	}

	return builder.String()
}

// Notifier receives user-facing success and error notifications emitted
// by mutations. A UI shell shows toasts; a CLI prints lines.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// NoopNotifier discards notifications.
type NoopNotifier struct{}

// Success implements Notifier.
func (NoopNotifier) Success(string) {}

// Error implements Notifier.
func (NoopNotifier) Error(string) {}

// Stats tracks cache effectiveness counters.
type Stats struct {
	Hits          int64 `json:"hits"          yaml:"hits"`
	Misses        int64 `json:"misses"        yaml:"misses"`
	Sets          int64 `json:"sets"          yaml:"sets"`
	Shared        int64 `json:"shared"        yaml:"shared"`
	Invalidations int64 `json:"invalidations" yaml:"invalidations"`
}

// GetHitRate returns the cache hit rate between 0 and 1.
func (s *Stats) GetHitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}

	return float64(s.Hits) / float64(total)
}

// flight is one in-progress fetch shared by every caller of the same key.
type flight struct {
	done chan struct{}
	data []byte
	err  error
}

// Cache deduplicates concurrent fetches per key and stores successful
// results in a backend until a mutation invalidates them. Failed fetches
// are never stored, so the next access refetches.
type Cache struct {
	backend  Backend
	notifier Notifier
	logger   catalog.Logger
	ttl      time.Duration

	mu      sync.Mutex
	flights map[string]*flight

	statsMu sync.Mutex
	stats   Stats
}

// Option configures a Cache.
type Option func(*Cache)

// WithNotifier sets the notifier used by mutations.
func WithNotifier(notifier Notifier) Option {
	return func(c *Cache) {
		if notifier != nil {
			c.notifier = notifier
		}
	}
}

// WithLogger sets a debug logger.
func WithLogger(logger catalog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTTL sets the entry TTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// New creates a cache over the given backend. A nil backend gets the
// default memory backend.
func New(backend Backend, opts ...Option) *Cache {
	if backend == nil {
		backend = NewMemoryBackend(DefaultMaxSize)
	}

	cache := &Cache{
		backend:  backend,
		notifier: NoopNotifier{},
		logger:   catalog.NoopLogger{},
		ttl:      DefaultTTL,
		flights:  make(map[string]*flight),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Invalidate synchronously drops every cached entry belonging to the
// named resource families. The next query for any of them refetches.
func (c *Cache) Invalidate(ctx context.Context, resources ...string) {
	for _, resource := range resources {
		_ = c.backend.Delete(ctx, resource)
		_ = c.backend.DeletePrefix(ctx, resource+":")

		c.statsMu.Lock()
		c.stats.Invalidations++
		c.statsMu.Unlock()

		c.logger.Debug("cache invalidated", map[string]interface{}{"resource": resource})
	}
}

// Clear drops every cached entry.
func (c *Cache) Clear(ctx context.Context) error {
	return c.backend.Clear(ctx)
}

// GetStats returns a snapshot of the cache counters.
func (c *Cache) GetStats() Stats {
	c.statsMu.Lock()
	defer c.statsMu.Unlock()

	return c.stats
}

func (c *Cache) record(update func(*Stats)) {
	c.statsMu.Lock()
	update(&c.stats)
	c.statsMu.Unlock()
}

// Query returns the cached value for key, or runs fetch and caches its
// result. Concurrent callers of the same key share a single fetch; later
// callers block until the first resolves and then decode its bytes.
// Errors are returned to every waiting caller and never cached.
func Query[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (*T, error)) (*T, error) {
	if fetch == nil {
		return nil, ErrFetchFuncRequired
	}

	keyStr := key.String()

	entry, err := c.backend.Get(ctx, keyStr)
	if err == nil {
		var value T

		err = json.Unmarshal(entry.Data, &value)
		if err == nil {
			c.record(func(s *Stats) { s.Hits++ })
			c.logger.Debug("cache hit", map[string]interface{}{"key": keyStr})

			return &value, nil
		}

		// Undecodable entry: drop it and fall through to a fetch.
		_ = c.backend.Delete(ctx, keyStr)
	}

	c.record(func(s *Stats) { s.Misses++ })

	c.mu.Lock()

	if inflight, ok := c.flights[keyStr]; ok {
		c.mu.Unlock()
		c.record(func(s *Stats) { s.Shared++ })

		select {
		case <-inflight.done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		if inflight.err != nil {
			return nil, inflight.err
		}

		var value T

		err = json.Unmarshal(inflight.data, &value)
		if err != nil {
			return nil, fmt.Errorf("decoding shared result for %s: %w", keyStr, err)
		}

		return &value, nil
	}

	current := &flight{done: make(chan struct{})}
	c.flights[keyStr] = current
	c.mu.Unlock()

	value, err := fetch(ctx)
	if err != nil {
		current.err = err
	} else {
		var data []byte

		data, err = json.Marshal(value)
		if err != nil {
			current.err = fmt.Errorf("encoding result for %s: %w", keyStr, err)
		} else {
			current.data = data
			_ = c.backend.Set(ctx, keyStr, &Entry{
				Data:      data,
				ExpiresAt: time.Now().Add(c.ttl),
			})
			c.record(func(s *Stats) { s.Sets++ })
		}
	}

	c.mu.Lock()
	delete(c.flights, keyStr)
	c.mu.Unlock()
	close(current.done)

	if current.err != nil {
		return nil, current.err
	}

	return value, nil
}
