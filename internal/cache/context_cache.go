// Package cache holds the synthesized smart context under a single logical
// key with a TTL. The entry is persisted through the key-value store so a
// process restart inside the validity window still serves the cached value.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/pulse/internal/domain"
	"github.com/alexanderramin/pulse/internal/repository"
)

const contextKey = "cache.current_context"

// entry is the persisted envelope. TTLMs records the TTL the value was
// written under: if the configured TTL has changed since, the entry is
// treated as a miss, which is how a settings change invalidates the cache.
type entry struct {
	Context  domain.SmartContext `json:"context"`
	StoredAt time.Time           `json:"stored_at"`
	TTLMs    int64               `json:"ttl_ms"`
}

// ContextCache is a single-key TTL cache. Reads and writes are serialized;
// last write wins.
type ContextCache struct {
	kv repository.KVStore

	mu  sync.Mutex
	ttl time.Duration
	now func() time.Time
}

// New creates a ContextCache with the given TTL.
func New(kv repository.KVStore, ttl time.Duration) *ContextCache {
	return &ContextCache{kv: kv, ttl: ttl, now: time.Now}
}

// SetTTL updates the validity window. Entries written under a different TTL
// become misses immediately.
func (c *ContextCache) SetTTL(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

// SetNowFunc overrides the clock. Tests only.
func (c *ContextCache) SetNowFunc(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Get returns the cached context if present and still valid. Any storage
// error reads as a miss: the engine regenerates rather than failing.
func (c *ContextCache) Get(ctx context.Context) (*domain.SmartContext, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok, err := c.kv.Get(ctx, contextKey)
	if err != nil || !ok {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		return nil, false
	}
	if e.TTLMs != c.ttl.Milliseconds() {
		return nil, false
	}
	if c.now().Sub(e.StoredAt) >= c.ttl {
		return nil, false
	}
	return &e.Context, true
}

// Put stores the context with the current timestamp, overwriting any
// previous entry.
func (c *ContextCache) Put(ctx context.Context, sc *domain.SmartContext) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{
		Context:  *sc,
		StoredAt: c.now(),
		TTLMs:    c.ttl.Milliseconds(),
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}
	if err := c.kv.Put(ctx, contextKey, string(raw)); err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}
	return nil
}

// Invalidate drops the cached entry.
func (c *ContextCache) Invalidate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Delete(ctx, contextKey)
}
