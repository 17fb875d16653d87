// Package settings holds the user-adjustable engine configuration: the AI
// strategy flag and the context cache TTL. Values are persisted in the
// key-value store and passed explicitly to the components that need them;
// there is no ambient global. Components that must react to changes
// subscribe to the store and are notified on every successful Set.
package settings

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/alexanderramin/pulse/internal/repository"
)

const (
	keyAIEnabled  = "settings.ai_enabled"
	keyCacheTTLMs = "settings.cache_ttl_ms"
)

// DefaultCacheTTL is the context cache validity window when the user has
// never adjusted it.
const DefaultCacheTTL = 5 * time.Minute

// Settings is an immutable snapshot of the engine configuration.
type Settings struct {
	AIEnabled bool
	CacheTTL  time.Duration
}

// Store loads, persists, and broadcasts engine settings.
type Store struct {
	kv repository.KVStore

	mu      sync.Mutex
	current Settings
	subs    []func(Settings)
}

// NewStore creates a settings store with defaults applied. Call Load before
// first use to pick up persisted values.
func NewStore(kv repository.KVStore) *Store {
	return &Store{
		kv:      kv,
		current: Settings{AIEnabled: false, CacheTTL: DefaultCacheTTL},
	}
}

// SetDefaults replaces the in-memory defaults. Call before Load; values
// persisted in the store still take precedence.
func (s *Store) SetDefaults(d Settings) {
	if d.CacheTTL <= 0 {
		d.CacheTTL = DefaultCacheTTL
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = d
}

// Load reads persisted settings from the key-value store. Missing keys keep
// their defaults; malformed values are ignored rather than failing startup.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok, err := s.kv.Get(ctx, keyAIEnabled); err != nil {
		return fmt.Errorf("loading ai flag: %w", err)
	} else if ok {
		if b, err := strconv.ParseBool(v); err == nil {
			s.current.AIEnabled = b
		}
	}

	if v, ok, err := s.kv.Get(ctx, keyCacheTTLMs); err != nil {
		return fmt.Errorf("loading cache ttl: %w", err)
	} else if ok {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			s.current.CacheTTL = time.Duration(ms) * time.Millisecond
		}
	}

	return nil
}

// Get returns the current settings snapshot.
func (s *Store) Get() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set persists new settings and notifies subscribers. This is the explicit
// "settings changed" signal: subscribers see the new snapshot exactly once
// per successful Set.
func (s *Store) Set(ctx context.Context, next Settings) error {
	if next.CacheTTL <= 0 {
		next.CacheTTL = DefaultCacheTTL
	}

	if err := s.kv.Put(ctx, keyAIEnabled, strconv.FormatBool(next.AIEnabled)); err != nil {
		return fmt.Errorf("persisting ai flag: %w", err)
	}
	ms := int(next.CacheTTL / time.Millisecond)
	if err := s.kv.Put(ctx, keyCacheTTLMs, strconv.Itoa(ms)); err != nil {
		return fmt.Errorf("persisting cache ttl: %w", err)
	}

	s.mu.Lock()
	s.current = next
	subs := make([]func(Settings), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return nil
}

// Subscribe registers a callback invoked after every successful Set.
func (s *Store) Subscribe(fn func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
