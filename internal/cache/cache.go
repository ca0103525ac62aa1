package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"coordinator-console/internal/clients/redis"
	"coordinator-console/internal/observability"
)

// Resources whose lists are cached
const (
	ResourceBrands    = "brands"
	ResourceCampaigns = "campaigns"
	ResourceAdmins    = "admins"
	ResourceNurses    = "nurses"
)

const keyPrefix = "console:lists:"

// ListCache serves fetched lists until they become stale.
type ListCache interface {
	// Get decodes the cached value into dest and reports whether a fresh entry existed.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	// Invalidate drops every cached list of resource, for all sessions.
	Invalidate(ctx context.Context, resource string) error
}

// Key scopes a resource list to the session token that fetched it.
// The token is hashed so it never appears in cache keys.
func Key(resource, token string) string {
	sum := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%s%s:%s", keyPrefix, resource, hex.EncodeToString(sum[:8]))
}

func resourcePrefix(resource string) string {
	return keyPrefix + resource + ":"
}

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is an in-process ListCache used when Redis is disabled.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
	swept   time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return NewMemoryWithClock(ttl, time.Now)
}

func NewMemoryWithClock(ttl time.Duration, now func() time.Time) *Memory {
	return &Memory{ttl: ttl, now: now, entries: make(map[string]entry)}
}

func (m *Memory) Get(_ context.Context, key string, dest any) (bool, error) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if ok && !m.now().Before(e.expires) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(e.value, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached list: %w", err)
	}
	return true, nil
}

func (m *Memory) Set(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode list for cache: %w", err)
	}
	now := m.now()
	m.mu.Lock()
	m.sweep(now)
	m.entries[key] = entry{value: raw, expires: now.Add(m.ttl)}
	m.mu.Unlock()
	return nil
}

// sweep drops expired entries at most once per ttl. Callers hold mu.
func (m *Memory) sweep(now time.Time) {
	if now.Sub(m.swept) < m.ttl {
		return
	}
	for key, e := range m.entries {
		if !now.Before(e.expires) {
			delete(m.entries, key)
		}
	}
	m.swept = now
}

func (m *Memory) Invalidate(_ context.Context, resource string) error {
	prefix := resourcePrefix(resource)
	m.mu.Lock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
	return nil
}

// Redis is a ListCache shared across console instances.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	logger *observability.Logger
}

func NewRedis(client *redis.Client, ttl time.Duration, logger *observability.Logger) *Redis {
	return &Redis{client: client, ttl: ttl, logger: logger}
}

func (r *Redis) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, found, err := r.client.Get(ctx, key)
	if err != nil {
		r.logger.Error(ctx, "failed to read list cache", err)
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode cached list: %w", err)
	}
	return true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode list for cache: %w", err)
	}
	if err := r.client.Set(ctx, key, raw, r.ttl); err != nil {
		r.logger.Error(ctx, "failed to write list cache", err)
		return err
	}
	return nil
}

func (r *Redis) Invalidate(ctx context.Context, resource string) error {
	if err := r.client.DeleteByPrefix(ctx, resourcePrefix(resource)); err != nil {
		r.logger.Error(ctx, "failed to invalidate list cache", err)
		return err
	}
	return nil
}

// Fetch returns the cached list for key, or loads and caches it.
// refresh skips the cache read; cache failures never fail the fetch.
func Fetch[T any](ctx context.Context, c ListCache, key string, refresh bool, load func(context.Context) (T, error)) (T, error) {
	var cached T
	if !refresh {
		if ok, err := c.Get(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	fresh, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	_ = c.Set(ctx, key, fresh)
	return fresh, nil
}
