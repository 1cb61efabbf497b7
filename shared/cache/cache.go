package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"bengkel/infras/otel"

	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

type Cache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, prefix string) error
}

type entry struct {
	raw       []byte
	expiresAt time.Time
}

// memoryCache is a process-local cache. Values are stored serialized so a
// cached result can never be mutated through a shared pointer.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	otel    otel.Otel
}

func NewMemoryCache(ot otel.Otel) Cache {
	return &memoryCache{
		entries: make(map[string]entry),
		otel:    ot,
	}
}

// Clear implements Cache.
func (cache *memoryCache) Clear(ctx context.Context, prefix string) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, prefix)

	cache.mu.Lock()
	defer cache.mu.Unlock()

	for key := range cache.entries {
		if strings.HasPrefix(key, prefix) {
			delete(cache.entries, key)
		}
	}

	return nil
}

// Delete implements Cache.
func (cache *memoryCache) Delete(ctx context.Context, key string) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.mu.Lock()
	defer cache.mu.Unlock()

	delete(cache.entries, key)

	return nil
}

// Get implements Cache.
func (cache *memoryCache) Get(ctx context.Context, key string, value any) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cache.mu.RLock()
	ent, ok := cache.entries[key]
	cache.mu.RUnlock()

	if !ok || time.Now().After(ent.expiresAt) {
		return ErrCacheMiss
	}

	if err = json.Unmarshal(ent.raw, value); err != nil {
		log.Error().Err(err).Str("key", key).Str("Cache", "Get").Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

// Save implements Cache.
func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := json.Marshal(value)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("Cache", "Save").Msg("failed to marshal cache")

		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.entries[key] = entry{
		raw:       raw,
		expiresAt: time.Now().Add(time.Second * time.Duration(duration)),
	}

	return nil
}
