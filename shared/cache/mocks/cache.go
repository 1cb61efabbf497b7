package mocks

import (
	"context"

	"bengkel/shared/cache"
)

// cacheImpl is a pass-through cache for service tests: every Get misses and
// every write succeeds, so tests always exercise the repository path.
type cacheImpl struct {
}

// Save implements cache.Cache.
func (c *cacheImpl) Save(_ context.Context, _ string, _ any, _ int) error {
	return nil
}

// Get implements cache.Cache.
func (c *cacheImpl) Get(_ context.Context, _ string, _ any) error {
	return cache.ErrCacheMiss
}

// Delete implements cache.Cache.
func (c *cacheImpl) Delete(_ context.Context, _ string) error {
	return nil
}

// Clear implements cache.Cache.
func (c *cacheImpl) Clear(_ context.Context, _ string) error {
	return nil
}

func NewCache() cache.Cache {
	return &cacheImpl{}
}
