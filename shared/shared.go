package shared

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"bengkel/shared/cache"
	"bengkel/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewTimeID derives an identifier from the creation time, prefixed so user
// and booking ids stay distinguishable. Two calls inside the same
// millisecond bump the value forward to keep ids unique.
func NewTimeID(prefix string) string {
	idMu.Lock()
	defer idMu.Unlock()

	millis := timezone.Now().UnixMilli()
	if millis <= lastID {
		millis = lastID + 1
	}

	lastID = millis

	return prefix + strconv.FormatInt(millis, 10)
}

// BuildCacheKey joins the given parts into a namespaced cache key.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// InvalidateCaches clears every cached entry under the given prefixes. Cache
// invalidation is best effort; a failure is logged and never surfaced to the
// mutation that triggered it.
func InvalidateCaches(ctx context.Context, c cache.Cache, prefixes ...string) {
	for _, prefix := range prefixes {
		if err := c.Clear(ctx, prefix); err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache")
		}
	}
}
