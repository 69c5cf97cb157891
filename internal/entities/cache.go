package entities

import (
	"context"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheTTL is the default TTL for cached recognizer results.
const DefaultCacheTTL = 2 * time.Minute

// CachedRecognizer wraps a Recognizer with a TTL cache keyed by a hash of the
// document text. Concurrent identical documents are collapsed through
// singleflight so the backing model sees each text at most once per TTL
// window. The core stays per-call stateless; this decorator is opt-in at the
// pipeline seam.
type CachedRecognizer struct {
	inner   Recognizer
	cache   *ttlcache.Cache[string, map[string][]string]
	sfGroup singleflight.Group
	logger  *slog.Logger

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCachedRecognizer builds the decorator. ttl <= 0 falls back to
// DefaultCacheTTL; capacity 0 means unbounded.
func NewCachedRecognizer(inner Recognizer, ttl time.Duration, capacity uint64, logger *slog.Logger) *CachedRecognizer {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	cache := ttlcache.New[string, map[string][]string](
		ttlcache.WithTTL[string, map[string][]string](ttl),
		ttlcache.WithCapacity[string, map[string][]string](capacity),
	)
	go cache.Start()
	return &CachedRecognizer{inner: inner, cache: cache, logger: logger}
}

// Recognize returns the cached result for text when present, otherwise runs
// the inner recognizer. Errors are never cached.
func (c *CachedRecognizer) Recognize(ctx context.Context, text string) (map[string][]string, error) {
	key := strconv.FormatUint(xxhash.Sum64String(text), 16)

	if item := c.cache.Get(key); item != nil {
		c.hits.Add(1)
		c.logger.Debug("entities.cache.hit", "key", key)
		return item.Value(), nil
	}

	result, err, _ := c.sfGroup.Do(key, func() (any, error) {
		c.misses.Add(1)
		out, err := c.inner.Recognize(ctx, text)
		if err != nil {
			return nil, err
		}
		c.cache.Set(key, out, ttlcache.DefaultTTL)
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(map[string][]string), nil
}

// Stats returns cache hit/miss counters.
func (c *CachedRecognizer) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Stop halts the cache janitor.
func (c *CachedRecognizer) Stop() {
	c.cache.Stop()
}
