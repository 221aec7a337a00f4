package services

import (
	"context"
	"sync"
	"time"

	"scamsignals/internal/infrastructure/cache"
	"scamsignals/pkg/logger"
)

// Deduplicator tracks content hashes that were already analyzed so
// repeated submissions resolve to the stored result instead of a fresh
// analysis. Redis is the shared record; the in-memory set is a fast path
// and the sole record when Redis is not configured.
type Deduplicator struct {
	cache  *cache.RedisCache
	logger *logger.Logger

	mu         sync.RWMutex
	seenHashes map[string]bool

	cacheTTL time.Duration
}

// NewDeduplicator creates a Deduplicator. cache may be nil.
func NewDeduplicator(c *cache.RedisCache, log *logger.Logger) *Deduplicator {
	return &Deduplicator{
		cache:      c,
		logger:     log.WithComponent("deduplicator"),
		seenHashes: make(map[string]bool),
		cacheTTL:   24 * time.Hour,
	}
}

// Seen reports whether the content hash was already analyzed
func (d *Deduplicator) Seen(ctx context.Context, hash string) (bool, error) {
	d.mu.RLock()
	known := d.seenHashes[hash]
	d.mu.RUnlock()
	if known {
		return true, nil
	}

	if d.cache == nil {
		return false, nil
	}

	count, err := d.cache.Exists(ctx, cache.KeyDedupPrefix+hash)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkSeen records the content hash as analyzed
func (d *Deduplicator) MarkSeen(ctx context.Context, hash string) {
	d.mu.Lock()
	d.seenHashes[hash] = true
	d.mu.Unlock()

	if d.cache == nil {
		return
	}
	if err := d.cache.Set(ctx, cache.KeyDedupPrefix+hash, "1", d.cacheTTL); err != nil {
		d.logger.Warn().Err(err).Str("hash", hash).Msg("failed to mark hash as seen in cache")
	}
}

// LoadExistingHashes seeds the in-memory set, typically from the
// analysis store at startup
func (d *Deduplicator) LoadExistingHashes(hashes []string) {
	d.mu.Lock()
	for _, hash := range hashes {
		d.seenHashes[hash] = true
	}
	d.mu.Unlock()
	d.logger.Info().Int("count", len(hashes)).Msg("loaded existing hashes into memory")
}

// Clear drops the in-memory set (for testing or memory management)
func (d *Deduplicator) Clear() {
	d.mu.Lock()
	d.seenHashes = make(map[string]bool)
	d.mu.Unlock()
}

// Stats returns deduplication statistics
func (d *Deduplicator) Stats() map[string]int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return map[string]int{
		"memory_cache_size": len(d.seenHashes),
	}
}
