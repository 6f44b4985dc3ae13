package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/core"
)

type memoryEntry struct {
	result    *core.PredictionResult
	expiresAt time.Time
}

// MemoryCache is an in-memory implementation of core.PredictionCache,
// keyed by the content hash of the normalized message text.
type MemoryCache struct {
	entries     map[string]memoryEntry
	mu          sync.RWMutex
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMemoryCache creates an in-memory prediction cache with background
// cleanup of expired entries.
func NewMemoryCache(logger *zap.Logger, cleanupFreq time.Duration) *MemoryCache {
	c := &MemoryCache{
		entries:     make(map[string]memoryEntry),
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}
	go c.startCleanupTask()
	return c
}

// Get retrieves a cached prediction, or core.ErrCacheMiss.
func (c *MemoryCache) Get(ctx context.Context, key string) (*core.PredictionResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, core.ErrCacheMiss
	}
	copied := *entry.result
	return &copied, nil
}

// Set stores a prediction with the given TTL.
func (c *MemoryCache) Set(ctx context.Context, key string, result *core.PredictionResult, ttl time.Duration) error {
	copied := *result
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = memoryEntry{result: &copied, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Cleanup removes expired entries.
func (c *MemoryCache) Cleanup(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	expired := 0
	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
			expired++
		}
	}
	c.logger.Debug("Cleaned up expired prediction cache entries", zap.Int("expired_count", expired))
	return nil
}

func (c *MemoryCache) startCleanupTask() {
	ticker := time.NewTicker(c.cleanupFreq)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Cleanup(context.Background()); err != nil {
				c.logger.Error("Failed to clean up prediction cache", zap.Error(err))
			}
		case <-c.stopCh:
			return
		}
	}
}

// Stop stops the background cleanup task.
func (c *MemoryCache) Stop() {
	close(c.stopCh)
}
