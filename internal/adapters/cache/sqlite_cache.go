package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/core"
)

// SQLiteCache persists prediction results in a local SQLite database so a
// restarted service keeps its warm cache.
type SQLiteCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewSQLiteCache opens (and if needed initializes) the cache database.
func NewSQLiteCache(dbPath string, logger *zap.Logger, cleanupFreq time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS prediction_cache (
			content_key TEXT PRIMARY KEY,
			result TEXT NOT NULL,
			created_at TIMESTAMP,
			expires_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create prediction_cache table: %w", err)
	}
	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_prediction_expires_at ON prediction_cache(expires_at)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	c := &SQLiteCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}
	go c.startCleanupTask()
	return c, nil
}

// Get retrieves a cached prediction, or core.ErrCacheMiss.
func (c *SQLiteCache) Get(ctx context.Context, key string) (*core.PredictionResult, error) {
	var payload string
	err := c.db.QueryRowContext(ctx, `
		SELECT result FROM prediction_cache
		WHERE content_key = ? AND expires_at > ?
	`, key, time.Now().UTC().Format(time.RFC3339)).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.ErrCacheMiss
		}
		c.logger.Error("Failed to query prediction cache", zap.Error(err))
		return nil, core.ErrCacheMiss
	}

	var result core.PredictionResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		c.logger.Error("Failed to decode cached prediction", zap.Error(err))
		return nil, core.ErrCacheMiss
	}
	return &result, nil
}

// Set stores a prediction with the given TTL.
func (c *SQLiteCache) Set(ctx context.Context, key string, result *core.PredictionResult, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode prediction: %w", err)
	}
	now := time.Now().UTC()
	_, err = c.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO prediction_cache (content_key, result, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, key, string(payload), now.Format(time.RFC3339), now.Add(ttl).Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store prediction: %w", err)
	}
	return nil
}

// Cleanup removes expired entries.
func (c *SQLiteCache) Cleanup(ctx context.Context) error {
	res, err := c.db.ExecContext(ctx, `
		DELETE FROM prediction_cache WHERE expires_at <= ?
	`, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to clean up prediction cache: %w", err)
	}
	if removed, err := res.RowsAffected(); err == nil {
		c.logger.Debug("Cleaned up expired prediction cache entries", zap.Int64("expired_count", removed))
	}
	return nil
}

func (c *SQLiteCache) startCleanupTask() {
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

// Stop stops the background cleanup task and closes the database.
func (c *SQLiteCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close SQLite cache", zap.Error(err))
	}
}
