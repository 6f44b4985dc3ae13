package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/core"
)

// MySQLCache persists prediction results in MySQL, for deployments where
// several service instances share one cache.
type MySQLCache struct {
	db          *sql.DB
	logger      *zap.Logger
	cleanupFreq time.Duration
	stopCh      chan struct{}
}

// NewMySQLCache connects to MySQL and initializes the cache table.
func NewMySQLCache(dsn string, logger *zap.Logger, cleanupFreq time.Duration) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS prediction_cache (
			content_key VARCHAR(64) PRIMARY KEY,
			result MEDIUMTEXT NOT NULL,
			created_at TIMESTAMP,
			expires_at TIMESTAMP,
			INDEX idx_prediction_expires_at (expires_at)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create prediction_cache table: %w", err)
	}

	c := &MySQLCache{
		db:          db,
		logger:      logger,
		cleanupFreq: cleanupFreq,
		stopCh:      make(chan struct{}),
	}
	go c.startCleanupTask()
	return c, nil
}

// Get retrieves a cached prediction, or core.ErrCacheMiss.
func (c *MySQLCache) Get(ctx context.Context, key string) (*core.PredictionResult, error) {
	var payload string
	err := c.db.QueryRowContext(ctx, `
		SELECT result FROM prediction_cache
		WHERE content_key = ? AND expires_at > NOW()
	`, key).Scan(&payload)
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
func (c *MySQLCache) Set(ctx context.Context, key string, result *core.PredictionResult, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode prediction: %w", err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO prediction_cache (content_key, result, created_at, expires_at)
		VALUES (?, ?, NOW(), ?)
		ON DUPLICATE KEY UPDATE result = VALUES(result), created_at = VALUES(created_at), expires_at = VALUES(expires_at)
	`, key, string(payload), time.Now().Add(ttl))
	if err != nil {
		return fmt.Errorf("failed to store prediction: %w", err)
	}
	return nil
}

// Cleanup removes expired entries.
func (c *MySQLCache) Cleanup(ctx context.Context) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM prediction_cache WHERE expires_at <= NOW()`)
	if err != nil {
		return fmt.Errorf("failed to clean up prediction cache: %w", err)
	}
	if removed, err := res.RowsAffected(); err == nil {
		c.logger.Debug("Cleaned up expired prediction cache entries", zap.Int64("expired_count", removed))
	}
	return nil
}

func (c *MySQLCache) startCleanupTask() {
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

// Stop stops the background cleanup task and closes the connection.
func (c *MySQLCache) Stop() {
	close(c.stopCh)
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close MySQL cache", zap.Error(err))
	}
}
