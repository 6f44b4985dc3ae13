package ports

import (
	"context"

	"github.com/phishlens/phishlens/internal/core"
)

// Frontend is a user-facing surface over the prediction service: the HTTP
// API for the daemon, or the one-shot CLI report.
type Frontend interface {
	// ProcessMessage scores one message through the pipeline.
	ProcessMessage(ctx context.Context, subject, body string) (*core.PredictionResult, error)

	// Start starts serving (no-op for one-shot frontends).
	Start() error

	// Stop shuts the frontend down.
	Stop() error
}
