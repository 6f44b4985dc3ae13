package core

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by PredictionCache.Get when no live entry exists.
var ErrCacheMiss = errors.New("prediction cache miss")

// TextModel is the trained classifier artifact consumed by the pipeline.
// Implementations are immutable after load and safe for concurrent use.
type TextModel interface {
	// Vectorize computes the document term-weight vector over the model's
	// fixed vocabulary. Unseen terms are ignored, never an error.
	Vectorize(text string) TermVector

	// PredictProba returns the probability of the phishing class in [0,1].
	PredictProba(text string) float64

	// Coefficients returns the learned per-term weights, aligned with the
	// vocabulary used by Vectorize.
	Coefficients() map[string]float64

	// Threshold is the calibrated decision boundary (0.5 when the artifact
	// carries none).
	Threshold() float64
}

// PredictionCache stores full prediction results keyed by message content.
type PredictionCache interface {
	// Get retrieves a cached result, or ErrCacheMiss.
	Get(ctx context.Context, key string) (*PredictionResult, error)

	// Set stores a result with the given time to live.
	Set(ctx context.Context, key string, result *PredictionResult, ttl time.Duration) error

	// Cleanup removes expired entries.
	Cleanup(ctx context.Context) error
}
