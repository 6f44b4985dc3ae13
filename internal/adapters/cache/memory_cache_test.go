package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/core"
)

func sampleResult() *core.PredictionResult {
	return &core.PredictionResult{
		Label:        core.LabelPhishing,
		Probability:  0.87,
		Summary:      "High risk signals detected: Urgency / Pressure. Predicted phishing probability: 0.87.",
		ModelUsed:    "tfidf-logreg",
		ProcessingID: "test-id",
		AnalyzedAt:   time.Now(),
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Minute)
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key1", sampleResult(), time.Minute))

	got, err := c.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, core.LabelPhishing, got.Label)
	assert.InDelta(t, 0.87, got.Probability, 1e-9)
	assert.Equal(t, "test-id", got.ProcessingID)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Minute)
	defer c.Stop()

	_, err := c.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, core.ErrCacheMiss)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Minute)
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key1", sampleResult(), -time.Second))

	_, err := c.Get(ctx, "key1")
	assert.ErrorIs(t, err, core.ErrCacheMiss)
}

func TestMemoryCacheReturnsCopies(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Minute)
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "key1", sampleResult(), time.Minute))

	first, err := c.Get(ctx, "key1")
	require.NoError(t, err)
	first.ModelUsed = "cache"

	second, err := c.Get(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, "tfidf-logreg", second.ModelUsed)
}

func TestMemoryCacheCleanup(t *testing.T) {
	c := NewMemoryCache(zap.NewNop(), time.Minute)
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "live", sampleResult(), time.Minute))
	require.NoError(t, c.Set(ctx, "dead", sampleResult(), -time.Second))

	require.NoError(t, c.Cleanup(ctx))

	_, err := c.Get(ctx, "live")
	assert.NoError(t, err)
	_, err = c.Get(ctx, "dead")
	assert.ErrorIs(t, err, core.ErrCacheMiss)
}
