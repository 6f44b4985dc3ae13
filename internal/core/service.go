package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PredictionService runs the full scoring pipeline for one message:
// normalization, model probability, token contributions, rule matching,
// risk aggregation, span highlighting and summary/advice generation.
//
// The service holds only read-only state (model handle, tables, threshold)
// and is safe for concurrent use.
type PredictionService struct {
	model        TextModel
	cache        PredictionCache
	ruleTable    RuleTable
	riskTable    RiskTable
	logger       *zap.Logger
	cacheEnabled bool
	cacheTTL     time.Duration
	threshold    float64
}

// NewPredictionService creates the scoring service. The threshold is the
// resolved decision boundary (configuration override or the artifact's own
// calibrated value).
func NewPredictionService(
	model TextModel,
	cache PredictionCache,
	ruleTable RuleTable,
	riskTable RiskTable,
	logger *zap.Logger,
	cacheEnabled bool,
	cacheTTL time.Duration,
	threshold float64,
) *PredictionService {
	return &PredictionService{
		model:        model,
		cache:        cache,
		ruleTable:    ruleTable,
		riskTable:    riskTable,
		logger:       logger,
		cacheEnabled: cacheEnabled,
		cacheTTL:     cacheTTL,
		threshold:    threshold,
	}
}

// Threshold returns the decision boundary in use.
func (s *PredictionService) Threshold() float64 {
	return s.threshold
}

// Predict scores a message and assembles the full explanation. Text input
// never fails: missing subject or body are treated as empty strings.
func (s *PredictionService) Predict(ctx context.Context, subject, body string) (*PredictionResult, error) {
	normalized := Normalize(subject, body)
	key := contentKey(normalized)

	if s.cacheEnabled && s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			s.logger.Debug("Prediction cache hit", zap.String("key", key))
			hit := *cached
			hit.ModelUsed = "cache"
			return &hit, nil
		}
	}

	probability := s.model.PredictProba(normalized)
	label := LabelLegitimate
	if probability >= s.threshold {
		label = LabelPhishing
	}

	doc := s.model.Vectorize(normalized)
	contributions := RankContributions(doc, s.model.Coefficients())
	hits := MatchRules(subject, body, s.ruleTable)
	breakdown := RiskBreakdown(contributions, s.riskTable)
	phrases := HighlightPhrases(hits, HighlightTokens(contributions))
	spans := Highlight(body, phrases, DefaultMaxSpans)

	result := &PredictionResult{
		Label:          label,
		Probability:    probability,
		Explanations:   contributions,
		Reasons:        hits,
		RiskBreakdown:  breakdown,
		HighlightSpans: spans,
		Summary:        Summarize(probability, hits),
		Advice:         Advise(probability, label),
		AnalyzedAt:     time.Now(),
		ModelUsed:      "tfidf-logreg",
		ProcessingID:   uuid.NewString(),
	}

	s.logger.Debug("Scored message",
		zap.Float64("probability", probability),
		zap.String("label", string(label)),
		zap.Int("rule_hits", len(hits)),
		zap.Int("contributions", len(contributions)),
		zap.Int("spans", len(spans)))

	if s.cacheEnabled && s.cache != nil {
		if err := s.cache.Set(ctx, key, result, s.cacheTTL); err != nil {
			s.logger.Error("Failed to update prediction cache", zap.Error(err))
		}
	}

	return result, nil
}

// contentKey derives the cache key from the normalized text, so equivalent
// messages share an entry regardless of raw formatting.
func contentKey(normalized string) string {
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
