package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/artifact"
	"github.com/phishlens/phishlens/internal/config"
	"github.com/phishlens/phishlens/internal/core"
)

// ModelFactory loads the trained artifact configured under model.path.
type ModelFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewModelFactory creates a model factory.
func NewModelFactory(cfg *config.Config, logger *zap.Logger) *ModelFactory {
	return &ModelFactory{cfg: cfg, logger: logger}
}

// CreateTextModel loads and validates the artifact. A missing or corrupt
// artifact is a fatal configuration error.
func (f *ModelFactory) CreateTextModel() (core.TextModel, error) {
	path := f.cfg.GetString("model.path")
	model, err := artifact.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifact from %s: %w", path, err)
	}
	f.logger.Info("Loaded model artifact",
		zap.String("path", path),
		zap.Int("vocabulary_size", model.VocabularySize()),
		zap.Float64("threshold", model.Threshold()))
	return model, nil
}

// ResolveThreshold returns the decision boundary: the configured override
// when set, otherwise the value calibrated into the artifact.
func (f *ModelFactory) ResolveThreshold(model core.TextModel) float64 {
	if override := f.cfg.GetFloat64("model.threshold_override"); override > 0 && override < 1 {
		f.logger.Info("Using configured threshold override", zap.Float64("threshold", override))
		return override
	}
	return model.Threshold()
}
