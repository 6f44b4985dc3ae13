package di

import (
	"time"

	"go.uber.org/dig"

	"github.com/phishlens/phishlens/internal/config"
	"github.com/phishlens/phishlens/internal/core"
	"github.com/phishlens/phishlens/internal/factory"
	"github.com/phishlens/phishlens/internal/logging"
	"github.com/phishlens/phishlens/internal/ports"
	"github.com/phishlens/phishlens/internal/utils"
)

// BuildContainer wires the server binary: configuration, logging, model
// artifact, cache, prediction service and frontend.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	if err := container.Provide(config.New); err != nil {
		return nil, err
	}
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Factories
	if err := container.Provide(factory.NewModelFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewCacheFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewFrontendFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewTextProcessorFactory); err != nil {
		return nil, err
	}

	// Trained model and resolved threshold
	if err := container.Provide(func(f *factory.ModelFactory) (core.TextModel, error) {
		return f.CreateTextModel()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.ModelFactory, m core.TextModel) float64 {
		return f.ResolveThreshold(m)
	}); err != nil {
		return nil, err
	}

	// Prediction cache
	if err := container.Provide(func(f *factory.CacheFactory) (core.PredictionCache, error) {
		return f.CreatePredictionCache()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.CacheFactory) (time.Duration, error) {
		return f.GetCacheTTL()
	}); err != nil {
		return nil, err
	}
	if err := container.Provide(func(f *factory.CacheFactory) bool {
		return f.IsCacheEnabled()
	}); err != nil {
		return nil, err
	}

	// Keyword tables, held as immutable values
	if err := container.Provide(core.DefaultRuleTable); err != nil {
		return nil, err
	}
	if err := container.Provide(core.DefaultRiskTable); err != nil {
		return nil, err
	}

	if err := container.Provide(core.NewPredictionService); err != nil {
		return nil, err
	}

	if err := container.Provide(func(f *factory.TextProcessorFactory) *utils.TextProcessor {
		return f.CreateTextProcessor()
	}); err != nil {
		return nil, err
	}

	if err := container.Provide(func(f *factory.FrontendFactory) (ports.Frontend, error) {
		return f.CreateFrontend()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
