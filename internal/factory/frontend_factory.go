package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/adapters/filter"
	"github.com/phishlens/phishlens/internal/adapters/httpapi"
	"github.com/phishlens/phishlens/internal/config"
	"github.com/phishlens/phishlens/internal/core"
	"github.com/phishlens/phishlens/internal/ports"
	"github.com/phishlens/phishlens/internal/utils"
)

// FrontendFactory creates the configured user-facing surface.
type FrontendFactory struct {
	cfg       *config.Config
	logger    *zap.Logger
	service   *core.PredictionService
	processor *utils.TextProcessor
}

// NewFrontendFactory creates a frontend factory.
func NewFrontendFactory(
	cfg *config.Config,
	logger *zap.Logger,
	service *core.PredictionService,
	processor *utils.TextProcessor,
) *FrontendFactory {
	return &FrontendFactory{cfg: cfg, logger: logger, service: service, processor: processor}
}

// CreateFrontend creates the frontend selected by server.frontend.
func (f *FrontendFactory) CreateFrontend() (ports.Frontend, error) {
	switch frontendType := f.cfg.GetString("server.frontend"); frontendType {
	case "http":
		return httpapi.NewServer(
			f.service,
			f.processor,
			f.logger,
			f.cfg.GetString("server.listen_address"),
			f.cfg.GetBool("server.cors_enabled"),
		), nil
	case "cli":
		return filter.NewCliFilter(f.service, f.logger, false)
	default:
		return nil, fmt.Errorf("unsupported frontend type: %s", frontendType)
	}
}
