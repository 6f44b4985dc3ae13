package factory

import (
	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/config"
	"github.com/phishlens/phishlens/internal/utils"
)

// TextProcessorFactory creates the inbound text processor.
type TextProcessorFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewTextProcessorFactory creates a text processor factory.
func NewTextProcessorFactory(cfg *config.Config, logger *zap.Logger) *TextProcessorFactory {
	return &TextProcessorFactory{cfg: cfg, logger: logger}
}

// CreateTextProcessor creates a processor with the configured size cap.
func (f *TextProcessorFactory) CreateTextProcessor() *utils.TextProcessor {
	return utils.NewTextProcessor(f.logger, f.cfg.GetInt("server.max_body_size"))
}
