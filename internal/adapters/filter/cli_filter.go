// Package filter implements the one-shot command-line frontend.
package filter

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/core"
)

// CliFilter scores a single message and prints a human-readable report.
type CliFilter struct {
	service *core.PredictionService
	logger  *zap.Logger
	verbose bool
}

// NewCliFilter creates a CLI frontend.
func NewCliFilter(service *core.PredictionService, logger *zap.Logger, verbose bool) (*CliFilter, error) {
	return &CliFilter{
		service: service,
		logger:  logger,
		verbose: verbose,
	}, nil
}

// ProcessMessage scores the message and prints the report to stdout.
func (f *CliFilter) ProcessMessage(ctx context.Context, subject, body string) (*core.PredictionResult, error) {
	f.logger.Debug("Processing message", zap.Int("subject_len", len(subject)), zap.Int("body_len", len(body)))

	fmt.Printf("\n=== Message Summary ===\n")
	fmt.Printf("Subject: %s\n", subject)
	fmt.Printf("Body length: %d bytes\n", len(body))
	if f.verbose {
		preview := body
		if len(preview) > 500 {
			preview = preview[:500] + "..."
		}
		fmt.Printf("\nBody preview:\n%s\n", preview)
	}

	fmt.Printf("\n=== Analysis ===\n")
	startTime := time.Now()
	result, err := f.service.Predict(ctx, subject, body)
	if err != nil {
		f.logger.Error("Failed to score message", zap.Error(err))
		return nil, err
	}
	duration := time.Since(startTime)

	fmt.Printf("\n=== Results ===\n")
	fmt.Printf("Label: %s\n", result.Label)
	fmt.Printf("Phishing probability: %.4f\n", result.Probability)
	fmt.Printf("Summary: %s\n", result.Summary)

	if len(result.Reasons) > 0 {
		fmt.Printf("\nRule-based indicators:\n")
		for _, hit := range result.Reasons {
			fmt.Printf("  %s: %v\n", hit.Category, hit.Phrases)
		}
	}
	if len(result.Explanations) > 0 {
		fmt.Printf("\nTop contributing tokens:\n")
		for _, c := range result.Explanations {
			fmt.Printf("  %-20s %+.4f\n", c.Term, c.Weight)
		}
	}
	fmt.Printf("\nRisk breakdown:\n")
	for _, category := range []core.RiskCategory{
		core.RiskUrgency, core.RiskCredentials, core.RiskLinks, core.RiskThreats, core.RiskMoney,
	} {
		fmt.Printf("  %-12s %.2f\n", category, result.RiskBreakdown[category])
	}
	fmt.Printf("\nAdvice:\n")
	for _, step := range result.Advice {
		fmt.Printf("  - %s\n", step)
	}
	fmt.Printf("\nProcessing time: %v\n", duration)

	return result, nil
}

// Start is a no-op for the CLI frontend.
func (f *CliFilter) Start() error {
	return nil
}

// Stop is a no-op for the CLI frontend.
func (f *CliFilter) Stop() error {
	return nil
}
