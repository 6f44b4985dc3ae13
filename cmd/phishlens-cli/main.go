package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/mail"
	"os"

	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/adapters/filter"
	"github.com/phishlens/phishlens/internal/config"
	"github.com/phishlens/phishlens/internal/core"
	"github.com/phishlens/phishlens/internal/factory"
	"github.com/phishlens/phishlens/internal/logging"
)

var (
	modelPath = flag.String("model", "models/phishlens_lr_tfidf.json", "Path to the trained model artifact")
	threshold = flag.Float64("threshold", 0, "Decision threshold override (0 = use artifact value)")

	subject   = flag.String("subject", "", "Message subject to score")
	body      = flag.String("body", "", "Message body to score")
	inputFile = flag.String("file", "", "Read an RFC 5322 email file instead (use stdin with -file -)")

	jsonOut = flag.Bool("json", false, "Print the raw prediction JSON instead of the report")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := createConfigFromFlags()

	modelFactory := factory.NewModelFactory(cfg, logger)
	model, err := modelFactory.CreateTextModel()
	if err != nil {
		logger.Fatal("Failed to load model", zap.Error(err))
	}

	service := core.NewPredictionService(
		model,
		nil, // no cache for one-shot scoring
		core.DefaultRuleTable(),
		core.DefaultRiskTable(),
		logger,
		false,
		0,
		modelFactory.ResolveThreshold(model),
	)

	msgSubject, msgBody := *subject, *body
	if *inputFile != "" {
		msgSubject, msgBody, err = readEmail(*inputFile)
		if err != nil {
			logger.Fatal("Failed to read email", zap.Error(err), zap.String("file", *inputFile))
		}
	}

	if *jsonOut {
		result, err := service.Predict(context.Background(), msgSubject, msgBody)
		if err != nil {
			logger.Fatal("Failed to score message", zap.Error(err))
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			logger.Fatal("Failed to encode result", zap.Error(err))
		}
		return
	}

	cli, err := filter.NewCliFilter(service, logger, *verbose)
	if err != nil {
		logger.Fatal("Failed to create CLI frontend", zap.Error(err))
	}
	if _, err := cli.ProcessMessage(context.Background(), msgSubject, msgBody); err != nil {
		logger.Fatal("Failed to score message", zap.Error(err))
	}
}

// readEmail parses subject and body from an email file, or stdin for "-".
func readEmail(path string) (string, string, error) {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return "", "", err
		}
		defer f.Close()
		reader = f
	}

	msg, err := mail.ReadMessage(bufio.NewReader(reader))
	if err != nil {
		return "", "", fmt.Errorf("failed to parse email: %w", err)
	}
	bodyBytes, err := io.ReadAll(msg.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read email body: %w", err)
	}
	return msg.Header.Get("Subject"), string(bodyBytes), nil
}

// createConfigFromFlags builds a configuration carrying the flag values.
func createConfigFromFlags() *config.Config {
	v := config.NewEmptyViper()
	v.Set("model.path", *modelPath)
	v.Set("model.threshold_override", *threshold)
	return config.NewFromViper(v)
}
