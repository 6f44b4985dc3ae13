package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/logging"
	"github.com/phishlens/phishlens/internal/training"
)

var (
	dataPath = flag.String("data", "data/emails.csv", "Labeled dataset CSV (subject, body, label columns)")
	outPath  = flag.String("out", "models/phishlens_lr_tfidf.json", "Output path for the model artifact")

	maxFeatures  = flag.Int("max-features", 50000, "Maximum vocabulary size")
	minDocFreq   = flag.Int("min-df", 2, "Minimum document frequency for a term")
	ngramMax     = flag.Int("ngram-max", 2, "Maximum n-gram length")
	epochs       = flag.Int("epochs", 30, "Training epochs")
	learningRate = flag.Float64("lr", 0.5, "SGD learning rate")
	testFraction = flag.Float64("test-size", 0.2, "Held-out fraction for evaluation")
	seed         = flag.Int64("seed", 42, "Random seed for shuffling and splitting")
	noSearch     = flag.Bool("no-threshold-search", false, "Skip F1 threshold search, keep 0.5")

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

	examples, err := training.LoadCSV(*dataPath)
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err), zap.String("path", *dataPath))
	}
	logger.Info("Loaded dataset", zap.String("path", *dataPath), zap.Int("examples", len(examples)))

	opts := training.Options{
		MaxFeatures:     *maxFeatures,
		MinDocFreq:      *minDocFreq,
		NGramMax:        *ngramMax,
		Epochs:          *epochs,
		LearningRate:    *learningRate,
		L2:              1e-6,
		TestFraction:    *testFraction,
		Seed:            *seed,
		SearchThreshold: !*noSearch,
	}

	file, metrics, err := training.New(opts, logger).Train(examples)
	if err != nil {
		logger.Fatal("Training failed", zap.Error(err))
	}

	fmt.Printf("\n=== Evaluation (held-out split) ===\n")
	fmt.Printf("Train examples: %d\n", metrics.TrainExamples)
	fmt.Printf("Test examples:  %d\n", metrics.TestExamples)
	fmt.Printf("Accuracy:       %.4f\n", metrics.Accuracy)
	fmt.Printf("Precision:      %.4f\n", metrics.Precision)
	fmt.Printf("Recall:         %.4f\n", metrics.Recall)
	fmt.Printf("F1:             %.4f\n", metrics.F1)
	fmt.Printf("Threshold:      %.2f\n", metrics.Threshold)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		logger.Fatal("Failed to create output directory", zap.Error(err))
	}
	payload, err := json.Marshal(file)
	if err != nil {
		logger.Fatal("Failed to encode artifact", zap.Error(err))
	}
	if err := os.WriteFile(*outPath, payload, 0o644); err != nil {
		logger.Fatal("Failed to write artifact", zap.Error(err))
	}
	logger.Info("Saved model artifact",
		zap.String("path", *outPath),
		zap.Int("vocabulary_size", len(file.Vocabulary)))
}
