// Package training fits the TF-IDF + logistic regression artifact consumed
// by the scoring service. It is an offline collaborator: the service only
// ever sees the JSON artifact this package writes.
package training

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/phishlens/phishlens/internal/artifact"
)

// Example is one labeled training document. Text must already be
// normalized with core.Normalize so training and serving share the exact
// same feature space.
type Example struct {
	Text     string
	Positive bool
}

// Options tune the fitting procedure.
type Options struct {
	MaxFeatures     int
	MinDocFreq      int
	NGramMax        int
	Epochs          int
	LearningRate    float64
	L2              float64
	TestFraction    float64
	Seed            int64
	SearchThreshold bool
}

// DefaultOptions mirror the configuration the production model was
// trained with.
func DefaultOptions() Options {
	return Options{
		MaxFeatures:     50000,
		MinDocFreq:      2,
		NGramMax:        2,
		Epochs:          30,
		LearningRate:    0.5,
		L2:              1e-6,
		TestFraction:    0.2,
		Seed:            42,
		SearchThreshold: true,
	}
}

// Trainer fits a model from labeled examples.
type Trainer struct {
	opts   Options
	logger *zap.Logger
}

// New creates a trainer.
func New(opts Options, logger *zap.Logger) *Trainer {
	return &Trainer{opts: opts, logger: logger}
}

// Train fits the vectorizer and classifier, evaluates on a held-out split
// and returns the artifact ready to persist.
func (t *Trainer) Train(examples []Example) (*artifact.File, Metrics, error) {
	if len(examples) < 4 {
		return nil, Metrics{}, fmt.Errorf("not enough training examples: %d", len(examples))
	}

	rng := rand.New(rand.NewSource(t.opts.Seed))
	shuffled := make([]Example, len(examples))
	copy(shuffled, examples)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	testSize := int(float64(len(shuffled)) * t.opts.TestFraction)
	if testSize < 1 {
		testSize = 1
	}
	test := shuffled[:testSize]
	train := shuffled[testSize:]

	vocabulary, idf := t.fitVocabulary(train)
	t.logger.Info("Fitted vocabulary",
		zap.Int("terms", len(vocabulary)),
		zap.Int("train_docs", len(train)),
		zap.Int("test_docs", len(test)))

	index := make(map[string]int, len(vocabulary))
	for i, term := range vocabulary {
		index[term] = i
	}

	trainVectors := make([]map[int]float64, len(train))
	for i, ex := range train {
		trainVectors[i] = vectorize(ex.Text, index, idf, t.opts.NGramMax)
	}

	weights, intercept := t.fit(train, trainVectors, len(vocabulary), rng)

	testVectors := make([]map[int]float64, len(test))
	for i, ex := range test {
		testVectors[i] = vectorize(ex.Text, index, idf, t.opts.NGramMax)
	}
	probabilities := make([]float64, len(test))
	for i, vec := range testVectors {
		probabilities[i] = probability(vec, weights, intercept)
	}

	threshold := artifact.DefaultThreshold
	if t.opts.SearchThreshold {
		threshold = searchThreshold(probabilities, test)
	}
	metrics := Evaluate(probabilities, test, threshold)
	metrics.Threshold = threshold
	metrics.TrainExamples = len(train)
	metrics.TestExamples = len(test)

	t.logger.Info("Evaluation on held-out split",
		zap.Float64("accuracy", metrics.Accuracy),
		zap.Float64("precision", metrics.Precision),
		zap.Float64("recall", metrics.Recall),
		zap.Float64("f1", metrics.F1),
		zap.Float64("threshold", threshold))

	file := &artifact.File{
		Vocabulary:   vocabulary,
		IDF:          idf,
		Coefficients: weights,
		Intercept:    intercept,
		Threshold:    &threshold,
		NGramMax:     t.opts.NGramMax,
		TrainedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	return file, metrics, nil
}

// fitVocabulary selects terms by document frequency: stopword unigrams
// out, MinDocFreq enforced, then the MaxFeatures most frequent terms.
func (t *Trainer) fitVocabulary(train []Example) ([]string, []float64) {
	docFreq := make(map[string]int)
	for _, ex := range train {
		seen := make(map[string]struct{})
		for _, term := range artifact.Terms(ex.Text, t.opts.NGramMax) {
			if !strings.Contains(term, " ") && isStopword(term) {
				continue
			}
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			docFreq[term]++
		}
	}

	type termFreq struct {
		term string
		df   int
	}
	candidates := make([]termFreq, 0, len(docFreq))
	minDF := t.opts.MinDocFreq
	if minDF < 1 {
		minDF = 1
	}
	for term, df := range docFreq {
		if df >= minDF {
			candidates = append(candidates, termFreq{term, df})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].df != candidates[j].df {
			return candidates[i].df > candidates[j].df
		}
		return candidates[i].term < candidates[j].term
	})
	if t.opts.MaxFeatures > 0 && len(candidates) > t.opts.MaxFeatures {
		candidates = candidates[:t.opts.MaxFeatures]
	}

	vocabulary := make([]string, len(candidates))
	for i, c := range candidates {
		vocabulary[i] = c.term
	}
	sort.Strings(vocabulary)

	n := float64(len(train))
	idf := make([]float64, len(vocabulary))
	for i, term := range vocabulary {
		// Smoothed IDF, same formula the artifact vectorizer assumes.
		idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	return vocabulary, idf
}

// fit runs mini-batch-free SGD over the training vectors with balanced
// class weighting and L2 regularization.
func (t *Trainer) fit(train []Example, vectors []map[int]float64, features int, rng *rand.Rand) ([]float64, float64) {
	positives := 0
	for _, ex := range train {
		if ex.Positive {
			positives++
		}
	}
	negatives := len(train) - positives

	// Balanced class weights: n / (2 * n_class).
	posWeight, negWeight := 1.0, 1.0
	if positives > 0 && negatives > 0 {
		posWeight = float64(len(train)) / (2 * float64(positives))
		negWeight = float64(len(train)) / (2 * float64(negatives))
	}

	weights := make([]float64, features)
	intercept := 0.0
	order := make([]int, len(train))
	for i := range order {
		order[i] = i
	}

	for epoch := 0; epoch < t.opts.Epochs; epoch++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		loss := 0.0
		for _, i := range order {
			vec := vectors[i]
			p := probability(vec, weights, intercept)
			y, classWeight := 0.0, negWeight
			if train[i].Positive {
				y, classWeight = 1.0, posWeight
			}
			gradient := (p - y) * classWeight
			for j, x := range vec {
				weights[j] -= t.opts.LearningRate * (gradient*x + t.opts.L2*weights[j])
			}
			intercept -= t.opts.LearningRate * gradient
			loss += logLoss(p, y) * classWeight
		}
		if epoch == 0 || (epoch+1)%10 == 0 {
			t.logger.Debug("Training epoch",
				zap.Int("epoch", epoch+1),
				zap.Float64("loss", loss/float64(len(train))))
		}
	}
	return weights, intercept
}

func vectorize(text string, index map[string]int, idf []float64, ngramMax int) map[int]float64 {
	counts := make(map[int]int)
	for _, term := range artifact.Terms(text, ngramMax) {
		if i, ok := index[term]; ok {
			counts[i]++
		}
	}
	vec := make(map[int]float64, len(counts))
	norm := 0.0
	for i, count := range counts {
		w := float64(count) * idf[i]
		vec[i] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func probability(vec map[int]float64, weights []float64, intercept float64) float64 {
	z := intercept
	for i, x := range vec {
		z += weights[i] * x
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

func logLoss(p, y float64) float64 {
	const eps = 1e-12
	if p < eps {
		p = eps
	} else if p > 1-eps {
		p = 1 - eps
	}
	return -(y*math.Log(p) + (1-y)*math.Log(1-p))
}

// searchThreshold sweeps candidate decision boundaries and keeps the one
// maximizing F1 on the held-out split.
func searchThreshold(probabilities []float64, test []Example) float64 {
	best, bestF1 := artifact.DefaultThreshold, -1.0
	for th := 0.05; th <= 0.95; th += 0.01 {
		m := Evaluate(probabilities, test, th)
		if m.F1 > bestF1 {
			best, bestF1 = th, m.F1
		}
	}
	return best
}
