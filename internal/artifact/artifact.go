// Package artifact loads the trained classifier produced by the offline
// trainer and exposes it to the scoring pipeline as a core.TextModel.
//
// The artifact is a JSON file holding the TF-IDF vocabulary with its IDF
// weights and the logistic regression coefficients, plus the calibrated
// decision threshold when one was found during training. It is loaded once
// at process start and never mutated.
package artifact

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/phishlens/phishlens/internal/core"
)

// DefaultThreshold is used when the artifact carries no calibrated value.
const DefaultThreshold = 0.5

// File is the persisted artifact schema. Vocabulary, IDF and Coefficients
// are parallel arrays; a length mismatch is a fatal configuration error.
type File struct {
	Vocabulary   []string  `json:"vocabulary"`
	IDF          []float64 `json:"idf"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Threshold    *float64  `json:"threshold,omitempty"`
	NGramMax     int       `json:"ngram_max"`
	TrainedAt    string    `json:"trained_at,omitempty"`
}

// Model is the in-memory trained classifier. Immutable after construction
// and safe for concurrent use.
type Model struct {
	index        map[string]int
	idf          []float64
	coefficients map[string]float64
	intercept    float64
	threshold    float64
	ngramMax     int
}

// Load reads and validates an artifact file.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}
	return New(&file)
}

// New builds a Model from a parsed artifact, validating array alignment.
func New(file *File) (*Model, error) {
	if len(file.Vocabulary) != len(file.IDF) || len(file.Vocabulary) != len(file.Coefficients) {
		return nil, fmt.Errorf(
			"model artifact is corrupt: vocabulary(%d), idf(%d) and coefficients(%d) must align",
			len(file.Vocabulary), len(file.IDF), len(file.Coefficients))
	}

	m := &Model{
		index:        make(map[string]int, len(file.Vocabulary)),
		idf:          file.IDF,
		coefficients: make(map[string]float64, len(file.Vocabulary)),
		intercept:    file.Intercept,
		threshold:    DefaultThreshold,
		ngramMax:     file.NGramMax,
	}
	if m.ngramMax < 1 {
		m.ngramMax = 1
	}
	for i, term := range file.Vocabulary {
		m.index[term] = i
		m.coefficients[term] = file.Coefficients[i]
	}
	if file.Threshold != nil && *file.Threshold > 0 && *file.Threshold < 1 {
		m.threshold = *file.Threshold
	}
	return m, nil
}

// Vectorize computes the L2-normalized TF-IDF vector for the text over the
// model vocabulary. Out-of-vocabulary terms are skipped; an empty text
// yields an empty vector.
func (m *Model) Vectorize(text string) core.TermVector {
	counts := make(map[string]int)
	for _, term := range Terms(text, m.ngramMax) {
		if _, known := m.index[term]; known {
			counts[term]++
		}
	}

	vector := make(core.TermVector, len(counts))
	norm := 0.0
	for term, count := range counts {
		w := float64(count) * m.idf[m.index[term]]
		vector[term] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for term := range vector {
			vector[term] /= norm
		}
	}
	return vector
}

// PredictProba returns the logistic probability of the phishing class.
func (m *Model) PredictProba(text string) float64 {
	z := m.intercept
	for term, weight := range m.Vectorize(text) {
		z += m.coefficients[term] * weight
	}
	return sigmoid(z)
}

// Coefficients returns the learned per-term weights.
func (m *Model) Coefficients() map[string]float64 {
	return m.coefficients
}

// Threshold returns the calibrated decision boundary.
func (m *Model) Threshold() float64 {
	return m.threshold
}

// VocabularySize reports the number of terms in the model.
func (m *Model) VocabularySize() int {
	return len(m.index)
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
