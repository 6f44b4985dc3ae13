package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFile() *File {
	return &File{
		Vocabulary:   []string{"free", "free money", "money"},
		IDF:          []float64{1.0, 1.0, 1.0},
		Coefficients: []float64{2.0, 3.0, 1.0},
		Intercept:    -1.0,
		NGramMax:     2,
	}
}

func TestNewRejectsMisalignedArrays(t *testing.T) {
	file := testFile()
	file.IDF = file.IDF[:2]

	_, err := New(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model artifact is corrupt")
}

func TestVectorize(t *testing.T) {
	model, err := New(testFile())
	require.NoError(t, err)

	t.Run("unigrams and bigrams with l2 norm", func(t *testing.T) {
		vector := model.Vectorize("free money now")
		require.Len(t, vector, 3)
		// Three in-vocabulary terms with equal weight, unit norm.
		expected := 1.0 / 1.7320508075688772
		assert.InDelta(t, expected, vector["free"], 1e-9)
		assert.InDelta(t, expected, vector["money"], 1e-9)
		assert.InDelta(t, expected, vector["free money"], 1e-9)
	})

	t.Run("out of vocabulary terms are ignored", func(t *testing.T) {
		vector := model.Vectorize("completely unrelated words")
		assert.Empty(t, vector)
	})

	t.Run("empty text yields empty vector", func(t *testing.T) {
		assert.Empty(t, model.Vectorize(""))
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		vector := model.Vectorize("FREE")
		require.Len(t, vector, 1)
		assert.InDelta(t, 1.0, vector["free"], 1e-9)
	})
}

func TestPredictProba(t *testing.T) {
	model, err := New(testFile())
	require.NoError(t, err)

	t.Run("spammy text scores high", func(t *testing.T) {
		// z = -1 + (2+3+1)/sqrt(3), sigmoid(2.4641) ~ 0.9216
		p := model.PredictProba("free money now")
		assert.InDelta(t, 0.9216, p, 0.001)
	})

	t.Run("empty text falls back to intercept", func(t *testing.T) {
		// sigmoid(-1) ~ 0.2689
		p := model.PredictProba("")
		assert.InDelta(t, 0.2689, p, 0.001)
	})

	t.Run("probability stays within unit interval", func(t *testing.T) {
		p := model.PredictProba("free free free money money")
		assert.Greater(t, p, 0.0)
		assert.Less(t, p, 1.0)
	})
}

func TestThreshold(t *testing.T) {
	t.Run("defaults to 0.5 without calibration", func(t *testing.T) {
		model, err := New(testFile())
		require.NoError(t, err)
		assert.InDelta(t, 0.5, model.Threshold(), 1e-9)
	})

	t.Run("uses the calibrated value when valid", func(t *testing.T) {
		file := testFile()
		threshold := 0.42
		file.Threshold = &threshold

		model, err := New(file)
		require.NoError(t, err)
		assert.InDelta(t, 0.42, model.Threshold(), 1e-9)
	})

	t.Run("ignores out-of-range values", func(t *testing.T) {
		file := testFile()
		threshold := 1.5
		file.Threshold = &threshold

		model, err := New(file)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, model.Threshold(), 1e-9)
	})
}

func TestLoad(t *testing.T) {
	t.Run("round trips through json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "model.json")
		data, err := json.Marshal(testFile())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		model, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 3, model.VocabularySize())
		assert.InDelta(t, 2.0, model.Coefficients()["free"], 1e-9)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestTerms(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		ngramMax int
		expected []string
	}{
		{
			name:     "unigrams only",
			text:     "Verify Your Account",
			ngramMax: 1,
			expected: []string{"verify", "your", "account"},
		},
		{
			name:     "bigrams follow unigrams",
			text:     "verify your account",
			ngramMax: 2,
			expected: []string{"verify", "your", "account", "verify your", "your account"},
		},
		{
			name:     "single character tokens are dropped",
			text:     "a verify b",
			ngramMax: 1,
			expected: []string{"verify"},
		},
		{
			name:     "empty text",
			text:     "",
			ngramMax: 2,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Terms(tt.text, tt.ngramMax))
		})
	}
}
