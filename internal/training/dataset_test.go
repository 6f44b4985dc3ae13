package training

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dataset.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Run("parses rows and normalizes text", func(t *testing.T) {
		path := writeDataset(t, "subject,body,label\n"+
			"URGENT: Verify,Click http://evil.example now,phishing\n"+
			"Lunch?,See you at Noon,legitimate\n")

		examples, err := LoadCSV(path)
		require.NoError(t, err)
		require.Len(t, examples, 2)

		assert.Equal(t, "urgent: verify click URL now", examples[0].Text)
		assert.True(t, examples[0].Positive)
		assert.Equal(t, "lunch? see you at noon", examples[1].Text)
		assert.False(t, examples[1].Positive)
	})

	t.Run("accepts all positive label spellings", func(t *testing.T) {
		path := writeDataset(t, "subject,body,label\n"+
			"a,b,1\n"+
			"a,b,SPAM\n"+
			"a,b,phishing_or_spam\n"+
			"a,b,0\n"+
			"a,b,ham\n")

		examples, err := LoadCSV(path)
		require.NoError(t, err)
		require.Len(t, examples, 5)
		assert.True(t, examples[0].Positive)
		assert.True(t, examples[1].Positive)
		assert.True(t, examples[2].Positive)
		assert.False(t, examples[3].Positive)
		assert.False(t, examples[4].Positive)
	})

	t.Run("column order does not matter", func(t *testing.T) {
		path := writeDataset(t, "label,extra,body,subject\n"+
			"phishing,x,win money,Prize\n")

		examples, err := LoadCSV(path)
		require.NoError(t, err)
		require.Len(t, examples, 1)
		assert.Equal(t, "prize win money", examples[0].Text)
		assert.True(t, examples[0].Positive)
	})

	t.Run("missing required columns", func(t *testing.T) {
		path := writeDataset(t, "text,label\nhello,1\n")

		_, err := LoadCSV(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "subject, body and label columns")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}
