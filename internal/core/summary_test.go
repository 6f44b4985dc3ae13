package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("no hits falls back to learned-pattern wording", func(t *testing.T) {
		summary := Summarize(0.12, nil)
		assert.Equal(t,
			"No strong rule-based indicators found; classification is based mainly on learned patterns. Predicted phishing probability: 0.12.",
			summary)
	})

	t.Run("names the first two categories in table order", func(t *testing.T) {
		hits := []RuleHit{
			{Category: "Urgency / Pressure", Phrases: []string{"urgent"}},
			{Category: "Credential / Verification", Phrases: []string{"password"}},
			{Category: "Threat / Consequence", Phrases: []string{"suspended"}},
		}
		summary := Summarize(0.91, hits)
		assert.Equal(t,
			"High risk signals detected: Urgency / Pressure, Credential / Verification. Predicted phishing probability: 0.91.",
			summary)
	})

	t.Run("single hit names one category", func(t *testing.T) {
		hits := []RuleHit{{Category: "Money / Payment", Phrases: []string{"invoice"}}}
		summary := Summarize(0.40, hits)
		assert.Equal(t,
			"High risk signals detected: Money / Payment. Predicted phishing probability: 0.40.",
			summary)
	})
}

func TestAdvise(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		label       Label
		firstLine   string
	}{
		{
			name:        "high tier at the 0.60 boundary",
			probability: 0.60,
			label:       LabelPhishing,
			firstLine:   "Do not click any links or open attachments in this message.",
		},
		{
			name:        "medium tier just below the high boundary",
			probability: 0.59,
			label:       LabelPhishing,
			firstLine:   "Verify the sender's address and domain before responding.",
		},
		{
			name:        "medium tier at the 0.35 boundary",
			probability: 0.35,
			label:       LabelLegitimate,
			firstLine:   "Verify the sender's address and domain before responding.",
		},
		{
			name:        "low tier below 0.35 with legitimate label",
			probability: 0.34,
			label:       LabelLegitimate,
			firstLine:   "Verify the sender if the message was unexpected.",
		},
		{
			name:        "low probability with phishing label keeps medium tier",
			probability: 0.20,
			label:       LabelPhishing,
			firstLine:   "Verify the sender's address and domain before responding.",
		},
		{
			name:        "certain phishing",
			probability: 0.99,
			label:       LabelPhishing,
			firstLine:   "Do not click any links or open attachments in this message.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := Advise(tt.probability, tt.label)
			require.Len(t, advice, 3)
			assert.Equal(t, tt.firstLine, advice[0])
		})
	}
}
