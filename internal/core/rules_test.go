package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRules(t *testing.T) {
	table := DefaultRuleTable()

	t.Run("classic phishing message triggers four categories", func(t *testing.T) {
		subject := "URGENT: verify your password now"
		body := "Click here to confirm your login within 24 hours or your account will be suspended."

		hits := MatchRules(subject, body, table)
		require.Len(t, hits, 4)

		assert.Equal(t, "Urgency / Pressure", hits[0].Category)
		assert.Equal(t, []string{"urgent"}, hits[0].Phrases)

		assert.Equal(t, "Credential / Verification", hits[1].Category)
		assert.Equal(t, []string{"confirm", "login", "password", "verify"}, hits[1].Phrases)

		assert.Equal(t, "Link / Action Prompt", hits[2].Category)
		assert.Equal(t, []string{"click"}, hits[2].Phrases)

		assert.Equal(t, "Threat / Consequence", hits[3].Category)
		assert.Equal(t, []string{"suspended"}, hits[3].Phrases)
	})

	t.Run("benign message has no hits", func(t *testing.T) {
		hits := MatchRules("Lunch tomorrow?", "Shall we grab food at noon?", table)
		assert.Empty(t, hits)
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		hits := MatchRules("", "PLEASE SEND THE INVOICE", table)
		require.Len(t, hits, 1)
		assert.Equal(t, "Money / Payment", hits[0].Category)
		assert.Equal(t, []string{"invoice"}, hits[0].Phrases)
	})

	t.Run("repeated phrase is reported once", func(t *testing.T) {
		hits := MatchRules("", "click this and click that", table)
		require.Len(t, hits, 1)
		assert.Equal(t, []string{"click"}, hits[0].Phrases)
	})

	t.Run("empty message has no hits", func(t *testing.T) {
		assert.Empty(t, MatchRules("", "", table))
	})

	t.Run("urls are not masked before matching", func(t *testing.T) {
		hits := MatchRules("", "go to http://bank.example", table)
		require.Len(t, hits, 1)
		assert.Equal(t, "Money / Payment", hits[0].Category)
		assert.Equal(t, []string{"bank"}, hits[0].Phrases)
	})
}
