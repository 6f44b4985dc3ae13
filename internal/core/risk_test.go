package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskBreakdown(t *testing.T) {
	table := DefaultRiskTable()

	t.Run("no contributions reports neutral everywhere", func(t *testing.T) {
		breakdown := RiskBreakdown(nil, table)
		require.Len(t, breakdown, 5)
		for category, value := range breakdown {
			assert.InDelta(t, 0.10, value, 1e-9, "category %s", category)
		}
	})

	t.Run("mass is shared by matching fragments", func(t *testing.T) {
		contributions := []TermContribution{
			{Term: "password", Weight: 0.6},
			{Term: "click", Weight: 0.4},
		}

		breakdown := RiskBreakdown(contributions, table)
		assert.InDelta(t, 0.6, breakdown[RiskCredentials], 1e-9)
		assert.InDelta(t, 0.4, breakdown[RiskLinks], 1e-9)
		assert.InDelta(t, 0.05, breakdown[RiskUrgency], 1e-9)
		assert.InDelta(t, 0.05, breakdown[RiskThreats], 1e-9)
		assert.InDelta(t, 0.05, breakdown[RiskMoney], 1e-9)
	})

	t.Run("one term can feed several categories", func(t *testing.T) {
		contributions := []TermContribution{
			{Term: "account locked", Weight: 1.0},
		}

		breakdown := RiskBreakdown(contributions, table)
		assert.InDelta(t, 1.0, breakdown[RiskCredentials], 1e-9)
		assert.InDelta(t, 1.0, breakdown[RiskThreats], 1e-9)
		assert.InDelta(t, 0.05, breakdown[RiskMoney], 1e-9)
	})

	t.Run("partial fragments match inside terms", func(t *testing.T) {
		contributions := []TermContribution{
			{Term: "expiring", Weight: 0.5},
			{Term: "terminated", Weight: 0.5},
		}

		breakdown := RiskBreakdown(contributions, table)
		assert.InDelta(t, 0.5, breakdown[RiskUrgency], 1e-9)
		assert.InDelta(t, 0.5, breakdown[RiskThreats], 1e-9)
	})

	t.Run("values stay within bounds", func(t *testing.T) {
		contributions := []TermContribution{
			{Term: "zzz", Weight: 99.0},
			{Term: "bank", Weight: 0.001},
		}

		breakdown := RiskBreakdown(contributions, table)
		for category, value := range breakdown {
			assert.GreaterOrEqual(t, value, 0.05, "category %s", category)
			assert.LessOrEqual(t, value, 1.0, "category %s", category)
		}
		assert.InDelta(t, 0.05, breakdown[RiskMoney], 1e-9)
	})

	t.Run("negative weights are ignored", func(t *testing.T) {
		contributions := []TermContribution{
			{Term: "payment", Weight: -1.0},
		}

		breakdown := RiskBreakdown(contributions, table)
		for _, value := range breakdown {
			assert.InDelta(t, 0.10, value, 1e-9)
		}
	})
}
