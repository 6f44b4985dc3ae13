package core

import (
	"strings"
)

const (
	// riskNeutral is reported for every category when the document has no
	// positive contribution mass at all.
	riskNeutral = 0.10

	// riskFloor keeps a category from displaying as exactly empty.
	riskFloor = 0.05
)

// RiskFragments is one row of the aggregation table: a risk category and
// the substring fragments that map a contributing term into it. Fragments
// may be partial words ("expir", "terminat").
type RiskFragments struct {
	Category  RiskCategory
	Fragments []string
}

// RiskTable maps model vocabulary terms into the five risk categories.
// This is a separate taxonomy from the rule table and is not merged with it.
type RiskTable []RiskFragments

// DefaultRiskTable returns a fresh copy of the built-in aggregation table.
func DefaultRiskTable() RiskTable {
	return RiskTable{
		{Category: RiskUrgency, Fragments: []string{
			"urgent", "immediate", "asap", "now", "hurry", "expir", "deadline",
		}},
		{Category: RiskCredentials, Fragments: []string{
			"password", "verify", "login", "account", "credential", "confirm",
		}},
		{Category: RiskLinks, Fragments: []string{
			"url", "click", "link", "http", "www", "open",
		}},
		{Category: RiskThreats, Fragments: []string{
			"suspend", "lock", "disable", "terminat", "alert", "unauthorized", "breach",
		}},
		{Category: RiskMoney, Fragments: []string{
			"invoice", "payment", "bank", "refund", "wire", "card", "transaction", "money",
		}},
	}
}

// RiskBreakdown distributes the document's positive contribution mass over
// the risk categories. A term counts toward every category with a matching
// fragment. Each category reports its share of the total positive mass,
// clamped to [0.05, 1.0]; with no positive mass every category reports the
// neutral 0.10.
//
// The output is a relative-strength indicator, not a distribution: the
// categories are not mutually exclusive and the values need not sum to 1.
func RiskBreakdown(contributions []TermContribution, table RiskTable) map[RiskCategory]float64 {
	sums := make(map[RiskCategory]float64, len(table))
	total := 0.0

	for _, c := range contributions {
		if c.Weight <= 0 {
			continue
		}
		total += c.Weight
		term := strings.ToLower(c.Term)
		for _, row := range table {
			for _, fragment := range row.Fragments {
				if strings.Contains(term, fragment) {
					sums[row.Category] += c.Weight
					break
				}
			}
		}
	}

	breakdown := make(map[RiskCategory]float64, len(table))
	if total <= 0 {
		for _, row := range table {
			breakdown[row.Category] = riskNeutral
		}
		return breakdown
	}

	for _, row := range table {
		share := sums[row.Category] / total
		if share < riskFloor {
			share = riskFloor
		}
		if share > 1.0 {
			share = 1.0
		}
		breakdown[row.Category] = share
	}
	return breakdown
}
