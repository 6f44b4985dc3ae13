package core

import (
	"sort"
)

const (
	// maxContributions caps the explanation list.
	maxContributions = 10

	// Highlighting only uses tokens long enough to be meaningful when
	// located in the raw body text.
	maxHighlightTokens   = 6
	minHighlightTokenLen = 4
)

// RankContributions multiplies the document term vector by the model's
// per-term coefficients and returns the strongest positive contributors
// toward the phishing class, descending by weight, capped at 10.
//
// Only terms actually present in the document (strictly positive term
// weight) are considered; a coefficient without document presence never
// produces a contribution. An empty result is valid output.
func RankContributions(doc TermVector, coefficients map[string]float64) []TermContribution {
	contributions := make([]TermContribution, 0, len(doc))
	for term, tf := range doc {
		if tf <= 0 {
			continue
		}
		coef, ok := coefficients[term]
		if !ok {
			continue
		}
		weight := tf * coef
		if weight <= 0 {
			continue
		}
		contributions = append(contributions, TermContribution{Term: term, Weight: weight})
	}

	sort.Slice(contributions, func(i, j int) bool {
		if contributions[i].Weight != contributions[j].Weight {
			return contributions[i].Weight > contributions[j].Weight
		}
		// Deterministic order for equal weights.
		return contributions[i].Term < contributions[j].Term
	})

	if len(contributions) > maxContributions {
		contributions = contributions[:maxContributions]
	}
	return contributions
}

// HighlightTokens selects the subset of ranked contributions that is
// eligible for span highlighting: display length of at least 4 characters,
// first 6 in ranking order. Short junk tokens stay in the explanation list
// but are never highlighted.
func HighlightTokens(contributions []TermContribution) []string {
	tokens := make([]string, 0, maxHighlightTokens)
	for _, c := range contributions {
		if len(c.Term) < minHighlightTokenLen {
			continue
		}
		tokens = append(tokens, c.Term)
		if len(tokens) == maxHighlightTokens {
			break
		}
	}
	return tokens
}
