package core

import (
	"sort"
	"strings"
)

// RuleCategory is one row of the keyword rule table: a display category and
// the literal phrases that trigger it. Multi-word phrases are allowed.
type RuleCategory struct {
	Name    string
	Phrases []string
}

// RuleTable is the fixed category table, matched in declaration order.
type RuleTable []RuleCategory

// DefaultRuleTable returns a fresh copy of the built-in rule table so that
// callers can hold it as immutable configuration.
func DefaultRuleTable() RuleTable {
	return RuleTable{
		{Name: "Urgency / Pressure", Phrases: []string{
			"urgent", "immediately", "asap", "act now", "right away", "limited time", "final warning",
		}},
		{Name: "Credential / Verification", Phrases: []string{
			"password", "verify", "login", "sign in", "confirm", "credentials", "update your account",
		}},
		{Name: "Link / Action Prompt", Phrases: []string{
			"click", "link", "open", "download", "attachment", "verify here", "reset",
		}},
		{Name: "Threat / Consequence", Phrases: []string{
			"suspended", "locked", "disabled", "terminated", "security alert", "unauthorized", "breach",
		}},
		{Name: "Money / Payment", Phrases: []string{
			"invoice", "payment", "bank", "refund", "transaction", "wire", "gift card",
		}},
	}
}

// MatchRules scans the lowercased subject+body for each category's phrases
// and returns the categories with at least one hit, in table order. The
// matched phrases per category are deduplicated and sorted.
//
// This is a lighter pass than Normalize on purpose: URLs are not replaced,
// so literal "http"/"www" text still matches phrase lists.
func MatchRules(subject, body string, table RuleTable) []RuleHit {
	text := strings.ToLower(subject + " " + body)

	hits := make([]RuleHit, 0, len(table))
	for _, category := range table {
		seen := make(map[string]struct{})
		for _, phrase := range category.Phrases {
			if strings.Contains(text, phrase) {
				seen[phrase] = struct{}{}
			}
		}
		if len(seen) == 0 {
			continue
		}
		matched := make([]string, 0, len(seen))
		for phrase := range seen {
			matched = append(matched, phrase)
		}
		sort.Strings(matched)
		hits = append(hits, RuleHit{Category: category.Name, Phrases: matched})
	}
	return hits
}
