package core

import (
	"sort"
	"strings"
)

// DefaultMaxSpans caps the number of highlight spans per message.
const DefaultMaxSpans = 12

// lowerASCII folds ASCII letters only, keeping byte length identical to the
// input so that match offsets stay aligned with the original text.
func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

// Highlight locates every case-insensitive occurrence of the given phrases
// in the original, uncleaned body and returns ordered, non-overlapping
// spans with the text exactly as it appears in the body.
//
// Candidates are gathered phrase by phrase, left to right, advancing past
// each match so a phrase cannot overlap itself; gathering stops once
// maxSpans candidates exist. Candidates are then sorted by start offset
// (longer span first on ties, preferring the more specific match) and kept
// greedily so that each kept span starts at or after the previous one's
// end. Empty body or phrase list yields an empty slice.
func Highlight(body string, phrases []string, maxSpans int) []HighlightSpan {
	spans := make([]HighlightSpan, 0, maxSpans)
	if body == "" || len(phrases) == 0 || maxSpans <= 0 {
		return spans
	}

	lower := lowerASCII(body)

gather:
	for _, phrase := range phrases {
		needle := lowerASCII(phrase)
		if needle == "" {
			continue
		}
		offset := 0
		for {
			idx := strings.Index(lower[offset:], needle)
			if idx < 0 {
				break
			}
			start := offset + idx
			end := start + len(needle)
			spans = append(spans, HighlightSpan{Start: start, End: end, Text: body[start:end]})
			offset = end
			if len(spans) >= maxSpans {
				break gather
			}
		}
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})

	kept := spans[:0]
	lastEnd := -1
	for _, s := range spans {
		if s.Start >= lastEnd {
			kept = append(kept, s)
			lastEnd = s.End
		}
	}
	if len(kept) > maxSpans {
		kept = kept[:maxSpans]
	}
	return kept
}

// HighlightPhrases builds the phrase list for Highlight: every rule hit
// phrase in hit order, followed by the highlight-eligible top tokens,
// deduplicated in encounter order.
func HighlightPhrases(hits []RuleHit, tokens []string) []string {
	phrases := make([]string, 0, len(tokens))
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, dup := seen[p]; dup || p == "" {
			return
		}
		seen[p] = struct{}{}
		phrases = append(phrases, p)
	}
	for _, hit := range hits {
		for _, phrase := range hit.Phrases {
			add(phrase)
		}
	}
	for _, token := range tokens {
		add(token)
	}
	return phrases
}
