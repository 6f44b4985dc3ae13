package core

import (
	"time"
)

// Message is a single email to score, as submitted by a frontend.
// Missing subject or body are represented as empty strings and are valid.
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Label is the binary classification outcome.
type Label string

const (
	LabelPhishing   Label = "phishing_or_spam"
	LabelLegitimate Label = "legitimate"
)

// TermVector maps a vocabulary term to its weight in one document.
// Terms absent from the document are simply not present in the map.
type TermVector map[string]float64

// TermContribution is one vocabulary term's pull toward the phishing class
// for a specific document: document term weight times learned coefficient.
type TermContribution struct {
	Term   string  `json:"token"`
	Weight float64 `json:"weight"`
}

// RuleHit records that at least one phrase of a rule category was found in
// the message text. Phrases are deduplicated and sorted.
type RuleHit struct {
	Category string   `json:"category"`
	Phrases  []string `json:"hits"`
}

// RiskCategory keys the model-weight risk aggregation. This taxonomy is
// intentionally distinct from the rule categories; the two tables evolved
// separately and are kept separate (see DESIGN.md).
type RiskCategory string

const (
	RiskUrgency     RiskCategory = "urgency"
	RiskCredentials RiskCategory = "credentials"
	RiskLinks       RiskCategory = "links"
	RiskThreats     RiskCategory = "threats"
	RiskMoney       RiskCategory = "money"
)

// HighlightSpan is a byte range into the original, uncleaned body text.
// Text preserves the casing as it appears in the body.
type HighlightSpan struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

// PredictionResult is the complete scoring output for one message.
// Every field is populated on every request, including degenerate inputs.
type PredictionResult struct {
	Label          Label                    `json:"label"`
	Probability    float64                  `json:"probability_phishing"`
	Explanations   []TermContribution       `json:"explanations"`
	Reasons        []RuleHit                `json:"reasons"`
	RiskBreakdown  map[RiskCategory]float64 `json:"risk_breakdown"`
	HighlightSpans []HighlightSpan          `json:"highlight_spans"`
	Summary        string                   `json:"summary"`
	Advice         []string                 `json:"advice"`
	AnalyzedAt     time.Time                `json:"analyzed_at"`
	ModelUsed      string                   `json:"model_used"`
	ProcessingID   string                   `json:"processing_id"`
}
