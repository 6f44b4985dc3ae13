package core

import (
	"fmt"
	"strings"
)

// Advice tier boundaries on the phishing probability.
const (
	adviceLowMax  = 0.35
	adviceHighMin = 0.60
)

// Summarize produces the one-line natural-language summary. With no rule
// hits it states that the classification rests on learned patterns alone;
// otherwise it names the first two matched categories in rule-table order.
func Summarize(probability float64, hits []RuleHit) string {
	if len(hits) == 0 {
		return fmt.Sprintf(
			"No strong rule-based indicators found; classification is based mainly on learned patterns. Predicted phishing probability: %.2f.",
			probability,
		)
	}
	top := make([]string, 0, 2)
	for _, hit := range hits {
		top = append(top, hit.Category)
		if len(top) == 2 {
			break
		}
	}
	return fmt.Sprintf(
		"High risk signals detected: %s. Predicted phishing probability: %.2f.",
		strings.Join(top, ", "), probability,
	)
}

// Advise returns the three next-step recommendations for the message.
// Tiers: probability at or above 0.60 is high risk regardless of label;
// [0.35, 0.60) is medium risk; below 0.35 a legitimate label gets the
// low-risk guidance, while a phishing label keeps the medium tier.
func Advise(probability float64, label Label) []string {
	switch {
	case probability >= adviceHighMin:
		return []string{
			"Do not click any links or open attachments in this message.",
			"Verify the request through a separate, trusted channel before acting.",
			"Report the message to your security team and delete it.",
		}
	case probability >= adviceLowMax:
		return []string{
			"Verify the sender's address and domain before responding.",
			"Avoid clicking links in the message until the sender is confirmed.",
			"Be cautious of urgency or pressure language in the message.",
		}
	case label == LabelLegitimate:
		return []string{
			"Verify the sender if the message was unexpected.",
			"Avoid following unfamiliar links or attachments.",
			"Escalate to your security team if anything feels off.",
		}
	default:
		return []string{
			"Verify the sender's address and domain before responding.",
			"Avoid clicking links in the message until the sender is confirmed.",
			"Be cautious of urgency or pressure language in the message.",
		}
	}
}
