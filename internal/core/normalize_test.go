package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		body     string
		expected string
	}{
		{
			name:     "lowercases and joins subject and body",
			subject:  "URGENT: Verify",
			body:     "Click Here",
			expected: "urgent: verify click here",
		},
		{
			name:     "replaces http urls with placeholder",
			subject:  "",
			body:     "see http://evil.example/a now",
			expected: "see URL now",
		},
		{
			name:     "replaces www hosts with placeholder",
			subject:  "offer",
			body:     "visit www.evil.example today",
			expected: "offer visit URL today",
		},
		{
			name:     "collapses whitespace and trims",
			subject:  "  hello \t",
			body:     " world\n\n again ",
			expected: "hello world again",
		},
		{
			name:     "both empty",
			subject:  "",
			body:     "",
			expected: "",
		},
		{
			name:     "subject only",
			subject:  "Invoice attached",
			body:     "",
			expected: "invoice attached",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.subject, tt.body))
		})
	}
}

func TestNormalizeIdempotentWithoutUrls(t *testing.T) {
	once := Normalize("Some SUBJECT", "plain body   text")
	twice := Normalize(once, "")
	assert.Equal(t, once, twice)
}
