package core

import (
	"regexp"
	"strings"
)

// urlPattern matches http(s) URLs and bare www hosts after lowercasing.
var urlPattern = regexp.MustCompile(`http\S+|www\.\S+`)

var whitespacePattern = regexp.MustCompile(`\s+`)

// Normalize canonicalizes a message into the single string fed to the
// vectorizer: subject and body joined by a space, lowercased, URLs replaced
// by the URL placeholder token, whitespace collapsed and trimmed.
//
// The trainer uses the exact same function on its labeled data; any change
// here changes the feature space and requires retraining.
func Normalize(subject, body string) string {
	text := strings.ToLower(subject + " " + body)
	text = urlPattern.ReplaceAllString(text, " URL ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
