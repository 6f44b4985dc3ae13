package artifact

import (
	"regexp"
	"strings"
)

// wordPattern extracts word tokens of at least two characters, mirroring
// the vectorizer behavior the model was trained with.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize splits lowercased text into word tokens.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Terms expands word tokens into the n-gram terms the vocabulary is built
// from: unigrams first, then space-joined n-grams up to ngramMax. The same
// expansion runs at training and inference time.
func Terms(text string, ngramMax int) []string {
	tokens := Tokenize(text)
	if ngramMax < 2 || len(tokens) < 2 {
		return tokens
	}
	terms := make([]string, len(tokens), len(tokens)*ngramMax)
	copy(terms, tokens)
	for n := 2; n <= ngramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}
	return terms
}
