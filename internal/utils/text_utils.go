package utils

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// TextProcessor prepares untrusted inbound text before it reaches the
// scoring pipeline: enforces a size cap and strips invalid UTF-8.
type TextProcessor struct {
	logger  *zap.Logger
	maxSize int
}

// NewTextProcessor creates a TextProcessor. maxSize <= 0 disables the cap.
func NewTextProcessor(logger *zap.Logger, maxSize int) *TextProcessor {
	return &TextProcessor{logger: logger, maxSize: maxSize}
}

// Prepare truncates and sanitizes text in one pass.
func (tp *TextProcessor) Prepare(text string) string {
	return tp.Sanitize(tp.Truncate(text))
}

// Truncate caps text at the configured byte size, cutting back to a valid
// UTF-8 boundary.
func (tp *TextProcessor) Truncate(text string) string {
	if tp.maxSize <= 0 || len(text) <= tp.maxSize {
		return text
	}
	truncated := text[:tp.maxSize]
	for len(truncated) > 0 && !utf8.ValidString(truncated) {
		truncated = truncated[:len(truncated)-1]
	}
	tp.logger.Debug("Truncated oversized message text",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)))
	return truncated
}

// Sanitize drops invalid UTF-8 sequences.
func (tp *TextProcessor) Sanitize(text string) string {
	if utf8.ValidString(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		b.WriteRune(r)
		i += size
	}
	tp.logger.Debug("Sanitized invalid UTF-8 in message text",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", b.Len()))
	return b.String()
}
