package training

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/phishlens/phishlens/internal/core"
)

// LoadCSV reads a labeled dataset with subject, body and label columns
// (header row required, extra columns ignored). Labels "1", "phishing",
// "spam" and "phishing_or_spam" mark the positive class. Each document is
// normalized with core.Normalize so the trainer sees exactly what the
// service will vectorize.
func LoadCSV(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset header: %w", err)
	}
	subjectCol, bodyCol, labelCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "subject":
			subjectCol = i
		case "body":
			bodyCol = i
		case "label":
			labelCol = i
		}
	}
	if subjectCol < 0 || bodyCol < 0 || labelCol < 0 {
		return nil, fmt.Errorf("dataset must have subject, body and label columns, got %v", header)
	}

	var examples []Example
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row: %w", err)
		}
		if labelCol >= len(record) {
			continue
		}
		subject, body := "", ""
		if subjectCol < len(record) {
			subject = record[subjectCol]
		}
		if bodyCol < len(record) {
			body = record[bodyCol]
		}
		examples = append(examples, Example{
			Text:     core.Normalize(subject, body),
			Positive: isPositiveLabel(record[labelCol]),
		})
	}
	return examples, nil
}

func isPositiveLabel(label string) bool {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "1", "phishing", "spam", "phishing_or_spam":
		return true
	}
	return false
}
