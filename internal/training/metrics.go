package training

// Metrics summarizes classifier quality on the held-out split.
type Metrics struct {
	Accuracy      float64
	Precision     float64
	Recall        float64
	F1            float64
	Threshold     float64
	TrainExamples int
	TestExamples  int
}

// Evaluate computes binary classification metrics for the given decision
// threshold. Undefined ratios (no predicted or no actual positives) report
// as zero rather than NaN.
func Evaluate(probabilities []float64, examples []Example, threshold float64) Metrics {
	var tp, fp, tn, fn int
	for i, p := range probabilities {
		predicted := p >= threshold
		switch {
		case predicted && examples[i].Positive:
			tp++
		case predicted && !examples[i].Positive:
			fp++
		case !predicted && examples[i].Positive:
			fn++
		default:
			tn++
		}
	}

	m := Metrics{}
	if total := tp + fp + tn + fn; total > 0 {
		m.Accuracy = float64(tp+tn) / float64(total)
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}
