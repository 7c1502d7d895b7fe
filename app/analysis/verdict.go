package analysis

import (
	"github.com/veracify/veracify/app/evidence"
)

// SynthesizeVerdict maps raw classifier output through the confidence
// thresholds. Low-confidence results are always forced to UNCERTAIN with a
// floor of 50%.
func SynthesizeVerdict(confidence float64, label Label) Verdict {
	pct := int(confidence * 100)

	if label == LabelUncertain || confidence < 0.60 {
		return Verdict{Label: LabelUncertain, Confidence: max(50, pct)}
	}
	return Verdict{Label: label, Confidence: pct}
}

// EvidenceAgreement estimates how much the evidence set corroborates the
// verdict label, from the ratio of high-similarity sources. Returns the
// neutral 0.5 for an empty set; capped at 0.9.
func EvidenceAgreement(sources []evidence.Source, label Label) float64 {
	if len(sources) == 0 {
		return 0.5
	}

	highCount := 0
	for _, source := range sources {
		if source.Similarity == evidence.SimilarityHigh {
			highCount++
		}
	}
	highRatio := float64(highCount) / float64(len(sources))

	var agreement float64
	switch label {
	case LabelFake:
		// High similarity to fact-check coverage contradicts the article.
		agreement = 0.3 + highRatio*0.5
	case LabelReal:
		agreement = 0.5 + highRatio*0.4
	default:
		agreement = 0.5 + float64(highCount%2)*0.1
	}

	return min(agreement, 0.9)
}

// AdjustConfidence blends the evidence agreement into the confidence
// percentage: up to a 10-point shift, with the result clamped to [50, 95].
// An empty evidence set leaves the confidence untouched.
func AdjustConfidence(base int, evidenceCount int, agreement float64) int {
	if evidenceCount == 0 {
		return base
	}

	adjusted := base + int(agreement*10)
	return max(50, min(95, adjusted))
}
