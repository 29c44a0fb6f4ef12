package entity

import (
	"unicode"
	"unicode/utf8"
)

// The NER models emit no scores, so confidence is estimated with a fixed
// additive heuristic. These are hand-picked constants, not calibrated
// probabilities - treat the resulting score as a coarse ranking signal only.
const (
	// BaseConfidence is the score every model span starts from.
	BaseConfidence = 0.7
	// lengthBonus applies when the span is longer than shortSpanLength runes.
	lengthBonus     = 0.1
	shortSpanLength = 3
	// caseBonus applies when the span starts with an uppercase rune.
	caseBonus = 0.1
	// labelBonus applies to native labels the models are reliably good at.
	labelBonus    = 0.1
	maxConfidence = 1.0
)

var highTrustLabels = map[string]struct{}{
	"PERSON":  {},
	"ORG":     {},
	"PRODUCT": {},
}

// EstimateConfidence scores a model span from its text and native label.
// Each signal only ever adds to the score, and the sum is clamped at 1.0.
func EstimateConfidence(spanText, nativeLabel string) float64 {
	confidence := BaseConfidence

	if utf8.RuneCountInString(spanText) > shortSpanLength {
		confidence += lengthBonus
	}

	if first, _ := utf8.DecodeRuneInString(spanText); unicode.IsUpper(first) {
		confidence += caseBonus
	}

	if _, ok := highTrustLabels[nativeLabel]; ok {
		confidence += labelBonus
	}

	if confidence > maxConfidence {
		return maxConfidence
	}
	return confidence
}
