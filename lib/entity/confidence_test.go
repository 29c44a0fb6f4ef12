package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateConfidence(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		label string
		want  float64
	}{
		{
			name:  "base score only",
			text:  "ate",
			label: "FAC",
			want:  0.7,
		},
		{
			name:  "length bonus",
			text:  "gradient",
			label: "FAC",
			want:  0.8,
		},
		{
			name:  "capitalisation bonus",
			text:  "Ada",
			label: "FAC",
			want:  0.8,
		},
		{
			name:  "high trust label bonus",
			text:  "ate",
			label: "ORG",
			want:  0.8,
		},
		{
			name:  "all bonuses clamp at one",
			text:  "Microsoft",
			label: "ORG",
			want:  1.0,
		},
		{
			name:  "cjk text gets length bonus on runes",
			text:  "自然言語処理",
			label: "FAC",
			want:  0.8,
		},
	}
	for _, tt := range tests {
		t.Log(tt.name)
		assert.InDelta(t, tt.want, EstimateConfidence(tt.text, tt.label), 1e-9)
	}
}

// adding a signal must never lower the score.
func TestEstimateConfidenceMonotonic(t *testing.T) {
	assert.GreaterOrEqual(t, EstimateConfidence("BERT", "FAC"), EstimateConfidence("ate", "FAC"))
	assert.GreaterOrEqual(t, EstimateConfidence("Ada", "FAC"), EstimateConfidence("ada", "FAC"))
	assert.GreaterOrEqual(t, EstimateConfidence("ate", "PERSON"), EstimateConfidence("ate", "FAC"))
}

func TestEstimateConfidenceBounds(t *testing.T) {
	for _, text := range []string{"", "a", "Ada Lovelace", "自然言語処理モデル"} {
		for _, label := range []string{"PERSON", "ORG", "PRODUCT", "FAC", ""} {
			got := EstimateConfidence(text, label)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		}
	}
}
