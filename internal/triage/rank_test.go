package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hospital-triage/pkg"
)

func TestTopK(t *testing.T) {
	preds := []pkg.Prediction{
		{Label: "cardiovascular", Score: 0.82},
		{Label: "respiratory", Score: 0.07},
		{Label: "other", Score: 0.05},
		{Label: "metabolic", Score: 0.03},
	}

	tests := []struct {
		name string
		in   []pkg.Prediction
		k    int
		want int
	}{
		{"k smaller than input", preds, 3, 3},
		{"k equals input", preds, 4, 4},
		{"k larger than input", preds[:2], 3, 2},
		{"empty input", nil, 3, 0},
		{"k zero", preds, 0, 0},
		{"k negative", preds, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TopK(tt.in, tt.k)
			assert.Len(t, got, tt.want)
			// truncation keeps descending order
			for i := 1; i < len(got); i++ {
				assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
			}
		})
	}
}
