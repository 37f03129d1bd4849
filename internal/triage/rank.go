package triage

import "hospital-triage/pkg"

// AdvisoryNote accompanies every ranked suggestion.  The wording is part of
// the API contract and must not imply a diagnosis.
const AdvisoryNote = "This is an automated categorization suggestion (not a medical diagnosis). " +
	"Consult a healthcare professional for confirmation."

// TopK returns the first k predictions.  Classifier output is already sorted
// descending, so truncation preserves rank.  Fewer than k entries returns
// them all; k below one returns nothing.
func TopK(preds []pkg.Prediction, k int) []pkg.Prediction {
	if k < 0 {
		k = 0
	}
	if len(preds) <= k {
		return preds
	}
	return preds[:k]
}
