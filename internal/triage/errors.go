package triage

import "errors"

// Sentinel errors for the two triage flows.  Handlers map these onto HTTP
// status codes; everything else is treated as a storage failure.
var (
	ErrEmptySymptoms   = errors.New("missing 'symptoms' in request body")
	ErrMissingSerial   = errors.New("missing 's_no' in request body")
	ErrProfileNotFound = errors.New("user not found")
	ErrClassifier      = errors.New("classification failed")
)
