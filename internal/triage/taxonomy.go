package triage

// CandidateLabels is the fixed, ordered category set handed to the
// classifier on every request.  Order matters: it is the tie-break order
// for equal scores.
var CandidateLabels = []string{
	"cardiovascular",
	"respiratory",
	"metabolic",
	"infectious",
	"neurological",
	"dermatological",
	"musculoskeletal",
	"gastrointestinal",
	"psychiatric",
	"other",
}

// specializationMap translates a predicted category into the department
// keyword used to filter hospital records.
var specializationMap = map[string]string{
	"cardiovascular":   "Cardiology",
	"respiratory":      "Pulmonology",
	"metabolic":        "Endocrinology",
	"infectious":       "Infectious",
	"neurological":     "Neurology",
	"dermatological":   "Dermatology",
	"musculoskeletal":  "Orthopedics",
	"gastrointestinal": "Gastroenterology",
	"psychiatric":      "Psychiatry",
	"other":            "General",
}

// SpecializationFor returns the hospital specialization keyword for a
// category label.  Labels outside the candidate set fall back to "General".
func SpecializationFor(label string) string {
	if s, ok := specializationMap[label]; ok {
		return s
	}
	return "General"
}
