package pkg

import "time"

// ProfileRecord is one row of the user_profile table.  Optional columns are
// nullable in the schema and surface here as pointers.
type ProfileRecord struct {
	SNo               int64
	FullName          *string
	DateOfBirth       *time.Time
	Address           *string
	ContactNumber     *string
	EmergencyContact  *string
	Gender            *string
	Age               *int
	BloodGroup        *string
	PastIllnesses     *string
	CurrentConditions *string
	Allergies         *string
	Medications       *string
	PastSurgeries     *string
	FamilyHistory     *string
	Lifestyle         *string
}

// PersonalInfo is the administrative half of a patient profile as returned to
// clients.  DateOfBirth is pre-formatted for display (e.g. "14 March 1986").
type PersonalInfo struct {
	SNo              int64   `json:"s_no"`
	FullName         *string `json:"full_name"`
	DateOfBirth      *string `json:"date_of_birth"`
	Address          *string `json:"address"`
	ContactNumber    *string `json:"contact_number"`
	EmergencyContact *string `json:"emergency_contact"`
}

// MedicalInfo is the clinical half of a patient profile.
type MedicalInfo struct {
	Gender            *string `json:"gender"`
	Age               *int    `json:"age"`
	BloodGroup        *string `json:"blood_group"`
	PastIllnesses     *string `json:"past_illnesses"`
	CurrentConditions *string `json:"current_medical_conditions"`
	Allergies         *string `json:"allergies"`
	Medications       *string `json:"current_medications"`
	PastSurgeries     *string `json:"past_surgeries_major_injuries"`
	FamilyHistory     *string `json:"family_medical_history"`
	Lifestyle         *string `json:"lifestyle_factors"`
}

// HospitalRecord is one facility row.  Specializations is a free-text,
// comma-separated list of department keywords (e.g. "Cardiology, Neurology").
type HospitalRecord struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Address         *string `json:"address"`
	ContactNumber   *string `json:"contact_number"`
	Specializations string  `json:"specializations"`
}

// Prediction is a single (label, score) pair from the classifier.  Score is a
// request-local confidence in [0,1]; scores are not comparable across calls.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// AIPrediction is the ranked suggestion attached to a profile lookup.
type AIPrediction struct {
	InputText   string       `json:"input_text"`
	Predictions []Prediction `json:"predictions"`
	Note        string       `json:"note"`
}

// HospitalMatch is the response envelope for the symptom-to-hospital flow.
type HospitalMatch struct {
	Symptoms              string           `json:"symptoms"`
	PredictedCategory     string           `json:"predicted_category"`
	Confidence            float64          `json:"confidence"`
	MatchedSpecialization string           `json:"matched_specialization"`
	RecommendedHospitals  []HospitalRecord `json:"recommended_hospitals"`
}

// DiseasePrediction is the response envelope for the profile-diagnosis flow.
type DiseasePrediction struct {
	PersonalInfo PersonalInfo `json:"personal_info"`
	MedicalInfo  MedicalInfo  `json:"medical_info"`
	AIPrediction AIPrediction `json:"ai_prediction"`
}

// FindHospitalRequest is the body of POST /api/find_hospital.
type FindHospitalRequest struct {
	Symptoms string `json:"symptoms"`
}

// PredictDiseaseRequest is the body of POST /api/predict_disease.  SNo is a
// pointer so a missing key can be told apart from zero.
type PredictDiseaseRequest struct {
	SNo *int64 `json:"s_no"`
}
