package triage

import (
	"context"
	"fmt"
	"strings"

	"hospital-triage/pkg"
)

// dobLayout matches the display format of the profile endpoint
// (day, full month name, year).
const dobLayout = "02 January 2006"

// Classifier is the zero-shot text-classification capability.  Given an
// input text and the candidate label set it returns one prediction per
// candidate label, sorted by descending score.
type Classifier interface {
	Classify(ctx context.Context, text string, candidateLabels []string) ([]pkg.Prediction, error)
}

// Repository is the storage capability consumed by the triage flows.
// GetProfile returns (nil, nil) when no row matches.
type Repository interface {
	GetProfile(ctx context.Context, sNo int64) (*pkg.ProfileRecord, error)
	FindHospitalsBySpecialization(ctx context.Context, keyword string) ([]pkg.HospitalRecord, error)
}

// Service orchestrates the two triage flows over an injected classifier and
// repository.  It holds no per-request state.
type Service struct {
	classifier Classifier
	repo       Repository
	topK       int
}

// NewService constructs a Service.  topK bounds the ranked suggestion in the
// profile-diagnosis flow and defaults to 3 when not positive.
func NewService(classifier Classifier, repo Repository, topK int) *Service {
	if topK < 1 {
		topK = 3
	}
	return &Service{classifier: classifier, repo: repo, topK: topK}
}

// FindHospital classifies free-text symptoms, maps the top category to a
// specialization keyword and returns facilities whose specializations
// contain that keyword.  Empty symptoms fail before any classifier or
// storage work happens.
func (s *Service) FindHospital(ctx context.Context, symptoms string) (*pkg.HospitalMatch, error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, ErrEmptySymptoms
	}

	preds, err := s.classify(ctx, symptoms)
	if err != nil {
		return nil, err
	}
	top := preds[0]

	keyword := SpecializationFor(top.Label)
	hospitals, err := s.repo.FindHospitalsBySpecialization(ctx, keyword)
	if err != nil {
		return nil, err
	}

	return &pkg.HospitalMatch{
		Symptoms:              symptoms,
		PredictedCategory:     top.Label,
		Confidence:            top.Score,
		MatchedSpecialization: keyword,
		RecommendedHospitals:  hospitals,
	}, nil
}

// PredictDisease fetches a profile by serial number, builds a classification
// prompt from it and returns the profile together with a ranked, disclaimed
// category suggestion.
func (s *Service) PredictDisease(ctx context.Context, sNo int64) (*pkg.DiseasePrediction, error) {
	rec, err := s.repo.GetProfile(ctx, sNo)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrProfileNotFound
	}

	personal, medical := splitProfile(rec)
	text := BuildPrompt(personal, medical)

	preds, err := s.classify(ctx, text)
	if err != nil {
		return nil, err
	}

	return &pkg.DiseasePrediction{
		PersonalInfo: personal,
		MedicalInfo:  medical,
		AIPrediction: pkg.AIPrediction{
			InputText:   text,
			Predictions: TopK(preds, s.topK),
			Note:        AdvisoryNote,
		},
	}, nil
}

// classify wraps the capability call and folds failures and empty results
// into ErrClassifier.
func (s *Service) classify(ctx context.Context, text string) ([]pkg.Prediction, error) {
	preds, err := s.classifier.Classify(ctx, text, CandidateLabels)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassifier, err)
	}
	if len(preds) == 0 {
		return nil, fmt.Errorf("%w: empty result", ErrClassifier)
	}
	return preds, nil
}

// splitProfile separates a stored row into its personal and medical halves
// and formats the date of birth for display.
func splitProfile(rec *pkg.ProfileRecord) (pkg.PersonalInfo, pkg.MedicalInfo) {
	personal := pkg.PersonalInfo{
		SNo:              rec.SNo,
		FullName:         rec.FullName,
		Address:          rec.Address,
		ContactNumber:    rec.ContactNumber,
		EmergencyContact: rec.EmergencyContact,
	}
	if rec.DateOfBirth != nil {
		dob := rec.DateOfBirth.Format(dobLayout)
		personal.DateOfBirth = &dob
	}

	medical := pkg.MedicalInfo{
		Gender:            rec.Gender,
		Age:               rec.Age,
		BloodGroup:        rec.BloodGroup,
		PastIllnesses:     rec.PastIllnesses,
		CurrentConditions: rec.CurrentConditions,
		Allergies:         rec.Allergies,
		Medications:       rec.Medications,
		PastSurgeries:     rec.PastSurgeries,
		FamilyHistory:     rec.FamilyHistory,
		Lifestyle:         rec.Lifestyle,
	}
	return personal, medical
}
