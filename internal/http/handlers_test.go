package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-triage/internal/triage"
	"hospital-triage/pkg"
)

type stubClassifier struct {
	preds []pkg.Prediction
	err   error
	calls int
}

func (s *stubClassifier) Classify(_ context.Context, _ string, _ []string) ([]pkg.Prediction, error) {
	s.calls++
	return s.preds, s.err
}

type stubRepo struct {
	profile     *pkg.ProfileRecord
	profileErr  error
	hospitals   []pkg.HospitalRecord
	hospitalErr error
}

func (s *stubRepo) GetProfile(_ context.Context, _ int64) (*pkg.ProfileRecord, error) {
	return s.profile, s.profileErr
}

func (s *stubRepo) FindHospitalsBySpecialization(_ context.Context, _ string) ([]pkg.HospitalRecord, error) {
	return s.hospitals, s.hospitalErr
}

func newTestServer(classifier triage.Classifier, repo triage.Repository) http.Handler {
	svc := triage.NewService(classifier, repo, 3)
	return NewServer(svc, nil, zerolog.Nop())
}

func post(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func classifierPreds() []pkg.Prediction {
	preds := make([]pkg.Prediction, 0, len(triage.CandidateLabels))
	for i, label := range triage.CandidateLabels {
		score := 0.02
		if i == 0 {
			score = 0.82
		}
		preds = append(preds, pkg.Prediction{Label: label, Score: score})
	}
	return preds
}

func TestFindHospitalEndpoint(t *testing.T) {
	repo := &stubRepo{hospitals: []pkg.HospitalRecord{
		{ID: "h1", Name: "City Heart Institute", Specializations: "Cardiology"},
	}}
	srv := newTestServer(&stubClassifier{preds: classifierPreds()}, repo)

	rec := post(t, srv, "/api/find_hospital", `{"symptoms": "chest pain and shortness of breath"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp pkg.HospitalMatch
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cardiovascular", resp.PredictedCategory)
	assert.InDelta(t, 0.82, resp.Confidence, 1e-9)
	assert.Equal(t, "Cardiology", resp.MatchedSpecialization)
	require.Len(t, resp.RecommendedHospitals, 1)
	assert.Equal(t, "City Heart Institute", resp.RecommendedHospitals[0].Name)
}

func TestFindHospitalEndpoint_MissingSymptoms(t *testing.T) {
	classifier := &stubClassifier{preds: classifierPreds()}
	srv := newTestServer(classifier, &stubRepo{})

	for _, body := range []string{`{}`, `{"symptoms": ""}`, ``} {
		rec := post(t, srv, "/api/find_hospital", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
	}
	assert.Zero(t, classifier.calls)
}

func TestFindHospitalEndpoint_StorageFailure(t *testing.T) {
	repo := &stubRepo{hospitalErr: errors.New("connection refused")}
	srv := newTestServer(&stubClassifier{preds: classifierPreds()}, repo)

	rec := post(t, srv, "/api/find_hospital", `{"symptoms": "fever"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFindHospitalEndpoint_ClassifierFailure(t *testing.T) {
	srv := newTestServer(&stubClassifier{err: errors.New("upstream down")}, &stubRepo{})

	rec := post(t, srv, "/api/find_hospital", `{"symptoms": "fever"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestPredictDiseaseEndpoint(t *testing.T) {
	name := "Jordan Reyes"
	repo := &stubRepo{profile: &pkg.ProfileRecord{SNo: 7, FullName: &name}}
	srv := newTestServer(&stubClassifier{preds: classifierPreds()}, repo)

	rec := post(t, srv, "/api/predict_disease", `{"s_no": 7}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp pkg.DiseasePrediction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.PersonalInfo.SNo)
	assert.Nil(t, resp.PersonalInfo.DateOfBirth)
	assert.Len(t, resp.AIPrediction.Predictions, 3)
	assert.NotEmpty(t, resp.AIPrediction.Note)
	assert.NotEmpty(t, resp.AIPrediction.InputText)
}

func TestPredictDiseaseEndpoint_MissingSerial(t *testing.T) {
	classifier := &stubClassifier{preds: classifierPreds()}
	srv := newTestServer(classifier, &stubRepo{})

	rec := post(t, srv, "/api/predict_disease", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, classifier.calls)
}

func TestPredictDiseaseEndpoint_NotFound(t *testing.T) {
	classifier := &stubClassifier{preds: classifierPreds()}
	srv := newTestServer(classifier, &stubRepo{})

	rec := post(t, srv, "/api/predict_disease", `{"s_no": 999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, classifier.calls)
}
