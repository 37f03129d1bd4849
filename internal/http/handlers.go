package http

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"hospital-triage/internal/triage"
	"hospital-triage/pkg"
)

// Server bundles together the dependencies required by HTTP handlers.
type Server struct {
	Triage *triage.Service
	DB     *sql.DB
}

// NewServer constructs the echo application with routes and middleware
// registered.
func NewServer(svc *triage.Service, dbConn *sql.DB, logger zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(RequestID(), Logger(logger))

	s := &Server{Triage: svc, DB: dbConn}
	e.POST("/api/find_hospital", s.handleFindHospital)
	e.POST("/api/predict_disease", s.handlePredictDisease)
	e.GET("/healthz", s.handleHealth)
	return e
}

// handleFindHospital runs the symptom-to-hospital flow.
func (s *Server) handleFindHospital(c echo.Context) error {
	var req pkg.FindHospitalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	match, err := s.Triage.FindHospital(c.Request().Context(), req.Symptoms)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, match)
}

// handlePredictDisease runs the profile-diagnosis flow.
func (s *Server) handlePredictDisease(c echo.Context) error {
	var req pkg.PredictDiseaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	if req.SNo == nil {
		return mapError(triage.ErrMissingSerial)
	}
	pred, err := s.Triage.PredictDisease(c.Request().Context(), *req.SNo)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, pred)
}

// handleHealth pings the database so load balancers can tell a wedged
// connection pool from a healthy one.
func (s *Server) handleHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// mapError translates flow errors onto HTTP status codes.  Anything not in
// the taxonomy is a storage failure.
func mapError(err error) error {
	switch {
	case errors.Is(err, triage.ErrEmptySymptoms), errors.Is(err, triage.ErrMissingSerial):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, triage.ErrProfileNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, triage.ErrClassifier):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
