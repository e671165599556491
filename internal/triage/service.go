package triage

import (
	"context"
	"fmt"

	"github.com/thewellnesslondon/wellness-api/internal/observability/metrics"
	"github.com/thewellnesslondon/wellness-api/pkg/logging"
)

// Service runs the triage rules and records each assessment.
type Service struct {
	repo    Repository
	metrics *metrics.ClinicMetrics
	logger  *logging.Logger
}

// NewService creates a triage service.
func NewService(repo Repository, m *metrics.ClinicMetrics, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
}

// Check analyzes the reported symptoms and persists one assessment record
// before returning, regardless of the triage outcome.
func (s *Service) Check(ctx context.Context, req SymptomCheckRequest) (*SymptomCheckResponse, error) {
	recommendations := Analyze(req.Symptoms, req.Category)
	severity := Severity(req.Symptoms)
	urgent := ShouldSeeDoctor(req.Symptoms)

	assessment := &HealthAssessment{
		SessionID:       req.SessionID,
		Symptoms:        req.Symptoms,
		Category:        req.Category,
		Severity:        severity,
		Recommendations: recommendations,
	}
	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, fmt.Errorf("triage: save assessment: %w", err)
	}

	s.metrics.ObserveAssessment(req.Category, urgent)
	s.logger.Info("assessment recorded",
		"assessment_id", assessment.ID,
		"session_id", req.SessionID,
		"category", req.Category,
		"severity", severity,
		"urgent", urgent,
	)

	return &SymptomCheckResponse{
		Recommendations: recommendations,
		Severity:        severity,
		ShouldSeeDoctor: urgent,
	}, nil
}
