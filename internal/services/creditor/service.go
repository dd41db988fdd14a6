package creditor

import (
	"context"
	"time"

	"veriban/internal/country"
)

// Service exposes the creditor-identifier engine with metrics.
type Service interface {
	Validate(ctx context.Context, ci string) *Report
	Generate(ctx context.Context, code country.Code, businessArea, nationalID string) (string, error)
	Decompose(ctx context.Context, ci string) (Parts, error)
}

type service struct {
	metrics MetricsCollector
}

// NewService creates a new creditor-identifier service
func NewService(metrics MetricsCollector) Service {
	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{metrics: metrics}
}

func (s *service) Validate(ctx context.Context, raw string) *Report {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("creditor_validate", time.Since(start)) }()

	norm := Normalize(raw)
	report := &Report{CreditorID: norm}

	valid, err := Validate(norm)
	report.Valid = valid
	report.Reason = FailureReason(valid, err)
	if valid {
		report.Country = norm[:checkStart]
		report.German = IsGermanCreditorID(norm)
	}
	s.metrics.RecordValidation("creditor", report.Reason)
	return report
}

func (s *service) Generate(ctx context.Context, code country.Code, businessArea, nationalID string) (string, error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("creditor_generate", time.Since(start)) }()

	out, err := Generate(code, businessArea, nationalID)
	if err != nil {
		s.metrics.RecordValidation("creditor_generate", "error")
		return "", err
	}
	s.metrics.RecordValidation("creditor_generate", ReasonOK)
	return out, nil
}

func (s *service) Decompose(ctx context.Context, raw string) (Parts, error) {
	return Decompose(raw)
}
