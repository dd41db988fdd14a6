package iban

import (
	"context"
	"time"

	"veriban/internal/country"
)

// Service exposes the IBAN engine with directory enrichment and metrics.
type Service interface {
	Validate(ctx context.Context, iban string) *Report
	Generate(ctx context.Context, code country.Code, bban string) (string, error)
	Inspect(ctx context.Context, iban string) *Report
	CheckBIC(ctx context.Context, bic string) *BICReport
}

type service struct {
	directory Directory
	metrics   MetricsCollector
}

// NewService creates a new IBAN service
func NewService(directory Directory, metrics MetricsCollector) Service {
	if directory == nil {
		panic("directory is required")
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		directory: directory,
		metrics:   metrics,
	}
}

func (s *service) Validate(ctx context.Context, raw string) *Report {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("iban_validate", time.Since(start)) }()

	report := s.check(raw)
	s.metrics.RecordValidation("iban", report.Reason)
	return report
}

func (s *service) Generate(ctx context.Context, code country.Code, bban string) (string, error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("iban_generate", time.Since(start)) }()

	out, err := Generate(code, bban)
	if err != nil {
		s.metrics.RecordValidation("iban_generate", "error")
		return "", err
	}
	s.metrics.RecordValidation("iban_generate", ReasonOK)
	return out, nil
}

// Inspect validates and decomposes an IBAN. German IBANs are enriched with
// the BIC and institution name resolved through the bank directory.
func (s *service) Inspect(ctx context.Context, raw string) *Report {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("iban_inspect", time.Since(start)) }()

	report := s.check(raw)
	s.metrics.RecordValidation("iban", report.Reason)
	if !report.Valid {
		return report
	}

	if report.Country == "DE" {
		if parts, err := Split(report.IBAN); err == nil {
			report.BankCode = parts.BankCode
			report.AccountNumber = parts.AccountNumber
		}
		if bic, ok := s.directory.ResolveBIC(ctx, report.BankCode); ok {
			report.BIC = bic
			if name, ok := s.directory.ResolveBankName(ctx, bic); ok {
				report.BankName = name
			}
		}
	}
	return report
}

func (s *service) CheckBIC(ctx context.Context, bic string) *BICReport {
	report := &BICReport{BIC: bic, WellFormed: IsBIC(bic)}
	if !report.WellFormed {
		s.metrics.RecordValidation("bic", ReasonMalformed)
		return report
	}
	s.metrics.RecordValidation("bic", ReasonOK)
	if name, ok := s.directory.ResolveBankName(ctx, bic); ok {
		report.BankName = name
	}
	return report
}

// check runs the pure validation pipeline and fills the outcome fields.
func (s *service) check(raw string) *Report {
	norm := Normalize(raw)
	report := &Report{IBAN: norm}

	if IsAnonymized(norm) {
		report.Anonymized = true
		report.Reason = ReasonAnonymized
		return report
	}

	valid, err := Validate(norm)
	report.Valid = valid
	report.Reason = FailureReason(valid, err)
	if valid {
		report.Country = norm[:2]
	}
	return report
}
