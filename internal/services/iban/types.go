package iban

import (
	"context"
	"time"
)

// Validation reasons reported to callers.
const (
	ReasonOK             = "ok"
	ReasonMalformed      = "malformed"
	ReasonAnonymized     = "anonymized"
	ReasonUnknownCountry = "unknown_country"
	ReasonLengthMismatch = "length_mismatch"
	ReasonChecksum       = "checksum"
)

// Report is the outcome of validating or inspecting one IBAN.
type Report struct {
	IBAN          string `json:"iban"`
	Valid         bool   `json:"valid"`
	Reason        string `json:"reason"`
	Anonymized    bool   `json:"anonymized,omitempty"`
	Country       string `json:"country,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	BIC           string `json:"bic,omitempty"`
	BankName      string `json:"bank_name,omitempty"`
}

// BICReport is the outcome of a BIC shape check, enriched with the
// institution name when the directory knows the BIC.
type BICReport struct {
	BIC        string `json:"bic"`
	WellFormed bool   `json:"well_formed"`
	BankName   string `json:"bank_name,omitempty"`
}

// Directory is the read side of the bank directory the service consults
// when enriching German IBANs. Misses are a boolean, not an error.
type Directory interface {
	ResolveBIC(ctx context.Context, bankCode string) (string, bool)
	ResolveBankName(ctx context.Context, bic string) (string, bool)
}

// MetricsCollector defines the interface for collecting validation metrics
type MetricsCollector interface {
	RecordValidation(scheme, outcome string)
	RecordOperationDuration(operation string, duration time.Duration)
}
