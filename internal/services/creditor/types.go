package creditor

import "time"

// Validation reasons reported to callers.
const (
	ReasonOK        = "ok"
	ReasonMalformed = "malformed"
	ReasonChecksum  = "checksum"
)

// Report is the outcome of validating one creditor identifier.
type Report struct {
	CreditorID string `json:"creditor_id"`
	Valid      bool   `json:"valid"`
	Reason     string `json:"reason"`
	German     bool   `json:"german,omitempty"`
	Country    string `json:"country,omitempty"`
}

// MetricsCollector defines the interface for collecting validation metrics
type MetricsCollector interface {
	RecordValidation(scheme, outcome string)
	RecordOperationDuration(operation string, duration time.Duration)
}
