package iban

import (
	stderrors "errors"

	"veriban/internal/errors"
)

// FailureReason classifies a Validate outcome into the reason string
// reported to callers. A false outcome with a nil error is a checksum
// failure; anonymized inputs are resolved by the caller before Validate.
func FailureReason(valid bool, err error) string {
	switch {
	case valid:
		return ReasonOK
	case err == nil:
		return ReasonChecksum
	case stderrors.Is(err, errors.ErrUnknownCountry):
		return ReasonUnknownCountry
	case stderrors.Is(err, errors.ErrLengthMismatch):
		return ReasonLengthMismatch
	default:
		return ReasonMalformed
	}
}
