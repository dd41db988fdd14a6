package creditor

// FailureReason classifies a Validate outcome into the reason string
// reported to callers. A false outcome with a nil error is a checksum
// failure.
func FailureReason(valid bool, err error) string {
	switch {
	case valid:
		return ReasonOK
	case err == nil:
		return ReasonChecksum
	default:
		return ReasonMalformed
	}
}
