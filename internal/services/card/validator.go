package card

import (
	"slices"
	"strings"
	"time"

	"veriban/internal/checksum"
)

// Card numbers are 12 to 19 digits across all live schemes.
const (
	minNumberLength = 12
	maxNumberLength = 19
)

// maskThreshold is the shortest number FormatMasked will mask; anything
// shorter has no middle to hide.
const maskThreshold = 8

// NormalizeNumber strips every non-digit rune, accepting the usual display
// forms ("4111 1111 ...", "4111-1111-...").
func NormalizeNumber(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidNumber reports whether the normalized number has a plausible length
// and passes the Luhn check.
func IsValidNumber(s string) bool {
	n := NormalizeNumber(s)
	if len(n) < minNumberLength || len(n) > maxNumberLength {
		return false
	}
	return checksum.Luhn(n)
}

// Classify returns the scheme of a card number per the pattern table, or
// TypeUnknown when no entry matches. Classification does not imply Luhn
// validity and vice versa.
func Classify(s string) Type {
	n := NormalizeNumber(s)
	for _, p := range cardPatterns {
		if p.prefix.MatchString(n) && slices.Contains(p.lengths, len(n)) {
			return p.cardType
		}
	}
	return TypeUnknown
}

// FormatMasked renders a number for display: first four and last four
// digits kept, the middle replaced by asterisks, space-separated. Numbers
// shorter than eight digits are returned normalized but unmasked.
func FormatMasked(s string) string {
	n := NormalizeNumber(s)
	if len(n) < maskThreshold {
		return n
	}
	return n[:4] + " " + strings.Repeat("*", len(n)-8) + " " + n[len(n)-4:]
}

// ExpiryValid reports whether month/year is a usable card expiry. A card
// expires at the end of its month. Two-digit years expand into the current
// century, rolling one century forward when the expanded date already
// passed.
func ExpiryValid(month, year int) bool {
	if month < 1 || month > 12 {
		return false
	}
	now := time.Now()
	curYear, curMonth := now.Year(), int(now.Month())
	if year < 100 {
		year += (curYear / 100) * 100
		if year < curYear || (year == curYear && month < curMonth) {
			year += 100
		}
	}
	return year > curYear || (year == curYear && month >= curMonth)
}
