// Package creditor validates and generates SEPA Creditor Identifiers.
//
// A creditor identifier is country(2) + check digits(2) + business area(3) +
// national identifier. The business area is excluded from the checksum: a
// creditor may change it freely without invalidating the identifier, which
// is the property that distinguishes this scheme from plain IBAN-style
// MOD 97-10 validation.
package creditor

import (
	"fmt"
	"regexp"
	"strings"

	"veriban/internal/checksum"
	"veriban/internal/country"
	"veriban/internal/errors"
)

// Field offsets over the normalized identifier.
const (
	checkStart    = 2
	areaStart     = 4
	nationalStart = 7
	minLength     = 8
)

var (
	wellFormedPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{3,}$`)
	germanPattern     = regexp.MustCompile(`^DE[0-9]{2}[A-Z0-9]{3}[0-9]{11}$`)
)

// Normalize strips all whitespace and uppercases. Creditor identifiers are
// matched case-insensitively, unlike IBANs.
func Normalize(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// IsWellFormed reports whether the normalized identifier has creditor-ID
// shape: at least 8 characters, two letters, two digits, then alphanumerics.
func IsWellFormed(s string) bool {
	n := Normalize(s)
	return len(n) >= minLength && wellFormedPattern.MatchString(n)
}

// Validate checks the MOD 97-10 checksum of a creditor identifier. The check
// string is nationalId + country + checkDigits; the business area does not
// participate. There is no length-per-country check on validation, only the
// structural gate and the checksum.
func Validate(ci string) (bool, error) {
	s := Normalize(ci)
	if !IsWellFormed(s) {
		return false, fmt.Errorf("creditor id is not well-formed: %w", errors.ErrMalformedInput)
	}
	r, err := checksum.Remainder(s[nationalStart:] + s[:checkStart] + s[checkStart:areaStart])
	if err != nil {
		return false, err
	}
	return r == 1, nil
}

// Generate derives the check digits for a national identifier and assembles
// the full creditor ID. The business area is uppercased, left-padded with
// '0' to three characters, and truncated to three; it is arbitrary as far as
// the checksum is concerned but must still be alphanumeric. The national
// identifier must have the registry length for the country minus the
// seven-character prefix.
func Generate(code country.Code, businessArea, nationalID string) (string, error) {
	want, ok := registryLength[code]
	if !ok {
		return "", fmt.Errorf("country %s not in creditor registry: %w", code, errors.ErrUnknownCountry)
	}
	nationalID = Normalize(nationalID)
	if len(nationalID) != want-nationalStart {
		return "", fmt.Errorf("%s national id expects %d characters, got %d: %w", code, want-nationalStart, len(nationalID), errors.ErrLengthMismatch)
	}
	area := Normalize(businessArea)
	for len(area) < 3 {
		area = "0" + area
	}
	area = area[:3]
	for i := 0; i < len(area); i++ {
		c := area[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return "", fmt.Errorf("business area %q: %w", businessArea, errors.ErrInvalidCharacter)
		}
	}
	check, err := checksum.ComputeCheckDigits(nationalID + code.String())
	if err != nil {
		return "", fmt.Errorf("compute check digits: %w", err)
	}
	return code.String() + check + area + nationalID, nil
}

// Parts is a decomposed creditor identifier.
type Parts struct {
	Country      string `json:"country"`
	CheckDigits  string `json:"check_digits"`
	BusinessArea string `json:"business_area"`
	NationalID   string `json:"national_id"`
}

// Decompose splits a well-formed creditor identifier into its four fields.
func Decompose(ci string) (Parts, error) {
	s := Normalize(ci)
	if !IsWellFormed(s) {
		return Parts{}, fmt.Errorf("creditor id is not well-formed: %w", errors.ErrMalformedInput)
	}
	return Parts{
		Country:      s[:checkStart],
		CheckDigits:  s[checkStart:areaStart],
		BusinessArea: s[areaStart:nationalStart],
		NationalID:   s[nationalStart:],
	}, nil
}

// The accessors below are total over arbitrary input: they normalize, then
// report false when the string is too short for the field, and never panic.

// Country returns the two-letter country field.
func Country(ci string) (string, bool) {
	s := Normalize(ci)
	if len(s) < checkStart {
		return "", false
	}
	return s[:checkStart], true
}

// CheckDigits returns the two check digits.
func CheckDigits(ci string) (string, bool) {
	s := Normalize(ci)
	if len(s) < areaStart {
		return "", false
	}
	return s[checkStart:areaStart], true
}

// BusinessArea returns the three-character business area field.
func BusinessArea(ci string) (string, bool) {
	s := Normalize(ci)
	if len(s) < nationalStart {
		return "", false
	}
	return s[areaStart:nationalStart], true
}

// NationalID returns the national identifier payload.
func NationalID(ci string) (string, bool) {
	s := Normalize(ci)
	if len(s) < minLength {
		return "", false
	}
	return s[nationalStart:], true
}

// IsGermanCreditorID reports whether ci is a valid German creditor
// identifier: exactly 18 characters, DE prefix, alphanumeric business area,
// an 11-digit national identifier, and a passing checksum.
func IsGermanCreditorID(ci string) bool {
	s := Normalize(ci)
	if !germanPattern.MatchString(s) {
		return false
	}
	valid, _ := Validate(s)
	return valid
}
