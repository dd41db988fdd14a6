package iban

import (
	"fmt"
	"regexp"
	"strings"

	"veriban/internal/checksum"
	"veriban/internal/country"
	"veriban/internal/errors"
)

// An IBAN is country(2) + check digits(2) + BBAN. The first four characters
// move to the end for the checksum computation.
const prefixLen = 4

// splitMinLen is the shortest IBAN the fixed-offset Split can decompose.
const splitMinLen = 22

var (
	wellFormedPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{14,33}$`)
	anonymizedPattern = regexp.MustCompile(`^[A-Z]{2}XX[0-9]{11}XXXX[0-9]{3}$`)
	bicPattern        = regexp.MustCompile(`^[A-Z]{6}[2-9A-Z][0-9A-NP-Z]([A-Z0-9]{3})?$`)
)

// Normalize removes the display spacing from an IBAN. Case is preserved:
// a lowercase IBAN is not well-formed.
func Normalize(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// IsWellFormed reports whether s has IBAN shape after space removal. Strings
// containing a run of five or more 'X' characters are masked placeholders
// and count as not well-formed for checksum purposes.
func IsWellFormed(s string) bool {
	s = Normalize(s)
	if strings.Contains(s, "XXXXX") {
		return false
	}
	return wellFormedPattern.MatchString(s)
}

// IsAnonymized recognizes the redacted display form of a German-shaped IBAN:
// check digits and the middle of the account number replaced by 'X' runs.
func IsAnonymized(s string) bool {
	return anonymizedPattern.MatchString(Normalize(s))
}

// Validate checks an IBAN against its country's registry length and the
// ISO 7064 MOD 97-10 checksum. A non-nil error classifies a structural
// rejection; false with a nil error means the checksum itself failed.
// Anonymized IBANs fail as malformed and are never checksum-validated.
func Validate(iban string) (bool, error) {
	s := Normalize(iban)
	if !IsWellFormed(s) {
		return false, fmt.Errorf("iban is not well-formed: %w", errors.ErrMalformedInput)
	}
	if IsAnonymized(s) {
		return false, fmt.Errorf("iban is anonymized: %w", errors.ErrMalformedInput)
	}
	want, ok := registryLength[country.Code(s[:2])]
	if !ok {
		return false, fmt.Errorf("country %s not in iban registry: %w", s[:2], errors.ErrUnknownCountry)
	}
	if len(s) != want {
		return false, fmt.Errorf("%s iban expects %d characters, got %d: %w", s[:2], want, len(s), errors.ErrLengthMismatch)
	}
	r, err := checksum.Remainder(s[prefixLen:] + s[:prefixLen])
	if err != nil {
		return false, err
	}
	return r == 1, nil
}

// Generate derives the check digits for a national account part (BBAN) and
// assembles the full IBAN. The BBAN is uppercased and must have exactly the
// registry length minus the four-character prefix. Generation fails loudly:
// it never returns an identifier Validate would reject.
func Generate(code country.Code, bban string) (string, error) {
	want, ok := registryLength[code]
	if !ok {
		return "", fmt.Errorf("country %s not in iban registry: %w", code, errors.ErrUnknownCountry)
	}
	bban = strings.ToUpper(Normalize(bban))
	if len(bban) != want-prefixLen {
		return "", fmt.Errorf("%s bban expects %d characters, got %d: %w", code, want-prefixLen, len(bban), errors.ErrLengthMismatch)
	}
	check, err := checksum.ComputeCheckDigits(bban + code.String())
	if err != nil {
		return "", fmt.Errorf("compute check digits: %w", err)
	}
	return code.String() + check + bban, nil
}

// Parts is the structural decomposition of a German-convention IBAN.
type Parts struct {
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
}

// Split slices the bank code (characters 4-12) and the account number
// (characters 12-22) out of an IBAN. The offsets follow the German BBAN
// convention and are not meaningful for countries with a different layout;
// IBANs shorter than 22 characters cannot be split.
func Split(s string) (Parts, error) {
	s = Normalize(s)
	if len(s) < splitMinLen {
		return Parts{}, fmt.Errorf("iban too short to split, need %d characters, got %d: %w", splitMinLen, len(s), errors.ErrLengthMismatch)
	}
	return Parts{BankCode: s[4:12], AccountNumber: s[12:22]}, nil
}

// IsBIC reports whether s has BIC shape: 8 or 11 uppercase characters,
// where the location part may not start with 0 or 1 and may not end with
// the letter O. BIC carries no check digits, so shape is all that can be
// verified.
func IsBIC(s string) bool {
	return bicPattern.MatchString(strings.TrimSpace(s))
}
