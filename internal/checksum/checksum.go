// Package checksum implements the arithmetic shared by every identifier
// scheme in this service: the ISO 7064 MOD 97-10 family (IBAN, SEPA creditor
// identifiers) and the Luhn mod-10 check (payment cards).
//
// Identifiers transliterate to decimal strings far beyond 64-bit range, so
// the remainder is computed digit by digit instead of through a numeric
// conversion. The reduction is exact and needs no big-integer support.
package checksum

import (
	"fmt"
	"strings"

	"veriban/internal/errors"
)

// letterCodes maps 'A'..'Z' (and their lowercase forms) onto the two-digit
// codes 10..35 defined by ISO 7064.
var letterCodes = [26]string{
	"10", "11", "12", "13", "14", "15", "16", "17", "18", "19",
	"20", "21", "22", "23", "24", "25", "26", "27", "28", "29",
	"30", "31", "32", "33", "34", "35",
}

// Transliterate rewrites s as a decimal digit string: digits pass through,
// letters of either case become their two-digit code. Any other byte fails
// with ErrInvalidCharacter. Input length is unbounded.
func Transliterate(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s) * 2)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteString(letterCodes[c-'A'])
		case c >= 'a' && c <= 'z':
			b.WriteString(letterCodes[c-'a'])
		default:
			return "", fmt.Errorf("%w: %q at position %d", errors.ErrInvalidCharacter, rune(c), i)
		}
	}
	return b.String(), nil
}

// Mod97 computes the remainder of the decimal number held in digits modulo
// 97. The value is reduced left to right, one digit at a time, so inputs of
// any length stay within int range.
func Mod97(digits string) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("%w: empty digit string", errors.ErrMalformedInput)
	}

	r := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q at position %d", errors.ErrInvalidCharacter, rune(c), i)
		}
		r = (r*10 + int(c-'0')) % 97
	}
	return r, nil
}

// Remainder transliterates s and reduces it modulo 97. Both MOD 97-10
// engines funnel their rearranged check strings through this single routine
// so the validate and generate paths cannot drift apart.
func Remainder(s string) (int, error) {
	t, err := Transliterate(s)
	if err != nil {
		return 0, err
	}
	return Mod97(t)
}

// ComputeCheckDigits derives the two check digits for base, where base is
// the scheme's check string with the check-digit positions already moved to
// the end and omitted. The result makes Remainder(base+digits) == 1.
func ComputeCheckDigits(base string) (string, error) {
	r, err := Remainder(base + "00")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d", 98-r), nil
}

// Luhn reports whether digits passes the Luhn mod-10 check: every second
// digit from the right is doubled, doubles above 9 drop by 9, and the total
// must divide by 10. Empty or non-digit input is simply invalid; callers
// normalize before asking.
func Luhn(digits string) bool {
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
