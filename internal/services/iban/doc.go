/*
Package iban validates and generates International Bank Account Numbers.

The engine functions are pure: they take strings, consult the static country
registry, and run the ISO 7064 MOD 97-10 check through internal/checksum.
They hold no state and are safe for concurrent use.

Usage:

	// Pure validation
	valid, err := iban.Validate("DE89370400440532013000")

	// Generation (check digits are derived, never caller-supplied)
	out, err := iban.Generate("DE", "370400440532013000")
	// out == "DE89370400440532013000"

	// Structural decomposition (German offset convention)
	parts, err := iban.Split("DE89370400440532013000")
	// parts.BankCode == "37040044", parts.AccountNumber == "0532013000"

The Service wraps the engine with bank-directory enrichment: for German
IBANs, Inspect resolves the bank code to a BIC and institution name through
the injected Directory. The engine itself never touches the network or the
filesystem.

Masked IBANs (the redacted display form recognized by IsAnonymized, and any
string containing a run of five or more 'X' characters) are never
checksum-validated; Validate reports them as malformed.

Error Handling:

Validation returns (false, err) where err classifies the structural
rejection: ErrMalformedInput, ErrUnknownCountry, ErrLengthMismatch from
internal/errors. A false result with a nil error means the structure was
sound and the checksum itself failed. Generation fails loudly and never
returns a malformed identifier.
*/
package iban
