package errors

// Validation errors shared by the identifier engines. Validate functions
// return these alongside a false result to say why an input was rejected;
// Generate functions return them outright.
var (
	// ErrInvalidCharacter marks input containing a rune outside [0-9A-Za-z].
	ErrInvalidCharacter = &DomainError{
		Code:    "INVALID_CHARACTER",
		Message: "input contains a character that cannot be transliterated",
	}
	// ErrUnknownCountry marks a country code absent from the scheme registry.
	// Distinct from a checksum failure: the engine cannot even size the input.
	ErrUnknownCountry = &DomainError{
		Code:    "UNKNOWN_COUNTRY",
		Message: "country code not present in the scheme registry",
	}
	// ErrLengthMismatch marks an identifier or payload whose length disagrees
	// with the registry entry for its country.
	ErrLengthMismatch = &DomainError{
		Code:    "LENGTH_MISMATCH",
		Message: "identifier length does not match the registered scheme length",
	}
	// ErrMalformedInput marks input that fails the structural pattern before
	// any checksum is attempted.
	ErrMalformedInput = &DomainError{
		Code:    "MALFORMED_INPUT",
		Message: "input does not match the structural pattern for the scheme",
	}
)
