// Package errors defines the domain error type shared across services.
// Handlers use the Code field to map failures onto HTTP responses without
// string-matching error messages.
package errors

// DomainError is an error with a stable machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is lets errors.Is match two DomainErrors by code, so wrapped copies of a
// sentinel still compare equal to it.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
