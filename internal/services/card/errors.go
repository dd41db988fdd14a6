package card

import "errors"

// Service errors
var (
	ErrInvalidCardNumber = errors.New("invalid card number: failed checksum")
	ErrInvalidExpiry     = errors.New("invalid expiry date")
)
