package services

import (
	"github.com/google/uuid"
)

// GenerateReceiptID generates the unique id attached to every validation
// response, so callers can reference a check without echoing the identifier.
func GenerateReceiptID() string {
	return uuid.NewString()
}
