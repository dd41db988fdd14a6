package card

import (
	"regexp"
	"time"
)

// Type is a card scheme name. TypeUnknown is a classification outcome, not
// an error: a Luhn-valid number of an unlisted scheme is still a number.
type Type string

const (
	TypeAmex         Type = "American Express"
	TypeDinersClub   Type = "Diners Club"
	TypeJCB          Type = "JCB"
	TypeVisaElectron Type = "Visa Electron"
	TypeVisa         Type = "Visa"
	TypeMastercard   Type = "Mastercard"
	TypeMir          Type = "Mir"
	TypeTroy         Type = "Troy"
	TypeDiscover     Type = "Discover"
	TypeUnionPay     Type = "UnionPay"
	TypeMaestro      Type = "Maestro"
	TypeUnknown      Type = "Unknown"
)

type cardPattern struct {
	cardType Type
	prefix   *regexp.Regexp
	lengths  []int
}

// cardPatterns is walked in declared order and the first entry whose prefix
// matches AND whose length list contains the normalized length wins. The
// order is part of the contract: specific prefixes come before the ranges
// that contain them (Visa Electron before Visa, Discover and UnionPay
// before the catch-all Maestro entry, Mastercard before Maestro).
var cardPatterns = []cardPattern{
	{TypeAmex, regexp.MustCompile(`^3[47]`), []int{15}},
	{TypeDinersClub, regexp.MustCompile(`^3(?:0[0-5]|[68])`), []int{14, 16, 19}},
	{TypeJCB, regexp.MustCompile(`^35(?:2[89]|[3-8][0-9])`), []int{16, 17, 18, 19}},
	{TypeVisaElectron, regexp.MustCompile(`^(?:4026|417500|4508|4844|4913|4917)`), []int{16}},
	{TypeVisa, regexp.MustCompile(`^4`), []int{13, 16, 19}},
	{TypeMastercard, regexp.MustCompile(`^(?:5[1-5]|222[1-9]|22[3-9][0-9]|2[3-6][0-9]{2}|27[01][0-9]|2720)`), []int{16}},
	{TypeMir, regexp.MustCompile(`^220[0-4]`), []int{16, 17, 18, 19}},
	{TypeTroy, regexp.MustCompile(`^9792`), []int{16}},
	{TypeDiscover, regexp.MustCompile(`^(?:6011|64[4-9]|65)`), []int{16, 19}},
	{TypeUnionPay, regexp.MustCompile(`^62`), []int{16, 17, 18, 19}},
	// Broad bank-card fallback. Deliberately overlaps Mastercard, Discover
	// and UnionPay; those win by order.
	{TypeMaestro, regexp.MustCompile(`^(?:5[0-9]|6[0-9])`), []int{12, 13, 14, 15, 16, 17, 18, 19}},
}

// ValidateCardInput is the payload for a card validation request. Expiry is
// optional; when one half is supplied the other is required.
type ValidateCardInput struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth string `json:"expiry_month,omitempty"`
	ExpiryYear  string `json:"expiry_year,omitempty"`
}

// Report is the outcome of validating one card number.
type Report struct {
	ReceiptID    string `json:"receipt_id"`
	Valid        bool   `json:"valid"`
	CardType     Type   `json:"card_type"`
	MaskedNumber string `json:"masked_number"`
	Length       int    `json:"length"`
	ExpiryValid  *bool  `json:"expiry_valid,omitempty"`
}

// TokenizedCard represents a tokenized card
type TokenizedCard struct {
	Token    string `json:"token"`
	CardType Type   `json:"card_type"`
	LastFour string `json:"last_four"`
	IssuedBy string `json:"issued_by"`
}

// Tokenizer exchanges a validated card for a payment token.
type Tokenizer interface {
	TokenizeCard(input ValidateCardInput) (*TokenizedCard, error)
}

// MetricsCollector defines the interface for collecting validation metrics
type MetricsCollector interface {
	RecordValidation(scheme, outcome string)
	RecordOperationDuration(operation string, duration time.Duration)
}
