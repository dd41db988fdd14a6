package card

import (
	"context"
	"strconv"
	"time"

	"veriban/internal/services"
)

// Service exposes card validation, classification and tokenization.
type Service interface {
	Validate(ctx context.Context, input ValidateCardInput) (*Report, error)
	Tokenize(ctx context.Context, input ValidateCardInput) (*TokenizedCard, error)
}

type service struct {
	tokenizer Tokenizer
	metrics   MetricsCollector
}

// NewService creates a new card service
func NewService(tokenizer Tokenizer, metrics MetricsCollector) Service {
	if tokenizer == nil {
		panic("tokenizer is required")
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		tokenizer: tokenizer,
		metrics:   metrics,
	}
}

// Validate reports Luhn validity, scheme, masked form and, when an expiry
// was supplied, whether the card is still usable. Each report carries a
// receipt id so callers can reference the check without logging the number.
func (s *service) Validate(ctx context.Context, input ValidateCardInput) (*Report, error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("card_validate", time.Since(start)) }()

	number := NormalizeNumber(input.CardNumber)
	report := &Report{
		ReceiptID:    services.GenerateReceiptID(),
		Valid:        IsValidNumber(number),
		CardType:     Classify(number),
		MaskedNumber: FormatMasked(number),
		Length:       len(number),
	}

	if input.ExpiryMonth != "" || input.ExpiryYear != "" {
		month, errM := strconv.Atoi(input.ExpiryMonth)
		year, errY := strconv.Atoi(input.ExpiryYear)
		if errM != nil || errY != nil {
			s.metrics.RecordValidation("card", "invalid_expiry")
			return nil, ErrInvalidExpiry
		}
		ok := ExpiryValid(month, year)
		report.ExpiryValid = &ok
	}

	outcome := "invalid"
	if report.Valid {
		outcome = "ok"
	}
	s.metrics.RecordValidation("card", outcome)
	return report, nil
}

func (s *service) Tokenize(ctx context.Context, input ValidateCardInput) (*TokenizedCard, error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("card_tokenize", time.Since(start)) }()

	tokenized, err := s.tokenizer.TokenizeCard(input)
	if err != nil {
		s.metrics.RecordValidation("card_tokenize", "error")
		return nil, err
	}
	s.metrics.RecordValidation("card_tokenize", "ok")
	return tokenized, nil
}
