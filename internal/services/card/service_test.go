package card

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTokenizer struct {
	mock.Mock
}

func (m *MockTokenizer) TokenizeCard(input ValidateCardInput) (*TokenizedCard, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenizedCard), args.Error(1)
}

func TestCardService_Validate(t *testing.T) {
	svc := NewService(NewTokenizer(), nil)

	t.Run("valid visa", func(t *testing.T) {
		report, err := svc.Validate(context.Background(), ValidateCardInput{CardNumber: "4111 1111 1111 1111"})
		require.NoError(t, err)
		assert.True(t, report.Valid)
		assert.Equal(t, TypeVisa, report.CardType)
		assert.Equal(t, "4111 ******** 1111", report.MaskedNumber)
		assert.Equal(t, 16, report.Length)
		assert.Len(t, report.ReceiptID, 36)
		assert.Nil(t, report.ExpiryValid)
	})

	t.Run("invalid number still classifies", func(t *testing.T) {
		report, err := svc.Validate(context.Background(), ValidateCardInput{CardNumber: "4111111111111112"})
		require.NoError(t, err)
		assert.False(t, report.Valid)
		assert.Equal(t, TypeVisa, report.CardType)
	})

	t.Run("expiry attached when supplied", func(t *testing.T) {
		report, err := svc.Validate(context.Background(), ValidateCardInput{
			CardNumber:  "4111111111111111",
			ExpiryMonth: "12",
			ExpiryYear:  "99",
		})
		require.NoError(t, err)
		require.NotNil(t, report.ExpiryValid)
		assert.True(t, *report.ExpiryValid)
	})

	t.Run("expired card reported", func(t *testing.T) {
		report, err := svc.Validate(context.Background(), ValidateCardInput{
			CardNumber:  "4111111111111111",
			ExpiryMonth: "12",
			ExpiryYear:  "1999",
		})
		require.NoError(t, err)
		require.NotNil(t, report.ExpiryValid)
		assert.False(t, *report.ExpiryValid)
	})

	t.Run("unparseable expiry is an error", func(t *testing.T) {
		_, err := svc.Validate(context.Background(), ValidateCardInput{
			CardNumber:  "4111111111111111",
			ExpiryMonth: "next",
			ExpiryYear:  "year",
		})
		assert.ErrorIs(t, err, ErrInvalidExpiry)
	})

	t.Run("receipt ids are unique per call", func(t *testing.T) {
		first, err := svc.Validate(context.Background(), ValidateCardInput{CardNumber: "4111111111111111"})
		require.NoError(t, err)
		second, err := svc.Validate(context.Background(), ValidateCardInput{CardNumber: "4111111111111111"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ReceiptID, second.ReceiptID)
	})
}

func TestCardService_Tokenize(t *testing.T) {
	t.Run("delegates to the tokenizer", func(t *testing.T) {
		tok := new(MockTokenizer)
		input := ValidateCardInput{CardNumber: "4242424242424242"}
		tok.On("TokenizeCard", input).Return(&TokenizedCard{Token: "tok_visa", CardType: TypeVisa}, nil)
		svc := NewService(tok, nil)

		card, err := svc.Tokenize(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "tok_visa", card.Token)

		tok.AssertExpectations(t)
	})

	t.Run("propagates tokenizer failure", func(t *testing.T) {
		tok := new(MockTokenizer)
		tok.On("TokenizeCard", mock.Anything).Return(nil, ErrInvalidCardNumber)
		svc := NewService(tok, nil)

		_, err := svc.Tokenize(context.Background(), ValidateCardInput{CardNumber: "4111111111111112"})
		assert.ErrorIs(t, err, ErrInvalidCardNumber)
	})
}

func TestNewServiceRequiresTokenizer(t *testing.T) {
	assert.Panics(t, func() { NewService(nil, nil) })
}
