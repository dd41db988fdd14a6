package handlers

import (
	stderrors "errors"

	"veriban/internal/services/card"
	"veriban/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	cardService card.Service
}

func NewCardHandler(cardService card.Service) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// Validate runs the Luhn check, classifies the scheme and masks the number.
// The card number itself never appears in the response or the logs; the
// report's receipt id is the reference.
func (h *CardHandler) Validate(c *fiber.Ctx) error {
	var input card.ValidateCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.CardNumber == "" {
		return response.BadRequest(c, "card_number is required")
	}

	report, err := h.cardService.Validate(c.Context(), input)
	if err != nil {
		if stderrors.Is(err, card.ErrInvalidExpiry) {
			return response.BadRequest(c, err.Error())
		}
		return response.ServerError(c, "Failed to validate card")
	}

	return response.Success(c, "Card validated", report)
}

// Tokenize exchanges a valid card for a vault token.
func (h *CardHandler) Tokenize(c *fiber.Ctx) error {
	var input card.ValidateCardInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.CardNumber == "" {
		return response.BadRequest(c, "card_number is required")
	}

	token, err := h.cardService.Tokenize(c.Context(), input)
	if err != nil {
		if stderrors.Is(err, card.ErrInvalidCardNumber) {
			return response.Unprocessable(c, err.Error())
		}
		return response.ServerError(c, "Failed to tokenize card")
	}

	return response.Success(c, "Card tokenized", token)
}
