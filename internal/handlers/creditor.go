package handlers

import (
	stderrors "errors"

	"veriban/internal/country"
	"veriban/internal/errors"
	"veriban/internal/services/creditor"
	"veriban/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type CreditorHandler struct {
	creditorService creditor.Service
}

func NewCreditorHandler(creditorService creditor.Service) *CreditorHandler {
	return &CreditorHandler{
		creditorService: creditorService,
	}
}

type validateCreditorRequest struct {
	CreditorID string `json:"creditor_id"`
}

type generateCreditorRequest struct {
	Country      string `json:"country"`
	BusinessArea string `json:"business_area"`
	NationalID   string `json:"national_id"`
}

// Validate answers whether the submitted creditor identifier checks out.
func (h *CreditorHandler) Validate(c *fiber.Ctx) error {
	var input validateCreditorRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.CreditorID == "" {
		return response.BadRequest(c, "creditor_id is required")
	}

	report := h.creditorService.Validate(c.Context(), input.CreditorID)
	return response.Success(c, "Creditor identifier validated", report)
}

// Generate builds a creditor identifier from country, business area and
// national identifier, deriving the check digits.
func (h *CreditorHandler) Generate(c *fiber.Ctx) error {
	var input generateCreditorRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	code, err := country.Parse(input.Country)
	if err != nil {
		return response.Unprocessable(c, err.Error())
	}

	generated, err := h.creditorService.Generate(c.Context(), code, input.BusinessArea, input.NationalID)
	if err != nil {
		if stderrors.Is(err, errors.ErrUnknownCountry) ||
			stderrors.Is(err, errors.ErrLengthMismatch) ||
			stderrors.Is(err, errors.ErrInvalidCharacter) ||
			stderrors.Is(err, errors.ErrMalformedInput) {
			return response.Unprocessable(c, err.Error())
		}
		return response.ServerError(c, "Failed to generate creditor identifier")
	}

	return response.Success(c, "Creditor identifier generated", fiber.Map{
		"creditor_id": generated,
	})
}

// Decompose splits a creditor identifier into country, check digits,
// business area and national identifier.
func (h *CreditorHandler) Decompose(c *fiber.Ctx) error {
	raw := c.Params("ci")
	if raw == "" {
		return response.BadRequest(c, "creditor identifier is required")
	}

	parts, err := h.creditorService.Decompose(c.Context(), raw)
	if err != nil {
		return response.Unprocessable(c, err.Error())
	}

	return response.Success(c, "Creditor identifier decomposed", parts)
}
