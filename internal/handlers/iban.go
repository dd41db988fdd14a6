// Package handlers contains the fiber HTTP handlers for the validation API.
// Handlers parse requests, call the domain services and map domain errors
// onto HTTP status codes: validation questions answer 200 with a reason,
// generation against impossible inputs answers 422.
package handlers

import (
	stderrors "errors"

	"veriban/internal/country"
	"veriban/internal/errors"
	"veriban/internal/services/iban"
	"veriban/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type IBANHandler struct {
	ibanService iban.Service
}

func NewIBANHandler(ibanService iban.Service) *IBANHandler {
	return &IBANHandler{
		ibanService: ibanService,
	}
}

type validateIBANRequest struct {
	IBAN string `json:"iban"`
}

type generateIBANRequest struct {
	Country string `json:"country"`
	BBAN    string `json:"bban"`
}

// Validate answers whether the submitted IBAN is valid. An invalid IBAN is
// a 200 with valid=false and a reason, not an error status.
func (h *IBANHandler) Validate(c *fiber.Ctx) error {
	var input validateIBANRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if input.IBAN == "" {
		return response.BadRequest(c, "iban is required")
	}

	report := h.ibanService.Validate(c.Context(), input.IBAN)
	return response.Success(c, "IBAN validated", report)
}

// Generate builds an IBAN from a country and BBAN, deriving the check
// digits. Inputs naming an unknown country or a BBAN of the wrong shape
// answer 422.
func (h *IBANHandler) Generate(c *fiber.Ctx) error {
	var input generateIBANRequest
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	code, err := country.Parse(input.Country)
	if err != nil {
		return response.Unprocessable(c, err.Error())
	}

	generated, err := h.ibanService.Generate(c.Context(), code, input.BBAN)
	if err != nil {
		if stderrors.Is(err, errors.ErrUnknownCountry) ||
			stderrors.Is(err, errors.ErrLengthMismatch) ||
			stderrors.Is(err, errors.ErrInvalidCharacter) ||
			stderrors.Is(err, errors.ErrMalformedInput) {
			return response.Unprocessable(c, err.Error())
		}
		return response.ServerError(c, "Failed to generate IBAN")
	}

	return response.Success(c, "IBAN generated", fiber.Map{
		"iban": generated,
	})
}

// Inspect validates and decomposes an IBAN, enriching German ones with BIC
// and institution name from the bank directory.
func (h *IBANHandler) Inspect(c *fiber.Ctx) error {
	raw := c.Params("iban")
	if raw == "" {
		return response.BadRequest(c, "iban is required")
	}

	report := h.ibanService.Inspect(c.Context(), raw)
	return response.Success(c, "IBAN inspected", report)
}

// CheckBIC reports whether a BIC is well-formed and names the institution
// when the directory knows it.
func (h *IBANHandler) CheckBIC(c *fiber.Ctx) error {
	raw := c.Params("bic")
	if raw == "" {
		return response.BadRequest(c, "bic is required")
	}

	report := h.ibanService.CheckBIC(c.Context(), raw)
	return response.Success(c, "BIC checked", report)
}
