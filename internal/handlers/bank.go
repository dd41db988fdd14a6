package handlers

import (
	stderrors "errors"

	"veriban/internal/services/bank"
	"veriban/internal/utils/pagination"
	"veriban/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BankHandler struct {
	bankService bank.Service
}

func NewBankHandler(bankService bank.Service) *BankHandler {
	return &BankHandler{
		bankService: bankService,
	}
}

// GetBIC resolves a national bank code to its BIC.
func (h *BankHandler) GetBIC(c *fiber.Ctx) error {
	code := c.Params("code")

	rec, err := h.bankService.LookupByBankCode(c.Context(), code)
	if err != nil {
		if stderrors.Is(err, bank.ErrBankNotFound) {
			return response.NotFound(c, "bank code not found")
		}
		return response.ServerError(c, "Failed to resolve bank code")
	}

	return response.Success(c, "BIC resolved", fiber.Map{
		"bank_code": rec.BankCode,
		"bic":       rec.BIC,
		"bank_name": rec.BankName,
		"country":   rec.Country,
	})
}

// GetBankName resolves a BIC to the institution name.
func (h *BankHandler) GetBankName(c *fiber.Ctx) error {
	bic := c.Params("bic")

	rec, err := h.bankService.LookupByBIC(c.Context(), bic)
	if err != nil {
		if stderrors.Is(err, bank.ErrBankNotFound) {
			return response.NotFound(c, "bic not found")
		}
		return response.ServerError(c, "Failed to resolve bic")
	}

	return response.Success(c, "Bank name resolved", fiber.Map{
		"bic":       rec.BIC,
		"bank_name": rec.BankName,
		"country":   rec.Country,
	})
}

// List pages through the directory ordered by bank code.
func (h *BankHandler) List(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	records, total, err := h.bankService.List(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return response.ServerError(c, "Failed to list directory")
	}

	p.Total = total
	return c.JSON(pagination.Response(p, records))
}

// Reload re-reads the directory source into the active store and flushes
// the directory cache. Admin only.
func (h *BankHandler) Reload(c *fiber.Ctx) error {
	if err := h.bankService.Reload(c.Context()); err != nil {
		logrus.WithError(err).Error("directory reload via admin api failed")
		if stderrors.Is(err, bank.ErrNoLoader) {
			return response.Error(c, fiber.StatusConflict, "directory has no reloadable source")
		}
		return response.ServerError(c, "Failed to reload directory")
	}

	count, err := h.bankService.Count(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to count directory records")
	}

	return response.Success(c, "Directory reloaded", fiber.Map{
		"records": count,
	})
}
