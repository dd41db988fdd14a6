package handlers

import (
	"veriban/internal/repositories/cache"
	"veriban/internal/services/bank"
	"veriban/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	bankService bank.Service
	cache       *cache.CacheService
}

// NewHealthHandler wires the health endpoint. Either dependency may be nil
// when the corresponding subsystem is disabled.
func NewHealthHandler(bankService bank.Service, cacheService *cache.CacheService) *HealthHandler {
	return &HealthHandler{
		bankService: bankService,
		cache:       cacheService,
	}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "ok"
	services := fiber.Map{}

	if h.bankService != nil {
		if n, err := h.bankService.Count(c.Context()); err == nil {
			services["directory"] = fiber.Map{"status": "ok", "records": n}
		} else {
			status = "degraded"
			services["directory"] = fiber.Map{"status": "error"}
		}
	}

	if h.cache != nil {
		if err := h.cache.HealthCheck(c.Context()); err != nil {
			status = "degraded"
			services["redis"] = "unreachable"
		} else {
			services["redis"] = "connected"
		}
	}

	return c.JSON(fiber.Map{
		"status":   status,
		"version":  "1.0.0",
		"services": services,
	})
}

func (h *HealthHandler) CacheStats(c *fiber.Ctx) error {
	if h.cache == nil {
		return response.NotFound(c, "cache disabled")
	}

	poolStats := h.cache.Stats()
	return c.JSON(fiber.Map{
		"pool_stats": fiber.Map{
			"hits":        poolStats.Hits,
			"misses":      poolStats.Misses,
			"timeouts":    poolStats.Timeouts,
			"total_conns": poolStats.TotalConns,
			"idle_conns":  poolStats.IdleConns,
			"stale_conns": poolStats.StaleConns,
		},
	})
}
