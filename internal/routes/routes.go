// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"veriban/internal/config"
	"veriban/internal/handlers"
	"veriban/internal/middleware"
	"veriban/internal/models"
	"veriban/internal/services/bank"
	"veriban/internal/services/card"
	"veriban/internal/services/creditor"
	"veriban/internal/services/iban"

	"github.com/gofiber/fiber/v2"
)

// Dependencies carries the wired services the routes expose. The server
// assembles them in main because the directory store behind bank.Service
// is chosen by configuration.
type Dependencies struct {
	IBAN     iban.Service
	Creditor creditor.Service
	Card     card.Service
	Bank     bank.Service
	Health   *handlers.HealthHandler
}

// SetupRoutes configures all application routes.
// It groups routes by identifier scheme and applies appropriate middleware.
func SetupRoutes(app *fiber.App, deps Dependencies) {
	ibanHandler := handlers.NewIBANHandler(deps.IBAN)
	creditorHandler := handlers.NewCreditorHandler(deps.Creditor)
	cardHandler := handlers.NewCardHandler(deps.Card)
	bankHandler := handlers.NewBankHandler(deps.Bank)

	// Liveness endpoint stays outside every auth and limiter layer.
	app.Get("/health", deps.Health.Check)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to the veriban API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	ibanGroup := api.Group("/iban")
	ibanGroup.Post("/validate", ibanHandler.Validate)
	ibanGroup.Post("/generate", ibanHandler.Generate)
	ibanGroup.Get("/inspect/:iban", ibanHandler.Inspect)

	api.Get("/bic/:bic", ibanHandler.CheckBIC)

	creditorGroup := api.Group("/creditor")
	creditorGroup.Post("/validate", creditorHandler.Validate)
	creditorGroup.Post("/generate", creditorHandler.Generate)
	creditorGroup.Get("/decompose/:ci", creditorHandler.Decompose)

	cards := api.Group("/cards")
	cards.Post("/validate", cardHandler.Validate)
	// Tokenization talks to the vault upstream, so it alone requires the
	// service API key.
	cards.Post("/tokenize",
		middleware.APIKeyAuth(config.GetEnv("API_KEY_HASH", "")),
		cardHandler.Tokenize,
	)

	banks := api.Group("/banks")
	banks.Get("/", bankHandler.List)
	banks.Get("/:code/bic", bankHandler.GetBIC)
	banks.Get("/bic/:bic/name", bankHandler.GetBankName)

	setupAdminRoutes(app, bankHandler, deps.Health)
}

func setupAdminRoutes(app *fiber.App, bankHandler *handlers.BankHandler, health *handlers.HealthHandler) {
	authMiddleware := middleware.NewAuthMiddleware(config.GetEnv("JWT_SECRET", "veriban"))
	admin := app.Group("/api/admin", authMiddleware.Handler, middleware.AdminAuthMiddleware)

	admin.Post("/directory/reload", middleware.HasPermission(models.PermissionDirectoryReload), bankHandler.Reload)
	admin.Get("/cache-stats", health.CacheStats)
}
