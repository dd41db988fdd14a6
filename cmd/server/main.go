// Package main is the entry point for the validation API server.
// It wires the bank directory, the identifier services and the HTTP
// surface together and starts the application.
package main

import (
	"context"
	"time"

	"veriban/internal/config"
	"veriban/internal/handlers"
	"veriban/internal/metrics"
	"veriban/internal/repositories"
	"veriban/internal/routes"
	"veriban/internal/services/bank"
	"veriban/internal/services/card"
	"veriban/internal/services/creditor"
	"veriban/internal/services/iban"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	setupLogging()

	// The directory store is chosen by configuration: an in-memory store
	// fed from a CSV file, or Postgres seeded by cmd/directory_seed.
	var (
		store  bank.DirectoryStore
		loader bank.Loader
	)
	switch source := config.GetEnv("DIRECTORY_SOURCE", "csv"); source {
	case "postgres":
		if err := repositories.InitDB(); err != nil {
			logrus.WithError(err).Fatal("database migration failed")
		}
		store = repositories.NewBankDirectoryStore(repositories.DB)
		// An explicit CSV path lets admins re-seed Postgres through the
		// reload endpoint.
		if path := config.GetEnv("DIRECTORY_CSV", ""); path != "" {
			loader = &bank.CSVLoader{Path: path}
		}
	case "csv":
		store = bank.NewMemoryStore()
		loader = &bank.CSVLoader{Path: config.GetEnv("DIRECTORY_CSV", "data/bank_directory.csv")}
	default:
		logrus.WithField("source", source).Fatal("unknown DIRECTORY_SOURCE, want csv or postgres")
	}

	if config.GetBoolEnv("REDIS_ENABLED", false) {
		repositories.InitCache()
		// Directory entries may be stale after a restart, start clean.
		if err := repositories.CacheService.FlushAll(context.Background()); err != nil {
			logrus.WithError(err).Warn("failed to flush redis cache on startup")
		}
	}

	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				if err := sqlDB.Close(); err != nil {
					logrus.WithError(err).Warn("failed to close database connection")
				}
			}
		}
		if repositories.CacheService != nil {
			if err := repositories.CacheService.Close(); err != nil {
				logrus.WithError(err).Warn("failed to close redis connection")
			}
		}
	}()

	collector := metrics.New()

	// A nil *cache.CacheService must not end up inside the interface.
	var cacheOp bank.CacheOperator
	if repositories.CacheService != nil {
		cacheOp = repositories.CacheService
	}

	bankSvc := bank.NewService(store, loader, cacheOp, collector)
	if loader != nil {
		if err := bankSvc.Reload(context.Background()); err != nil {
			logrus.WithError(err).Fatal("initial bank directory load failed")
		}
		if config.GetBoolEnv("DIRECTORY_WATCH", true) {
			go func() {
				if err := bankSvc.Watch(context.Background()); err != nil {
					logrus.WithError(err).Error("bank directory watcher stopped")
				}
			}()
		}
	}

	if config.GetEnv("API_KEY_HASH", "") == "" {
		logrus.Warn("API_KEY_HASH not set, card tokenization runs without api-key auth")
	}

	go func() {
		addr := config.GetEnv("METRICS_ADDR", ":9100")
		if err := metrics.Serve(addr); err != nil {
			logrus.WithError(err).Error("metrics server stopped")
		}
	}()

	// Create Fiber app
	app := fiber.New()

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "*"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-API-Key",
		AllowMethods: "GET,POST,HEAD",
	}))

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Validation endpoints are the hot path and the abuse target; each
	// scheme gets its own per-IP limit.
	app.Use("/api/iban", validationLimiter())
	app.Use("/api/creditor", validationLimiter())
	app.Use("/api/cards", validationLimiter())

	// Routes
	routes.SetupRoutes(app, routes.Dependencies{
		IBAN:     iban.NewService(bankSvc, collector),
		Creditor: creditor.NewService(collector),
		Card:     card.NewService(card.NewTokenizer(), collector),
		Bank:     bankSvc,
		Health:   handlers.NewHealthHandler(bankSvc, repositories.CacheService),
	})

	// Start server
	logrus.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}

func setupLogging() {
	level, err := logrus.ParseLevel(config.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if config.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func validationLimiter() fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        config.GetIntEnv("RATE_LIMIT_MAX", 120),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	})
}
