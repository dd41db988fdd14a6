package handlers

import (
	"net/http"
	"testing"

	"veriban/internal/services/creditor"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreditorApp() *fiber.App {
	app := fiber.New()
	h := NewCreditorHandler(creditor.NewService(nil))
	app.Post("/api/creditor/validate", h.Validate)
	app.Post("/api/creditor/generate", h.Generate)
	app.Get("/api/creditor/decompose/:ci", h.Decompose)
	return app
}

func TestCreditorHandler_Validate(t *testing.T) {
	app := newCreditorApp()

	t.Run("valid german identifier", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/creditor/validate", fiber.Map{
			"creditor_id": "DE98ZZZ09999999999",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		report := data(t, body)
		assert.Equal(t, true, report["valid"])
		assert.Equal(t, "ok", report["reason"])
		assert.Equal(t, true, report["german"])
		assert.Equal(t, "DE", report["country"])
	})

	t.Run("failed checksum is a 200 with a reason", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/creditor/validate", fiber.Map{
			"creditor_id": "DE97ZZZ09999999999",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		report := data(t, body)
		assert.Equal(t, false, report["valid"])
		assert.Equal(t, "checksum", report["reason"])
	})

	t.Run("missing creditor_id", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/creditor/validate", fiber.Map{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "creditor_id is required", body["error"])
	})
}

func TestCreditorHandler_Generate(t *testing.T) {
	app := newCreditorApp()

	t.Run("generates german identifier", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/creditor/generate", fiber.Map{
			"country":       "DE",
			"business_area": "ZZZ",
			"national_id":   "09999999999",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "DE98ZZZ09999999999", data(t, body)["creditor_id"])
	})

	t.Run("unknown country code", func(t *testing.T) {
		resp, _ := postJSON(t, app, "/api/creditor/generate", fiber.Map{
			"country":       "ZZ",
			"business_area": "ZZZ",
			"national_id":   "09999999999",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("country outside the creditor scheme", func(t *testing.T) {
		resp, _ := postJSON(t, app, "/api/creditor/generate", fiber.Map{
			"country":       "US",
			"business_area": "ZZZ",
			"national_id":   "09999999999",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("national id of the wrong length", func(t *testing.T) {
		resp, _ := postJSON(t, app, "/api/creditor/generate", fiber.Map{
			"country":       "DE",
			"business_area": "ZZZ",
			"national_id":   "1234",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestCreditorHandler_Decompose(t *testing.T) {
	app := newCreditorApp()

	t.Run("splits the fields", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/creditor/decompose/DE98ZZZ09999999999")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		parts := data(t, body)
		assert.Equal(t, "DE", parts["country"])
		assert.Equal(t, "98", parts["check_digits"])
		assert.Equal(t, "ZZZ", parts["business_area"])
		assert.Equal(t, "09999999999", parts["national_id"])
	})

	t.Run("malformed identifier", func(t *testing.T) {
		resp, _ := getJSON(t, app, "/api/creditor/decompose/DEXX")
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}
