package handlers

import (
	"net/http"
	"testing"

	"veriban/internal/services/iban"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIBANApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	h := NewIBANHandler(iban.NewService(newDirectory(t), nil))
	app.Post("/api/iban/validate", h.Validate)
	app.Post("/api/iban/generate", h.Generate)
	app.Get("/api/iban/inspect/:iban", h.Inspect)
	app.Get("/api/bic/:bic", h.CheckBIC)
	return app
}

func TestIBANHandler_Validate(t *testing.T) {
	app := newIBANApp(t)

	t.Run("valid iban", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/iban/validate", fiber.Map{
			"iban": "DE89370400440532013000",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		report := data(t, body)
		assert.Equal(t, true, report["valid"])
		assert.Equal(t, "ok", report["reason"])
		assert.Equal(t, "DE", report["country"])
	})

	t.Run("display spacing is accepted", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/iban/validate", fiber.Map{
			"iban": "DE89 3704 0044 0532 0130 00",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		report := data(t, body)
		assert.Equal(t, true, report["valid"])
		assert.Equal(t, "DE89370400440532013000", report["iban"])
	})

	t.Run("failed checksum is a 200 with a reason", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/iban/validate", fiber.Map{
			"iban": "DE89370400440532013001",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		report := data(t, body)
		assert.Equal(t, false, report["valid"])
		assert.Equal(t, "checksum", report["reason"])
	})

	t.Run("missing iban", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/iban/validate", fiber.Map{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "iban is required", body["error"])
	})

	t.Run("malformed body", func(t *testing.T) {
		resp := postRaw(t, app, "/api/iban/validate", "{not json")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestIBANHandler_Generate(t *testing.T) {
	app := newIBANApp(t)

	t.Run("generates german iban", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/iban/generate", fiber.Map{
			"country": "DE",
			"bban":    "370400440532013000",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "DE89370400440532013000", data(t, body)["iban"])
	})

	t.Run("unknown country code", func(t *testing.T) {
		resp, body := postJSON(t, app, "/api/iban/generate", fiber.Map{
			"country": "ZZ",
			"bban":    "370400440532013000",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, body["error"], "not present in the scheme registry")
	})

	t.Run("country outside the iban registry", func(t *testing.T) {
		resp, _ := postJSON(t, app, "/api/iban/generate", fiber.Map{
			"country": "US",
			"bban":    "370400440532013000",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("bban of the wrong length", func(t *testing.T) {
		resp, _ := postJSON(t, app, "/api/iban/generate", fiber.Map{
			"country": "DE",
			"bban":    "3704",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("bban with an invalid character", func(t *testing.T) {
		resp, _ := postJSON(t, app, "/api/iban/generate", fiber.Map{
			"country": "DE",
			"bban":    "37040044053201300!",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestIBANHandler_Inspect(t *testing.T) {
	app := newIBANApp(t)

	t.Run("german iban is enriched from the directory", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/iban/inspect/DE89370400440532013000")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		report := data(t, body)
		assert.Equal(t, true, report["valid"])
		assert.Equal(t, "37040044", report["bank_code"])
		assert.Equal(t, "0532013000", report["account_number"])
		assert.Equal(t, "COBADEFFXXX", report["bic"])
		assert.Equal(t, "Commerzbank", report["bank_name"])
	})

	t.Run("non-german iban is not enriched", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/iban/inspect/GB82WEST12345698765432")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		report := data(t, body)
		assert.Equal(t, true, report["valid"])
		assert.NotContains(t, report, "bank_code")
	})

	t.Run("invalid iban reports the reason", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/iban/inspect/DE00370400440532013000")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		report := data(t, body)
		assert.Equal(t, false, report["valid"])
		assert.Equal(t, "checksum", report["reason"])
	})
}

func TestIBANHandler_CheckBIC(t *testing.T) {
	app := newIBANApp(t)

	t.Run("known bic", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/bic/COBADEFFXXX")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		report := data(t, body)
		assert.Equal(t, true, report["well_formed"])
		assert.Equal(t, "Commerzbank", report["bank_name"])
	})

	t.Run("malformed bic", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/bic/NOT-A-BIC")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, false, data(t, body)["well_formed"])
	})
}
