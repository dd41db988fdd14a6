package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"veriban/internal/services/bank"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBankApp(svc bank.Service) *fiber.App {
	app := fiber.New()
	h := NewBankHandler(svc)
	app.Get("/api/banks", h.List)
	app.Get("/api/banks/:code/bic", h.GetBIC)
	app.Get("/api/banks/bic/:bic/name", h.GetBankName)
	app.Post("/api/admin/directory/reload", h.Reload)
	return app
}

func TestBankHandler_GetBIC(t *testing.T) {
	app := newBankApp(newDirectory(t))

	t.Run("known bank code", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/banks/37040044/bic")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		rec := data(t, body)
		assert.Equal(t, "COBADEFFXXX", rec["bic"])
		assert.Equal(t, "Commerzbank", rec["bank_name"])
		assert.Equal(t, "DE", rec["country"])
	})

	t.Run("unknown bank code", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/banks/99999999/bic")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "bank code not found", body["error"])
	})
}

func TestBankHandler_GetBankName(t *testing.T) {
	app := newBankApp(newDirectory(t))

	t.Run("known bic", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/banks/bic/COBADEFFXXX/name")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Commerzbank", data(t, body)["bank_name"])
	})

	t.Run("unknown bic", func(t *testing.T) {
		resp, _ := getJSON(t, app, "/api/banks/bic/AARBDE5WXXX/name")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestBankHandler_List(t *testing.T) {
	store := bank.NewMemoryStore()
	require.NoError(t, store.ReplaceAll(context.Background(), []bank.Record{
		{BankCode: "50010517", BIC: "INGDDEFFXXX", BankName: "ING-DiBa", Country: "DE"},
		{BankCode: "10000000", BIC: "MARKDEF1100", BankName: "Bundesbank", Country: "DE"},
		{BankCode: "37040044", BIC: "COBADEFFXXX", BankName: "Commerzbank", Country: "DE"},
	}))
	app := newBankApp(bank.NewService(store, nil, nil, nil))

	t.Run("first page", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/banks?page=1&limit=2")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		rows, ok := body["data"].([]interface{})
		require.True(t, ok)
		require.Len(t, rows, 2)
		first, ok := rows[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "10000000", first["bank_code"])

		meta, ok := body["meta"].(map[string]interface{})
		require.True(t, ok)
		assert.EqualValues(t, 3, meta["total_items"])
		assert.EqualValues(t, 2, meta["total_pages"])
	})

	t.Run("second page", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/banks?page=2&limit=2")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		rows, ok := body["data"].([]interface{})
		require.True(t, ok)
		require.Len(t, rows, 1)
		last, ok := rows[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "50010517", last["bank_code"])
	})

	t.Run("limit is clamped", func(t *testing.T) {
		resp, body := getJSON(t, app, "/api/banks?limit=10000")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		meta, ok := body["meta"].(map[string]interface{})
		require.True(t, ok)
		assert.EqualValues(t, 100, meta["per_page"])
	})
}

func TestBankHandler_Reload(t *testing.T) {
	t.Run("reloads from the csv source", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "directory.csv")
		csv := "bank_code,bic,bank_name,country\n" +
			"37040044,COBADEFFXXX,Commerzbank,DE\n" +
			"10000000,MARKDEF1100,Bundesbank,DE\n"
		require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

		store := bank.NewMemoryStore()
		svc := bank.NewService(store, &bank.CSVLoader{Path: path}, nil, nil)
		app := newBankApp(svc)

		resp, body := decodePost(t, app, "/api/admin/directory/reload")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.EqualValues(t, 2, data(t, body)["records"])

		n, err := store.Count(context.Background())
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)
	})

	t.Run("store without a loader answers conflict", func(t *testing.T) {
		app := newBankApp(newDirectory(t))

		resp, body := decodePost(t, app, "/api/admin/directory/reload")
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Equal(t, "directory has no reloadable source", body["error"])
	})
}

// decodePost issues a bodyless POST, for endpoints that take no payload.
func decodePost(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil))
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}
