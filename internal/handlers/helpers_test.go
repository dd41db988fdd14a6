package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"veriban/internal/services/bank"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// newDirectory builds a directory service over an in-memory store with one
// known German bank.
func newDirectory(t *testing.T) bank.Service {
	t.Helper()
	store := bank.NewMemoryStore()
	require.NoError(t, store.ReplaceAll(context.Background(), []bank.Record{
		{BankCode: "37040044", BIC: "COBADEFFXXX", BankName: "Commerzbank", Country: "DE"},
	}))
	return bank.NewService(store, nil, nil, nil)
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func postRaw(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

// data unwraps the success envelope.
func data(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	payload, ok := body["data"].(map[string]interface{})
	require.True(t, ok, "response has no data object: %v", body)
	return payload
}
