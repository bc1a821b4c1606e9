package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"technomech-api/services"
)

func TestChatWithoutAPIKey(t *testing.T) {
	router := newTestRouter(t, services.NewMemoryStore())

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat", map[string]interface{}{
		"messages":    []map[string]string{},
		"userMessage": map[string]string{"role": "user", "text": "Do you make springs?"},
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "API Key not configured", body["error"])
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t, services.NewMemoryStore())

	w := doJSON(t, router, http.MethodGet, "/api/v1/catalog/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(4), body["count"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/catalog/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/company", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "Techno Mech Engineers", body["name"])
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, services.NewMemoryStore())

	w := doJSON(t, router, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}
