package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"technomech-api/services"
)

func contactPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Asha Rao",
		"email":   "asha.rao@gmail.com",
		"phone":   "98765 43210",
		"subject": "Quote",
		"message": "Need 500 units",
	}
}

func TestSubmitContactSuccess(t *testing.T) {
	store := services.NewMemoryStore()
	router := newTestRouter(t, store)

	w := doJSON(t, router, http.MethodPost, "/api/v1/contact", contactPayload())
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	submission, ok := body["submission"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "+91 9876543210", submission["phone"])
	assert.Equal(t, "new", submission["status"])
	assert.NotEmpty(t, submission["id"])
	assert.Equal(t, 1, store.Len())
}

func TestSubmitContactWrongEmailDomain(t *testing.T) {
	store := services.NewMemoryStore()
	router := newTestRouter(t, store)

	payload := contactPayload()
	payload["email"] = "asha.rao@yahoo.com"

	w := doJSON(t, router, http.MethodPost, "/api/v1/contact", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body["error"], "@gmail.com")
	assert.Equal(t, 0, store.Len())
}

func TestSubmitContactInvalidPhone(t *testing.T) {
	store := services.NewMemoryStore()
	router := newTestRouter(t, store)

	payload := contactPayload()
	payload["phone"] = "12345"

	w := doJSON(t, router, http.MethodPost, "/api/v1/contact", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body["error"], "phone")
	assert.Equal(t, 0, store.Len())
}

func TestSubmitContactMissingFields(t *testing.T) {
	store := services.NewMemoryStore()
	router := newTestRouter(t, store)

	payload := contactPayload()
	delete(payload, "message")

	w := doJSON(t, router, http.MethodPost, "/api/v1/contact", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, store.Len())
}

func TestSubmitContactMalformedBody(t *testing.T) {
	router := newTestRouter(t, services.NewMemoryStore())

	w := doJSON(t, router, http.MethodPost, "/api/v1/contact", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
