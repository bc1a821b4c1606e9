package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"technomech-api/controllers"
	"technomech-api/routes"
	"technomech-api/services"
)

// newTestRouter wires the full route table against an in-memory store,
// with mail unconfigured and captcha disabled unless a test overrides the
// relevant env.
func newTestRouter(t *testing.T, store services.SubmissionStore) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	notifier := services.NewNotifier(
		func(to []string, subject, html string) error { return nil },
		func() bool { return false },
		func() string { return "" },
	)
	captcha := services.NewCaptchaVerifier(func() string { return "" })
	submissionService := services.NewSubmissionService(store, notifier, captcha,
		func() string { return "+91" },
		func() string { return "@gmail.com" })
	chatService := services.NewChatService(func() string { return "" })
	controllers.Setup(submissionService, chatService)

	router := gin.New()
	routes.SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
