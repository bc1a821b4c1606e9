package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifierFor(t *testing.T, handler http.HandlerFunc) *CaptchaVerifier {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	v := NewCaptchaVerifier(func() string { return "test-secret" })
	v.VerifyURL = srv.URL
	return v
}

func TestVerifySkippedWithoutSecretOrToken(t *testing.T) {
	called := false
	v := verifierFor(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	// No token: skipped.
	require.NoError(t, v.Verify(""))

	// No secret: skipped even with a token.
	v.Secret = func() string { return "" }
	require.NoError(t, v.Verify("tok"))

	assert.False(t, called)
}

func TestVerifyPasses(t *testing.T) {
	v := verifierFor(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-secret", r.FormValue("secret"))
		assert.Equal(t, "tok", r.FormValue("response"))
		w.Write([]byte(`{"success": true, "score": 0.9}`))
	})

	assert.NoError(t, v.Verify("tok"))
}

func TestVerifyRejectsLowScore(t *testing.T) {
	v := verifierFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "score": 0.3}`))
	})

	assert.ErrorIs(t, v.Verify("tok"), ErrBotSuspected)
}

func TestVerifyRejectsFailure(t *testing.T) {
	v := verifierFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	})

	assert.ErrorIs(t, v.Verify("tok"), ErrBotSuspected)
}

func TestVerifyFailsClosedOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	v := NewCaptchaVerifier(func() string { return "test-secret" })
	v.VerifyURL = srv.URL

	assert.ErrorIs(t, v.Verify("tok"), ErrCaptchaUnavailable)
}

func TestVerifyFailsClosedOnUnreadableVerdict(t *testing.T) {
	v := verifierFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	assert.ErrorIs(t, v.Verify("tok"), ErrCaptchaUnavailable)
}
