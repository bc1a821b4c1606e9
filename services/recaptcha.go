package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrBotSuspected means the verdict service answered and rejected the
// token (failure or score below threshold). Reported as a client error.
var ErrBotSuspected = errors.New("verification failed, suspected bot")

// ErrCaptchaUnavailable means the verdict call itself failed. The gate
// fails closed: an ambiguous verification result is never treated as
// "verified", so the submission is rejected with a server error.
var ErrCaptchaUnavailable = errors.New("verification service unavailable")

const captchaScoreThreshold = 0.5

// CaptchaVerifier asks the reCAPTCHA siteverify endpoint for a verdict on
// a client token. Verification only runs when both a secret and a token
// are present; otherwise it is skipped entirely.
type CaptchaVerifier struct {
	Secret    func() string
	VerifyURL string
	Client    *http.Client
}

const defaultVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

func NewCaptchaVerifier(secret func() string) *CaptchaVerifier {
	return &CaptchaVerifier{
		Secret:    secret,
		VerifyURL: defaultVerifyURL,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify returns nil when the token passes (or verification is skipped),
// ErrBotSuspected on a negative verdict, and ErrCaptchaUnavailable when
// the verdict call errors.
func (v *CaptchaVerifier) Verify(token string) error {
	secret := v.Secret()
	if secret == "" || token == "" {
		return nil
	}

	form := url.Values{}
	form.Set("secret", secret)
	form.Set("response", token)

	resp, err := v.Client.Post(v.VerifyURL, "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		log.Printf("[CAPTCHA] verify request failed: %v", err)
		return fmt.Errorf("%w: %v", ErrCaptchaUnavailable, err)
	}
	defer resp.Body.Close()

	var verdict struct {
		Success    bool     `json:"success"`
		Score      float64  `json:"score"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&verdict); err != nil {
		log.Printf("[CAPTCHA] verify response unreadable: %v", err)
		return fmt.Errorf("%w: %v", ErrCaptchaUnavailable, err)
	}

	if !verdict.Success || verdict.Score < captchaScoreThreshold {
		log.Printf("[CAPTCHA] rejected: success=%v score=%.2f codes=%v",
			verdict.Success, verdict.Score, verdict.ErrorCodes)
		return ErrBotSuspected
	}
	return nil
}
