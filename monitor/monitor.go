package monitor

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"technomech-api/config"
	"technomech-api/services"
)

var startedAt = time.Now()

// RegisterMonitorRoute exposes a small operational status endpoint:
// uptime, store backend and size, and which optional integrations are
// configured.
func RegisterMonitorRoute(router *gin.Engine, store services.SubmissionStore, backend string) {
	router.GET("/monitor", func(c *gin.Context) {
		count := -1
		if subs, err := store.List(); err == nil {
			count = len(subs)
		}

		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"uptime":         time.Since(startedAt).Round(time.Second).String(),
			"store_backend":  backend,
			"submissions":    count,
			"mail_enabled":   config.MailConfigured(),
			"chat_enabled":   config.GeminiAPIKey() != "",
			"captcha_active": config.RecaptchaSecret() != "",
		})
	})
}
