package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"technomech-api/services"
)

type ContactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	Subject      string `json:"subject"`
	Message      string `json:"message"`
	CaptchaValue string `json:"captchaValue"`
}

// SubmitContact handles POST /contact
func SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	submission, _, err := submissionService.Submit(services.ContactInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		Subject:      req.Subject,
		Message:      req.Message,
		CaptchaValue: req.CaptchaValue,
	})

	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
		case errors.Is(err, services.ErrBotSuspected):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Verification failed. We suspect you might be a bot. Please try again or contact us directly."})
		case errors.Is(err, services.ErrCaptchaUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Security check failed. Please try again."})
		default:
			log.Printf("[CONTACT] submit failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}
