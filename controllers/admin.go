package controllers

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"technomech-api/config"
	"technomech-api/middleware"
	"technomech-api/models"
	"technomech-api/services"
)

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// adminCredentialsValid checks the configured credentials. A bcrypt hash
// is preferred; the plain password compare exists for parity with the
// original fixed-credential deployment. No credentials configured means
// admin login is disabled.
func adminCredentialsValid(username, password string) bool {
	wantUser := config.AdminUsername()
	if wantUser == "" {
		return false
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) != 1 {
		return false
	}

	if hash := config.AdminPasswordHash(); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	wantPass := config.AdminPassword()
	if wantPass == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
}

// AdminLogin handles POST /admin/login and sets the session cookie.
func AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !adminCredentialsValid(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.NewSessionToken(req.Username)
	if err != nil {
		log.Printf("[ADMIN] session token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	secure := gin.Mode() == gin.ReleaseMode
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, int(middleware.SessionTTL.Seconds()), "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminLogout clears the session cookie.
func AdminLogout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSubmissions handles GET /admin/submissions. Listing also applies the
// 24-hour aging rule before the response is built.
func GetSubmissions(c *gin.Context) {
	submissions, err := submissionService.List()
	if err != nil {
		log.Printf("[ADMIN] list submissions failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch submissions"})
		return
	}
	c.JSON(http.StatusOK, submissions)
}

type updateSubmissionRequest struct {
	ID string `json:"id"`
	models.SubmissionUpdate
}

// UpdateSubmission handles PUT /admin/submissions. Only the named mutable
// fields are accepted; unknown fields are rejected rather than passed
// through.
func UpdateSubmission(c *gin.Context) {
	var req updateSubmissionRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing submission id"})
		return
	}

	submission, err := submissionService.Update(req.ID, req.SubmissionUpdate)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Submission not found"})
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Reason})
		default:
			log.Printf("[ADMIN] update submission %s failed: %v", req.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update submission"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "submission": submission})
}

// DeleteSubmissions handles DELETE /admin/submissions, either a single
// ?id= or a bulk body {ids:[...]}. Missing ids are no-ops, not failures.
func DeleteSubmissions(c *gin.Context) {
	if id := c.Query("id"); id != "" {
		if err := submissionService.Delete(id); err != nil {
			log.Printf("[ADMIN] delete submission %s failed: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete submission"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	var body struct {
		IDs []string `json:"ids"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.IDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing ID or IDs"})
		return
	}

	if err := submissionService.DeleteMany(body.IDs); err != nil {
		log.Printf("[ADMIN] bulk delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete submissions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
