package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"technomech-api/services"
)

type ChatRequest struct {
	Messages    []services.ChatMessage `json:"messages"`
	UserMessage services.ChatMessage   `json:"userMessage"`
}

// Chat handles POST /chat, a stateless pass-through to the hosted model.
func Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	text, err := chatService.Reply(c.Request.Context(), req.Messages, req.UserMessage)
	if err != nil {
		if errors.Is(err, services.ErrChatDisabled) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "API Key not configured"})
			return
		}
		log.Printf("[CHAT] reply failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}
