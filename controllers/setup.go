package controllers

import (
	"technomech-api/services"
)

var (
	submissionService *services.SubmissionService
	chatService       *services.ChatService
)

// Setup wires the controllers to their services. Called once from main
// and from handler tests.
func Setup(subs *services.SubmissionService, chat *services.ChatService) {
	submissionService = subs
	chatService = chat
}
