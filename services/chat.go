package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"technomech-api/models"
)

// ErrChatDisabled is returned when no generative-AI API key is configured.
var ErrChatDisabled = errors.New("chat API key not configured")

// ChatMessage is one turn of the widget conversation. Role is "user" or
// "model", matching the Gemini wire format.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

const chatModel = "gemini-1.5-flash"

const defaultChatBaseURL = "https://generativelanguage.googleapis.com"

// ChatService answers visitor questions by passing the conversation to
// the hosted Gemini model with a fixed sales-engineer system prompt built
// from the product catalog.
type ChatService struct {
	APIKey  func() string
	BaseURL string
	Client  *http.Client
}

func NewChatService(apiKey func() string) *ChatService {
	return &ChatService{
		APIKey:  apiKey,
		BaseURL: defaultChatBaseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// systemPrompt renders the catalog and company identity into the model
// instruction.
func systemPrompt() string {
	var products strings.Builder
	for _, p := range models.Products {
		fmt.Fprintf(&products, "- %s (%s): %s\n", p.Name, p.Category, p.Description)
	}
	var services strings.Builder
	for _, s := range models.Services {
		fmt.Fprintf(&services, "- %s: %s\n", s.Title, s.Description)
	}

	return fmt.Sprintf(`You are an AI sales engineer for %s.

Company Info:
Name: %s
Addr: %s
Phone: %s
Email: %s

Products:
%s
Services:
%s
Goal: Answer customer queries instantly and accurately.

CRITICAL INSTRUCTIONS FOR SPEED:
1. KEEP RESPONSES UNDER 3 SENTENCES unless a detailed technical spec is requested.
2. BE DIRECT. Do not fluff.
3. If asked for price -> "Please contact us for a quote."
4. Speak professionally but concisely.`,
		models.CompanyName, models.CompanyName, models.CompanyAddress,
		models.CompanyPhone, models.CompanyEmail,
		products.String(), services.String())
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Reply sends the history plus the new user message and returns the model
// text. The request is a direct pass-through; no state is kept server-side.
func (s *ChatService) Reply(ctx context.Context, history []ChatMessage, userMessage ChatMessage) (string, error) {
	key := s.APIKey()
	if key == "" {
		return "", ErrChatDisabled
	}

	req := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt()}}},
	}
	for _, m := range history {
		req.Contents = append(req.Contents, geminiContent{Role: m.Role, Parts: []geminiPart{{Text: m.Text}}})
	}
	req.Contents = append(req.Contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: userMessage.Text}}})

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.BaseURL, chatModel, key)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("chat upstream: %w", err)
	}
	defer resp.Body.Close()

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("chat upstream: decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("chat upstream: %s", out.Error.Message)
		}
		return "", fmt.Errorf("chat upstream: status %d", resp.StatusCode)
	}

	if len(out.Candidates) > 0 && len(out.Candidates[0].Content.Parts) > 0 {
		if text := out.Candidates[0].Content.Parts[0].Text; text != "" {
			return text, nil
		}
	}
	return "I apologize, could you please repeat that?", nil
}
