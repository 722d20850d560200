// Package drafts calls the external text-generation service to propose an
// email reply. It is an out-of-core collaborator: it never touches order
// state, and every failure comes back as a user-facing message string
// instead of an error crossing the boundary.
package drafts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hobfurniture/orderdesk-backend/pkg/config"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
)

const (
	missingKeyMessage = "Error: API Key is missing. Please provide a valid API key in your environment variables."
	failureMessage    = "Error generating draft. Please ensure your API key is correctly configured."
	emptyDraftMessage = "I'm sorry, I couldn't generate a draft at this time."
)

// Input carries the context the draft is written from.
type Input struct {
	CustomerName string
	OrderContext string
	Conversation string
}

// Service drafts replies through the Gemini generateContent endpoint.
type Service struct {
	cfg    config.GeminiConfig
	client *http.Client
	logg   *logger.Logger
}

// NewService builds the draft service.
func NewService(cfg config.GeminiConfig, logg *logger.Logger) (*Service, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logg:   logg,
	}, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// DraftReply returns a proposed reply body, or a user-facing message when
// the credential is missing or the service fails.
func (s *Service) DraftReply(ctx context.Context, input Input) string {
	if s.cfg.APIKey == "" {
		return missingKeyMessage
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(input)}}}},
	})
	if err != nil {
		s.logg.Error(ctx, "failed to encode draft request", err)
		return failureMessage
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.cfg.BaseURL, s.cfg.Model, s.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		s.logg.Error(ctx, "failed to build draft request", err)
		return failureMessage
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logg.Error(ctx, "draft service unreachable", err)
		return failureMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logg.Error(ctx, "draft service returned an error", fmt.Errorf("status %d", resp.StatusCode))
		return failureMessage
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		s.logg.Error(ctx, "failed to decode draft response", err)
		return failureMessage
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return emptyDraftMessage
	}
	text := decoded.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return emptyDraftMessage
	}
	return text
}

func buildPrompt(input Input) string {
	return fmt.Sprintf(`You are a helpful customer service agent named Emma at HOB FURNITURE.
Draft a polite, professional, and concise email reply to the customer, %s.

Context of the order:
%s

Previous conversation history:
%s

The customer is asking a question. Please answer it professionally.
Do not include the subject line, just the body of the email. Keep it under 150 words.`,
		input.CustomerName, input.OrderContext, input.Conversation)
}
