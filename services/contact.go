package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopalnp/personal-site-backend/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendEmailRequest is the payload for the Resend API.
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

type resendErrorResponse struct {
	Message string `json:"message"`
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Mailer delivers contact-form messages to the site owner via the Resend
// API. Nothing is persisted.
type Mailer struct {
	apiKey    string
	from      string
	recipient string
	client    *http.Client
	logger    zerolog.Logger
}

func NewMailer(cfg map[string]string) *Mailer {
	return &Mailer{
		apiKey:    config.GetString(cfg, "RESEND_API_KEY", ""),
		from:      config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		recipient: config.GetString(cfg, "CONTACT_RECIPIENT", ""),
		client:    &http.Client{Timeout: 15 * time.Second},
		logger:    log.With().Str("service", "mailer").Logger(),
	}
}

// Configured reports whether the mailer has everything it needs. When it is
// not configured the contact endpoint is not mounted.
func (m *Mailer) Configured() bool {
	return m.apiKey != "" && m.from != "" && m.recipient != ""
}

func (m *Mailer) SendContactEmail(ctx context.Context, msg ContactMessage) error {
	payload := resendEmailRequest{
		From:    m.from,
		To:      []string{m.recipient},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("Contact form message from %s", msg.Name),
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal contact email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build contact email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send contact email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr resendErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Message != "" {
			m.logger.Error().Int("status", resp.StatusCode).Str("message", apiErr.Message).Msg("resend rejected contact email")
			return fmt.Errorf("email service returned %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("email service returned %d", resp.StatusCode)
	}

	return nil
}
