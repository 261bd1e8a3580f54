package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ContactNotifier emails the site owner about new contact-form messages
// through the Resend API. Delivery is best effort: failures are logged and
// never surfaced to the form submitter.
type ContactNotifier struct {
	logger    zerolog.Logger
	client    *http.Client
	endpoint  string
	apiKey    string
	fromEmail string
	toEmail   string
}

// NewContactNotifier builds a notifier from config. Returns nil when
// RESEND_API_KEY or CONTACT_NOTIFY_EMAIL is unset, which disables
// notifications entirely.
func NewContactNotifier(c map[string]string) *ContactNotifier {
	apiKey := config.GetString(c, "RESEND_API_KEY", "")
	toEmail := config.GetString(c, "CONTACT_NOTIFY_EMAIL", "")
	if apiKey == "" || toEmail == "" {
		return nil
	}

	return &ContactNotifier{
		logger:    log.With().Str("serviceName", "contactNotifier").Logger(),
		client:    &http.Client{Timeout: 10 * time.Second},
		endpoint:  resendEndpoint,
		apiKey:    apiKey,
		fromEmail: config.GetString(c, "RESEND_FROM_EMAIL", "Portfolio <onboarding@resend.dev>"),
		toEmail:   toEmail,
	}
}

// Notify emails a summary of one inbound message.
func (n *ContactNotifier) Notify(message models.Message) {
	body := fmt.Sprintf(
		"New message from %s <%s> at %s:\n\n%s\n",
		message.Name,
		message.Email,
		message.CreatedAt.Format(time.RFC3339),
		message.Message,
	)

	payload := ResendEmailRequest{
		From:    n.fromEmail,
		To:      []string{n.toEmail},
		Subject: fmt.Sprintf("Portfolio contact from %s", message.Name),
		Text:    body,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		n.logger.Error().Err(err).Msg("Error marshaling notification request")
		return
	}

	req, err := http.NewRequest(http.MethodPost, n.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		n.logger.Error().Err(err).Msg("Error building notification request")
		return
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Error().Err(err).Msg("Error sending notification email")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)

		var resendErr ResendErrorResponse
		detail := string(respBody)
		if err := json.Unmarshal(respBody, &resendErr); err == nil && resendErr.Message != "" {
			detail = resendErr.Message
		}

		n.logger.Error().
			Int("status", resp.StatusCode).
			Str("detail", detail).
			Msg("Notification service returned non-200 status")
		return
	}

	n.logger.Info().Int("messageID", message.ID).Msg("contact notification sent")
}
