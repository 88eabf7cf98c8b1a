// Package services holds outbound integrations. Email goes through the
// Resend HTTP API; both sends triggered by the contact flow are advisory
// and never block the request that triggered them.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ContactEmail carries the contact-form fields both notification emails
// are rendered from.
type ContactEmail struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ResendClient sends transactional email through the Resend API.
type ResendClient struct {
	apiKey    string
	fromEmail string
	// recipient is the operator address contact notifications go to.
	recipient  string
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewResendClient(apiKey, fromEmail, recipient string) *ResendClient {
	return &ResendClient{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		recipient:  recipient,
		endpoint:   resendEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log.With().Str("service", "resend").Logger(),
	}
}

// SendContactNotification emails the operator about a new contact-form
// message, with reply-to set to the sender.
func (c *ResendClient) SendContactNotification(ctx context.Context, data ContactEmail) error {
	subjectLine := data.Subject
	if subjectLine == "" {
		subjectLine = "No subject"
	}

	payload := ResendEmailRequest{
		From:    c.fromEmail,
		To:      []string{c.recipient},
		ReplyTo: data.Email,
		Subject: fmt.Sprintf("New Contact Form Message from %s", data.Name),
		Text: fmt.Sprintf(
			"New contact form message\n\nName: %s\nEmail: %s\nSubject: %s\n\n%s\n",
			data.Name, data.Email, subjectLine, data.Message,
		),
	}
	return c.send(ctx, payload)
}

// SendAutoReply emails the form submitter confirming their message arrived.
func (c *ResendClient) SendAutoReply(ctx context.Context, data ContactEmail) error {
	subjectLine := data.Subject
	if subjectLine == "" {
		subjectLine = "No subject"
	}

	payload := ResendEmailRequest{
		From:    c.fromEmail,
		To:      []string{data.Email},
		Subject: "Thank you for your message!",
		Text: fmt.Sprintf(
			"Hi %s,\n\nThank you for reaching out through my portfolio contact form. "+
				"I've received your message and will get back to you as soon as possible, "+
				"usually within 24 hours.\n\nYour message summary:\nSubject: %s\n",
			data.Name, subjectLine,
		),
	}
	return c.send(ctx, payload)
}

func (c *ResendClient) send(ctx context.Context, payload ResendEmailRequest) error {
	if c.apiKey == "" {
		return fmt.Errorf("resend API key is not configured")
	}
	if c.fromEmail == "" {
		return fmt.Errorf("resend from address is not configured")
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil && errorResp.Message != "" {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		c.logger.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}
