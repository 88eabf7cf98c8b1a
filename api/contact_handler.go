package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sanjulagihan/portfolio-backend/errs"
	"github.com/sanjulagihan/portfolio-backend/models"
	"github.com/sanjulagihan/portfolio-backend/services"
)

// Mailer sends the two advisory emails triggered by a contact submission.
type Mailer interface {
	SendContactNotification(ctx context.Context, data services.ContactEmail) error
	SendAutoReply(ctx context.Context, data services.ContactEmail) error
}

// messageStore is the slice of MessageRepo the contact flow needs.
type messageStore interface {
	Add(message *models.Message) error
}

// NotificationOutcome records whether one of the two advisory sends went
// through. Failures are reported here and in the logs, never as a request
// failure; the stored message is the only hard guarantee.
type NotificationOutcome struct {
	Kind  string `json:"kind"` // "operator_notification" or "auto_reply"
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	messages  messageStore
	mailer    Mailer
}

func newContactHandler(messages messageStore, mailer Mailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		messages:  messages,
		mailer:    mailer,
	}
}

// submitContact validates and stores one inbound message, then attempts
// the operator notification and the sender auto-reply.
// @Summary Submit contact form
// @Tags Contact
// @Accept json
// @Produce json
// @Param message body ContactRequest true "Contact form fields"
// @Success 200 {object} map[string]any "Stored message id and notification outcomes"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Message could not be stored"
// @Router /api/contact [post]
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("validation failed", "contact", err.Error()))
			return
		}

		message := &models.Message{
			Name:    strings.TrimSpace(req.Name),
			Email:   strings.ToLower(strings.TrimSpace(req.Email)),
			Message: strings.TrimSpace(req.Message),
		}
		if subject := strings.TrimSpace(req.Subject); subject != "" {
			message.Subject = &subject
		}

		if err := h.messages.Add(message); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "message", err))
			return
		}

		outcomes := h.notify(r.Context(), message)

		h.responder.WriteJSON(w, map[string]any{
			"success":       true,
			"message":       "Message sent successfully! I'll get back to you soon.",
			"id":            message.ID,
			"notifications": outcomes,
		})
	}
}

// notify runs both sends independently; one failing does not stop the other.
func (h contactHandler) notify(ctx context.Context, message *models.Message) []NotificationOutcome {
	data := services.ContactEmail{
		Name:    message.Name,
		Email:   message.Email,
		Message: message.Message,
	}
	if message.Subject != nil {
		data.Subject = *message.Subject
	}

	outcomes := make([]NotificationOutcome, 0, 2)

	if err := h.mailer.SendContactNotification(ctx, data); err != nil {
		h.logger.Error().Err(err).Msg("Failed to send operator notification")
		outcomes = append(outcomes, NotificationOutcome{Kind: "operator_notification", Error: err.Error()})
	} else {
		outcomes = append(outcomes, NotificationOutcome{Kind: "operator_notification", Sent: true})
	}

	if err := h.mailer.SendAutoReply(ctx, data); err != nil {
		h.logger.Error().Err(err).Msg("Failed to send auto-reply")
		outcomes = append(outcomes, NotificationOutcome{Kind: "auto_reply", Error: err.Error()})
	} else {
		outcomes = append(outcomes, NotificationOutcome{Kind: "auto_reply", Sent: true})
	}

	return outcomes
}
