package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sanjulagihan/portfolio-backend/database"
	"github.com/sanjulagihan/portfolio-backend/errs"
)

// messageHandler serves the admin inbox. Messages are only ever created by
// the public contact endpoint; here they are listed, flagged and deleted.
type messageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	messageRepo *database.MessageRepo
}

func newMessageHandler(messageRepo *database.MessageRepo) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		messageRepo: messageRepo,
	}
}

func (h messageHandler) getAllMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.messageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "messages", err))
			return
		}

		h.responder.WriteJSON(w, messages)
	}
}

func (h messageHandler) getMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		message, err := h.messageRepo.FindByID(messageID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("message not found"))
			return
		}

		h.responder.WriteJSON(w, message)
	}
}

func (h messageHandler) markRead() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		message, err := h.messageRepo.MarkRead(messageID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("message not found"))
			return
		}

		h.responder.WriteJSON(w, message)
	}
}

func (h messageHandler) markReplied() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		message, err := h.messageRepo.MarkReplied(messageID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "message", err))
			return
		}
		if message == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("message not found"))
			return
		}

		h.responder.WriteJSON(w, message)
	}
}

func (h messageHandler) deleteMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "messageID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid messageID"))
			return
		}

		if err := h.messageRepo.Delete(messageID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "message", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "message deleted successfully",
		})
	}
}
