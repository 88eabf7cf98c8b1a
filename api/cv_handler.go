package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/sanjulagihan/portfolio-backend/database"
	"github.com/sanjulagihan/portfolio-backend/errs"
)

type cvHandler struct {
	responder Responder
	logger    zerolog.Logger
	cvRepo    *database.CVRepo
}

func newCVHandler(cvRepo *database.CVRepo) cvHandler {
	logger := log.With().Str("handlerName", "cvHandler").Logger()

	return cvHandler{
		responder: NewResponder(logger),
		logger:    logger,
		cvRepo:    cvRepo,
	}
}

// getActiveCV returns the currently active CV file for the public
// download button, or 404 when no file is marked active.
func (h cvHandler) getActiveCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := h.cvRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find active", "cv file", err))
			return
		}
		if file == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("no active cv file"))
			return
		}

		h.responder.WriteJSON(w, file)
	}
}

func (h cvHandler) getAllCVs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := h.cvRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "cv files", err))
			return
		}

		h.responder.WriteJSON(w, files)
	}
}

// createCV registers a CV record pointing at an already uploaded file.
// Most records are created by the upload endpoint instead.
func (h cvHandler) createCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateCVRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode cv request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("validation failed", "cv", err.Error()))
			return
		}

		// Records always insert inactive; activation goes through the
		// transactional swap so two files never end up active at once.
		file := req.Model()
		file.IsActive = false
		if err := h.cvRepo.Add(file); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "cv file", err))
			return
		}

		if req.IsActive {
			if err := h.cvRepo.SetActive(file.ID); err != nil {
				h.responder.WriteError(w, errs.NewDatabaseError("activate", "cv file", err))
				return
			}
			file.IsActive = true
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, file)
	}
}

func (h cvHandler) updateCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cvID, err := uuid.Parse(chi.URLParam(r, "cvID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid cvID"))
			return
		}

		existing, err := h.cvRepo.FindByID(cvID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "cv file", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("cv file not found"))
			return
		}

		var req UpdateCVRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode cv request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		updated, err := h.cvRepo.Update(cvID, req.Patch())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "cv file", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// activateCV makes one CV file the active download. The repo flips every
// flag in a single transaction, so the single-active invariant holds even
// when the target id does not exist.
func (h cvHandler) activateCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cvID, err := uuid.Parse(chi.URLParam(r, "cvID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid cvID"))
			return
		}

		if err := h.cvRepo.SetActive(cvID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteError(w, errs.NewNotFoundError("cv file not found"))
				return
			}
			h.responder.WriteError(w, errs.NewDatabaseError("activate", "cv file", err))
			return
		}

		file, err := h.cvRepo.FindByID(cvID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "cv file", err))
			return
		}

		h.responder.WriteJSON(w, file)
	}
}

// deleteCV removes the record only; the stored object is deleted by the
// dashboard through the storage endpoint, independently.
func (h cvHandler) deleteCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cvID, err := uuid.Parse(chi.URLParam(r, "cvID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid cvID"))
			return
		}

		if err := h.cvRepo.Delete(cvID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "cv file", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "cv file deleted successfully",
		})
	}
}
