package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sanjulagihan/portfolio-backend/database"
	"github.com/sanjulagihan/portfolio-backend/errs"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogRepo  *database.BlogRepo
}

func newBlogHandler(blogRepo *database.BlogRepo) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogRepo:  blogRepo,
	}
}

// getPublishedBlogs lists published posts for the public site, newest first.
func (h blogHandler) getPublishedBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogRepo.FindPublished()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find published", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, blogs)
	}
}

// getBlogBySlug resolves a published post by its URL slug.
func (h blogHandler) getBlogBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blog, err := h.blogRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// getAllBlogs lists every post regardless of status for the admin dashboard.
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blogs", err))
			return
		}

		h.responder.WriteJSON(w, blogs)
	}
}

func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		blog, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog", err))
			return
		}
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		h.responder.WriteJSON(w, blog)
	}
}

// createBlog creates a post; slug and read_time are derived from the title
// and content here, never taken from the client.
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("validation failed", "blog", err.Error()))
			return
		}

		blog := req.Model()
		if err := h.blogRepo.Add(blog); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "blog", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, blog)
	}
}

func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		existing, err := h.blogRepo.FindByID(blogID)
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("find", "blog", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("blog post not found"))
			return
		}

		var req UpdateBlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := req.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestErrorWithField("validation failed", "blog", err.Error()))
			return
		}

		updated, err := h.blogRepo.Update(blogID, req.Patch())
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("update", "blog", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		if err := h.blogRepo.Delete(blogID); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("delete", "blog", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}
