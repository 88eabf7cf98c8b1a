package api

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sanjulagihan/portfolio-backend/database"
	"github.com/sanjulagihan/portfolio-backend/errs"
	"github.com/sanjulagihan/portfolio-backend/models"
	"github.com/sanjulagihan/portfolio-backend/storage"
)

// Upload limits, mirroring what the dashboard enforced before picking a
// file: 5MB images, 10MB CV documents.
const (
	maxImageSize = 5 * 1024 * 1024
	maxCVSize    = 10 * 1024 * 1024
)

var imageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var cvTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	store     *storage.Client
	cvRepo    *database.CVRepo
}

func newUploadHandler(store *storage.Client, cvRepo *database.CVRepo) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		store:     store,
		cvRepo:    cvRepo,
	}
}

// formFile pulls the "file" part out of a multipart request and checks it
// against the size and content-type limits for its bucket.
func (h uploadHandler) formFile(r *http.Request, maxSize int64, allowed map[string]bool) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxSize); err != nil {
		return nil, nil, errs.NewBadRequestError("malformed multipart request")
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, errs.NewBadRequestError("missing file field")
	}

	if header.Size > maxSize {
		file.Close()
		return nil, nil, errs.NewValidationError("file", fmt.Sprintf("file exceeds %dMB limit", maxSize/(1024*1024)))
	}

	contentType := header.Header.Get("Content-Type")
	if !allowed[contentType] {
		file.Close()
		return nil, nil, errs.NewValidationError("file", fmt.Sprintf("unsupported file type %q", contentType))
	}

	return file, header, nil
}

func (h uploadHandler) uploadImage(bucket, keyPrefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := h.formFile(r, maxImageSize, imageTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer file.Close()

		key := storage.ObjectKey(keyPrefix, header.Filename)
		url, err := h.store.Upload(r.Context(), bucket, key, header.Header.Get("Content-Type"), file, header.Size)
		if err != nil {
			h.logger.Error().Err(err).Str("bucket", bucket).Msg("image upload failed")
			h.responder.WriteError(w, errs.NewStorageError("upload", bucket, err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"url": url,
			"key": key,
		})
	}
}

// uploadProjectImage stores an image in the project-images bucket and
// returns its public URL for the project form to reference.
func (h uploadHandler) uploadProjectImage() http.HandlerFunc {
	return h.uploadImage(storage.BucketProjectImages, "project")
}

func (h uploadHandler) uploadBlogImage() http.HandlerFunc {
	return h.uploadImage(storage.BucketBlogImages, "blog")
}

// uploadCVFile stores the document in the cv-files bucket and registers a
// CV record for it in one request. The new record starts inactive; the
// dashboard activates it explicitly.
func (h uploadHandler) uploadCVFile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := h.formFile(r, maxCVSize, cvTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		key := storage.ObjectKey("cv", header.Filename)
		url, err := h.store.Upload(r.Context(), storage.BucketCVFiles, key, contentType, file, header.Size)
		if err != nil {
			h.logger.Error().Err(err).Msg("cv upload failed")
			h.responder.WriteError(w, errs.NewStorageError("upload", storage.BucketCVFiles, err))
			return
		}

		size := header.Size
		record := &models.CVFile{
			FileName: header.Filename,
			FileURL:  url,
			FileSize: &size,
			FileType: &contentType,
			Version:  fmt.Sprintf("v%d", time.Now().UnixMilli()),
		}
		if desc := r.FormValue("description"); desc != "" {
			record.Description = &desc
		}

		if err := h.cvRepo.Add(record); err != nil {
			// The object is already stored; leave it for the storage
			// endpoint to clean up and report the record failure.
			h.responder.WriteError(w, errs.NewDatabaseError("create", "cv file", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, record)
	}
}

// listObjects lists a bucket's contents, optionally under a key prefix.
func (h uploadHandler) listObjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bucket := chi.URLParam(r, "bucket")
		if !storage.AllowedBucket(bucket) {
			h.responder.WriteError(w, errs.NewBadRequestError("unknown bucket"))
			return
		}

		objects, err := h.store.List(r.Context(), bucket, r.URL.Query().Get("prefix"))
		if err != nil {
			h.responder.WriteError(w, errs.NewStorageError("list", bucket, err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"bucket":  bucket,
			"objects": objects,
		})
	}
}

// deleteObject removes one stored object. Record rows referencing it are
// untouched; the dashboard deletes those separately.
func (h uploadHandler) deleteObject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bucket := chi.URLParam(r, "bucket")
		if !storage.AllowedBucket(bucket) {
			h.responder.WriteError(w, errs.NewBadRequestError("unknown bucket"))
			return
		}

		key := chi.URLParam(r, "*")
		if key == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing object key"))
			return
		}

		if err := h.store.Delete(r.Context(), bucket, key); err != nil {
			h.responder.WriteError(w, errs.NewStorageError("delete", bucket, err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "object deleted successfully",
		})
	}
}
