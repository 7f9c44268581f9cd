package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/storage"
)

// maxUploadBytes caps image uploads at 10 MiB.
const maxUploadBytes = 10 << 20

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	images    storage.ImageStore
}

func newUploadHandler(images storage.ImageStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		images:    images,
	}
}

// uploadImage accepts a multipart form with a single "file" field and
// stores it, returning the storage key. The public site builds display
// URLs from the key and its CDN base.
// @Summary Upload an image
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/uploads [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewValidationError("file", "upload too large or malformed"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingFieldError("file"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		key, err := h.images.Put(r.Context(), header.Filename, contentType, file)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", header.Filename).Msg("failed to store upload")
			h.responder.WriteError(w, errs.NewInternalError("failed to store upload"))
			return
		}

		h.responder.WriteStatusJSON(w, http.StatusCreated, map[string]string{"key": key})
	}
}
