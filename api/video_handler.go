package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopalnp/personal-site-backend/models"
)

// VideoStore is the repository surface the video handlers use.
// *database.VideoRepo satisfies it.
type VideoStore interface {
	List(ctx context.Context) ([]models.Video, error)
	FindByID(ctx context.Context, id string) (*models.Video, error)
	Insert(ctx context.Context, video models.Video) (string, error)
	Replace(ctx context.Context, id string, video models.Video) error
	Delete(ctx context.Context, id string) error
}

type videoHandler struct {
	responder   Responder
	logger      zerolog.Logger
	videos      VideoStore
	revalidator pageRevalidator
}

func newVideoHandler(videos VideoStore, revalidator pageRevalidator) videoHandler {
	logger := log.With().Str("handlerName", "videoHandler").Logger()

	return videoHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		videos:      videos,
		revalidator: revalidator,
	}
}

func (h videoHandler) getAllVideos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := h.videos.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, videos)
	}
}

func (h videoHandler) getVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		video, err := h.videos.FindByID(r.Context(), chi.URLParam(r, "videoID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, video)
	}
}

func (h videoHandler) createVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var video models.Video
		if err := decodeJSON(r, &video); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := h.videos.Insert(r.Context(), video)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteStatusJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func (h videoHandler) updateVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "videoID")

		var video models.Video
		if err := decodeJSON(r, &video); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.videos.Replace(r.Context(), id, video); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "video updated successfully",
		})
	}
}

func (h videoHandler) deleteVideo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.videos.Delete(r.Context(), chi.URLParam(r, "videoID")); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "video deleted successfully",
		})
	}
}
