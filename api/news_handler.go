package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopalnp/personal-site-backend/models"
)

// NewsStore is the repository surface the news handlers use.
// *database.NewsRepo satisfies it.
type NewsStore interface {
	List(ctx context.Context) ([]models.NewsArticle, error)
	FindByID(ctx context.Context, id string) (*models.NewsArticle, error)
	Insert(ctx context.Context, article models.NewsArticle) (string, error)
	Replace(ctx context.Context, id string, article models.NewsArticle) error
	Delete(ctx context.Context, id string) error
}

type newsHandler struct {
	responder   Responder
	logger      zerolog.Logger
	news        NewsStore
	revalidator pageRevalidator
}

func newNewsHandler(news NewsStore, revalidator pageRevalidator) newsHandler {
	logger := log.With().Str("handlerName", "newsHandler").Logger()

	return newsHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		news:        news,
		revalidator: revalidator,
	}
}

// getAllNews lists news articles, newest first.
// @Summary List news articles
// @Tags News
// @Produce json
// @Success 200 {array} models.NewsArticle
// @Failure 500 {object} ErrorResponse
// @Router /api/news [get]
func (h newsHandler) getAllNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := h.news.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, articles)
	}
}

func (h newsHandler) getNewsArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		article, err := h.news.FindByID(r.Context(), chi.URLParam(r, "newsArticleID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, article)
	}
}

func (h newsHandler) createNewsArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var article models.NewsArticle
		if err := decodeJSON(r, &article); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := h.news.Insert(r.Context(), article)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteStatusJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func (h newsHandler) updateNewsArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "newsArticleID")

		var article models.NewsArticle
		if err := decodeJSON(r, &article); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.news.Replace(r.Context(), id, article); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "news article updated successfully",
		})
	}
}

func (h newsHandler) deleteNewsArticle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.news.Delete(r.Context(), chi.URLParam(r, "newsArticleID")); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "news article deleted successfully",
		})
	}
}
