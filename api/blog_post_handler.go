package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopalnp/personal-site-backend/database"
	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/models"
	"github.com/gopalnp/personal-site-backend/services"
)

// BlogPostStore is the repository surface the blog handlers use.
// *database.BlogPostRepo satisfies it.
type BlogPostStore interface {
	List(ctx context.Context, opts database.BlogListOptions) ([]models.BlogPost, error)
	FindByID(ctx context.Context, id string) (*models.BlogPost, error)
	Insert(ctx context.Context, post models.BlogPost) (string, error)
	Replace(ctx context.Context, id string, post models.BlogPost) error
	Delete(ctx context.Context, id string) error
}

type blogPostHandler struct {
	responder   Responder
	logger      zerolog.Logger
	posts       BlogPostStore
	revalidator pageRevalidator
}

func newBlogPostHandler(posts BlogPostStore, revalidator pageRevalidator) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		posts:       posts,
		revalidator: revalidator,
	}
}

// getAllBlogPosts lists blog posts. Published posts are always returned;
// drafts only when ?includeDrafts=true and the request carries an admin
// session.
// @Summary List blog posts
// @Tags Blog
// @Produce json
// @Param includeDrafts query bool false "Include draft posts (admin only)"
// @Success 200 {array} models.BlogPost
// @Failure 500 {object} ErrorResponse
// @Router /api/blog [get]
func (h blogPostHandler) getAllBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := principalFromCtx(r.Context())
		requested := r.URL.Query().Get("includeDrafts") == "true"

		posts, err := h.posts.List(r.Context(), database.BlogListOptions{
			IncludeDrafts: services.IncludeDrafts(requested, principal.Present()),
			Authenticated: principal.Present(),
		})
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, posts)
	}
}

// getBlogPost returns a single post. Drafts are only visible to
// authenticated callers; anonymous requests for a draft get 403, not 404,
// matching the public site's behavior.
// @Summary Get blog post
// @Tags Blog
// @Produce json
// @Param blogPostID path string true "Blog post ID"
// @Success 200 {object} models.BlogPost
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/blog/{blogPostID} [get]
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "blogPostID")
		principal := principalFromCtx(r.Context())

		post, err := h.posts.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if !services.IsBlogPostVisible(*post, principal.Present()) {
			h.responder.WriteError(w, errs.NewForbiddenError("draft posts require authentication"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// createBlogPost stores a new post. Drafts need only a title; published
// posts are fully validated. Pages are revalidated only when the new post
// is published.
// @Summary Create blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Param blogPost body models.BlogPost true "Blog post data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /api/blog [post]
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post models.BlogPost
		if err := decodeJSON(r, &post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := h.posts.Insert(r.Context(), post)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if services.ShouldRevalidateBlog(false, post.Published()) {
			h.refreshBlogPages(r.Context(), id)
		}

		h.responder.WriteStatusJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

// updateBlogPost replaces a post's content. Revalidation fires when the
// post is published after the update or was published before it, so
// unpublishing also refreshes the public pages; draft-to-draft edits touch
// nothing.
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "blogPostID")

		existing, err := h.posts.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var post models.BlogPost
		if err := decodeJSON(r, &post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.posts.Replace(r.Context(), id, post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if post.Status == "" {
			post.Status = models.StatusDraft
		}
		if services.ShouldRevalidateBlog(existing.Published(), post.Published()) {
			h.refreshBlogPages(r.Context(), id)
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post updated successfully",
		})
	}
}

func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "blogPostID")

		existing, err := h.posts.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.posts.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if existing.Published() {
			h.refreshBlogPages(r.Context(), id)
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "blog post deleted successfully",
		})
	}
}

// refreshBlogPages invalidates the cached pages a blog change affects. A
// cache failure is logged but never fails the write that triggered it.
func (h blogPostHandler) refreshBlogPages(ctx context.Context, id string) {
	if err := h.revalidator.InvalidatePaths(ctx, services.BlogPostPaths(id)...); err != nil {
		h.logger.Error().Err(err).Str("blogPostID", id).Msg("failed to revalidate blog pages")
	}
}
