package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopalnp/personal-site-backend/models"
)

// GalleryCategoryStore is the repository surface for gallery categories.
// *database.GalleryCategoryRepo satisfies it.
type GalleryCategoryStore interface {
	List(ctx context.Context) ([]models.GalleryCategory, error)
	FindByID(ctx context.Context, id string) (*models.GalleryCategory, error)
	Insert(ctx context.Context, category models.GalleryCategory) (string, error)
	Replace(ctx context.Context, id string, category models.GalleryCategory) error
	Delete(ctx context.Context, id string) error
}

// GalleryImageStore is the repository surface for gallery images.
// *database.GalleryImageRepo satisfies it.
type GalleryImageStore interface {
	List(ctx context.Context, categoryID string) ([]models.GalleryImage, error)
	FindByID(ctx context.Context, id string) (*models.GalleryImage, error)
	Insert(ctx context.Context, image models.GalleryImage) (string, error)
	Replace(ctx context.Context, id string, image models.GalleryImage) error
	Delete(ctx context.Context, id string) error
}

type galleryHandler struct {
	responder   Responder
	logger      zerolog.Logger
	categories  GalleryCategoryStore
	images      GalleryImageStore
	revalidator pageRevalidator
}

func newGalleryHandler(categories GalleryCategoryStore, images GalleryImageStore, revalidator pageRevalidator) galleryHandler {
	logger := log.With().Str("handlerName", "galleryHandler").Logger()

	return galleryHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		categories:  categories,
		images:      images,
		revalidator: revalidator,
	}
}

// getAllCategories lists gallery categories sorted by name.
// @Summary List gallery categories
// @Tags Gallery
// @Produce json
// @Success 200 {array} models.GalleryCategory
// @Failure 500 {object} ErrorResponse
// @Router /api/gallery/categories [get]
func (h galleryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categories.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

func (h galleryHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := h.categories.FindByID(r.Context(), chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, category)
	}
}

func (h galleryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.GalleryCategory
		if err := decodeJSON(r, &category); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := h.categories.Insert(r.Context(), category)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteStatusJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func (h galleryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "categoryID")

		var category models.GalleryCategory
		if err := decodeJSON(r, &category); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.categories.Replace(r.Context(), id, category); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "gallery category updated successfully",
		})
	}
}

// deleteCategory removes a category. The repository refuses the delete
// when any image still references the category, reporting the blocking
// image count.
// @Summary Delete gallery category
// @Tags Gallery
// @Produce json
// @Param categoryID path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/gallery/categories/{categoryID} [delete]
func (h galleryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.categories.Delete(r.Context(), chi.URLParam(r, "categoryID")); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "gallery category deleted successfully",
		})
	}
}

// getAllImages lists gallery images, optionally filtered by ?categoryId=.
func (h galleryHandler) getAllImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := h.images.List(r.Context(), r.URL.Query().Get("categoryId"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, images)
	}
}

func (h galleryHandler) getImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		image, err := h.images.FindByID(r.Context(), chi.URLParam(r, "imageID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, image)
	}
}

func (h galleryHandler) createImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var image models.GalleryImage
		if err := decodeJSON(r, &image); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := h.images.Insert(r.Context(), image)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteStatusJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func (h galleryHandler) updateImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "imageID")

		var image models.GalleryImage
		if err := decodeJSON(r, &image); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.images.Replace(r.Context(), id, image); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "gallery image updated successfully",
		})
	}
}

func (h galleryHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.images.Delete(r.Context(), chi.URLParam(r, "imageID")); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.revalidator.RequestSiteRefresh()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "gallery image deleted successfully",
		})
	}
}
