package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/models"
)

type fakeCategoryStore struct {
	categories map[string]models.GalleryCategory
	imageCount int64
	deletes    int
}

func newFakeCategoryStore(imageCount int64, categories ...models.GalleryCategory) *fakeCategoryStore {
	store := &fakeCategoryStore{categories: map[string]models.GalleryCategory{}, imageCount: imageCount}
	for _, category := range categories {
		store.categories[category.ID.Hex()] = category
	}
	return store
}

func (f *fakeCategoryStore) List(_ context.Context) ([]models.GalleryCategory, error) {
	categories := []models.GalleryCategory{}
	for _, category := range f.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (f *fakeCategoryStore) FindByID(_ context.Context, id string) (*models.GalleryCategory, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, errs.NewNotFound("gallery category")
	}
	return &category, nil
}

func (f *fakeCategoryStore) Insert(_ context.Context, category models.GalleryCategory) (string, error) {
	for _, existing := range f.categories {
		if existing.Name == category.Name {
			return "", errs.NewDuplicateNameError("gallery category", category.Name)
		}
	}
	category.ID = primitive.NewObjectID()
	f.categories[category.ID.Hex()] = category
	return category.ID.Hex(), nil
}

func (f *fakeCategoryStore) Replace(_ context.Context, id string, category models.GalleryCategory) error {
	if _, ok := f.categories[id]; !ok {
		return errs.NewNotFound("gallery category")
	}
	f.categories[id] = category
	return nil
}

func (f *fakeCategoryStore) Delete(_ context.Context, id string) error {
	if _, ok := f.categories[id]; !ok {
		return errs.NewNotFound("gallery category")
	}
	if f.imageCount > 0 {
		return errs.NewCategoryInUseError(f.imageCount)
	}
	delete(f.categories, id)
	f.deletes++
	return nil
}

type fakeImageStore struct {
	images map[string]models.GalleryImage
}

func (f *fakeImageStore) List(_ context.Context, categoryID string) ([]models.GalleryImage, error) {
	images := []models.GalleryImage{}
	for _, image := range f.images {
		if categoryID == "" || image.CategoryID == categoryID {
			images = append(images, image)
		}
	}
	return images, nil
}

func (f *fakeImageStore) FindByID(_ context.Context, id string) (*models.GalleryImage, error) {
	image, ok := f.images[id]
	if !ok {
		return nil, errs.NewNotFound("gallery image")
	}
	return &image, nil
}

func (f *fakeImageStore) Insert(_ context.Context, image models.GalleryImage) (string, error) {
	image.ID = primitive.NewObjectID()
	if f.images == nil {
		f.images = map[string]models.GalleryImage{}
	}
	f.images[image.ID.Hex()] = image
	return image.ID.Hex(), nil
}

func (f *fakeImageStore) Replace(_ context.Context, id string, image models.GalleryImage) error {
	if _, ok := f.images[id]; !ok {
		return errs.NewNotFound("gallery image")
	}
	f.images[id] = image
	return nil
}

func (f *fakeImageStore) Delete(_ context.Context, id string) error {
	if _, ok := f.images[id]; !ok {
		return errs.NewNotFound("gallery image")
	}
	delete(f.images, id)
	return nil
}

func newGalleryTestRouter(categories GalleryCategoryStore, images GalleryImageStore, revalidator *fakeRevalidator) *chi.Mux {
	handler := newGalleryHandler(categories, images, revalidator)

	r := chi.NewRouter()
	r.Get("/api/gallery/categories", handler.getAllCategories())
	r.Post("/api/gallery/categories", handler.createCategory())
	r.Delete("/api/gallery/categories/{categoryID}", handler.deleteCategory())
	r.Get("/api/gallery/images", handler.getAllImages())
	r.Post("/api/gallery/images", handler.createImage())
	return r
}

func TestDeleteCategoryBlockedByImages(t *testing.T) {
	category := models.GalleryCategory{ID: primitive.NewObjectID(), Name: "Nature"}
	store := newFakeCategoryStore(3, category)
	revalidator := &fakeRevalidator{}
	router := newGalleryTestRouter(store, &fakeImageStore{}, revalidator)

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/api/gallery/categories/"+category.ID.Hex(), nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "There are 3 images using this category")
	assert.Zero(t, store.deletes)
	assert.Zero(t, revalidator.refreshRequests, "a blocked delete must not refresh the site")
}

func TestDeleteEmptyCategory(t *testing.T) {
	category := models.GalleryCategory{ID: primitive.NewObjectID(), Name: "Nature"}
	store := newFakeCategoryStore(0, category)
	revalidator := &fakeRevalidator{}
	router := newGalleryTestRouter(store, &fakeImageStore{}, revalidator)

	req := asAdmin(httptest.NewRequest(http.MethodDelete, "/api/gallery/categories/"+category.ID.Hex(), nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, store.deletes)
	assert.Equal(t, 1, revalidator.refreshRequests)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	existing := models.GalleryCategory{ID: primitive.NewObjectID(), Name: "Nature"}
	store := newFakeCategoryStore(0, existing)
	router := newGalleryTestRouter(store, &fakeImageStore{}, &fakeRevalidator{})

	body, _ := json.Marshal(models.GalleryCategory{Name: "Nature"})
	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/gallery/categories", bytes.NewReader(body)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, store.categories, 1)
}

func TestListImagesByCategory(t *testing.T) {
	catA := primitive.NewObjectID().Hex()
	catB := primitive.NewObjectID().Hex()
	images := &fakeImageStore{images: map[string]models.GalleryImage{}}
	for _, categoryID := range []string{catA, catA, catB} {
		id := primitive.NewObjectID()
		images.images[id.Hex()] = models.GalleryImage{
			ID: id, Title: "img", ImageURL: "/i.jpg", CategoryID: categoryID,
		}
	}
	router := newGalleryTestRouter(newFakeCategoryStore(0), images, &fakeRevalidator{})

	req := httptest.NewRequest(http.MethodGet, "/api/gallery/images?categoryId="+catA, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.GalleryImage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}
