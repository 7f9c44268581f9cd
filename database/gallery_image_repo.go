package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/models"
)

// GalleryImageRepo holds the categories collection as well: writes verify
// the referenced category exists, reads decorate images with its name.
type GalleryImageRepo struct {
	coll       *mongo.Collection
	categories *mongo.Collection
}

func NewGalleryImageRepo(coll, categories *mongo.Collection) *GalleryImageRepo {
	return &GalleryImageRepo{coll: coll, categories: categories}
}

// List returns images newest first, optionally filtered by category, each
// decorated with its category name. Categories are loaded once rather than
// per image.
func (r *GalleryImageRepo) List(ctx context.Context, categoryID string) ([]models.GalleryImage, error) {
	filter := bson.M{}
	if categoryID != "" {
		filter["categoryId"] = categoryID
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errs.NewDatabaseError("list", "gallery images", err)
	}

	images := []models.GalleryImage{}
	if err := cursor.All(ctx, &images); err != nil {
		return nil, errs.NewDatabaseError("decode", "gallery images", err)
	}

	names, err := r.categoryNames(ctx)
	if err != nil {
		return nil, err
	}
	for i := range images {
		if name, ok := names[images[i].CategoryID]; ok {
			images[i].CategoryName = name
		} else {
			images[i].CategoryName = "Unknown"
		}
	}
	return images, nil
}

func (r *GalleryImageRepo) FindByID(ctx context.Context, id string) (*models.GalleryImage, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewInvalidID("gallery image")
	}

	var image models.GalleryImage
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&image); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFound("gallery image")
		}
		return nil, errs.NewDatabaseError("find", "gallery image", err)
	}
	return &image, nil
}

func (r *GalleryImageRepo) Insert(ctx context.Context, image models.GalleryImage) (string, error) {
	if err := image.Validate(); err != nil {
		return "", err
	}
	if err := r.categoryExists(ctx, image.CategoryID); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	image.ID = primitive.NewObjectID()
	image.CreatedAt = now
	image.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, image); err != nil {
		return "", errs.NewDatabaseError("create", "gallery image", err)
	}
	return image.ID.Hex(), nil
}

func (r *GalleryImageRepo) Replace(ctx context.Context, id string, image models.GalleryImage) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("gallery image")
	}

	if err := image.Validate(); err != nil {
		return err
	}
	if err := r.categoryExists(ctx, image.CategoryID); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"title":       image.Title,
		"description": image.Description,
		"imageUrl":    image.ImageURL,
		"categoryId":  image.CategoryID,
		"updatedAt":   time.Now().UTC(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return errs.NewDatabaseError("update", "gallery image", err)
	}
	if result.MatchedCount == 0 {
		return errs.NewNotFound("gallery image")
	}
	return nil
}

func (r *GalleryImageRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("gallery image")
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errs.NewDatabaseError("delete", "gallery image", err)
	}
	if result.DeletedCount == 0 {
		return errs.NewNotFound("gallery image")
	}
	return nil
}

func (r *GalleryImageRepo) categoryExists(ctx context.Context, categoryID string) error {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return errs.NewValidationError("categoryId", "Invalid category ID")
	}

	count, err := r.categories.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return errs.NewDatabaseError("check category of", "gallery image", err)
	}
	if count == 0 {
		return errs.NewValidationError("categoryId", "Selected category does not exist")
	}
	return nil
}

func (r *GalleryImageRepo) categoryNames(ctx context.Context) (map[string]string, error) {
	cursor, err := r.categories.Find(ctx, bson.M{})
	if err != nil {
		return nil, errs.NewDatabaseError("list", "gallery categories", err)
	}

	var categories []models.GalleryCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, errs.NewDatabaseError("decode", "gallery categories", err)
	}

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID.Hex()] = c.Name
	}
	return names, nil
}
