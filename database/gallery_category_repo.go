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

// GalleryCategoryRepo also holds the images collection so deletion can
// refuse to orphan referencing images.
type GalleryCategoryRepo struct {
	coll   *mongo.Collection
	images *mongo.Collection
}

func NewGalleryCategoryRepo(coll, images *mongo.Collection) *GalleryCategoryRepo {
	return &GalleryCategoryRepo{coll: coll, images: images}
}

// List returns categories sorted by name ascending.
func (r *GalleryCategoryRepo) List(ctx context.Context) ([]models.GalleryCategory, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, errs.NewDatabaseError("list", "gallery categories", err)
	}

	categories := []models.GalleryCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, errs.NewDatabaseError("decode", "gallery categories", err)
	}
	return categories, nil
}

func (r *GalleryCategoryRepo) FindByID(ctx context.Context, id string) (*models.GalleryCategory, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewInvalidID("gallery category")
	}

	var category models.GalleryCategory
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&category); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFound("gallery category")
		}
		return nil, errs.NewDatabaseError("find", "gallery category", err)
	}
	return &category, nil
}

// Insert rejects duplicate names (case-sensitive exact match, checked at
// the application level like the rest of the referential rules).
func (r *GalleryCategoryRepo) Insert(ctx context.Context, category models.GalleryCategory) (string, error) {
	if err := category.Validate(); err != nil {
		return "", err
	}

	count, err := r.coll.CountDocuments(ctx, bson.M{"name": category.Name})
	if err != nil {
		return "", errs.NewDatabaseError("check name of", "gallery category", err)
	}
	if count > 0 {
		return "", errs.NewDuplicateNameError("category", category.Name)
	}

	now := time.Now().UTC()
	category.ID = primitive.NewObjectID()
	category.CreatedAt = now
	category.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, category); err != nil {
		return "", errs.NewDatabaseError("create", "gallery category", err)
	}
	return category.ID.Hex(), nil
}

func (r *GalleryCategoryRepo) Replace(ctx context.Context, id string, category models.GalleryCategory) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("gallery category")
	}

	if err := category.Validate(); err != nil {
		return err
	}

	count, err := r.coll.CountDocuments(ctx, bson.M{"name": category.Name, "_id": bson.M{"$ne": oid}})
	if err != nil {
		return errs.NewDatabaseError("check name of", "gallery category", err)
	}
	if count > 0 {
		return errs.NewDuplicateNameError("category", category.Name)
	}

	update := bson.M{"$set": bson.M{
		"name":        category.Name,
		"description": category.Description,
		"updatedAt":   time.Now().UTC(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return errs.NewDatabaseError("update", "gallery category", err)
	}
	if result.MatchedCount == 0 {
		return errs.NewNotFound("gallery category")
	}
	return nil
}

// Delete refuses to remove a category that images still reference; the
// conflict reports how many images block the deletion.
func (r *GalleryCategoryRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("gallery category")
	}

	blocking, err := r.images.CountDocuments(ctx, bson.M{"categoryId": id})
	if err != nil {
		return errs.NewDatabaseError("count images of", "gallery category", err)
	}
	if blocking > 0 {
		return errs.NewCategoryInUseError(blocking)
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errs.NewDatabaseError("delete", "gallery category", err)
	}
	if result.DeletedCount == 0 {
		return errs.NewNotFound("gallery category")
	}
	return nil
}
