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

type VideoRepo struct {
	coll *mongo.Collection
}

func NewVideoRepo(coll *mongo.Collection) *VideoRepo {
	return &VideoRepo{coll}
}

// List returns all videos, newest first.
func (r *VideoRepo) List(ctx context.Context) ([]models.Video, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, errs.NewDatabaseError("list", "videos", err)
	}

	videos := []models.Video{}
	if err := cursor.All(ctx, &videos); err != nil {
		return nil, errs.NewDatabaseError("decode", "videos", err)
	}
	return videos, nil
}

func (r *VideoRepo) FindByID(ctx context.Context, id string) (*models.Video, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewInvalidID("video")
	}

	var video models.Video
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&video); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFound("video")
		}
		return nil, errs.NewDatabaseError("find", "video", err)
	}
	return &video, nil
}

func (r *VideoRepo) Insert(ctx context.Context, video models.Video) (string, error) {
	if err := video.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	video.ID = primitive.NewObjectID()
	video.CreatedAt = now
	video.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, video); err != nil {
		return "", errs.NewDatabaseError("create", "video", err)
	}
	return video.ID.Hex(), nil
}

func (r *VideoRepo) Replace(ctx context.Context, id string, video models.Video) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("video")
	}

	if err := video.Validate(); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"title":        video.Title,
		"description":  video.Description,
		"href":         video.Href,
		"thumbnailUrl": video.ThumbnailURL,
		"updatedAt":    time.Now().UTC(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return errs.NewDatabaseError("update", "video", err)
	}
	if result.MatchedCount == 0 {
		return errs.NewNotFound("video")
	}
	return nil
}

func (r *VideoRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("video")
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errs.NewDatabaseError("delete", "video", err)
	}
	if result.DeletedCount == 0 {
		return errs.NewNotFound("video")
	}
	return nil
}
