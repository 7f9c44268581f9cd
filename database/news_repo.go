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

type NewsRepo struct {
	coll *mongo.Collection
}

func NewNewsRepo(coll *mongo.Collection) *NewsRepo {
	return &NewsRepo{coll}
}

// List returns all news articles sorted by date descending.
func (r *NewsRepo) List(ctx context.Context) ([]models.NewsArticle, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, errs.NewDatabaseError("list", "news articles", err)
	}

	articles := []models.NewsArticle{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, errs.NewDatabaseError("decode", "news articles", err)
	}
	return articles, nil
}

func (r *NewsRepo) FindByID(ctx context.Context, id string) (*models.NewsArticle, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewInvalidID("news article")
	}

	var article models.NewsArticle
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&article); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFound("news article")
		}
		return nil, errs.NewDatabaseError("find", "news article", err)
	}
	return &article, nil
}

func (r *NewsRepo) Insert(ctx context.Context, article models.NewsArticle) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	article.ID = primitive.NewObjectID()
	article.CreatedAt = now
	article.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, article); err != nil {
		return "", errs.NewDatabaseError("create", "news article", err)
	}
	return article.ID.Hex(), nil
}

func (r *NewsRepo) Replace(ctx context.Context, id string, article models.NewsArticle) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("news article")
	}

	if err := article.Validate(); err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"title":     article.Title,
		"date":      article.Date,
		"link":      article.Link,
		"excerpt":   article.Excerpt,
		"image":     article.Image,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return errs.NewDatabaseError("update", "news article", err)
	}
	if result.MatchedCount == 0 {
		return errs.NewNotFound("news article")
	}
	return nil
}

func (r *NewsRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("news article")
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errs.NewDatabaseError("delete", "news article", err)
	}
	if result.DeletedCount == 0 {
		return errs.NewNotFound("news article")
	}
	return nil
}
