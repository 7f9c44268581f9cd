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

type BlogPostRepo struct {
	coll *mongo.Collection
}

func NewBlogPostRepo(coll *mongo.Collection) *BlogPostRepo {
	return &BlogPostRepo{coll}
}

// BlogListOptions controls draft visibility for listings. Drafts are only
// included when the caller both asked for them and is authenticated; the
// filter is built here so a missed check in a handler cannot leak drafts.
type BlogListOptions struct {
	IncludeDrafts bool
	Authenticated bool
}

// List returns blog posts sorted by date descending.
func (r *BlogPostRepo) List(ctx context.Context, opts BlogListOptions) ([]models.BlogPost, error) {
	filter := bson.M{"status": models.StatusPublished}
	if opts.IncludeDrafts && opts.Authenticated {
		filter = bson.M{}
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, errs.NewDatabaseError("list", "blog posts", err)
	}

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, errs.NewDatabaseError("decode", "blog posts", err)
	}
	return posts, nil
}

// FindByID returns a single post regardless of status; visibility of drafts
// is the caller's concern (see services.IsBlogPostVisible).
func (r *BlogPostRepo) FindByID(ctx context.Context, id string) (*models.BlogPost, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewInvalidID("blog post")
	}

	var post models.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFound("blog post")
		}
		return nil, errs.NewDatabaseError("find", "blog post", err)
	}
	return &post, nil
}

// Insert validates and stores a new post, defaulting status to draft and
// date to today. Returns the generated id.
func (r *BlogPostRepo) Insert(ctx context.Context, post models.BlogPost) (string, error) {
	if post.Status == "" {
		post.Status = models.StatusDraft
	}
	if err := post.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if post.Date == "" {
		post.Date = now.Format("2006-01-02")
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.ID = primitive.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return "", errs.NewDatabaseError("create", "blog post", err)
	}
	return post.ID.Hex(), nil
}

// Replace overwrites the mutable fields of an existing post. createdAt is
// preserved; updatedAt is stamped here.
func (r *BlogPostRepo) Replace(ctx context.Context, id string, post models.BlogPost) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("blog post")
	}

	if post.Status == "" {
		post.Status = models.StatusDraft
	}
	if err := post.Validate(); err != nil {
		return err
	}

	if post.Date == "" {
		post.Date = time.Now().UTC().Format("2006-01-02")
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	update := bson.M{"$set": bson.M{
		"title":     post.Title,
		"date":      post.Date,
		"content":   post.Content,
		"image":     post.Image,
		"author":    post.Author,
		"tags":      post.Tags,
		"status":    post.Status,
		"updatedAt": time.Now().UTC(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return errs.NewDatabaseError("update", "blog post", err)
	}
	if result.MatchedCount == 0 {
		return errs.NewNotFound("blog post")
	}
	return nil
}

// Delete removes a post permanently.
func (r *BlogPostRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("blog post")
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errs.NewDatabaseError("delete", "blog post", err)
	}
	if result.DeletedCount == 0 {
		return errs.NewNotFound("blog post")
	}
	return nil
}
