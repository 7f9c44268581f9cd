package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names in the document store.
const (
	collBlog              = "blog"
	collNews              = "news"
	collVideos            = "videos"
	collGalleryCategories = "gallery_categories"
	collGalleryImages     = "gallery_images"
	collTimeline          = "timeline"
	collUsers             = "users"
)

type Database struct {
	blogPostRepo        *BlogPostRepo
	newsRepo            *NewsRepo
	videoRepo           *VideoRepo
	galleryCategoryRepo *GalleryCategoryRepo
	galleryImageRepo    *GalleryImageRepo
	timelineRepo        *TimelineRepo
	userRepo            *UserRepo

	db *mongo.Database
}

// Connect dials the document store and verifies the connection.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}

// New initializes a new Database struct with each repository using a shared
// database handle.
func New(db *mongo.Database) Database {
	return Database{
		blogPostRepo:        NewBlogPostRepo(db.Collection(collBlog)),
		newsRepo:            NewNewsRepo(db.Collection(collNews)),
		videoRepo:           NewVideoRepo(db.Collection(collVideos)),
		galleryCategoryRepo: NewGalleryCategoryRepo(db.Collection(collGalleryCategories), db.Collection(collGalleryImages)),
		galleryImageRepo:    NewGalleryImageRepo(db.Collection(collGalleryImages), db.Collection(collGalleryCategories)),
		timelineRepo:        NewTimelineRepo(db.Collection(collTimeline)),
		userRepo:            NewUserRepo(db.Collection(collUsers)),
		db:                  db,
	}
}

// Accessor methods for each repository

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) NewsRepo() *NewsRepo {
	return d.newsRepo
}

func (d Database) VideoRepo() *VideoRepo {
	return d.videoRepo
}

func (d Database) GalleryCategoryRepo() *GalleryCategoryRepo {
	return d.galleryCategoryRepo
}

func (d Database) GalleryImageRepo() *GalleryImageRepo {
	return d.galleryImageRepo
}

func (d Database) TimelineRepo() *TimelineRepo {
	return d.timelineRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// EnsureIndexes creates the indexes the repositories rely on. Uniqueness of
// gallery category names is an application-level check, so only the user
// email index is strict here.
func (d Database) EnsureIndexes(ctx context.Context) error {
	_, err := d.db.Collection(collUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = d.db.Collection(collTimeline).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "order", Value: 1}},
	})
	return err
}

// Ping verifies the document store is reachable, for health checks.
func (d Database) Ping(ctx context.Context) error {
	return d.db.Client().Ping(ctx, readpref.Primary())
}
