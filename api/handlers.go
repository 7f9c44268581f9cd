package api

import (
	"context"
	"time"

	"github.com/gopalnp/personal-site-backend/cache"
	"github.com/gopalnp/personal-site-backend/database"
	"github.com/gopalnp/personal-site-backend/services"
	"github.com/gopalnp/personal-site-backend/storage"
)

// pageRevalidator is the slice of *services.Revalidator the handlers use.
type pageRevalidator interface {
	InvalidatePaths(ctx context.Context, paths ...string) error
	RequestSiteRefresh()
	FlushSite(ctx context.Context) error
}

// initializeHandlers creates all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, deps Dependencies, startupTime time.Time) *routeHandlers {
	// A mailer without credentials stays nil so its route is not mounted.
	var mailer ContactMailer
	if deps.Mailer != nil && deps.Mailer.Configured() {
		mailer = deps.Mailer
	}

	return &routeHandlers{
		authHandler:       newAuthHandler(deps.Auth),
		blogPostHandler:   newBlogPostHandler(db.BlogPostRepo(), deps.Revalidator),
		newsHandler:       newNewsHandler(db.NewsRepo(), deps.Revalidator),
		videoHandler:      newVideoHandler(db.VideoRepo(), deps.Revalidator),
		galleryHandler:    newGalleryHandler(db.GalleryCategoryRepo(), db.GalleryImageRepo(), deps.Revalidator),
		timelineHandler:   newTimelineHandler(db.TimelineRepo(), deps.Orderer, deps.Revalidator),
		revalidateHandler: newRevalidateHandler(deps.Revalidator),
		uploadHandler:     newUploadHandler(deps.Images),
		contactHandler:    newContactHandler(mailer),
		healthHandler:     newHealthHandler(db, deps.Redis, startupTime),
	}
}

// Dependencies carries everything the router needs besides the database.
// Images and Mailer may be nil; their routes are only mounted when they are
// configured.
type Dependencies struct {
	Auth        *services.AuthService
	Revalidator *services.Revalidator
	Orderer     *services.Orderer
	Mailer      *services.Mailer
	Images      storage.ImageStore
	Redis       *cache.Client
}
