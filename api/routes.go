package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes mounts all endpoints. Reads are public; every mutation sits
// behind requireAdmin. attachSession runs on public routes too so draft
// visibility can honor an admin session.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	r.Get("/healthz", handlers.healthHandler.healthCheck())

	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(auth.attachSession)

		// Public reads
		r.Get("/blog", handlers.blogPostHandler.getAllBlogPosts())
		r.Get("/blog/{blogPostID}", handlers.blogPostHandler.getBlogPost())
		r.Get("/news", handlers.newsHandler.getAllNews())
		r.Get("/news/{newsArticleID}", handlers.newsHandler.getNewsArticle())
		r.Get("/videos", handlers.videoHandler.getAllVideos())
		r.Get("/videos/{videoID}", handlers.videoHandler.getVideo())
		r.Get("/gallery/categories", handlers.galleryHandler.getAllCategories())
		r.Get("/gallery/categories/{categoryID}", handlers.galleryHandler.getCategory())
		r.Get("/gallery/images", handlers.galleryHandler.getAllImages())
		r.Get("/gallery/images/{imageID}", handlers.galleryHandler.getImage())
		r.Get("/timeline", handlers.timelineHandler.getAllTimelineItems())
		r.Get("/timeline/{timelineItemID}", handlers.timelineHandler.getTimelineItem())

		// Public writes
		r.Post("/auth/login", handlers.authHandler.login())
		if handlers.contactHandler.mailer != nil {
			r.Post("/contact", handlers.contactHandler.submitContactForm())
		}

		// Admin mutations
		r.Group(func(r chi.Router) {
			r.Use(auth.requireAdmin)

			r.Post("/auth/logout", handlers.authHandler.logout())

			r.Post("/blog", handlers.blogPostHandler.createBlogPost())
			r.Put("/blog/{blogPostID}", handlers.blogPostHandler.updateBlogPost())
			r.Delete("/blog/{blogPostID}", handlers.blogPostHandler.deleteBlogPost())

			r.Post("/news", handlers.newsHandler.createNewsArticle())
			r.Put("/news/{newsArticleID}", handlers.newsHandler.updateNewsArticle())
			r.Delete("/news/{newsArticleID}", handlers.newsHandler.deleteNewsArticle())

			r.Post("/videos", handlers.videoHandler.createVideo())
			r.Put("/videos/{videoID}", handlers.videoHandler.updateVideo())
			r.Delete("/videos/{videoID}", handlers.videoHandler.deleteVideo())

			r.Post("/gallery/categories", handlers.galleryHandler.createCategory())
			r.Put("/gallery/categories/{categoryID}", handlers.galleryHandler.updateCategory())
			r.Delete("/gallery/categories/{categoryID}", handlers.galleryHandler.deleteCategory())

			r.Post("/gallery/images", handlers.galleryHandler.createImage())
			r.Put("/gallery/images/{imageID}", handlers.galleryHandler.updateImage())
			r.Delete("/gallery/images/{imageID}", handlers.galleryHandler.deleteImage())

			r.Post("/timeline", handlers.timelineHandler.createTimelineItem())
			r.Put("/timeline/{timelineItemID}", handlers.timelineHandler.updateTimelineItem())
			r.Delete("/timeline/{timelineItemID}", handlers.timelineHandler.deleteTimelineItem())
			r.Post("/timeline/{timelineItemID}/move", handlers.timelineHandler.moveTimelineItem())

			r.Post("/revalidate", handlers.revalidateHandler.revalidateSite())

			if handlers.uploadHandler.images != nil {
				r.Post("/uploads", handlers.uploadHandler.uploadImage())
			}
		})
	})
}
