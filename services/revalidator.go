package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopalnp/personal-site-backend/cache"
)

// Paths for targeted invalidation.
const (
	PathHome     = "/"
	PathBlogList = "/blog"
	PathAbout    = "/about"
)

// BlogPostPaths are the pages a single blog post can appear on.
func BlogPostPaths(id string) []string {
	return []string{PathHome, PathBlogList, PathBlogList + "/" + id}
}

// TimelinePaths are the pages the timeline renders on.
func TimelinePaths() []string {
	return []string{PathAbout}
}

// ShouldRevalidateBlog reports whether a blog mutation is visibility-
// relevant: the post is published now, or was before. A draft-to-draft
// edit changes nothing a visitor can see and must not churn the cache.
func ShouldRevalidateBlog(wasPublished, isPublished bool) bool {
	return wasPublished || isPublished
}

// Revalidator discards cached page renderings after content mutations.
//
// Targeted invalidation (blog, timeline) runs synchronously and its error
// is returned to the caller's handler, which logs and swallows it: a stale
// page until the next mutation is an accepted gap, never a request failure.
//
// Site-wide invalidation (news, videos, gallery) is fire-and-forget: the
// request is queued onto a buffered channel and a single worker drains it.
// There is no retry, and a full queue drops the request; the flush is
// unconditional, so the next mutation of the same kind re-triggers it.
type Revalidator struct {
	pages   cache.PageCache
	logger  zerolog.Logger
	queue   chan struct{}
	done    chan struct{}
	timeout time.Duration
}

func NewRevalidator(pages cache.PageCache) *Revalidator {
	return &Revalidator{
		pages:   pages,
		logger:  log.With().Str("service", "revalidator").Logger(),
		queue:   make(chan struct{}, 16),
		done:    make(chan struct{}),
		timeout: 30 * time.Second,
	}
}

// Start launches the site-wide flush worker.
func (r *Revalidator) Start() {
	go r.run()
}

// Stop waits for the worker to drain and exit.
func (r *Revalidator) Stop() {
	close(r.queue)
	<-r.done
}

// InvalidatePaths performs a targeted, synchronous invalidation.
func (r *Revalidator) InvalidatePaths(ctx context.Context, paths ...string) error {
	return r.pages.Invalidate(ctx, paths...)
}

// RequestSiteRefresh enqueues a site-wide flush without blocking the
// calling handler.
func (r *Revalidator) RequestSiteRefresh() {
	select {
	case r.queue <- struct{}{}:
	default:
		r.logger.Warn().Msg("revalidation queue full, dropping site-wide refresh request")
	}
}

// FlushSite invalidates every cached page immediately. Used by the
// /api/revalidate endpoint, which reports the outcome to the admin.
func (r *Revalidator) FlushSite(ctx context.Context) error {
	return r.pages.InvalidateAll(ctx)
}

func (r *Revalidator) run() {
	defer close(r.done)

	for range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		if err := r.pages.InvalidateAll(ctx); err != nil {
			r.logger.Error().Err(err).Msg("site-wide revalidation failed, content may be stale")
		}
		cancel()
	}
}
