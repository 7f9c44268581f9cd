package api

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gopalnp/personal-site-backend/database"
	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/models"
)

// Shared in-memory fakes for handler tests.

type fakeRevalidator struct {
	mu              sync.Mutex
	invalidated     [][]string
	refreshRequests int
	flushes         int
}

func (f *fakeRevalidator) InvalidatePaths(_ context.Context, paths ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, paths)
	return nil
}

func (f *fakeRevalidator) RequestSiteRefresh() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshRequests++
}

func (f *fakeRevalidator) FlushSite(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	return nil
}

type fakeBlogPostStore struct {
	posts    map[string]models.BlogPost
	lastOpts database.BlogListOptions
	inserts  int
	replaces int
	deletes  int
}

func newFakeBlogPostStore(posts ...models.BlogPost) *fakeBlogPostStore {
	store := &fakeBlogPostStore{posts: map[string]models.BlogPost{}}
	for _, post := range posts {
		store.posts[post.ID.Hex()] = post
	}
	return store
}

func (f *fakeBlogPostStore) List(_ context.Context, opts database.BlogListOptions) ([]models.BlogPost, error) {
	f.lastOpts = opts

	posts := []models.BlogPost{}
	for _, post := range f.posts {
		if post.Published() || (opts.IncludeDrafts && opts.Authenticated) {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (f *fakeBlogPostStore) FindByID(_ context.Context, id string) (*models.BlogPost, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, errs.NewInvalidID("blog post")
	}
	post, ok := f.posts[id]
	if !ok {
		return nil, errs.NewNotFound("blog post")
	}
	return &post, nil
}

func (f *fakeBlogPostStore) Insert(_ context.Context, post models.BlogPost) (string, error) {
	if post.Status == "" {
		post.Status = models.StatusDraft
	}
	if err := post.Validate(); err != nil {
		return "", err
	}
	post.ID = primitive.NewObjectID()
	f.posts[post.ID.Hex()] = post
	f.inserts++
	return post.ID.Hex(), nil
}

func (f *fakeBlogPostStore) Replace(_ context.Context, id string, post models.BlogPost) error {
	if post.Status == "" {
		post.Status = models.StatusDraft
	}
	if err := post.Validate(); err != nil {
		return err
	}
	existing, ok := f.posts[id]
	if !ok {
		return errs.NewNotFound("blog post")
	}
	post.ID = existing.ID
	f.posts[id] = post
	f.replaces++
	return nil
}

func (f *fakeBlogPostStore) Delete(_ context.Context, id string) error {
	if _, ok := f.posts[id]; !ok {
		return errs.NewNotFound("blog post")
	}
	delete(f.posts, id)
	f.deletes++
	return nil
}

func (f *fakeBlogPostStore) mutations() int {
	return f.inserts + f.replaces + f.deletes
}

type fakeMover struct {
	ups    []string
	downs  []string
	result bool
}

func (f *fakeMover) MoveUp(_ context.Context, id string) (bool, error) {
	f.ups = append(f.ups, id)
	return f.result, nil
}

func (f *fakeMover) MoveDown(_ context.Context, id string) (bool, error) {
	f.downs = append(f.downs, id)
	return f.result, nil
}

func adminPrincipal() models.Principal {
	return models.Principal{
		UserID: primitive.NewObjectID().Hex(),
		Email:  "admin@example.com",
		Role:   models.RoleAdmin,
	}
}
