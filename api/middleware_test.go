package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/models"
	"github.com/gopalnp/personal-site-backend/services"
)

type singleUserStore struct {
	user models.User
}

func (s *singleUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if email != s.user.Email {
		return nil, errs.NewNotFound("user")
	}
	user := s.user
	return &user, nil
}

func newTestAuthService(t *testing.T, password string) (*services.AuthService, models.User) {
	t.Helper()

	hash, err := services.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		ID:           primitive.NewObjectID(),
		Name:         "Gopal",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	return services.NewAuthService(&singleUserStore{user: user}, "test-secret", time.Hour), user
}

// newProtectedRouter mounts blog mutations behind the real session
// middleware, the way setupRoutes does.
func newProtectedRouter(auth *services.AuthService, store *fakeBlogPostStore) *chi.Mux {
	handler := newBlogPostHandler(store, &fakeRevalidator{})
	m := newAuthMiddleware(auth)

	r := chi.NewRouter()
	r.Use(m.attachSession)
	r.Get("/api/blog", handler.getAllBlogPosts())
	r.Group(func(r chi.Router) {
		r.Use(m.requireAdmin)
		r.Post("/api/blog", handler.createBlogPost())
		r.Delete("/api/blog/{blogPostID}", handler.deleteBlogPost())
	})
	return r
}

func TestRequireAdminRejectsAnonymousMutation(t *testing.T) {
	auth, _ := newTestAuthService(t, "pw")
	store := newFakeBlogPostStore()
	router := newProtectedRouter(auth, store)

	body, _ := json.Marshal(models.BlogPost{Title: "sneaky"})
	req := httptest.NewRequest(http.MethodPost, "/api/blog", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, store.mutations(), "a rejected request must not reach the repository")
}

func TestRequireAdminRejectsTamperedToken(t *testing.T) {
	auth, _ := newTestAuthService(t, "pw")
	store := newFakeBlogPostStore()
	router := newProtectedRouter(auth, store)

	req := httptest.NewRequest(http.MethodPost, "/api/blog", bytes.NewReader([]byte(`{"title":"x"}`)))
	req.Header.Set("Authorization", "Bearer bogus.token.value")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, store.mutations())
}

func TestSessionTokenViaBearerHeader(t *testing.T) {
	auth, _ := newTestAuthService(t, "pw")
	store := newFakeBlogPostStore()
	router := newProtectedRouter(auth, store)

	token, err := auth.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)

	body, _ := json.Marshal(models.BlogPost{Title: "approved"})
	req := httptest.NewRequest(http.MethodPost, "/api/blog", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, store.inserts)
}

func TestSessionTokenViaCookie(t *testing.T) {
	auth, _ := newTestAuthService(t, "pw")
	store := newFakeBlogPostStore()
	router := newProtectedRouter(auth, store)

	token, err := auth.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)

	body, _ := json.Marshal(models.BlogPost{Title: "approved"})
	req := httptest.NewRequest(http.MethodPost, "/api/blog", bytes.NewReader(body))
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAttachSessionDegradesInvalidTokenToAnonymous(t *testing.T) {
	auth, _ := newTestAuthService(t, "pw")
	draft := models.BlogPost{ID: primitive.NewObjectID(), Title: "wip", Status: models.StatusDraft}
	store := newFakeBlogPostStore(draft)
	router := newProtectedRouter(auth, store)

	// Public reads still work with a broken token; drafts stay hidden.
	req := httptest.NewRequest(http.MethodGet, "/api/blog?includeDrafts=true", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, store.lastOpts.IncludeDrafts)
}

func TestLoginHandlerSetsSessionCookie(t *testing.T) {
	auth, _ := newTestAuthService(t, "pw")
	handler := newAuthHandler(auth)

	r := chi.NewRouter()
	r.Post("/api/auth/login", handler.login())

	body := []byte(`{"email":"admin@example.com","password":"pw"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["token"])

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Equal(t, resp["token"], cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginHandlerBadCredentials(t *testing.T) {
	auth, _ := newTestAuthService(t, "pw")
	handler := newAuthHandler(auth)

	r := chi.NewRouter()
	r.Post("/api/auth/login", handler.login())

	body := []byte(`{"email":"admin@example.com","password":"nope"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
