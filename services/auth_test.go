package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/models"
)

type fakeUserStore struct {
	user *models.User
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.user == nil || f.user.Email != email {
		return nil, errs.NewNotFound("user")
	}
	return f.user, nil
}

func newTestUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	return &models.User{
		ID:           primitive.NewObjectID(),
		Name:         "Gopal",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
}

func TestAuthServiceLoginAndVerify(t *testing.T) {
	user := newTestUser(t, "correct horse battery staple")
	auth := NewAuthService(&fakeUserStore{user: user}, "test-secret", time.Hour)

	token, err := auth.Login(context.Background(), "admin@example.com", "correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), principal.UserID)
	assert.Equal(t, "admin@example.com", principal.Email)
	assert.True(t, principal.IsAdmin())
	assert.True(t, principal.Present())
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	user := newTestUser(t, "right")
	auth := NewAuthService(&fakeUserStore{user: user}, "test-secret", time.Hour)

	_, err := auth.Login(context.Background(), "admin@example.com", "wrong")
	assert.True(t, errs.IsUnauthorized(err))
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	auth := NewAuthService(&fakeUserStore{}, "test-secret", time.Hour)

	_, err := auth.Login(context.Background(), "nobody@example.com", "whatever")
	// Unknown email and wrong password look identical to the caller.
	assert.True(t, errs.IsUnauthorized(err))
}

func TestAuthServiceVerifyRejectsGarbage(t *testing.T) {
	auth := NewAuthService(&fakeUserStore{}, "test-secret", time.Hour)

	_, err := auth.Verify("not-a-token")
	assert.True(t, errs.IsUnauthorized(err))
}

func TestAuthServiceVerifyRejectsForeignSecret(t *testing.T) {
	user := newTestUser(t, "pw")
	issuer := NewAuthService(&fakeUserStore{user: user}, "secret-a", time.Hour)
	verifier := NewAuthService(&fakeUserStore{user: user}, "secret-b", time.Hour)

	token, err := issuer.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.True(t, errs.IsUnauthorized(err))
}

func TestAuthServiceVerifyRejectsExpiredToken(t *testing.T) {
	user := newTestUser(t, "pw")
	auth := NewAuthService(&fakeUserStore{user: user}, "test-secret", -time.Minute)

	token, err := auth.Login(context.Background(), "admin@example.com", "pw")
	require.NoError(t, err)

	_, err = auth.Verify(token)
	assert.True(t, errs.IsUnauthorized(err))
}
