package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/models"
)

// UserStore is the slice of the user repository the auth service needs.
// *database.UserRepo satisfies it.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService issues and verifies admin session tokens. Tokens are HS256
// JWTs carrying the user id, email and role; callers treat them as opaque.
type AuthService struct {
	users  UserStore
	secret []byte
	ttl    time.Duration
	logger zerolog.Logger
}

func NewAuthService(users UserStore, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		logger: log.With().Str("service", "auth").Logger(),
	}
}

// SessionTTL exposes the configured token lifetime for cookie expiry.
func (s *AuthService) SessionTTL() time.Duration {
	return s.ttl
}

// Login checks the credentials against the users collection and returns a
// session token. Unknown email and wrong password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errs.IsNotFound(err) {
			return "", errs.NewUnauthorizedError("invalid email or password")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errs.NewUnauthorizedError("invalid email or password")
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["uid"] = user.ID.Hex()
	claims["email"] = user.Email
	claims["role"] = user.Role
	claims["exp"] = time.Now().Add(s.ttl).Unix()

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errs.NewDatabaseError("sign session for", "user", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("admin logged in")
	return signed, nil
}

// Verify parses a session token and returns the principal it carries.
func (s *AuthService) Verify(tokenString string) (models.Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return models.Principal{}, errs.NewUnauthorizedError("invalid or expired session")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Principal{}, errs.NewUnauthorizedError("invalid session claims")
	}

	principal := models.Principal{}
	if uid, ok := claims["uid"].(string); ok {
		principal.UserID = uid
	}
	if email, ok := claims["email"].(string); ok {
		principal.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		principal.Role = role
	}

	if !principal.Present() {
		return models.Principal{}, errs.NewUnauthorizedError("invalid session claims")
	}
	return principal, nil
}

// HashPassword hashes an admin password for storage. Used by the
// CREATE_ADMIN boot mode, never by a public endpoint.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
