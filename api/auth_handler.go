package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SessionIssuer issues session tokens. *services.AuthService satisfies it.
type SessionIssuer interface {
	Login(ctx context.Context, email, password string) (string, error)
	SessionTTL() time.Duration
}

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      SessionIssuer
}

func newAuthHandler(auth SessionIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      auth,
	}
}

// login exchanges admin credentials for a session token. The token is
// returned in the body for API clients and set as an HttpOnly cookie for
// the browser-based admin UI.
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		token, err := h.auth.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(h.auth.SessionTTL()),
			HttpOnly: true,
			Secure:   r.TLS != nil,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]string{"token": token})
	}
}

// logout clears the session cookie. Tokens themselves stay valid until
// expiry; there is no server-side session state to revoke.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
