package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/services"
)

// ContactMailer delivers contact form messages. *services.Mailer satisfies
// it.
type ContactMailer interface {
	SendContactEmail(ctx context.Context, msg services.ContactMessage) error
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    ContactMailer
}

func newContactHandler(mailer ContactMailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
	}
}

// submitContactForm forwards a public contact form submission to the site
// owner. Delivery failures are logged with their cause but reported to the
// caller as a generic error.
func (h contactHandler) submitContactForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contactRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		msg := services.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		}

		if err := h.mailer.SendContactEmail(r.Context(), msg); err != nil {
			h.logger.Error().Err(err).Msg("failed to deliver contact message")
			h.responder.WriteError(w, errs.NewInternalError("failed to deliver message"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"status": "success"})
	}
}
