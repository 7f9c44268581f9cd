package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type revalidateHandler struct {
	responder   Responder
	logger      zerolog.Logger
	revalidator pageRevalidator
}

func newRevalidateHandler(revalidator pageRevalidator) revalidateHandler {
	logger := log.With().Str("handlerName", "revalidateHandler").Logger()

	return revalidateHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		revalidator: revalidator,
	}
}

// revalidateSite drops every cached page synchronously. Mounted behind
// requireAdmin; the per-resource handlers already revalidate on write, this
// exists for out-of-band content fixes.
// @Summary Revalidate all cached pages
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/revalidate [post]
func (h revalidateHandler) revalidateSite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.revalidator.FlushSite(r.Context()); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"revalidated": true,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
