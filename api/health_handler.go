package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopalnp/personal-site-backend/cache"
	"github.com/gopalnp/personal-site-backend/database"
)

type healthHandler struct {
	responder   Responder
	logger      zerolog.Logger
	db          database.Database
	redis       *cache.Client
	startupTime time.Time
}

func newHealthHandler(db database.Database, redis *cache.Client, startupTime time.Time) healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		db:          db,
		redis:       redis,
		startupTime: startupTime,
	}
}

// healthCheck pings the database and cache and reports per-dependency
// status. Responds 503 when any dependency is down.
func (h healthHandler) healthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{
			"database": "ok",
			"cache":    "ok",
		}
		healthy := true

		if err := h.db.Ping(r.Context()); err != nil {
			h.logger.Error().Err(err).Msg("database health check failed")
			status["database"] = "down"
			healthy = false
		}

		if h.redis != nil {
			if err := h.redis.HealthCheck(r.Context()); err != nil {
				h.logger.Error().Err(err).Msg("cache health check failed")
				status["cache"] = "down"
				healthy = false
			}
		} else {
			status["cache"] = "disabled"
		}

		response := map[string]any{
			"status":       status,
			"uptime":       time.Since(h.startupTime).Round(time.Second).String(),
			"startup_time": h.startupTime.UTC().Format(time.RFC3339),
		}

		if !healthy {
			h.responder.WriteStatusJSON(w, http.StatusServiceUnavailable, response)
			return
		}
		h.responder.WriteJSON(w, response)
	}
}
