package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopalnp/personal-site-backend/models"
	"github.com/gopalnp/personal-site-backend/services"
)

// TimelineItemStore is the repository surface the timeline handlers use.
// *database.TimelineRepo satisfies it.
type TimelineItemStore interface {
	List(ctx context.Context) ([]models.TimelineItem, error)
	FindByID(ctx context.Context, id string) (*models.TimelineItem, error)
	Insert(ctx context.Context, item models.TimelineItem) (string, error)
	Replace(ctx context.Context, id string, item models.TimelineItem) error
	Delete(ctx context.Context, id string) error
}

// TimelineMover reorders items. *services.Orderer satisfies it.
type TimelineMover interface {
	MoveUp(ctx context.Context, id string) (bool, error)
	MoveDown(ctx context.Context, id string) (bool, error)
}

type timelineHandler struct {
	responder   Responder
	logger      zerolog.Logger
	timeline    TimelineItemStore
	mover       TimelineMover
	revalidator pageRevalidator
}

func newTimelineHandler(timeline TimelineItemStore, mover TimelineMover, revalidator pageRevalidator) timelineHandler {
	logger := log.With().Str("handlerName", "timelineHandler").Logger()

	return timelineHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		timeline:    timeline,
		mover:       mover,
		revalidator: revalidator,
	}
}

// getAllTimelineItems lists timeline items in display order.
// @Summary List timeline items
// @Tags Timeline
// @Produce json
// @Success 200 {array} models.TimelineItem
// @Failure 500 {object} ErrorResponse
// @Router /api/timeline [get]
func (h timelineHandler) getAllTimelineItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.timeline.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		// Empty image slots left by the admin form are dropped on read.
		for i := range items {
			items[i].Images = items[i].VisibleImages()
		}
		h.responder.WriteJSON(w, items)
	}
}

func (h timelineHandler) getTimelineItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := h.timeline.FindByID(r.Context(), chi.URLParam(r, "timelineItemID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		item.Images = item.VisibleImages()
		h.responder.WriteJSON(w, item)
	}
}

func (h timelineHandler) createTimelineItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item models.TimelineItem
		if err := decodeJSON(r, &item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		id, err := h.timeline.Insert(r.Context(), item)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.refreshTimelinePages(r.Context())
		h.responder.WriteStatusJSON(w, http.StatusCreated, map[string]string{"id": id})
	}
}

func (h timelineHandler) updateTimelineItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "timelineItemID")

		var item models.TimelineItem
		if err := decodeJSON(r, &item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.timeline.Replace(r.Context(), id, item); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.refreshTimelinePages(r.Context())
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "timeline item updated successfully",
		})
	}
}

func (h timelineHandler) deleteTimelineItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.timeline.Delete(r.Context(), chi.URLParam(r, "timelineItemID")); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.refreshTimelinePages(r.Context())
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "timeline item deleted successfully",
		})
	}
}

// moveTimelineItem swaps the item one position up or down. Moving the first
// item up or the last item down is a no-op, reported as moved=false.
// @Summary Move timeline item
// @Tags Timeline
// @Accept json
// @Produce json
// @Param timelineItemID path string true "Timeline item ID"
// @Param move body moveRequest true "Direction, up or down"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/timeline/{timelineItemID}/move [post]
func (h timelineHandler) moveTimelineItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "timelineItemID")

		var req moveRequest
		if err := decodeAndValidate(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var moved bool
		var err error
		if req.Direction == "up" {
			moved, err = h.mover.MoveUp(r.Context(), id)
		} else {
			moved, err = h.mover.MoveDown(r.Context(), id)
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if moved {
			h.refreshTimelinePages(r.Context())
		}
		h.responder.WriteJSON(w, map[string]bool{"moved": moved})
	}
}

func (h timelineHandler) refreshTimelinePages(ctx context.Context) {
	if err := h.revalidator.InvalidatePaths(ctx, services.TimelinePaths()...); err != nil {
		h.logger.Error().Err(err).Msg("failed to revalidate timeline pages")
	}
}
