package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/models"
)

// TimelineStore is the slice of the timeline repository the orderer needs.
// *database.TimelineRepo satisfies it.
type TimelineStore interface {
	List(ctx context.Context) ([]models.TimelineItem, error)
	SwapOrders(ctx context.Context, a, b models.TimelineItem) error
}

// Orderer maintains the strict total order over timeline items. Moves swap
// the order values of the item and its neighbor; order values stay sparse,
// only relative order matters.
type Orderer struct {
	store  TimelineStore
	logger zerolog.Logger
}

func NewOrderer(store TimelineStore) *Orderer {
	return &Orderer{
		store:  store,
		logger: log.With().Str("service", "timelineOrderer").Logger(),
	}
}

// MoveUp exchanges the item with its predecessor. Returns false (and no
// error) when the item is already first.
func (o *Orderer) MoveUp(ctx context.Context, id string) (bool, error) {
	items, idx, err := o.locate(ctx, id)
	if err != nil {
		return false, err
	}
	if idx == 0 {
		return false, nil
	}
	if err := o.store.SwapOrders(ctx, items[idx], items[idx-1]); err != nil {
		return false, err
	}
	return true, nil
}

// MoveDown exchanges the item with its successor. Returns false when the
// item is already last.
func (o *Orderer) MoveDown(ctx context.Context, id string) (bool, error) {
	items, idx, err := o.locate(ctx, id)
	if err != nil {
		return false, err
	}
	if idx == len(items)-1 {
		return false, nil
	}
	if err := o.store.SwapOrders(ctx, items[idx], items[idx+1]); err != nil {
		return false, err
	}
	return true, nil
}

func (o *Orderer) locate(ctx context.Context, id string) ([]models.TimelineItem, int, error) {
	items, err := o.store.List(ctx)
	if err != nil {
		return nil, 0, err
	}
	for i, item := range items {
		if item.ID.Hex() == id {
			return items, i, nil
		}
	}
	return nil, 0, errs.NewNotFound("timeline item")
}
