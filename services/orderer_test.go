package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/models"
)

type fakeTimelineStore struct {
	items []models.TimelineItem
	swaps [][2]string
}

func (f *fakeTimelineStore) List(_ context.Context) ([]models.TimelineItem, error) {
	return f.items, nil
}

func (f *fakeTimelineStore) SwapOrders(_ context.Context, a, b models.TimelineItem) error {
	f.swaps = append(f.swaps, [2]string{a.ID.Hex(), b.ID.Hex()})
	for i := range f.items {
		switch f.items[i].ID {
		case a.ID:
			f.items[i].Order = b.Order
		case b.ID:
			f.items[i].Order = a.Order
		}
	}
	return nil
}

func newTimelineFixture() (*fakeTimelineStore, []models.TimelineItem) {
	items := []models.TimelineItem{
		{ID: primitive.NewObjectID(), Title: "A", Content: "a", Order: 1},
		{ID: primitive.NewObjectID(), Title: "B", Content: "b", Order: 2},
		{ID: primitive.NewObjectID(), Title: "C", Content: "c", Order: 3},
	}
	return &fakeTimelineStore{items: append([]models.TimelineItem(nil), items...)}, items
}

func TestOrdererMoveUp(t *testing.T) {
	store, items := newTimelineFixture()
	orderer := NewOrderer(store)

	moved, err := orderer.MoveUp(context.Background(), items[2].ID.Hex())
	require.NoError(t, err)
	assert.True(t, moved)

	// C swapped with B: order is now A, C, B.
	require.Len(t, store.swaps, 1)
	assert.Equal(t, items[2].ID.Hex(), store.swaps[0][0])
	assert.Equal(t, items[1].ID.Hex(), store.swaps[0][1])
	assert.Equal(t, 2, store.items[2].Order)
	assert.Equal(t, 3, store.items[1].Order)
}

func TestOrdererMoveUpAtTop(t *testing.T) {
	store, items := newTimelineFixture()
	orderer := NewOrderer(store)

	moved, err := orderer.MoveUp(context.Background(), items[0].ID.Hex())
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Empty(t, store.swaps)
}

func TestOrdererMoveDown(t *testing.T) {
	store, items := newTimelineFixture()
	orderer := NewOrderer(store)

	moved, err := orderer.MoveDown(context.Background(), items[0].ID.Hex())
	require.NoError(t, err)
	assert.True(t, moved)

	require.Len(t, store.swaps, 1)
	assert.Equal(t, items[0].ID.Hex(), store.swaps[0][0])
	assert.Equal(t, items[1].ID.Hex(), store.swaps[0][1])
}

func TestOrdererMoveDownAtBottom(t *testing.T) {
	store, items := newTimelineFixture()
	orderer := NewOrderer(store)

	moved, err := orderer.MoveDown(context.Background(), items[2].ID.Hex())
	require.NoError(t, err)
	assert.False(t, moved)
	assert.Empty(t, store.swaps)
}

func TestOrdererUnknownItem(t *testing.T) {
	store, _ := newTimelineFixture()
	orderer := NewOrderer(store)

	_, err := orderer.MoveUp(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, errs.IsNotFound(err))

	_, err = orderer.MoveDown(context.Background(), primitive.NewObjectID().Hex())
	assert.True(t, errs.IsNotFound(err))
}

// Two consecutive moves of distinct items never interleave into a lost
// update: the second move sees the order the first one produced.
func TestOrdererSequentialMoves(t *testing.T) {
	store, items := newTimelineFixture()
	orderer := NewOrderer(store)

	_, err := orderer.MoveUp(context.Background(), items[2].ID.Hex())
	require.NoError(t, err)
	_, err = orderer.MoveUp(context.Background(), items[2].ID.Hex())
	require.NoError(t, err)

	// C moved twice: now first.
	assert.Equal(t, 1, store.items[2].Order)
	assert.Equal(t, 2, store.items[0].Order)
	assert.Equal(t, 3, store.items[1].Order)
}
