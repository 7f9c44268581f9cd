package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/models"
)

type TimelineRepo struct {
	coll *mongo.Collection
}

func NewTimelineRepo(coll *mongo.Collection) *TimelineRepo {
	return &TimelineRepo{coll}
}

// List returns all timeline items sorted by order ascending. The _id tie
// break keeps items with equal order values in a stable insertion order.
func (r *TimelineRepo) List(ctx context.Context) ([]models.TimelineItem, error) {
	sort := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, sort)
	if err != nil {
		return nil, errs.NewDatabaseError("list", "timeline items", err)
	}

	items := []models.TimelineItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, errs.NewDatabaseError("decode", "timeline items", err)
	}
	return items, nil
}

func (r *TimelineRepo) FindByID(ctx context.Context, id string) (*models.TimelineItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errs.NewInvalidID("timeline item")
	}

	var item models.TimelineItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFound("timeline item")
		}
		return nil, errs.NewDatabaseError("find", "timeline item", err)
	}
	return &item, nil
}

// Insert validates and stores a new item. When no order is supplied the item
// goes to the end of the timeline (max existing order + 1); order values are
// never compacted afterwards.
func (r *TimelineRepo) Insert(ctx context.Context, item models.TimelineItem) (string, error) {
	if err := item.Validate(); err != nil {
		return "", err
	}

	if item.Order == 0 {
		next, err := r.nextOrder(ctx)
		if err != nil {
			return "", err
		}
		item.Order = next
	}
	if item.Images == nil {
		item.Images = []string{}
	}

	now := time.Now().UTC()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return "", errs.NewDatabaseError("create", "timeline item", err)
	}
	return item.ID.Hex(), nil
}

func (r *TimelineRepo) Replace(ctx context.Context, id string, item models.TimelineItem) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("timeline item")
	}

	if err := item.Validate(); err != nil {
		return err
	}
	if item.Images == nil {
		item.Images = []string{}
	}

	set := bson.M{
		"title":     item.Title,
		"content":   item.Content,
		"images":    item.Images,
		"updatedAt": time.Now().UTC(),
	}
	// An edit that omits order decodes as zero; the stored position must
	// survive it, or two plain content edits would collide at order 0.
	if item.Order != 0 {
		set["order"] = item.Order
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return errs.NewDatabaseError("update", "timeline item", err)
	}
	if result.MatchedCount == 0 {
		return errs.NewNotFound("timeline item")
	}
	return nil
}

func (r *TimelineRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.NewInvalidID("timeline item")
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return errs.NewDatabaseError("delete", "timeline item", err)
	}
	if result.DeletedCount == 0 {
		return errs.NewNotFound("timeline item")
	}
	return nil
}

// SwapOrders exchanges the order values of two items inside a single
// transaction, so a failure mid-swap can never leave one item updated and
// the other untouched.
func (r *TimelineRepo) SwapOrders(ctx context.Context, a, b models.TimelineItem) error {
	session, err := r.coll.Database().Client().StartSession()
	if err != nil {
		return errs.NewDatabaseError("start session for", "timeline reorder", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now().UTC()
		if err := r.setOrder(sc, a.ID, b.Order, now); err != nil {
			return nil, err
		}
		if err := r.setOrder(sc, b.ID, a.Order, now); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		var apiErr *errs.ApiErr
		if errors.As(err, &apiErr) {
			return apiErr
		}
		return errs.NewDatabaseError("reorder", "timeline items", err)
	}
	return nil
}

func (r *TimelineRepo) setOrder(ctx context.Context, id primitive.ObjectID, order int, now time.Time) error {
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"order": order, "updatedAt": now}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errs.NewNotFound("timeline item")
	}
	return nil
}

func (r *TimelineRepo) nextOrder(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "order", Value: -1}})

	var last models.TimelineItem
	err := r.coll.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, errs.NewDatabaseError("find last", "timeline item", err)
	}
	return last.Order + 1, nil
}
