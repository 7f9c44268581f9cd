package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gopalnp/personal-site-backend/errs"
)

// MaxTimelineImages caps the image slots on a timeline entry.
const MaxTimelineImages = 4

// TimelineItem is an entry on the about-page timeline. The integer order
// field defines a strict total order; values may be sparse, only the
// relative order matters.
type TimelineItem struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Content   string             `json:"content" bson:"content"`
	Order     int                `json:"order" bson:"order"`
	Images    []string           `json:"images" bson:"images"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt"`
}

func (t TimelineItem) Validate() error {
	switch {
	case t.Title == "":
		return errs.NewMissingFieldError("title")
	case t.Content == "":
		return errs.NewMissingFieldError("content")
	case len(t.Images) > MaxTimelineImages:
		return errs.NewValidationError("images", "at most 4 images are allowed")
	}
	return nil
}

// VisibleImages drops the empty slots the admin form leaves behind.
func (t TimelineItem) VisibleImages() []string {
	images := make([]string, 0, len(t.Images))
	for _, img := range t.Images {
		if img != "" {
			images = append(images, img)
		}
	}
	return images
}
