package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gopalnp/personal-site-backend/errs"
)

// Video is an embedded or linked video entry.
type Video struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Description  string             `json:"description" bson:"description"`
	Href         string             `json:"href" bson:"href"`
	ThumbnailURL string             `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	CreatedAt    time.Time          `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updatedAt"`
}

func (v Video) Validate() error {
	switch {
	case v.Title == "":
		return errs.NewMissingFieldError("title")
	case v.Description == "":
		return errs.NewMissingFieldError("description")
	case v.Href == "":
		return errs.NewMissingFieldError("href")
	}
	return nil
}
