package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gopalnp/personal-site-backend/errs"
)

// NewsArticle links out to press coverage. There is no draft concept:
// every article is public the moment it exists.
type NewsArticle struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Date      string             `json:"date" bson:"date"`
	Link      string             `json:"link" bson:"link"`
	Excerpt   string             `json:"excerpt" bson:"excerpt"`
	Image     string             `json:"image" bson:"image"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt"`
}

func (a NewsArticle) Validate() error {
	switch {
	case a.Title == "":
		return errs.NewMissingFieldError("title")
	case a.Date == "":
		return errs.NewMissingFieldError("date")
	case a.Link == "":
		return errs.NewMissingFieldError("link")
	case a.Excerpt == "":
		return errs.NewMissingFieldError("excerpt")
	case a.Image == "":
		return errs.NewMissingFieldError("image")
	}
	return nil
}
