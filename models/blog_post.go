package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gopalnp/personal-site-backend/errs"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// BlogPost is a post in the blog collection. Posts carry a draft/published
// status; drafts are only servable to authenticated callers.
type BlogPost struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Date      string             `json:"date" bson:"date"`
	Content   string             `json:"content" bson:"content"`
	Image     string             `json:"image" bson:"image"`
	Author    string             `json:"author" bson:"author"`
	Tags      []string           `json:"tags" bson:"tags"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt,omitempty" bson:"updatedAt"`
}

// Published reports whether the post is visible to anonymous visitors.
func (p BlogPost) Published() bool {
	return p.Status == StatusPublished
}

// Validate enforces the publish-gating rules: a draft needs only a title,
// a published post needs every content field filled in.
func (p BlogPost) Validate() error {
	if p.Status != StatusDraft && p.Status != StatusPublished {
		return errs.NewValidationError("status", "status must be draft or published")
	}

	if p.Status == StatusDraft {
		if p.Title == "" {
			return errs.NewValidationError("title", "Title is required even for drafts")
		}
		return nil
	}

	switch {
	case p.Title == "":
		return errs.NewMissingFieldError("title")
	case p.Date == "":
		return errs.NewMissingFieldError("date")
	case p.Content == "":
		return errs.NewMissingFieldError("content")
	case p.Image == "":
		return errs.NewMissingFieldError("image")
	case p.Author == "":
		return errs.NewMissingFieldError("author")
	}

	return nil
}
