package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gopalnp/personal-site-backend/errs"
)

// GalleryCategory groups gallery images. Names are unique (exact match);
// a category cannot be deleted while images still reference it.
type GalleryCategory struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	CreatedAt   time.Time          `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt,omitempty" bson:"updatedAt"`
}

func (c GalleryCategory) Validate() error {
	if c.Name == "" {
		return errs.NewValidationError("name", "Category name is required")
	}
	return nil
}

// GalleryImage references its category by id. The reference is checked at
// write time only; images store the category id as an opaque string.
type GalleryImage struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	ImageURL    string             `json:"imageUrl" bson:"imageUrl"`
	CategoryID  string             `json:"categoryId" bson:"categoryId"`
	// CategoryName is decorated on reads, never stored.
	CategoryName string    `json:"categoryName,omitempty" bson:"-"`
	CreatedAt    time.Time `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty" bson:"updatedAt"`
}

func (i GalleryImage) Validate() error {
	switch {
	case i.Title == "":
		return errs.NewMissingFieldError("title")
	case i.ImageURL == "":
		return errs.NewMissingFieldError("imageUrl")
	case i.CategoryID == "":
		return errs.NewMissingFieldError("categoryId")
	}
	return nil
}
