package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

// User is an admin account. Users are created out-of-band (CREATE_ADMIN boot
// mode), never through the public API. The password hash is excluded from
// JSON serialization.
type User struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password"`
	Role         string             `json:"role" bson:"role"`
	CreatedAt    time.Time          `json:"createdAt,omitempty" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updatedAt"`
}

// Principal is the authenticated identity attached to a request context.
// A zero Principal means "no session".
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// Present reports whether any session is attached at all.
func (p Principal) Present() bool {
	return p.UserID != ""
}
