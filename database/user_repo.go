package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gopalnp/personal-site-backend/errs"
	"github.com/gopalnp/personal-site-backend/models"
)

type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(coll *mongo.Collection) *UserRepo {
	return &UserRepo{coll}
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errs.NewNotFound("user")
		}
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return &user, nil
}

// Insert stores a new admin user. The unique email index backs up the
// application-level duplicate check.
func (r *UserRepo) Insert(ctx context.Context, user models.User) (string, error) {
	if user.Email == "" {
		return "", errs.NewMissingFieldError("email")
	}
	if user.PasswordHash == "" {
		return "", errs.NewMissingFieldError("password")
	}

	count, err := r.coll.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return "", errs.NewDatabaseError("check email of", "user", err)
	}
	if count > 0 {
		return "", errs.NewConflictError("a user with this email already exists")
	}

	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.Role = models.RoleAdmin
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return "", errs.NewDatabaseError("create", "user", err)
	}
	return user.ID.Hex(), nil
}
