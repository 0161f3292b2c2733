package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/okarhu/cat-api/internal/models"
)

// ErrNotFound is the first-class "no such document" outcome. Handlers
// map it to a 404; it is never wrapped as an internal failure.
var ErrNotFound = errors.New("not found")

// UserStore is the persistence surface for users.
type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindAll(ctx context.Context) ([]models.UserOutput, error)
	Create(ctx context.Context, user models.User) (models.User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (models.User, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

// CatStore is the persistence surface for cats.
type CatStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (models.CatWithOwner, error)
	FindAll(ctx context.Context) ([]models.CatWithOwner, error)
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.CatWithOwner, error)
	FindWithinBounds(ctx context.Context, bounds models.Polygon) ([]models.Cat, error)
	Create(ctx context.Context, cat models.Cat) (models.Cat, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, update models.CatUpdate) (models.Cat, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (models.Cat, error)
}
