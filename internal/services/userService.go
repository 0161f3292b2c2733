package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/okarhu/cat-api/internal/models"
)

type userService struct {
	col *mongo.Collection
}

// NewUserService returns a UserStore backed by the users collection.
func NewUserService(database *mongo.Database) UserStore {
	return &userService{col: database.Collection("users")}
}

func (s *userService) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *userService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *userService) FindAll(ctx context.Context) ([]models.UserOutput, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.UserOutput{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *userService) Create(ctx context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *userService) UpdateByID(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (models.User, error) {
	set := userSetDocument(update)
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func (s *userService) DeleteByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var user models.User
	err := s.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

func userSetDocument(update models.UserUpdate) bson.M {
	set := bson.M{}
	if update.UserName != nil {
		set["user_name"] = *update.UserName
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Password != nil {
		set["password"] = *update.Password
	}
	return set
}
