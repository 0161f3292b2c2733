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

type catService struct {
	col *mongo.Collection
}

// NewCatService returns a CatStore backed by the cats collection.
func NewCatService(database *mongo.Database) CatStore {
	return &catService{col: database.Collection("cats")}
}

// ownerLookup expands the owner reference into the owner's public
// profile and strips the fields UserOutput does not carry.
func ownerLookup() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "owner",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"owner.password": 0,
			"owner.role":     0,
		}}},
	}
}

func (s *catService) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]models.CatWithOwner, error) {
	cursor, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cats := []models.CatWithOwner{}
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *catService) FindByID(ctx context.Context, id primitive.ObjectID) (models.CatWithOwner, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
	}
	pipeline = append(pipeline, ownerLookup()...)

	cats, err := s.aggregate(ctx, pipeline)
	if err != nil {
		return models.CatWithOwner{}, err
	}
	if len(cats) == 0 {
		return models.CatWithOwner{}, ErrNotFound
	}
	return cats[0], nil
}

func (s *catService) FindAll(ctx context.Context) ([]models.CatWithOwner, error) {
	return s.aggregate(ctx, ownerLookup())
}

func (s *catService) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.CatWithOwner, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"owner": owner}}},
	}
	pipeline = append(pipeline, ownerLookup()...)
	return s.aggregate(ctx, pipeline)
}

func (s *catService) FindWithinBounds(ctx context.Context, bounds models.Polygon) ([]models.Cat, error) {
	filter := bson.M{
		"location": bson.M{
			"$geoWithin": bson.M{
				"$geometry": bounds,
			},
		},
	}

	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cats := []models.Cat{}
	if err := cursor.All(ctx, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *catService) Create(ctx context.Context, cat models.Cat) (models.Cat, error) {
	cat.ID = primitive.NewObjectID()
	if _, err := s.col.InsertOne(ctx, cat); err != nil {
		return models.Cat{}, err
	}
	return cat, nil
}

func (s *catService) UpdateByID(ctx context.Context, id primitive.ObjectID, update models.CatUpdate) (models.Cat, error) {
	set := catSetDocument(update)
	if len(set) == 0 {
		var cat models.Cat
		err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&cat)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Cat{}, ErrNotFound
		}
		return cat, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var cat models.Cat
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cat{}, ErrNotFound
	}
	return cat, err
}

func (s *catService) DeleteByID(ctx context.Context, id primitive.ObjectID) (models.Cat, error) {
	var cat models.Cat
	err := s.col.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cat{}, ErrNotFound
	}
	return cat, err
}

func catSetDocument(update models.CatUpdate) bson.M {
	set := bson.M{}
	if update.CatName != nil {
		set["cat_name"] = *update.CatName
	}
	if update.Weight != nil {
		set["weight"] = *update.Weight
	}
	if update.Filename != nil {
		set["filename"] = *update.Filename
	}
	if update.Birthdate != nil {
		set["birthdate"] = *update.Birthdate
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Owner != nil {
		set["owner"] = *update.Owner
	}
	return set
}
