package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/okarhu/cat-api/internal/models"
	"github.com/okarhu/cat-api/internal/services"
)

// In-memory stores standing in for the Mongo-backed services.

type fakeUserStore struct {
	users map[primitive.ObjectID]models.User
	// When set, FindByEmail fails with this error.
	findByEmailErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]models.User)}
}

func (s *fakeUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return models.User{}, services.ErrNotFound
	}
	return user, nil
}

func (s *fakeUserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if s.findByEmailErr != nil {
		return models.User{}, s.findByEmailErr
	}
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, services.ErrNotFound
}

func (s *fakeUserStore) FindAll(ctx context.Context) ([]models.UserOutput, error) {
	out := []models.UserOutput{}
	for _, user := range s.users {
		out = append(out, user.Output())
	}
	return out, nil
}

func (s *fakeUserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	user.ID = primitive.NewObjectID()
	s.users[user.ID] = user
	return user, nil
}

func (s *fakeUserStore) UpdateByID(ctx context.Context, id primitive.ObjectID, update models.UserUpdate) (models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return models.User{}, services.ErrNotFound
	}
	if update.UserName != nil {
		user.UserName = *update.UserName
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		user.Password = *update.Password
	}
	s.users[id] = user
	return user, nil
}

func (s *fakeUserStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return models.User{}, services.ErrNotFound
	}
	delete(s.users, id)
	return user, nil
}

type fakeCatStore struct {
	cats       map[primitive.ObjectID]models.Cat
	lastBounds models.Polygon
}

func newFakeCatStore() *fakeCatStore {
	return &fakeCatStore{cats: make(map[primitive.ObjectID]models.Cat)}
}

func (s *fakeCatStore) withOwner(cat models.Cat) models.CatWithOwner {
	return models.CatWithOwner{
		ID:        cat.ID,
		CatName:   cat.CatName,
		Weight:    cat.Weight,
		Filename:  cat.Filename,
		Birthdate: cat.Birthdate,
		Location:  cat.Location,
		Owner:     models.UserOutput{ID: cat.Owner},
	}
}

func (s *fakeCatStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.CatWithOwner, error) {
	cat, ok := s.cats[id]
	if !ok {
		return models.CatWithOwner{}, services.ErrNotFound
	}
	return s.withOwner(cat), nil
}

func (s *fakeCatStore) FindAll(ctx context.Context) ([]models.CatWithOwner, error) {
	out := []models.CatWithOwner{}
	for _, cat := range s.cats {
		out = append(out, s.withOwner(cat))
	}
	return out, nil
}

func (s *fakeCatStore) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.CatWithOwner, error) {
	out := []models.CatWithOwner{}
	for _, cat := range s.cats {
		if cat.Owner == owner {
			out = append(out, s.withOwner(cat))
		}
	}
	return out, nil
}

// FindWithinBounds filters with plain rectangle containment, reading
// the rectangle back from the ring's bottom-left and top-right corners.
func (s *fakeCatStore) FindWithinBounds(ctx context.Context, bounds models.Polygon) ([]models.Cat, error) {
	s.lastBounds = bounds
	ring := bounds.Coordinates[0]
	minLng, minLat := ring[0][0], ring[0][1]
	maxLng, maxLat := ring[2][0], ring[2][1]

	out := []models.Cat{}
	for _, cat := range s.cats {
		if cat.Location == nil {
			continue
		}
		lng, lat := cat.Location.Coordinates[0], cat.Location.Coordinates[1]
		if lng >= minLng && lng <= maxLng && lat >= minLat && lat <= maxLat {
			out = append(out, cat)
		}
	}
	return out, nil
}

func (s *fakeCatStore) Create(ctx context.Context, cat models.Cat) (models.Cat, error) {
	cat.ID = primitive.NewObjectID()
	s.cats[cat.ID] = cat
	return cat, nil
}

func (s *fakeCatStore) UpdateByID(ctx context.Context, id primitive.ObjectID, update models.CatUpdate) (models.Cat, error) {
	cat, ok := s.cats[id]
	if !ok {
		return models.Cat{}, services.ErrNotFound
	}
	if update.CatName != nil {
		cat.CatName = *update.CatName
	}
	if update.Weight != nil {
		cat.Weight = *update.Weight
	}
	if update.Filename != nil {
		cat.Filename = *update.Filename
	}
	if update.Birthdate != nil {
		cat.Birthdate = *update.Birthdate
	}
	if update.Location != nil {
		cat.Location = update.Location
	}
	if update.Owner != nil {
		cat.Owner = *update.Owner
	}
	s.cats[id] = cat
	return cat, nil
}

func (s *fakeCatStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (models.Cat, error) {
	cat, ok := s.cats[id]
	if !ok {
		return models.Cat{}, services.ErrNotFound
	}
	delete(s.cats, id)
	return cat, nil
}
