package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CatName   string             `bson:"cat_name" json:"cat_name"`
	Weight    float64            `bson:"weight" json:"weight"`
	Filename  string             `bson:"filename" json:"filename"`
	Birthdate time.Time          `bson:"birthdate" json:"birthdate"`
	Location  *Point             `bson:"location,omitempty" json:"location,omitempty"`
	Owner     primitive.ObjectID `bson:"owner" json:"owner"`
}

// CatWithOwner is the read shape for cat lookups that expand the owner
// reference into the owner's public profile.
type CatWithOwner struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	CatName   string             `bson:"cat_name" json:"cat_name"`
	Weight    float64            `bson:"weight" json:"weight"`
	Filename  string             `bson:"filename" json:"filename"`
	Birthdate time.Time          `bson:"birthdate" json:"birthdate"`
	Location  *Point             `bson:"location,omitempty" json:"location,omitempty"`
	Owner     UserOutput         `bson:"owner" json:"owner"`
}

// CatUpdate carries a partial update; nil fields are left untouched.
// Owner is only ever set on the admin path.
type CatUpdate struct {
	CatName   *string             `bson:"cat_name,omitempty"`
	Weight    *float64            `bson:"weight,omitempty"`
	Filename  *string             `bson:"filename,omitempty"`
	Birthdate *time.Time          `bson:"birthdate,omitempty"`
	Location  *Point              `bson:"location,omitempty"`
	Owner     *primitive.ObjectID `bson:"owner,omitempty"`
}
