package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor is the authenticated identity extracted from a session token.
// It carries enough profile data that token reflection needs no database
// round trip.
type Actor struct {
	ID       primitive.ObjectID
	UserName string
	Email    string
	Role     string
}

func (a Actor) Output() UserOutput {
	return UserOutput{
		ID:       a.ID,
		UserName: a.UserName,
		Email:    a.Email,
	}
}
