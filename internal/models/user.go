package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserName string             `bson:"user_name" json:"user_name"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role" json:"role,omitempty"`
	Password string             `bson:"password,omitempty" json:"-"`
}

// UserOutput is the public shape of a user. Every read path that returns
// user data serializes through it, so neither password nor role can leak.
type UserOutput struct {
	ID       primitive.ObjectID `bson:"_id" json:"_id"`
	UserName string             `bson:"user_name" json:"user_name"`
	Email    string             `bson:"email" json:"email"`
}

// Output strips a user down to its public fields.
func (u User) Output() UserOutput {
	return UserOutput{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
	}
}

// UserUpdate carries a self-service partial update; nil fields are left
// untouched. Role is deliberately absent: no user management surface
// exists that changes roles after creation.
type UserUpdate struct {
	UserName *string `bson:"user_name,omitempty"`
	Email    *string `bson:"email,omitempty"`
	Password *string `bson:"password,omitempty"`
}

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
