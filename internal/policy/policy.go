// Package policy holds the access decisions for write operations.
// Handlers evaluate a decision and translate a denial into a 403;
// no role or ownership comparison lives anywhere else.
package policy

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/okarhu/cat-api/internal/models"
)

type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// ModifyCat permits the cat's owner and admins.
func ModifyCat(actor models.Actor, owner primitive.ObjectID) Decision {
	if actor.Role == models.RoleAdmin {
		return Allow()
	}
	if actor.ID == owner {
		return Allow()
	}
	return Deny("only the owner or an admin may modify this cat")
}

// AdminOnly permits admins.
func AdminOnly(actor models.Actor) Decision {
	if actor.Role == models.RoleAdmin {
		return Allow()
	}
	return Deny("admin role required")
}
