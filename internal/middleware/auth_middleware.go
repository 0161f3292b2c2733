package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/okarhu/cat-api/internal/httperr"
	"github.com/okarhu/cat-api/internal/models"
	"github.com/okarhu/cat-api/internal/services"
)

// ActorKey is the Locals key under which the authenticated actor is
// stored for downstream handlers.
const ActorKey = "actor"

// AuthMiddleware validates the bearer token and stores the actor in the
// request context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Get the Authorization header
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return httperr.Unauthorized("missing token")
	}

	// Ensure it's a Bearer token
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	if tokenString == "" {
		return httperr.Unauthorized("invalid token format")
	}

	actor, err := services.ParseToken(tokenString)
	if err != nil {
		return httperr.Unauthorized(err.Error())
	}

	c.Locals(ActorKey, actor)
	return c.Next()
}

// CurrentActor retrieves the actor stored by AuthMiddleware.
func CurrentActor(c *fiber.Ctx) (models.Actor, bool) {
	actor, ok := c.Locals(ActorKey).(models.Actor)
	return actor, ok
}
