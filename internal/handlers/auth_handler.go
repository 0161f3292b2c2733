package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/okarhu/cat-api/internal/httperr"
	"github.com/okarhu/cat-api/internal/services"
)

type AuthHandler struct {
	store services.UserStore
}

func NewAuthHandler(store services.UserStore) *AuthHandler {
	return &AuthHandler{store: store}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Login authenticates a user and issues a session token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	user, err := h.store.FindByEmail(c.Context(), req.Email)
	if err != nil || !services.VerifyPassword(req.Password, user.Password) {
		return httperr.Unauthorized("invalid credentials")
	}

	token, err := services.GenerateToken(user)
	if err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"role":  user.Role,
	})
}
