package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/okarhu/cat-api/internal/httperr"
	"github.com/okarhu/cat-api/internal/models"
	"github.com/okarhu/cat-api/internal/services"
)

type UserHandler struct {
	store services.UserStore
}

func NewUserHandler(store services.UserStore) *UserHandler {
	return &UserHandler{store: store}
}

type createUserRequest struct {
	UserName string `json:"user_name" form:"user_name" validate:"required,min=3"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=5"`
	Role     string `json:"role" form:"role" validate:"omitempty,oneof=user admin"`
}

type updateUserRequest struct {
	UserName *string `json:"user_name" form:"user_name" validate:"omitempty,min=3"`
	Email    *string `json:"email" form:"email" validate:"omitempty,email"`
	Password *string `json:"password" form:"password" validate:"omitempty,min=5"`
}

// List returns all users as public profiles.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.store.FindAll(c.Context())
	if err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(users)
}

// Get returns one user's public profile.
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.store.FindByID(c.Context(), id)
	if err != nil {
		return storeErr(err, "user")
	}
	return c.JSON(user.Output())
}

// Create registers a new user. The password is hashed before it is
// persisted and the response carries only the public profile.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if _, err := h.store.FindByEmail(c.Context(), req.Email); err == nil {
		return httperr.BadRequest("email already in use")
	} else if !errors.Is(err, services.ErrNotFound) {
		return httperr.Internal(err)
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		return httperr.Internal(err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user, err := h.store.Create(c.Context(), models.User{
		UserName: req.UserName,
		Email:    req.Email,
		Role:     role,
		Password: hash,
	})
	if err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(models.MessageResponse{
		Message: "User created",
		Data:    user.Output(),
	})
}

// UpdateCurrent updates the authenticated user's own record.
func (h *UserHandler) UpdateCurrent(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	update := models.UserUpdate{
		UserName: req.UserName,
		Email:    req.Email,
	}
	if req.Password != nil {
		hash, err := services.HashPassword(*req.Password)
		if err != nil {
			return httperr.Internal(err)
		}
		update.Password = &hash
	}

	user, err := h.store.UpdateByID(c.Context(), actor.ID, update)
	if err != nil {
		return storeErr(err, "user")
	}

	return c.JSON(models.MessageResponse{
		Message: "User updated",
		Data:    user,
	})
}

// DeleteCurrent deletes the authenticated user's own record.
func (h *UserHandler) DeleteCurrent(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	user, err := h.store.DeleteByID(c.Context(), actor.ID)
	if err != nil {
		return storeErr(err, "user")
	}

	return c.JSON(models.MessageResponse{
		Message: "User deleted",
		Data:    user.Output(),
	})
}

// CheckToken reflects the authenticated actor's public profile back
// from the session token without touching the database.
func (h *UserHandler) CheckToken(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	return c.JSON(actor.Output())
}
