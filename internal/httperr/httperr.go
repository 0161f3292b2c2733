package httperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is the single error type that crosses the handler boundary.
// Handlers convert every failure into one of the constructors below;
// the Fiber error handler renders it as JSON.
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func BadRequest(message string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Message: message}
}

// Forbidden is 403. The source this API descends from reused 404 for
// authorization failures; that conflation is not kept.
func Forbidden(message string) *Error {
	return &Error{Status: fiber.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Message: message}
}

func Internal(err error) *Error {
	return &Error{Status: fiber.StatusInternalServerError, Message: err.Error()}
}

// Handler is the app-wide Fiber error handler. Anything that is not
// already an *Error is treated as internal.
func Handler(c *fiber.Ctx, err error) error {
	var e *Error
	if !errors.As(err, &e) {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			e = &Error{Status: fe.Code, Message: fe.Message}
		} else {
			e = Internal(err)
		}
	}
	return c.Status(e.Status).JSON(e)
}
