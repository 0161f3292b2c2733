package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/okarhu/cat-api/internal/httperr"
	"github.com/okarhu/cat-api/internal/middleware"
	"github.com/okarhu/cat-api/internal/models"
	"github.com/okarhu/cat-api/internal/services"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// parseBody decodes and validates a request body. Validation failures
// carry a comma-joined list of "<reason>: <field>" entries.
func parseBody(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return httperr.BadRequest("invalid request body")
	}
	if err := validate.Struct(v); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) *httperr.Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return httperr.BadRequest(err.Error())
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fmt.Sprintf("%s: %s", reasonFor(fe), fe.Field()))
	}
	return httperr.BadRequest(strings.Join(messages, ", "))
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "missing value"
	case "email":
		return "invalid email"
	case "min":
		return "too short"
	case "gt", "gte":
		return "invalid number"
	case "datetime":
		return "invalid date"
	case "len", "hexadecimal":
		return "invalid id"
	}
	return "invalid value"
}

func parseObjectID(c *fiber.Ctx, param string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(param))
	if err != nil {
		return primitive.NilObjectID, httperr.BadRequest("invalid id: " + param)
	}
	return id, nil
}

// storeErr maps an access-layer failure onto the error taxonomy.
func storeErr(err error, entity string) error {
	if errors.Is(err, services.ErrNotFound) {
		return httperr.NotFound(entity + " not found")
	}
	return httperr.Internal(err)
}

func currentActor(c *fiber.Ctx) (models.Actor, error) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return models.Actor{}, httperr.Unauthorized("missing authenticated user")
	}
	return actor, nil
}
