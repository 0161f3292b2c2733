package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/okarhu/cat-api/internal/httperr"
	"github.com/okarhu/cat-api/internal/middleware"
	"github.com/okarhu/cat-api/internal/models"
	"github.com/okarhu/cat-api/internal/policy"
	"github.com/okarhu/cat-api/internal/services"
	"github.com/okarhu/cat-api/internal/utils"
)

const birthdateLayout = "2006-01-02"

type CatHandler struct {
	store services.CatStore
}

func NewCatHandler(store services.CatStore) *CatHandler {
	return &CatHandler{store: store}
}

type createCatRequest struct {
	CatName   string  `json:"cat_name" form:"cat_name" validate:"required"`
	Weight    float64 `json:"weight" form:"weight" validate:"required,gt=0"`
	Birthdate string  `json:"birthdate" form:"birthdate" validate:"required,datetime=2006-01-02"`
	Location  string  `json:"location" form:"location"` // "lat,lng", optional
	Filename  string  `json:"filename" form:"filename"`
	Owner     string  `json:"owner" form:"owner" validate:"omitempty,len=24,hexadecimal"`
}

type updateCatRequest struct {
	CatName   *string  `json:"cat_name" form:"cat_name"`
	Weight    *float64 `json:"weight" form:"weight" validate:"omitempty,gt=0"`
	Birthdate *string  `json:"birthdate" form:"birthdate" validate:"omitempty,datetime=2006-01-02"`
	Location  *string  `json:"location" form:"location"`
	Filename  *string  `json:"filename" form:"filename"`
}

type adminUpdateCatRequest struct {
	updateCatRequest
	Owner *string `json:"owner" form:"owner" validate:"omitempty,len=24,hexadecimal"`
}

// List returns all cats with their owners expanded.
func (h *CatHandler) List(c *fiber.Ctx) error {
	cats, err := h.store.FindAll(c.Context())
	if err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(cats)
}

// Get returns one cat with its owner expanded.
func (h *CatHandler) Get(c *fiber.Ctx) error {
	id, err := parseObjectID(c, "id")
	if err != nil {
		return err
	}

	cat, err := h.store.FindByID(c.Context(), id)
	if err != nil {
		return storeErr(err, "cat")
	}
	return c.JSON(cat)
}

// GetByUser returns the authenticated actor's cats.
func (h *CatHandler) GetByUser(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	cats, err := h.store.FindByOwner(c.Context(), actor.ID)
	if err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(cats)
}

// GetByBoundingBox returns cats whose location falls within the
// rectangle given by the topRight and bottomLeft query parameters,
// each a "lat,lng" pair.
func (h *CatHandler) GetByBoundingBox(c *fiber.Ctx) error {
	topRightParam := c.Query("topRight")
	bottomLeftParam := c.Query("bottomLeft")
	if topRightParam == "" {
		return httperr.BadRequest("missing value: topRight")
	}
	if bottomLeftParam == "" {
		return httperr.BadRequest("missing value: bottomLeft")
	}

	topRight, err := utils.ParseCoordinate(topRightParam)
	if err != nil {
		return httperr.BadRequest("invalid coordinate: topRight")
	}
	bottomLeft, err := utils.ParseCoordinate(bottomLeftParam)
	if err != nil {
		return httperr.BadRequest("invalid coordinate: bottomLeft")
	}

	// A zero-area rectangle contains nothing. The geo query cannot be
	// asked: a loop without three distinct vertices is invalid GeoJSON.
	if topRight.Lat == bottomLeft.Lat || topRight.Lng == bottomLeft.Lng {
		return c.JSON([]models.Cat{})
	}

	cats, err := h.store.FindWithinBounds(c.Context(), utils.RectangleBounds(topRight, bottomLeft))
	if err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(cats)
}

// Create adds a new cat for the authenticated actor. Owner defaults to
// the actor, filename to the uploaded picture's stored name and
// location to the picture's EXIF coordinates.
func (h *CatHandler) Create(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var req createCatRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	birthdate, err := time.Parse(birthdateLayout, req.Birthdate)
	if err != nil {
		return httperr.BadRequest("invalid date: birthdate")
	}

	owner := actor.ID
	if req.Owner != "" {
		owner, err = primitive.ObjectIDFromHex(req.Owner)
		if err != nil {
			return httperr.BadRequest("invalid id: owner")
		}
	}

	filename := req.Filename
	if filename == "" {
		if uploaded, ok := middleware.UploadedFilename(c); ok {
			filename = uploaded
		}
	}

	// Location is optional: body value first, then the upload's EXIF
	// coordinates, otherwise the cat is stored without one.
	var location *models.Point
	if req.Location != "" {
		coord, err := utils.ParseCoordinate(req.Location)
		if err != nil {
			return httperr.BadRequest("invalid coordinate: location")
		}
		point := models.NewPoint(coord.Lng, coord.Lat)
		location = &point
	} else if coords, ok := middleware.UploadedCoords(c); ok {
		location = &coords
	}

	cat, err := h.store.Create(c.Context(), models.Cat{
		CatName:   req.CatName,
		Weight:    req.Weight,
		Filename:  filename,
		Birthdate: birthdate,
		Location:  location,
		Owner:     owner,
	})
	if err != nil {
		return httperr.Internal(err)
	}

	return c.JSON(models.MessageResponse{
		Message: "Cat created",
		Data:    cat,
	})
}

// Update modifies a cat. Allowed for the cat's owner and for admins;
// owner reassignment is reserved for the admin route.
func (h *CatHandler) Update(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	id, err := parseObjectID(c, "id")
	if err != nil {
		return err
	}

	existing, err := h.store.FindByID(c.Context(), id)
	if err != nil {
		return storeErr(err, "cat")
	}
	if decision := policy.ModifyCat(actor, existing.Owner.ID); !decision.Allowed {
		return httperr.Forbidden(decision.Reason)
	}

	var req updateCatRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	update, err := catUpdateFrom(req, nil)
	if err != nil {
		return err
	}

	cat, err := h.store.UpdateByID(c.Context(), id, update)
	if err != nil {
		return storeErr(err, "cat")
	}

	return c.JSON(models.MessageResponse{
		Message: "Cat updated",
		Data:    cat,
	})
}

// Delete removes a cat. Allowed for the cat's owner and for admins.
func (h *CatHandler) Delete(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	id, err := parseObjectID(c, "id")
	if err != nil {
		return err
	}

	existing, err := h.store.FindByID(c.Context(), id)
	if err != nil {
		return storeErr(err, "cat")
	}
	if decision := policy.ModifyCat(actor, existing.Owner.ID); !decision.Allowed {
		return httperr.Forbidden(decision.Reason)
	}

	cat, err := h.store.DeleteByID(c.Context(), id)
	if err != nil {
		return storeErr(err, "cat")
	}

	return c.JSON(models.MessageResponse{
		Message: "Cat deleted",
		Data:    cat,
	})
}

// UpdateAdmin modifies arbitrary cat fields, including the owner
// reference. Admin role required.
func (h *CatHandler) UpdateAdmin(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	if decision := policy.AdminOnly(actor); !decision.Allowed {
		return httperr.Forbidden(decision.Reason)
	}

	id, err := parseObjectID(c, "id")
	if err != nil {
		return err
	}

	var req adminUpdateCatRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	update, err := catUpdateFrom(req.updateCatRequest, req.Owner)
	if err != nil {
		return err
	}

	cat, err := h.store.UpdateByID(c.Context(), id, update)
	if err != nil {
		return storeErr(err, "cat")
	}

	return c.JSON(models.MessageResponse{
		Message: "Cat updated",
		Data:    cat,
	})
}

// DeleteAdmin removes any cat. Admin role required.
func (h *CatHandler) DeleteAdmin(c *fiber.Ctx) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	if decision := policy.AdminOnly(actor); !decision.Allowed {
		return httperr.Forbidden(decision.Reason)
	}

	id, err := parseObjectID(c, "id")
	if err != nil {
		return err
	}

	cat, err := h.store.DeleteByID(c.Context(), id)
	if err != nil {
		return storeErr(err, "cat")
	}

	return c.JSON(models.MessageResponse{
		Message: "Cat deleted",
		Data:    cat,
	})
}

func catUpdateFrom(req updateCatRequest, ownerHex *string) (models.CatUpdate, error) {
	update := models.CatUpdate{
		CatName:  req.CatName,
		Weight:   req.Weight,
		Filename: req.Filename,
	}

	if req.Birthdate != nil {
		birthdate, err := time.Parse(birthdateLayout, *req.Birthdate)
		if err != nil {
			return models.CatUpdate{}, httperr.BadRequest("invalid date: birthdate")
		}
		update.Birthdate = &birthdate
	}

	if req.Location != nil {
		coord, err := utils.ParseCoordinate(*req.Location)
		if err != nil {
			return models.CatUpdate{}, httperr.BadRequest("invalid coordinate: location")
		}
		point := models.NewPoint(coord.Lng, coord.Lat)
		update.Location = &point
	}

	if ownerHex != nil {
		owner, err := primitive.ObjectIDFromHex(*ownerHex)
		if err != nil {
			return models.CatUpdate{}, httperr.BadRequest("invalid id: owner")
		}
		update.Owner = &owner
	}

	return update, nil
}
