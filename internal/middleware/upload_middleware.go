package middleware

import (
	"bytes"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/okarhu/cat-api/internal/httperr"
	"github.com/okarhu/cat-api/internal/models"
	"github.com/okarhu/cat-api/internal/storage"
)

// Locals keys populated by UploadMiddleware for the cat creation handler.
const (
	UploadFilenameKey = "upload_filename"
	UploadCoordsKey   = "upload_coords"
)

// UploadMiddleware stores an uploaded "cat" picture in object storage
// and extracts GPS coordinates from its EXIF data. The stored object
// name and the coordinates become the defaults for the created cat's
// filename and location. Requests without a file pass through.
func UploadMiddleware(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("cat")
	if err != nil {
		return c.Next()
	}

	file, err := fileHeader.Open()
	if err != nil {
		return httperr.BadRequest("failed to open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return httperr.BadRequest("failed to read uploaded file")
	}

	objectName := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	contentType := http.DetectContentType(data)

	stored, err := storage.PutPicture(c.Context(), objectName, data, contentType)
	if err != nil {
		return httperr.Internal(err)
	}
	c.Locals(UploadFilenameKey, stored)

	// GPS coordinates are optional; pictures without EXIF pass through.
	if x, err := exif.Decode(bytes.NewReader(data)); err == nil {
		if lat, lng, err := x.LatLong(); err == nil {
			c.Locals(UploadCoordsKey, models.NewPoint(lng, lat))
		}
	}

	return c.Next()
}

// UploadedFilename retrieves the stored object name, if a file was uploaded.
func UploadedFilename(c *fiber.Ctx) (string, bool) {
	name, ok := c.Locals(UploadFilenameKey).(string)
	return name, ok
}

// UploadedCoords retrieves the EXIF-derived location, if one was found.
func UploadedCoords(c *fiber.Ctx) (models.Point, bool) {
	point, ok := c.Locals(UploadCoordsKey).(models.Point)
	return point, ok
}
