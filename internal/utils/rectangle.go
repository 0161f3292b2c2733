package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/okarhu/cat-api/internal/models"
)

// Coordinate is a geographic corner point as supplied in query parameters.
type Coordinate struct {
	Lat float64
	Lng float64
}

// ParseCoordinate parses a "lat,lng" query parameter into a Coordinate.
// Both components must be finite numbers; range checking is left to the
// consumer.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("expected lat,lng pair, got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid latitude %q", parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid longitude %q", parts[1])
	}

	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return Coordinate{}, fmt.Errorf("coordinate %q is not finite", s)
	}

	return Coordinate{Lat: lat, Lng: lng}, nil
}

// RectangleBounds converts a bounding box given by its top-right and
// bottom-left corners into a closed single-ring polygon. Points are
// [longitude, latitude] pairs in the order bottom-left, top-left,
// top-right, bottom-right, with the first point repeated to close the
// ring. Identical corners produce a degenerate zero-area polygon, which
// spatial queries treat as matching nothing.
func RectangleBounds(topRight, bottomLeft Coordinate) models.Polygon {
	return models.Polygon{
		Type: "Polygon",
		Coordinates: [][][2]float64{
			{
				{bottomLeft.Lng, bottomLeft.Lat},
				{bottomLeft.Lng, topRight.Lat},
				{topRight.Lng, topRight.Lat},
				{topRight.Lng, bottomLeft.Lat},
				{bottomLeft.Lng, bottomLeft.Lat},
			},
		},
	}
}
