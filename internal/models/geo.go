package models

// GeoJSON geometry types as stored in MongoDB. Coordinates are always
// [longitude, latitude] pairs, matching the 2dsphere index expectations.

type Point struct {
	Type        string     `bson:"type" json:"type"`
	Coordinates [2]float64 `bson:"coordinates" json:"coordinates"`
}

func NewPoint(lng, lat float64) Point {
	return Point{Type: "Point", Coordinates: [2]float64{lng, lat}}
}

// Polygon is a single-ring polygon. The ring is closed: its last point
// repeats the first.
type Polygon struct {
	Type        string         `bson:"type" json:"type"`
	Coordinates [][][2]float64 `bson:"coordinates" json:"coordinates"`
}
