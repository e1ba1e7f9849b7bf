// package what3words is a client for the what3words API, which converts
// coordinates to three-word addresses and back.
//
// The geometry types in this file are the value objects used to build query
// parameters. They serialize to the comma-separated syntax the API expects,
// with floats printed in their shortest round-tripping form.
package what3words

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is a geographical point made up of a latitude and a longitude.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// String returns the coordinate as "<latitude>,<longitude>".
func (c Coordinate) String() string {
	return formatFloat(c.Latitude) + "," + formatFloat(c.Longitude)
}

// Circle is an area defined by a centerpoint and a radius in kilometers.
type Circle struct {
	Center   Coordinate
	RadiusKm float64
}

// String returns the circle as "<lat>,<lng>,<radius>".
func (c Circle) String() string {
	return c.Center.String() + "," + formatFloat(c.RadiusKm)
}

// BoundingBox is a rectangle defined by its southwestern and northeastern
// corners.
type BoundingBox struct {
	SouthWest Coordinate
	NorthEast Coordinate
}

// String returns the box as "<sw.lat>,<sw.lng>,<ne.lat>,<ne.lng>".
func (b BoundingBox) String() string {
	return b.SouthWest.String() + "," + b.NorthEast.String()
}

// Polygon is an ordered ring of coordinates. The API requires at least 3
// points and accepts at most 25.
type Polygon struct {
	Points []Coordinate
}

const maxPolygonPoints = 25

// Validate checks that the polygon is within the point count the API accepts.
func (p Polygon) Validate() error {
	if len(p.Points) < 3 {
		return fmt.Errorf("polygon needs at least 3 points, got %d", len(p.Points))
	}

	if len(p.Points) > maxPolygonPoints {
		return fmt.Errorf("polygon accepts at most %d points, got %d", maxPolygonPoints, len(p.Points))
	}

	return nil
}

// String returns every point comma-joined, with the first point repeated at
// the end to close the ring, as the API expects.
func (p Polygon) String() string {
	if len(p.Points) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, point := range p.Points {
		sb.WriteString(point.String())
		sb.WriteString(",")
	}

	sb.WriteString(p.Points[0].String())
	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
