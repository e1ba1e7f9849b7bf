package what3words_test

import (
	"strings"
	"testing"

	"github.com/erwinmintiens/w3w-go/pkg/what3words"
)

var (
	coordinate1 = what3words.Coordinate{Latitude: 50.12345, Longitude: -3.98765}
	coordinate2 = what3words.Coordinate{Latitude: 51.0, Longitude: -3.0}
	coordinate3 = what3words.Coordinate{Latitude: 56.22222, Longitude: 1.11122}
	coordinate4 = what3words.Coordinate{Latitude: 57.0, Longitude: 2.0}
)

func TestCoordinateString(t *testing.T) {
	testCases := []struct {
		desc  string
		coord what3words.Coordinate
		want  string
	}{
		{
			desc:  "decimals are kept as-is",
			coord: coordinate1,
			want:  "50.12345,-3.98765",
		},
		{
			desc:  "whole numbers print without a decimal point",
			coord: coordinate2,
			want:  "51,-3",
		},
		{
			desc:  "zero value",
			coord: what3words.Coordinate{},
			want:  "0,0",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			if got := tC.coord.String(); got != tC.want {
				t.Errorf("got %q, expected %q", got, tC.want)
			}
		})
	}
}

func TestCircleString(t *testing.T) {
	circle := what3words.Circle{Center: coordinate1, RadiusKm: 12.3}
	if got, want := circle.String(), "50.12345,-3.98765,12.3"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}

func TestBoundingBoxString(t *testing.T) {
	box := what3words.BoundingBox{SouthWest: coordinate1, NorthEast: coordinate2}
	if got, want := box.String(), "50.12345,-3.98765,51,-3"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}

func TestPolygonString(t *testing.T) {
	testCases := []struct {
		desc    string
		polygon what3words.Polygon
		want    string
	}{
		{
			desc:    "three points close the ring with the first point",
			polygon: what3words.Polygon{Points: []what3words.Coordinate{coordinate1, coordinate2, coordinate3}},
			want:    "50.12345,-3.98765,51,-3,56.22222,1.11122,50.12345,-3.98765",
		},
		{
			desc:    "four points",
			polygon: what3words.Polygon{Points: []what3words.Coordinate{coordinate4, coordinate3, coordinate2, coordinate1}},
			want:    "57,2,56.22222,1.11122,51,-3,50.12345,-3.98765,57,2",
		},
		{
			desc:    "no points serialize to nothing",
			polygon: what3words.Polygon{},
			want:    "",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			if got := tC.polygon.String(); got != tC.want {
				t.Errorf("got %q, expected %q", got, tC.want)
			}
		})
	}
}

func TestPolygonStringPointCount(t *testing.T) {
	polygon := what3words.Polygon{Points: []what3words.Coordinate{coordinate1, coordinate2, coordinate3, coordinate4}}

	// N points serialize to N+1 comma-joined points, last equal to first.
	parts := strings.Split(polygon.String(), ",")
	if got, want := len(parts), (len(polygon.Points)+1)*2; got != want {
		t.Fatalf("got %d comma-separated values, expected %d", got, want)
	}

	first := strings.Join(parts[:2], ",")
	last := strings.Join(parts[len(parts)-2:], ",")
	if first != last {
		t.Errorf("ring is not closed: starts with %q, ends with %q", first, last)
	}
}

func TestPolygonValidate(t *testing.T) {
	testCases := []struct {
		desc    string
		points  int
		wantErr bool
	}{
		{desc: "two points are rejected", points: 2, wantErr: true},
		{desc: "three points are accepted", points: 3},
		{desc: "twenty-five points are accepted", points: 25},
		{desc: "twenty-six points are rejected", points: 26, wantErr: true},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			polygon := what3words.Polygon{Points: make([]what3words.Coordinate, tC.points)}

			err := polygon.Validate()
			if tC.wantErr && err == nil {
				t.Error("expected an error, got none")
			}

			if !tC.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}
