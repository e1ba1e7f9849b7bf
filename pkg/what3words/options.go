package what3words

import (
	"net/url"
	"strconv"
	"strings"
)

// Options bags for the optional query parameters of each endpoint. The zero
// value of every field means "omit from the query string".

type ConvertTo3WAOptions struct {
	Language string
	Format   string
	Locale   string
}

func (o ConvertTo3WAOptions) encode() string {
	var q queryBuilder
	q.add("language", o.Language)
	q.add("format", o.Format)
	q.add("locale", o.Locale)
	return q.String()
}

type ConvertToCoordinatesOptions struct {
	Format string
	Locale string
}

func (o ConvertToCoordinatesOptions) encode() string {
	var q queryBuilder
	q.add("format", o.Format)
	q.add("locale", o.Locale)
	return q.String()
}

type AutosuggestOptions struct {
	Focus             *Coordinate
	ClipToCircle      *Circle
	ClipToCountry     string
	ClipToBoundingBox *BoundingBox
	ClipToPolygon     *Polygon
	Language          string
	PreferLand        *bool
	Locale            string
	NResults          int
	NFocusResults     int
	InputType         string
}

func (o AutosuggestOptions) encode() string {
	var q queryBuilder
	if o.Focus != nil {
		q.addRaw("focus", o.Focus.String())
	}

	if o.ClipToCircle != nil {
		q.addRaw("clip-to-circle", o.ClipToCircle.String())
	}

	q.add("clip-to-country", o.ClipToCountry)

	if o.ClipToBoundingBox != nil {
		q.addRaw("clip-to-bounding-box", o.ClipToBoundingBox.String())
	}

	if o.ClipToPolygon != nil {
		q.addRaw("clip-to-polygon", o.ClipToPolygon.String())
	}

	q.add("language", o.Language)

	if o.PreferLand != nil {
		q.addRaw("prefer-land", strconv.FormatBool(*o.PreferLand))
	}

	q.add("locale", o.Locale)

	if o.NResults > 0 {
		q.addRaw("n-results", strconv.Itoa(o.NResults))
	}

	if o.NFocusResults > 0 {
		q.addRaw("n-focus-results", strconv.Itoa(o.NFocusResults))
	}

	q.add("input-type", o.InputType)
	return q.String()
}

type GridSectionOptions struct {
	Format string
}

func (o GridSectionOptions) encode() string {
	var q queryBuilder
	q.add("format", o.Format)
	return q.String()
}

// queryBuilder appends "&key=value" pairs in insertion order. The API
// documents its parameters in a fixed order and we keep to it, so url.Values
// with its sorted encoding is out.
type queryBuilder struct {
	sb strings.Builder
}

// add appends the parameter with its value escaped, skipping empty values.
func (q *queryBuilder) add(key, value string) {
	if value == "" {
		return
	}

	q.addRaw(key, url.QueryEscape(value))
}

// addRaw appends the parameter without escaping. Geometry serializations are
// only digits, commas and minus signs, and escaping the commas would make
// logged URLs unreadable.
func (q *queryBuilder) addRaw(key, value string) {
	q.sb.WriteString("&")
	q.sb.WriteString(key)
	q.sb.WriteString("=")
	q.sb.WriteString(value)
}

func (q *queryBuilder) String() string {
	return q.sb.String()
}
