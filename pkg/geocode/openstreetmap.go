package geocode

import (
	"fmt"

	"github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/openstreetmap"
)

// NewOpenstreetmapClient geocodes through the public Nominatim instance,
// which needs no API key.
func NewOpenstreetmapClient() *oc {
	return &oc{geocoder: openstreetmap.Geocoder()}
}

type oc struct {
	geocoder geo.Geocoder
}

var _ Client = (*oc)(nil)

func (c *oc) Geocode(query string) (*Location, error) {
	location, err := c.geocoder.Geocode(query)
	if err != nil {
		return nil, fmt.Errorf("geocode %q: %w", query, err)
	}

	if location == nil {
		return nil, fmt.Errorf("no location found for %q", query)
	}

	address, err := c.geocoder.ReverseGeocode(location.Lat, location.Lng)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode %q: %w", query, err)
	}

	loc := Location{
		Latitude:  location.Lat,
		Longitude: location.Lng,
		Name:      query,
	}

	if address != nil {
		loc.Country = address.Country
		loc.CountryCode = address.CountryCode
	}

	return &loc, nil
}

func (c *oc) ReverseGeocode(lat, lng float64) (*Location, error) {
	address, err := c.geocoder.ReverseGeocode(lat, lng)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode %f,%f: %w", lat, lng, err)
	}

	if address == nil {
		return nil, fmt.Errorf("no address found for %f,%f", lat, lng)
	}

	return &Location{
		Latitude:    lat,
		Longitude:   lng,
		Name:        address.FormattedAddress,
		Country:     address.Country,
		CountryCode: address.CountryCode,
	}, nil
}
