// package geocode resolves free-text place names to coordinates and back.
// It exists so the CLI and the server can accept "Trafalgar Square" as well
// as a raw latitude/longitude pair before handing off to what3words.
package geocode

type Client interface {
	Geocode(query string) (*Location, error)
	ReverseGeocode(lat, lng float64) (*Location, error)
}

type Location struct {
	Latitude    float64
	Longitude   float64
	Name        string
	Country     string
	CountryCode string
}
