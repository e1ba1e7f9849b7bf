package what3words

// Typed mirrors of the upstream JSON responses.

type Square struct {
	SouthWest LatLng `json:"southwest"`
	NorthEast LatLng `json:"northeast"`
}

// LatLng is how the API spells coordinates in response bodies. It is kept
// separate from Coordinate because the JSON field is "lng", not "longitude".
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ConvertResponse is the body of both convert-to-3wa and
// convert-to-coordinates.
type ConvertResponse struct {
	Country      string  `json:"country"`
	Square       *Square `json:"square"`
	NearestPlace string  `json:"nearestPlace"`
	Coordinates  *LatLng `json:"coordinates"`
	Words        string  `json:"words"`
	Language     string  `json:"language"`
	Locale       string  `json:"locale"`
	Map          string  `json:"map"`
}

type Suggestion struct {
	Country           string  `json:"country"`
	NearestPlace      string  `json:"nearestPlace"`
	Words             string  `json:"words"`
	DistanceToFocusKm float64 `json:"distanceToFocusKm"`
	Rank              int     `json:"rank"`
	Language          string  `json:"language"`
	Locale            string  `json:"locale"`
}

type AutosuggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Line is one segment of the what3words grid within a bounding box.
type Line struct {
	Start LatLng `json:"start"`
	End   LatLng `json:"end"`
}

type GridSectionResponse struct {
	Lines []Line `json:"lines"`
}

type Language struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	NativeName string   `json:"nativeName"`
	Locales    []Locale `json:"locales"`
}

type Locale struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
}

type LanguagesResponse struct {
	Languages []Language `json:"languages"`
}
