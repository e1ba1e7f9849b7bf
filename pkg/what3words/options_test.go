package what3words

import "testing"

func TestConvertTo3WAOptionsEncode(t *testing.T) {
	testCases := []struct {
		desc string
		opts ConvertTo3WAOptions
		want string
	}{
		{
			desc: "empty options append nothing",
			opts: ConvertTo3WAOptions{},
			want: "",
		},
		{
			desc: "all fields set",
			opts: ConvertTo3WAOptions{Language: "de", Format: "json", Locale: "de_DE"},
			want: "&language=de&format=json&locale=de_DE",
		},
		{
			desc: "only format",
			opts: ConvertTo3WAOptions{Format: "geojson"},
			want: "&format=geojson",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			if got := tC.opts.encode(); got != tC.want {
				t.Errorf("got %q, expected %q", got, tC.want)
			}
		})
	}
}

func TestConvertToCoordinatesOptionsEncode(t *testing.T) {
	testCases := []struct {
		desc string
		opts ConvertToCoordinatesOptions
		want string
	}{
		{
			desc: "empty options append nothing",
			opts: ConvertToCoordinatesOptions{},
			want: "",
		},
		{
			desc: "all fields set",
			opts: ConvertToCoordinatesOptions{Format: "json", Locale: "mn_la"},
			want: "&format=json&locale=mn_la",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			if got := tC.opts.encode(); got != tC.want {
				t.Errorf("got %q, expected %q", got, tC.want)
			}
		})
	}
}

func TestAutosuggestOptionsEncode(t *testing.T) {
	focus := Coordinate{Latitude: 51.521251, Longitude: -0.203586}
	circle := Circle{Center: Coordinate{Latitude: 51.521251, Longitude: -0.203586}, RadiusKm: 1}
	box := BoundingBox{
		SouthWest: Coordinate{Latitude: 51.521, Longitude: -0.343},
		NorthEast: Coordinate{Latitude: 52.6, Longitude: 2.3324},
	}
	polygon := Polygon{Points: []Coordinate{
		{Latitude: 51.521, Longitude: -0.343},
		{Latitude: 52.6, Longitude: 2.3324},
		{Latitude: 54.234, Longitude: 8.343},
	}}
	preferLand := false

	testCases := []struct {
		desc string
		opts AutosuggestOptions
		want string
	}{
		{
			desc: "empty options append nothing",
			opts: AutosuggestOptions{},
			want: "",
		},
		{
			desc: "focus",
			opts: AutosuggestOptions{Focus: &focus},
			want: "&focus=51.521251,-0.203586",
		},
		{
			desc: "clip to circle",
			opts: AutosuggestOptions{ClipToCircle: &circle},
			want: "&clip-to-circle=51.521251,-0.203586,1",
		},
		{
			desc: "clip to country",
			opts: AutosuggestOptions{ClipToCountry: "GB,BE"},
			want: "&clip-to-country=GB%2CBE",
		},
		{
			desc: "clip to bounding box",
			opts: AutosuggestOptions{ClipToBoundingBox: &box},
			want: "&clip-to-bounding-box=51.521,-0.343,52.6,2.3324",
		},
		{
			desc: "clip to polygon closes the ring",
			opts: AutosuggestOptions{ClipToPolygon: &polygon},
			want: "&clip-to-polygon=51.521,-0.343,52.6,2.3324,54.234,8.343,51.521,-0.343",
		},
		{
			desc: "prefer-land false is still appended",
			opts: AutosuggestOptions{PreferLand: &preferLand},
			want: "&prefer-land=false",
		},
		{
			desc: "result counts and input type",
			opts: AutosuggestOptions{NResults: 5, NFocusResults: 2, InputType: "vocon-hybrid"},
			want: "&n-results=5&n-focus-results=2&input-type=vocon-hybrid",
		},
		{
			desc: "language and locale keep the documented parameter order",
			opts: AutosuggestOptions{Language: "en", Locale: "zh_si", ClipToCountry: "GB"},
			want: "&clip-to-country=GB&language=en&locale=zh_si",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			if got := tC.opts.encode(); got != tC.want {
				t.Errorf("got %q, expected %q", got, tC.want)
			}
		})
	}
}

func TestGridSectionOptionsEncode(t *testing.T) {
	if got := (GridSectionOptions{}).encode(); got != "" {
		t.Errorf("got %q, expected empty string", got)
	}

	if got, want := (GridSectionOptions{Format: "geojson"}).encode(), "&format=geojson"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}
