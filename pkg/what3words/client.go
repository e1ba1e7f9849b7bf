package what3words

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/erwinmintiens/w3w-go/pkg/whttp"
)

// DefaultHost is the public what3words API. It is overridable for tests or
// self-hosted deployments.
const DefaultHost = "https://api.what3words.com/v3"

type Client struct {
	apiKey string
	host   string
	h      *http.Client
}

type ClientOption func(*Client)

// WithHost points the client at a different API host.
func WithHost(host string) ClientOption {
	return func(c *Client) {
		c.host = host
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) {
		c.h = h
	}
}

// NewClient creates a what3words client with the given API key. By default it
// talks to the public API through the logging HTTP client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		apiKey: apiKey,
		host:   DefaultHost,
		h:      whttp.NewLoggingClient(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ConvertTo3WA converts a coordinate to the three-word address of the grid
// square containing it.
func (c *Client) ConvertTo3WA(coord Coordinate, opts ConvertTo3WAOptions) (*ConvertResponse, error) {
	var r ConvertResponse
	if err := c.getJSON(c.convertTo3WAURL(coord, opts), &r); err != nil {
		return nil, err
	}

	return &r, nil
}

// ConvertTo3WAWords is ConvertTo3WA projected down to the words field.
func (c *Client) ConvertTo3WAWords(coord Coordinate, opts ConvertTo3WAOptions) (string, error) {
	r, err := c.ConvertTo3WA(coord, opts)
	if err != nil {
		return "", err
	}

	if r.Words == "" {
		return "", fmt.Errorf("project words: %w", ErrMissingField)
	}

	return r.Words, nil
}

// ConvertTo3WARaw returns the undecoded body, for format=geojson consumers.
func (c *Client) ConvertTo3WARaw(coord Coordinate, opts ConvertTo3WAOptions) (json.RawMessage, error) {
	return c.getRaw(c.convertTo3WAURL(coord, opts))
}

func (c *Client) convertTo3WAURL(coord Coordinate, opts ConvertTo3WAOptions) string {
	return fmt.Sprintf("%s/convert-to-3wa?key=%s&coordinates=%s%s", c.host, c.apiKey, coord, opts.encode())
}

// ConvertToCoordinates converts a three-word address back to coordinates.
func (c *Client) ConvertToCoordinates(words string, opts ConvertToCoordinatesOptions) (*ConvertResponse, error) {
	var r ConvertResponse
	if err := c.getJSON(c.convertToCoordinatesURL(words, opts), &r); err != nil {
		return nil, err
	}

	return &r, nil
}

// ConvertToCoordinatesFloats is ConvertToCoordinates projected down to the
// latitude and longitude.
func (c *Client) ConvertToCoordinatesFloats(words string, opts ConvertToCoordinatesOptions) (float64, float64, error) {
	r, err := c.ConvertToCoordinates(words, opts)
	if err != nil {
		return 0, 0, err
	}

	if r.Coordinates == nil {
		return 0, 0, fmt.Errorf("project coordinates: %w", ErrMissingField)
	}

	return r.Coordinates.Lat, r.Coordinates.Lng, nil
}

// ConvertToCoordinatesRaw returns the undecoded body.
func (c *Client) ConvertToCoordinatesRaw(words string, opts ConvertToCoordinatesOptions) (json.RawMessage, error) {
	return c.getRaw(c.convertToCoordinatesURL(words, opts))
}

func (c *Client) convertToCoordinatesURL(words string, opts ConvertToCoordinatesOptions) string {
	return fmt.Sprintf("%s/convert-to-coordinates?words=%s&key=%s%s", c.host, url.QueryEscape(words), c.apiKey, opts.encode())
}

// Autosuggest returns three-word address suggestions for a full or partial
// input, optionally focused on or clipped to an area.
func (c *Client) Autosuggest(input string, opts AutosuggestOptions) (*AutosuggestResponse, error) {
	u, err := c.autosuggestURL(input, opts)
	if err != nil {
		return nil, err
	}

	var r AutosuggestResponse
	if err := c.getJSON(u, &r); err != nil {
		return nil, err
	}

	return &r, nil
}

// AutosuggestRaw returns the undecoded body.
func (c *Client) AutosuggestRaw(input string, opts AutosuggestOptions) (json.RawMessage, error) {
	u, err := c.autosuggestURL(input, opts)
	if err != nil {
		return nil, err
	}

	return c.getRaw(u)
}

func (c *Client) autosuggestURL(input string, opts AutosuggestOptions) (string, error) {
	if opts.ClipToPolygon != nil {
		if err := opts.ClipToPolygon.Validate(); err != nil {
			return "", fmt.Errorf("clip-to-polygon: %w", err)
		}
	}

	return fmt.Sprintf("%s/autosuggest?key=%s&input=%s%s", c.host, c.apiKey, url.QueryEscape(input), opts.encode()), nil
}

// GridSection returns the what3words grid lines within a bounding box. The
// API limits the box to cells of up to 4km by 4km.
func (c *Client) GridSection(box BoundingBox, opts GridSectionOptions) (*GridSectionResponse, error) {
	var r GridSectionResponse
	if err := c.getJSON(c.gridSectionURL(box, opts), &r); err != nil {
		return nil, err
	}

	return &r, nil
}

// GridSectionRaw returns the undecoded body.
func (c *Client) GridSectionRaw(box BoundingBox, opts GridSectionOptions) (json.RawMessage, error) {
	return c.getRaw(c.gridSectionURL(box, opts))
}

func (c *Client) gridSectionURL(box BoundingBox, opts GridSectionOptions) string {
	return fmt.Sprintf("%s/grid-section?bounding-box=%s&key=%s%s", c.host, box, c.apiKey, opts.encode())
}

// AvailableLanguages lists the languages and locales the API can convert to.
func (c *Client) AvailableLanguages() (*LanguagesResponse, error) {
	var r LanguagesResponse
	if err := c.getJSON(fmt.Sprintf("%s/available-languages?key=%s", c.host, c.apiKey), &r); err != nil {
		return nil, err
	}

	return &r, nil
}

func (c *Client) getJSON(url string, out any) error {
	body, err := c.getRaw(url)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) getRaw(url string) (json.RawMessage, error) {
	res, err := c.h.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", whttp.RedactURL(url), err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, newAPIError(res.StatusCode, body)
	}

	return body, nil
}
