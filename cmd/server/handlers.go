package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/erwinmintiens/w3w-go/cmd/server/history"
	"github.com/erwinmintiens/w3w-go/pkg/geocode"
	"github.com/erwinmintiens/w3w-go/pkg/what3words"
)

// converter is the slice of the what3words client the handlers need, split
// out so tests can stub the API away.
type converter interface {
	ConvertTo3WA(coord what3words.Coordinate, opts what3words.ConvertTo3WAOptions) (*what3words.ConvertResponse, error)
	ConvertToCoordinates(words string, opts what3words.ConvertToCoordinatesOptions) (*what3words.ConvertResponse, error)
	Autosuggest(input string, opts what3words.AutosuggestOptions) (*what3words.AutosuggestResponse, error)
}

type server struct {
	w3w      converter
	geocoder geocode.Client
	lookups  history.Repository
}

func (s *server) RegisterRoutes(r *gin.Engine) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	api.GET("/convert-to-3wa", s.ConvertTo3WA)
	api.GET("/convert-to-coordinates", s.ConvertToCoordinates)
	api.GET("/autosuggest", s.Autosuggest)
	api.GET("/locate", s.Locate)
	api.GET("/history", s.History)
}

func (s *server) ConvertTo3WA(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat must be a number"})
		return
	}

	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lng must be a number"})
		return
	}

	coord := what3words.Coordinate{Latitude: lat, Longitude: lng}
	resp, err := s.w3w.ConvertTo3WA(coord, what3words.ConvertTo3WAOptions{
		Language: c.Query("language"),
		Locale:   c.Query("locale"),
	})
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}

	s.record(c, resp, "convert-to-3wa")
	c.JSON(http.StatusOK, resp)
}

func (s *server) ConvertToCoordinates(c *gin.Context) {
	words := c.Query("words")
	if words == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "words is required"})
		return
	}

	resp, err := s.w3w.ConvertToCoordinates(words, what3words.ConvertToCoordinatesOptions{
		Locale: c.Query("locale"),
	})
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}

	s.record(c, resp, "convert-to-coordinates")
	c.JSON(http.StatusOK, resp)
}

func (s *server) Autosuggest(c *gin.Context) {
	input := c.Query("input")
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input is required"})
		return
	}

	opts := what3words.AutosuggestOptions{
		ClipToCountry: c.Query("clip-to-country"),
		Language:      c.Query("language"),
	}

	if focus := c.Query("focus"); focus != "" {
		coord, err := parseLatLng(focus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "focus must be \"<lat>,<lng>\""})
			return
		}

		opts.Focus = &coord
	}

	if n := c.Query("n-results"); n != "" {
		nResults, err := strconv.Atoi(n)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "n-results must be a number"})
			return
		}

		opts.NResults = nResults
	}

	resp, err := s.w3w.Autosuggest(input, opts)
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *server) Locate(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}

	location, err := s.geocoder.Geocode(query)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	coord := what3words.Coordinate{Latitude: location.Latitude, Longitude: location.Longitude}
	resp, err := s.w3w.ConvertTo3WA(coord, what3words.ConvertTo3WAOptions{
		Language: c.Query("language"),
	})
	if err != nil {
		abortWithUpstreamError(c, err)
		return
	}

	s.record(c, resp, "locate")
	c.JSON(http.StatusOK, gin.H{
		"place":    location.Name,
		"country":  location.Country,
		"response": resp,
	})
}

func (s *server) History(c *gin.Context) {
	limit := 20
	if l := c.Query("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive number"})
			return
		}

		limit = parsed
	}

	lookups, err := s.lookups.List(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"lookups": lookups})
}

// record writes the lookup to the history table. Failures are logged and
// swallowed: history must never break a conversion that already succeeded.
func (s *server) record(c *gin.Context, resp *what3words.ConvertResponse, source string) {
	lookup := history.Lookup{
		Words:        resp.Words,
		Country:      resp.Country,
		NearestPlace: resp.NearestPlace,
		Source:       source,
	}

	if resp.Coordinates != nil {
		lookup.Latitude = resp.Coordinates.Lat
		lookup.Longitude = resp.Coordinates.Lng
	}

	if err := s.lookups.Record(c.Request.Context(), lookup); err != nil {
		slog.ErrorContext(c.Request.Context(), "record lookup", "error", err.Error())
	}
}

// parseLatLng reads a "<lat>,<lng>" query parameter.
func parseLatLng(s string) (what3words.Coordinate, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return what3words.Coordinate{}, fmt.Errorf("expected \"<lat>,<lng>\", got %q", s)
	}

	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return what3words.Coordinate{}, fmt.Errorf("parse latitude: %w", err)
	}

	lng, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return what3words.Coordinate{}, fmt.Errorf("parse longitude: %w", err)
	}

	return what3words.Coordinate{Latitude: lat, Longitude: lng}, nil
}

// abortWithUpstreamError forwards what3words errors with their original
// status; anything else is a plain 502.
func abortWithUpstreamError(c *gin.Context, err error) {
	var apiErr *what3words.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Error()})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
