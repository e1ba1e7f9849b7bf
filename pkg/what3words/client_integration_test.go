//go:build integration

package what3words_test

import (
	"os"
	"testing"

	"github.com/erwinmintiens/w3w-go/pkg/what3words"
)

// These tests hit the live what3words API and need a real key:
//
//	W3W_API_KEY=... go test -tags integration ./pkg/what3words
func newLiveClient(t *testing.T) *what3words.Client {
	t.Helper()

	key := os.Getenv("W3W_API_KEY")
	if key == "" {
		t.Skip("W3W_API_KEY not set")
	}

	return what3words.NewClient(key)
}

func TestConvertRoundTrip_Integration(t *testing.T) {
	client := newLiveClient(t)

	coord := what3words.Coordinate{Latitude: 51.520847, Longitude: -0.195521}
	words, err := client.ConvertTo3WAWords(coord, what3words.ConvertTo3WAOptions{Language: "en"})
	if err != nil {
		t.Fatalf("convert to 3wa: %v", err)
	}

	t.Logf("words: %s", words)

	lat, lng, err := client.ConvertToCoordinatesFloats(words, what3words.ConvertToCoordinatesOptions{})
	if err != nil {
		t.Fatalf("convert back to coordinates: %v", err)
	}

	t.Logf("coordinates: %f,%f", lat, lng)

	// The round trip lands in the same 3m square, not on the same point.
	const squareDegrees = 0.0001
	if diff := lat - coord.Latitude; diff > squareDegrees || diff < -squareDegrees {
		t.Errorf("latitude drifted: got %f, started from %f", lat, coord.Latitude)
	}

	if diff := lng - coord.Longitude; diff > squareDegrees || diff < -squareDegrees {
		t.Errorf("longitude drifted: got %f, started from %f", lng, coord.Longitude)
	}
}

func TestAvailableLanguages_Integration(t *testing.T) {
	client := newLiveClient(t)

	resp, err := client.AvailableLanguages()
	if err != nil {
		t.Fatalf("available languages: %v", err)
	}

	if len(resp.Languages) == 0 {
		t.Fatal("expected at least one language")
	}

	t.Logf("got %d languages", len(resp.Languages))
}
