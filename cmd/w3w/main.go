// w3w is a command line interface over the what3words API: convert
// coordinates to three-word addresses and back, autosuggest partial
// addresses, dump grid sections and list supported languages. Free-text
// place names are resolved through OpenStreetMap first.
//
// The API key is read from the W3W_API_KEY environment variable.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/erwinmintiens/w3w-go/pkg/env"
	"github.com/erwinmintiens/w3w-go/pkg/logger"
	"github.com/erwinmintiens/w3w-go/pkg/what3words"
)

type options struct {
	Verbose bool `short:"v" long:"verbose" description:"Log every outbound API request"`

	To3WA     to3waCmd     `command:"to3wa" description:"Convert coordinates to a three-word address"`
	ToCoords  toCoordsCmd  `command:"tocoords" description:"Convert a three-word address to coordinates"`
	Suggest   suggestCmd   `command:"suggest" description:"Suggest three-word addresses for a partial input"`
	Grid      gridCmd      `command:"grid" description:"List the what3words grid lines within a bounding box"`
	Languages languagesCmd `command:"languages" description:"List the languages the API can convert to"`
	Locate    locateCmd    `command:"locate" description:"Resolve a free-text place name to a three-word address"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		setupLogging(opts.Verbose)
		return cmd.Execute(args)
	}

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	if verbose {
		logger.InitGlobalSlog("w3w")
		return
	}

	// Keep request logging out of the way unless asked for; errors still
	// reach stderr.
	handler := logger.NewContextJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	slog.SetDefault(slog.New(handler))
}

func newClient() (*what3words.Client, error) {
	apiKey, err := env.What3WordsAPIKey()
	if err != nil {
		return nil, err
	}

	return what3words.NewClient(apiKey, what3words.WithHost(env.What3WordsHost())), nil
}

// parseCoordinate reads a "<lat>,<lng>" pair.
func parseCoordinate(s string) (what3words.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return what3words.Coordinate{}, fmt.Errorf("expected \"<lat>,<lng>\", got %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return what3words.Coordinate{}, fmt.Errorf("parse latitude %q: %w", parts[0], err)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return what3words.Coordinate{}, fmt.Errorf("parse longitude %q: %w", parts[1], err)
	}

	return what3words.Coordinate{Latitude: lat, Longitude: lng}, nil
}

// parseCircle reads a "<lat>,<lng>,<radiusKm>" triple.
func parseCircle(s string) (what3words.Circle, error) {
	i := strings.LastIndex(s, ",")
	if i < 0 {
		return what3words.Circle{}, fmt.Errorf("expected \"<lat>,<lng>,<radiusKm>\", got %q", s)
	}

	center, err := parseCoordinate(s[:i])
	if err != nil {
		return what3words.Circle{}, err
	}

	radius, err := strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
	if err != nil {
		return what3words.Circle{}, fmt.Errorf("parse radius %q: %w", s[i+1:], err)
	}

	return what3words.Circle{Center: center, RadiusKm: radius}, nil
}
