package main

import (
	"fmt"
	"strconv"

	"github.com/erwinmintiens/w3w-go/pkg/geocode"
	"github.com/erwinmintiens/w3w-go/pkg/what3words"
)

type to3waCmd struct {
	Language string `long:"language" description:"Language code for the returned words"`
	Locale   string `long:"locale" description:"Locale for the returned words"`

	Args struct {
		Coordinates string `positional-arg-name:"lat,lng" required:"true" description:"Coordinates to convert"`
	} `positional-args:"true"`
}

func (cmd *to3waCmd) Execute(args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	coord, err := parseCoordinate(cmd.Args.Coordinates)
	if err != nil {
		return err
	}

	words, err := client.ConvertTo3WAWords(coord, what3words.ConvertTo3WAOptions{
		Language: cmd.Language,
		Locale:   cmd.Locale,
	})
	if err != nil {
		return err
	}

	fmt.Println("///" + words)
	return nil
}

type toCoordsCmd struct {
	Locale string `long:"locale" description:"Locale for the returned words"`

	Args struct {
		Words string `positional-arg-name:"words" required:"true" description:"Three-word address, with or without the /// prefix"`
	} `positional-args:"true"`
}

func (cmd *toCoordsCmd) Execute(args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	words := trimSlashes(cmd.Args.Words)
	lat, lng, err := client.ConvertToCoordinatesFloats(words, what3words.ConvertToCoordinatesOptions{Locale: cmd.Locale})
	if err != nil {
		return err
	}

	fmt.Printf("%s,%s\n",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64))
	return nil
}

type suggestCmd struct {
	Focus      string `long:"focus" description:"lat,lng to rank suggestions around"`
	Circle     string `long:"clip-to-circle" description:"lat,lng,radiusKm to clip suggestions to"`
	Country    string `long:"clip-to-country" description:"Comma-separated country codes to clip suggestions to"`
	Language   string `long:"language" description:"Language code of the input"`
	PreferLand *bool  `long:"prefer-land" description:"Prefer results on land"`
	NResults   int    `long:"n-results" description:"Number of suggestions to request"`

	Args struct {
		Input string `positional-arg-name:"input" required:"true" description:"Full or partial three-word address"`
	} `positional-args:"true"`
}

func (cmd *suggestCmd) Execute(args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	opts := what3words.AutosuggestOptions{
		ClipToCountry: cmd.Country,
		Language:      cmd.Language,
		PreferLand:    cmd.PreferLand,
		NResults:      cmd.NResults,
	}

	if cmd.Focus != "" {
		focus, err := parseCoordinate(cmd.Focus)
		if err != nil {
			return fmt.Errorf("focus: %w", err)
		}

		opts.Focus = &focus
	}

	if cmd.Circle != "" {
		circle, err := parseCircle(cmd.Circle)
		if err != nil {
			return fmt.Errorf("clip-to-circle: %w", err)
		}

		opts.ClipToCircle = &circle
	}

	resp, err := client.Autosuggest(trimSlashes(cmd.Args.Input), opts)
	if err != nil {
		return err
	}

	fmt.Print(renderSuggestionsTable(resp.Suggestions))
	return nil
}

type gridCmd struct {
	Args struct {
		SouthWest string `positional-arg-name:"sw-lat,sw-lng" required:"true" description:"Southwestern corner"`
		NorthEast string `positional-arg-name:"ne-lat,ne-lng" required:"true" description:"Northeastern corner"`
	} `positional-args:"true"`
}

func (cmd *gridCmd) Execute(args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	southWest, err := parseCoordinate(cmd.Args.SouthWest)
	if err != nil {
		return fmt.Errorf("south west corner: %w", err)
	}

	northEast, err := parseCoordinate(cmd.Args.NorthEast)
	if err != nil {
		return fmt.Errorf("north east corner: %w", err)
	}

	box := what3words.BoundingBox{SouthWest: southWest, NorthEast: northEast}
	resp, err := client.GridSection(box, what3words.GridSectionOptions{})
	if err != nil {
		return err
	}

	for _, line := range resp.Lines {
		fmt.Printf("%f,%f -> %f,%f\n", line.Start.Lat, line.Start.Lng, line.End.Lat, line.End.Lng)
	}

	return nil
}

type languagesCmd struct{}

func (cmd *languagesCmd) Execute(args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	resp, err := client.AvailableLanguages()
	if err != nil {
		return err
	}

	fmt.Print(renderLanguagesTable(resp.Languages))
	return nil
}

type locateCmd struct {
	Language string `long:"language" description:"Language code for the returned words"`

	Args struct {
		Query []string `positional-arg-name:"place" required:"1" description:"Free-text place name"`
	} `positional-args:"true"`
}

func (cmd *locateCmd) Execute(args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	query := ""
	for i, part := range cmd.Args.Query {
		if i > 0 {
			query += " "
		}
		query += part
	}

	location, err := geocode.NewOpenstreetmapClient().Geocode(query)
	if err != nil {
		return err
	}

	coord := what3words.Coordinate{Latitude: location.Latitude, Longitude: location.Longitude}
	words, err := client.ConvertTo3WAWords(coord, what3words.ConvertTo3WAOptions{Language: cmd.Language})
	if err != nil {
		return err
	}

	fmt.Print(renderLocation(location, words))
	return nil
}

func trimSlashes(words string) string {
	for len(words) > 0 && words[0] == '/' {
		words = words[1:]
	}

	return words
}
