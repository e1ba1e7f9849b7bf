package main

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/erwinmintiens/w3w-go/pkg/geocode"
	"github.com/erwinmintiens/w3w-go/pkg/what3words"
)

func renderSuggestionsTable(suggestions []what3words.Suggestion) string {
	if len(suggestions) == 0 {
		return "no suggestions found for that input"
	}

	b := bytes.NewBuffer([]byte{})
	table := tablewriter.NewWriter(b)
	table.SetHeader([]string{"Rank", "Words", "Nearest Place", "Country"})

	for _, s := range suggestions {
		table.Append([]string{strconv.Itoa(s.Rank), s.Words, s.NearestPlace, s.Country})
	}

	table.SetRowLine(true)
	table.SetRowSeparator("-")
	table.Render()

	return b.String()
}

func renderLanguagesTable(languages []what3words.Language) string {
	b := bytes.NewBuffer([]byte{})
	table := tablewriter.NewWriter(b)
	table.SetHeader([]string{"Code", "Name", "Native Name", "Locales"})

	for _, l := range languages {
		var locales string
		for i, loc := range l.Locales {
			if i > 0 {
				locales += ", "
			}
			locales += loc.Code
		}

		table.Append([]string{l.Code, l.Name, l.NativeName, locales})
	}

	table.SetRowLine(true)
	table.SetRowSeparator("-")
	table.Render()

	return b.String()
}

func renderLocation(loc *geocode.Location, words string) string {
	b := bytes.NewBuffer([]byte{})
	table := tablewriter.NewWriter(b)
	table.SetHeader([]string{"Place", "Coordinates", "Words"})
	table.Append([]string{
		loc.Name,
		fmt.Sprintf("%s,%s",
			strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
			strconv.FormatFloat(loc.Longitude, 'f', -1, 64)),
		"///" + words,
	})
	table.Render()

	return b.String()
}
