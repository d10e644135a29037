// Package types contains the payloads shared by the HTTP API, the CLI and
// the exporters.
package types

import (
	"fmt"
	"strings"
	"time"
)

// PlayerRow is one displayed player of a percentile table.
type PlayerRow struct {
	Rank        int                `json:"rank,omitempty"`
	Identity    string             `json:"identity"`
	Name        string             `json:"name"`
	Club        string             `json:"club,omitempty"`
	Position    string             `json:"position,omitempty"`
	Nationality string             `json:"nationality,omitempty"`
	Age         int                `json:"age,omitempty"`
	Minutes     int                `json:"minutes,omitempty"`
	Scores      map[string]float64 `json:"scores"`
	Percentiles map[string]float64 `json:"percentiles"`
	Overall     float64            `json:"overall"`
}

// Table is the response of GET /percentiles.
type Table struct {
	Role           string      `json:"role"`
	Language       string      `json:"language"`
	Scope          string      `json:"scope"`
	Categories     []string    `json:"categories"`
	PopulationSize int         `json:"population_size"`
	Rows           []PlayerRow `json:"rows"`
}

// Series is one player trace of a radar chart. Values follow the order of
// Radar.Categories.
type Series struct {
	Label    string    `json:"label"`
	Identity string    `json:"identity"`
	Color    string    `json:"color"`
	Values   []float64 `json:"values"`
	Overall  float64   `json:"overall"`
}

// Radar is the response of GET /radar.
type Radar struct {
	Title          string   `json:"title"`
	Role           string   `json:"role"`
	Language       string   `json:"language"`
	Scope          string   `json:"scope"`
	Categories     []string `json:"categories"`
	PopulationSize int      `json:"population_size"`
	Series         []Series `json:"series"`
}

// Stats is the response of GET /stats.
type Stats struct {
	Players      int       `json:"players"`
	Source       string    `json:"source,omitempty"`
	Sequence     uint64    `json:"sequence"`
	LoadedAt     time.Time `json:"loaded_at,omitempty"`
	Roles        int       `json:"roles"`
	UptimeSecond int64     `json:"uptime_seconds"`
}

// palette is cycled through by series index.
var palette = []string{"#00FFFF", "#FF6F61", "#6A5ACD", "#FFD700", "#00FF7F"} //nolint:gochecknoglobals // fixed chart palette

var countryCodes = map[string]string{ //nolint:gochecknoglobals // lookup table
	"Argentina": "ARG", "Brazil": "BRA", "Colombia": "COL", "Uruguay": "URU",
	"Chile": "CHL", "Paraguay": "PAR", "Peru": "PER", "Ecuador": "ECU",
	"Venezuela": "VEN", "Bolivia": "BOL",
}

// CountryCode abbreviates a birth country for chart labels. Countries outside
// the table use their first three letters upper-cased.
func CountryCode(country string) string {
	country = strings.TrimSpace(country)
	if code, ok := countryCodes[country]; ok {
		return code
	}
	r := []rune(country)
	if len(r) > 3 {
		r = r[:3]
	}
	return strings.ToUpper(string(r))
}

// Label renders "Name [COD]".
func Label(name, country string) string {
	return fmt.Sprintf("%s [%s]", name, CountryCode(country))
}

// SeriesColor returns the palette color for the i-th series.
func SeriesColor(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// RadarTitle is the chart title in the category language.
func RadarTitle(language string, topN int, role string) string {
	if language == "es" {
		return fmt.Sprintf("Radar Resumido - Top %d %ss", topN, role)
	}
	return fmt.Sprintf("Radar Summary - Top %d %ss", topN, role)
}
