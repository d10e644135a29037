// Package dataset reads scouting exports (CSV or XLSX) into players.
package dataset

import (
	"context"
	"fmt"
	"io"
	"math"
	"mime"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/okian/scout/internal/domain/model"
)

// Format is a supported file format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ParseFormat accepts "csv", "xlsx" or a file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "csv", "text/csv":
		return FormatCSV, nil
	case "xlsx", xlsxMediaType:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromName infers the format from a file name or URL path.
func FormatFromName(name string) (Format, error) {
	return ParseFormat(path.Ext(name))
}

// FormatFromMediaType infers the format from a Content-Type header.
func FormatFromMediaType(contentType string) (Format, error) {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, contentType)
	}
	return ParseFormat(mt)
}

// Parse reads a dataset in the given format.
func Parse(ctx context.Context, r io.Reader, format Format, opts ...Option) ([]model.Player, error) {
	o := newOptions(opts)

	var (
		rows         [][]string
		decimalComma bool
		err          error
	)
	switch format {
	case FormatCSV:
		var comma rune
		rows, comma, err = readCSV(r)
		decimalComma = comma == ';'
	case FormatXLSX:
		rows, err = readXLSX(r, o.sheet)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return toPlayers(rows, o, decimalComma)
}

// Descriptive columns. Every other column is read as a metric.
const (
	colPlayer   = "player"
	colTeam     = "team"
	colPosition = "position"
	colAge      = "age"
	colMinutes  = "minutes played"
	colContract = "contract expires"
	colCountry  = "birth country"
)

var columnAliases = map[string]string{ //nolint:gochecknoglobals // lookup table
	"player":           colPlayer,
	"name":             colPlayer,
	"team":             colTeam,
	"club":             colTeam,
	"position":         colPosition,
	"age":              colAge,
	"minutes played":   colMinutes,
	"minutes":          colMinutes,
	"contract expires": colContract,
	"birth country":    colCountry,
}

// toPlayers maps rows to players. decimalComma is set for ';' delimited
// CSV, the only source where "12,5" means 12.5.
func toPlayers(rows [][]string, o *options, decimalComma bool) ([]model.Player, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	header := rows[0]
	descriptive := make(map[string]int)
	metrics := make(map[int]string)
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			continue
		}
		if col, ok := columnAliases[strings.ToLower(h)]; ok {
			if _, dup := descriptive[col]; !dup {
				descriptive[col] = i
			}
			continue
		}
		metrics[i] = h
	}
	nameCol, ok := descriptive[colPlayer]
	if !ok {
		return nil, fmt.Errorf("%w: Player", ErrMissingColumn)
	}

	players := make([]model.Player, 0, len(rows)-1)
	for _, row := range rows[1:] {
		name := strings.TrimSpace(cell(row, nameCol))
		if name == "" {
			continue
		}
		p := model.Player{Name: name}
		if i, ok := descriptive[colTeam]; ok {
			p.Club = strings.TrimSpace(cell(row, i))
		}
		if i, ok := descriptive[colPosition]; ok {
			p.Position = strings.TrimSpace(cell(row, i))
		}
		if i, ok := descriptive[colCountry]; ok {
			p.Nationality = strings.TrimSpace(cell(row, i))
		}
		if country, ok := o.represent[name]; ok {
			p.Nationality = country
		}
		if i, ok := descriptive[colAge]; ok {
			if v, ok := ParseNumber(cell(row, i), decimalComma); ok {
				p.Age = int(math.Round(v))
			}
		}
		if i, ok := descriptive[colMinutes]; ok {
			if v, ok := ParseNumber(cell(row, i), decimalComma); ok {
				p.Minutes = int(math.Round(v))
			}
		}
		if i, ok := descriptive[colContract]; ok {
			p.Contract = ParseDate(cell(row, i))
		}
		for i, metric := range metrics {
			if v, ok := ParseNumber(cell(row, i), decimalComma); ok {
				p.SetMetric(metric, v)
			}
		}
		players = append(players, p)
	}
	return players, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// ParseNumber reads a numeric cell. Empty cells, "-", "NaN", "n/a" and
// non-numeric text are absent. With decimalComma a single comma is the
// decimal separator; otherwise a comma makes the cell non-numeric.
func ParseNumber(s string, decimalComma bool) (float64, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "-", "nan", "n/a", "na", "null":
		return 0, false
	}
	s = strings.TrimSuffix(s, "%")
	if decimalComma && strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

var dateLayouts = []string{ //nolint:gochecknoglobals // accepted layouts
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02/01/2006",
	"2/1/2006",
}

// ParseDate reads a contract date. Excel serial numbers are accepted.
// Unknown or unparsable values return the zero time.
func ParseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t
		}
	}
	return time.Time{}
}
