// Package export writes percentile tables for spreadsheets.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/okian/scout/internal/domain/types"
)

// WriteCSV writes one line per row: identity, club, position, one column
// per category percentile, then the overall percentile. Percentiles use two
// decimals.
func WriteCSV(w io.Writer, t types.Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(t.Categories)+4)
	header = append(header, "Player", "Team", "Position")
	header = append(header, t.Categories...)
	header = append(header, "Overall")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(header))
	for _, r := range t.Rows {
		record = record[:0]
		record = append(record, r.Identity, r.Club, r.Position)
		for _, c := range t.Categories {
			record = append(record, formatPercent(r.Percentiles[c]))
		}
		record = append(record, formatPercent(r.Overall))
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
