package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/okian/scout/internal/domain/types"
)

const sheetName = "Percentiles"

// WriteXLSX writes the same columns as WriteCSV to a single-sheet workbook,
// keeping percentiles as numbers.
func WriteXLSX(w io.Writer, t types.Table) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header := make([]interface{}, 0, len(t.Categories)+4)
	header = append(header, "Player", "Team", "Position")
	for _, c := range t.Categories {
		header = append(header, c)
	}
	header = append(header, "Overall")
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range t.Rows {
		row := make([]interface{}, 0, len(header))
		row = append(row, r.Identity, r.Club, r.Position)
		for _, c := range t.Categories {
			row = append(row, r.Percentiles[c])
		}
		row = append(row, r.Overall)
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cellRef, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
