package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// readXLSX returns the rows of sheet, or of the first sheet when sheet is
// empty. Cells hold their stored values, not their formatted text, so a
// "#,##0" or "0%" style does not change the number read.
func readXLSX(r io.Reader, sheet string) (rows [][]string, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrParse, cerr)
		}
	}()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyDataset
		}
		sheet = sheets[0]
	}
	rows, err = f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", ErrParse, sheet, err)
	}
	return rows, nil
}
