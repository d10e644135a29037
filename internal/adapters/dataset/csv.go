package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// readCSV reads all records and reports the delimiter used. The delimiter
// is ';' when the header line has semicolons but no commas, which is how
// spreadsheets with decimal commas export.
func readCSV(r io.Reader) ([][]string, rune, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(4096)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, 0, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	if bytes.Count(head, []byte{';'}) > 0 && bytes.Count(head, []byte{','}) == 0 {
		cr.Comma = ';'
	}
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return rows, cr.Comma, nil
}
