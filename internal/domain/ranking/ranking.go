// Package ranking selects the best identities from a percentile table.
package ranking

import (
	"errors"
	"sort"

	"github.com/okian/scout/internal/domain/percentile"
)

// ErrInvalidLimit is returned for a non-positive N.
var ErrInvalidLimit = errors.New("invalid top-n limit")

// TopN returns up to n rows ordered by overall percentile, highest first.
// Equal overall values keep their table order, so the first-seen identity
// wins a tie.
func TopN(rows []percentile.Row, n int) ([]percentile.Row, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}
	sorted := append([]percentile.Row(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Overall > sorted[j].Overall
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted, nil
}
