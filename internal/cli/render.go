package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	service "github.com/okian/scout/internal/app"
	"github.com/okian/scout/internal/domain/types"
)

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// writeRankTable prints the title line followed by one row per top player.
func writeRankTable(w io.Writer, res service.Result) error {
	title := types.RadarTitle(res.Language, res.TopN, res.Role)
	if err := writeString(w, fmt.Sprintf("%s (%s, %d players)\n", title, res.Scope, res.PopulationSize)); err != nil {
		return err
	}

	tw := newTabWriter(w)
	header := append([]string{"#", "PLAYER", "TEAM"}, res.Categories...)
	header = append(header, "OVERALL")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, r := range service.TopRows(res) {
		cells := []string{strconv.Itoa(r.Rank), types.Label(r.Name, r.Nationality), r.Club}
		for _, c := range res.Categories {
			cells = append(cells, pct(r.Percentiles[c]))
		}
		cells = append(cells, pct(r.Overall))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func pct(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
