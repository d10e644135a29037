package export_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/okian/scout/internal/adapters/export"
	"github.com/okian/scout/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWriteXLSX(t *testing.T) {
	Convey("Given a percentile table", t, func() {
		table := types.Table{
			Categories: []string{"Attack"},
			Rows: []types.PlayerRow{
				{Identity: "A. Uno", Club: "Colo-Colo", Position: "CF",
					Percentiles: map[string]float64{"Attack": 75}, Overall: 75},
			},
		}

		Convey("When written as a workbook", func() {
			var buf bytes.Buffer
			So(export.WriteXLSX(&buf, table), ShouldBeNil)

			f, err := excelize.OpenReader(&buf)
			So(err, ShouldBeNil)
			defer func() { _ = f.Close() }()

			Convey("Then it has one sheet with the table", func() {
				So(f.GetSheetList(), ShouldResemble, []string{"Percentiles"})
				rows, err := f.GetRows("Percentiles")
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
				So(rows[0], ShouldResemble, []string{"Player", "Team", "Position", "Attack", "Overall"})
				So(rows[1][0], ShouldEqual, "A. Uno")
				So(rows[1][3], ShouldEqual, "75")
			})
		})
	})
}
