package percentile_test

import (
	"context"
	"testing"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/percentile"
	"github.com/okian/scout/internal/domain/profile"
	. "github.com/smartystreets/goconvey/convey"
)

func roleProfile(t *testing.T, cats ...profile.Category) profile.RoleProfile {
	t.Helper()
	cat, err := profile.NewCatalog([]profile.RoleConfig{{
		Name:      "Forward",
		Positions: []string{"CF"},
		Languages: map[string][]profile.Category{"en": cats},
	}})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	rp, err := cat.Profile("Forward", "en")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	return rp
}

func single(metric string) profile.Category {
	return profile.Category{Name: metric, Weights: []profile.Weight{{Metric: metric, Weight: 1}}}
}

func players(metric string, values ...float64) []model.Player {
	out := make([]model.Player, len(values))
	for i, v := range values {
		out[i] = model.NewPlayer(string(rune('A'+i)), map[string]float64{metric: v})
	}
	return out
}

func TestRanks(t *testing.T) {
	Convey("Given raw values with a tie", t, func() {
		values := []float64{20, 10, 40, 20}

		Convey("Then ties share the average rank", func() {
			So(percentile.Ranks(values), ShouldResemble, []float64{2.5, 1, 4, 2.5})
		})

		Convey("Then percentiles are rank / n * 100", func() {
			So(percentile.Percentiles(values), ShouldResemble, []float64{62.5, 25, 100, 62.5})
		})
	})

	Convey("Given all-equal values", t, func() {
		So(percentile.Ranks([]float64{3, 3, 3}), ShouldResemble, []float64{2, 2, 2})
		for _, p := range percentile.Percentiles([]float64{3, 3, 3}) {
			So(p, ShouldAlmostEqual, 200.0/3, 1e-9)
		}
	})

	Convey("Given no values", t, func() {
		So(percentile.Ranks(nil), ShouldBeEmpty)
	})
}

func TestNormalize(t *testing.T) {
	ctx := context.Background()

	Convey("Given four players scored on one category", t, func() {
		rp := roleProfile(t, single("Goals per 90"))
		table := percentile.Normalize(ctx, players("Goals per 90", 10, 20, 20, 40), rp)

		Convey("Then percentiles follow average-rank tie-breaking", func() {
			So(table.Len(), ShouldEqual, 4)
			got := make([]float64, 0, 4)
			for _, r := range table.Rows {
				got = append(got, r.Percentiles["Goals per 90"])
			}
			So(got, ShouldResemble, []float64{25.0, 62.5, 62.5, 100.0})
		})

		Convey("Then rows can be looked up by identity", func() {
			row, ok := table.Lookup("D")
			So(ok, ShouldBeTrue)
			So(row.Overall, ShouldEqual, 100.0)
			_, ok = table.Lookup("Z")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given two categories", t, func() {
		rp := roleProfile(t, single("A"), single("B"))
		pop := []model.Player{
			model.NewPlayer("P1", map[string]float64{"A": 10, "B": 30}),
			model.NewPlayer("P2", map[string]float64{"A": 20, "B": 10}),
			model.NewPlayer("P3", map[string]float64{"A": 30, "B": 20}),
			model.NewPlayer("P4", map[string]float64{"A": 40, "B": 40}),
		}
		table := percentile.Normalize(ctx, pop, rp)

		Convey("Then overall is the plain mean of the player's percentiles", func() {
			row, _ := table.Lookup("P1")
			So(row.Percentiles, ShouldResemble, map[string]float64{"A": 25, "B": 75})
			So(row.Overall, ShouldEqual, 50.0)
			So(table.Categories, ShouldResemble, []string{"A", "B"})
		})

		Convey("Then an identical second run is bit-identical", func() {
			again := percentile.Normalize(ctx, pop, rp)
			So(again.Rows, ShouldResemble, table.Rows)
		})
	})

	Convey("Given a negatively weighted category", t, func() {
		rp := roleProfile(t, profile.Category{Name: "Positioning", Weights: []profile.Weight{{Metric: "xG against per 90", Weight: -0.6}}})
		table := percentile.Normalize(ctx, players("xG against per 90", 0.5, 1.5), rp)

		Convey("Then less is better", func() {
			So(table.Rows[0].Percentiles["Positioning"], ShouldEqual, 100.0)
			So(table.Rows[1].Percentiles["Positioning"], ShouldEqual, 50.0)
		})
	})

	Convey("Given a player missing every metric of a category", t, func() {
		rp := roleProfile(t, single("Assists per 90"))
		pop := []model.Player{
			model.NewPlayer("Blank", nil),
			model.NewPlayer("Neg", map[string]float64{"Assists per 90": -1}),
			model.NewPlayer("Pos", map[string]float64{"Assists per 90": 1}),
		}
		table := percentile.Normalize(ctx, pop, rp)

		Convey("Then it is ranked with a raw score of zero", func() {
			row, _ := table.Lookup("Blank")
			So(row.Scores["Assists per 90"], ShouldEqual, 0.0)
			So(row.Percentiles["Assists per 90"], ShouldAlmostEqual, 200.0/3, 1e-9)
		})
	})

	Convey("Given a population that grows by one player", t, func() {
		rp := roleProfile(t, single("Goals per 90"))
		base := players("Goals per 90", 10, 20, 30)
		before := percentile.Normalize(ctx, base, rp)

		grown := append(append([]model.Player(nil), base...), model.NewPlayer("New", map[string]float64{"Goals per 90": 15}))
		after := percentile.Normalize(ctx, grown, rp)

		Convey("Then existing players' percentiles shift", func() {
			b, _ := before.Lookup("B")
			a, _ := after.Lookup("B")
			So(b.Percentiles["Goals per 90"], ShouldNotEqual, a.Percentiles["Goals per 90"])
			So(a.Percentiles["Goals per 90"], ShouldEqual, 75.0)
		})
	})

	Convey("Given an empty population", t, func() {
		rp := roleProfile(t, single("Goals per 90"), single("xA per 90"))
		table := percentile.Normalize(ctx, nil, rp)

		Convey("Then the table is empty but keeps its categories", func() {
			So(table.Len(), ShouldEqual, 0)
			So(table.Categories, ShouldResemble, []string{"Goals per 90", "xA per 90"})
		})
	})

	Convey("Given duplicate rows for one identity", t, func() {
		rp := roleProfile(t, single("Goals per 90"))
		pop := []model.Player{
			model.NewPlayer("Dup", map[string]float64{"Goals per 90": 40}),
			model.NewPlayer("Other", map[string]float64{"Goals per 90": 20}),
			model.NewPlayer("Dup", map[string]float64{"Goals per 90": 10}),
		}

		Convey("When deduplication is enabled", func() {
			table := percentile.Normalize(ctx, pop, rp, percentile.WithDeduplication(true))

			Convey("Then only the first row is scored", func() {
				So(table.Len(), ShouldEqual, 2)
				row, _ := table.Lookup("Dup")
				So(row.Scores["Goals per 90"], ShouldEqual, 40.0)
				So(row.Percentiles["Goals per 90"], ShouldEqual, 100.0)
			})
		})

		Convey("When deduplication is disabled", func() {
			table := percentile.Normalize(ctx, pop, rp, percentile.WithDeduplication(false))

			Convey("Then both rows are ranked independently", func() {
				So(table.Len(), ShouldEqual, 3)
				So(table.Rows[0].Percentiles["Goals per 90"], ShouldEqual, 100.0)
				So(table.Rows[2].Percentiles["Goals per 90"], ShouldAlmostEqual, 100.0/3, 1e-9)
				row, _ := table.Lookup("Dup")
				So(row.Scores["Goals per 90"], ShouldEqual, 40.0)
			})
		})

		Convey("When the compound identity separates the rows", func() {
			pop[2].Club = "Loan FC"
			table := percentile.Normalize(ctx, pop, rp,
				percentile.WithDeduplication(true),
				percentile.WithIdentityKey(model.IdentityNameClub))

			So(table.Len(), ShouldEqual, 3)
			_, ok := table.Lookup("Dup (Loan FC)")
			So(ok, ShouldBeTrue)
		})
	})
}
