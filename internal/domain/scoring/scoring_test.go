package scoring_test

import (
	"testing"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/profile"
	"github.com/okian/scout/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func goalkeeper(t *testing.T) profile.RoleProfile {
	t.Helper()
	cat, err := profile.NewCatalog([]profile.RoleConfig{{
		Name:      "Goalkeeper",
		Positions: []string{"GK"},
		Languages: map[string][]profile.Category{"en": {
			{Name: "Prevention", Weights: []profile.Weight{
				{Metric: "Save rate, %", Weight: 0.4},
				{Metric: "Prevented goals per 90", Weight: 0.3},
				{Metric: "Conceded goals per 90", Weight: -0.3},
			}},
			{Name: "Movement", Weights: []profile.Weight{
				{Metric: "Aerial duels per 90", Weight: 0.6},
				{Metric: "Exits per 90", Weight: 0.4},
			}},
		}},
	}})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	rp, err := cat.Profile("Goalkeeper", "en")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	return rp
}

func TestCategoryScores(t *testing.T) {
	rp := goalkeeper(t)

	Convey("Given a goalkeeper with every metric recorded", t, func() {
		p := model.NewPlayer("Keeper", map[string]float64{
			"Save rate, %":           70,
			"Prevented goals per 90": 0.2,
			"Conceded goals per 90":  1.1,
			"Aerial duels per 90":    2,
			"Exits per 90":           1,
		})

		Convey("Then each category is the weighted mean over |weight|", func() {
			scores := scoring.CategoryScores(p, rp)
			So(scores, ShouldHaveLength, 2)
			want := (70*0.4 + 0.2*0.3 + 1.1*-0.3) / (0.4 + 0.3 + 0.3)
			So(scores["Prevention"], ShouldAlmostEqual, want, 1e-12)
			So(scores["Movement"], ShouldAlmostEqual, (2*0.6+1*0.4)/1.0, 1e-12)
		})
	})

	Convey("Given a goalkeeper missing one prevention metric", t, func() {
		p := model.NewPlayer("Keeper", map[string]float64{
			"Save rate, %":          70,
			"Conceded goals per 90": 1.1,
		})

		Convey("Then the category is re-normalized over present metrics only", func() {
			got := scoring.CategoryScores(p, rp)["Prevention"]
			So(got, ShouldAlmostEqual, (70*0.4+1.1*-0.3)/(0.4+0.3), 1e-12)
		})

		Convey("Then a category with nothing recorded is exactly zero and still present", func() {
			scores := scoring.CategoryScores(p, rp)
			v, ok := scores["Movement"]
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 0.0)
		})
	})

	Convey("Given a recorded zero", t, func() {
		p := model.NewPlayer("Keeper", map[string]float64{
			"Aerial duels per 90": 0,
			"Exits per 90":        5,
		})

		Convey("Then the zero counts towards the denominator", func() {
			So(scoring.Category(p, rp.Categories[1]), ShouldAlmostEqual, 2.0, 1e-12)
		})
	})

	Convey("Given only inversely weighted metrics", t, func() {
		p := model.NewPlayer("Keeper", map[string]float64{"Conceded goals per 90": 2})

		Convey("Then the score is negative", func() {
			So(scoring.Category(p, rp.Categories[0]), ShouldAlmostEqual, -2.0, 1e-12)
		})
	})

	Convey("Given the same player scored twice", t, func() {
		p := model.NewPlayer("Keeper", map[string]float64{
			"Save rate, %":           66.6,
			"Prevented goals per 90": 0.13,
			"Conceded goals per 90":  1.37,
		})

		Convey("Then the results are bit-identical", func() {
			a := scoring.CategoryScores(p, rp)
			b := scoring.CategoryScores(p, rp)
			So(a["Prevention"] == b["Prevention"], ShouldBeTrue)
		})
	})
}
