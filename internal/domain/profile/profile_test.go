package profile_test

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/profile"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDefaultCatalog(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		cat, err := profile.Default(context.Background())
		So(err, ShouldBeNil)

		Convey("Then every configured role is listed in order", func() {
			roles := cat.Roles()
			So(len(roles), ShouldEqual, 6)
			So(roles[0].Name, ShouldEqual, "Goalkeeper")
			So(roles[0].Languages, ShouldResemble, []string{"en", "es"})
			So(roles[0].Positions, ShouldResemble, []string{"GK"})
		})

		Convey("Then the goalkeeper profile keeps category and weight order", func() {
			p, err := cat.Profile("goalkeeper", "en")
			So(err, ShouldBeNil)
			So(p.Role, ShouldEqual, "Goalkeeper")
			So(p.CategoryNames(), ShouldResemble, []string{"Prevention", "Distribution", "Ball Playing", "Movement", "Positioning"})
			So(p.Categories[0].Weights[2], ShouldResemble, profile.Weight{Metric: "Conceded goals per 90", Weight: -0.3})
		})

		Convey("Then display language names resolve to codes", func() {
			p, err := cat.Profile("Defender", "Español")
			So(err, ShouldBeNil)
			So(p.Language, ShouldEqual, "es")
			So(p.CategoryNames()[0], ShouldEqual, "Ataque")
		})

		Convey("Then unknown roles and languages fail", func() {
			_, err := cat.Profile("Sweeper", "en")
			So(errors.Is(err, profile.ErrUnknownRole), ShouldBeTrue)

			_, err = cat.Profile("Forward", "pt")
			So(errors.Is(err, profile.ErrUnknownLanguage), ShouldBeTrue)
		})

		Convey("Then Metrics lists each referenced metric once", func() {
			p, _ := cat.Profile("Goalkeeper", "en")
			metrics := p.Metrics()
			So(metrics, ShouldContain, "Exits per 90")
			count := 0
			for _, m := range metrics {
				if m == "Accurate forward passes, %" {
					count++
				}
			}
			So(count, ShouldEqual, 1)
		})
	})
}

func TestEligible(t *testing.T) {
	Convey("Given the fullback and winger profiles", t, func() {
		cat, err := profile.Default(context.Background())
		So(err, ShouldBeNil)
		fullback, _ := cat.Profile("Fullback", "en")
		winger, _ := cat.Profile("Wingers", "en")

		Convey("Then position tokens are matched exactly", func() {
			wingBack := model.Player{Position: "LWB, LB"}
			So(fullback.Eligible(wingBack), ShouldBeTrue)
			So(winger.Eligible(wingBack), ShouldBeFalse)
			So(winger.Eligible(model.Player{Position: "rw"}), ShouldBeTrue)
		})

		Convey("Then players without a position are never eligible", func() {
			So(fullback.Eligible(model.Player{}), ShouldBeFalse)
		})
	})
}

func TestCatalogValidation(t *testing.T) {
	weights := []profile.Weight{{Metric: "Goals per 90", Weight: 1}}

	Convey("Given role configurations", t, func() {
		Convey("When a category has no weights", func() {
			_, err := profile.NewCatalog([]profile.RoleConfig{{
				Name:      "Forward",
				Languages: map[string][]profile.Category{"en": {{Name: "Attack"}}},
			}})
			Convey("Then loading fails fast", func() {
				So(errors.Is(err, profile.ErrInvalidProfile), ShouldBeTrue)
			})
		})

		Convey("When a category name repeats within one language", func() {
			_, err := profile.NewCatalog([]profile.RoleConfig{{
				Name: "Forward",
				Languages: map[string][]profile.Category{"en": {
					{Name: "Attack", Weights: weights},
					{Name: "Attack", Weights: weights},
				}},
			}})
			So(errors.Is(err, profile.ErrInvalidProfile), ShouldBeTrue)
		})

		Convey("When a weight is not finite", func() {
			_, err := profile.NewCatalog([]profile.RoleConfig{{
				Name: "Forward",
				Languages: map[string][]profile.Category{"en": {
					{Name: "Attack", Weights: []profile.Weight{{Metric: "xG per 90", Weight: math.NaN()}}},
				}},
			}})
			So(errors.Is(err, profile.ErrInvalidProfile), ShouldBeTrue)
		})

		Convey("When roles are duplicated or missing", func() {
			_, err := profile.NewCatalog(nil)
			So(errors.Is(err, profile.ErrInvalidProfile), ShouldBeTrue)

			role := profile.RoleConfig{Name: "Forward", Languages: map[string][]profile.Category{"en": {{Name: "Attack", Weights: weights}}}}
			_, err = profile.NewCatalog([]profile.RoleConfig{role, role})
			So(errors.Is(err, profile.ErrInvalidProfile), ShouldBeTrue)
		})

		Convey("When the same name is used in two languages", func() {
			_, err := profile.NewCatalog([]profile.RoleConfig{{
				Name: "Forward",
				Languages: map[string][]profile.Category{
					"en": {{Name: "Attack", Weights: weights}},
					"es": {{Name: "Attack", Weights: weights}},
				},
			}})
			Convey("Then it is accepted", func() {
				So(err, ShouldBeNil)
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a profiles file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "profiles.yaml")

		Convey("When it is valid", func() {
			content := `
roles:
  - name: Striker
    positions: [CF, ST]
    languages:
      en:
        - name: Finishing
          weights:
            - {metric: "Goals per 90", weight: 1}
            - {metric: "xG per 90", weight: -0.5}
`
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
			cat, err := profile.Load(context.Background(), path)

			Convey("Then the catalog exposes it", func() {
				So(err, ShouldBeNil)
				p, err := cat.Profile("striker", "English")
				So(err, ShouldBeNil)
				So(p.Categories[0].Weights, ShouldResemble, []profile.Weight{
					{Metric: "Goals per 90", Weight: 1},
					{Metric: "xG per 90", Weight: -0.5},
				})
				So(p.Eligible(model.Player{Position: "ST"}), ShouldBeTrue)
			})
		})

		Convey("When a category is empty", func() {
			content := `
roles:
  - name: Striker
    languages:
      en:
        - name: Finishing
          weights: []
`
			So(os.WriteFile(path, []byte(content), 0o600), ShouldBeNil)
			_, err := profile.LoadFile(context.Background(), path)
			So(errors.Is(err, profile.ErrInvalidProfile), ShouldBeTrue)
		})

		Convey("When the file does not exist", func() {
			_, err := profile.LoadFile(context.Background(), filepath.Join(dir, "missing.yaml"))
			So(errors.Is(err, profile.ErrLoadProfile), ShouldBeTrue)
		})
	})
}
