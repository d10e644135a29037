package filter_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/model"
	"github.com/okian/scout/internal/domain/profile"
	. "github.com/smartystreets/goconvey/convey"
)

func defender(t *testing.T) profile.RoleProfile {
	t.Helper()
	cat, err := profile.NewCatalog([]profile.RoleConfig{{
		Name:      "Defender",
		Positions: []string{"CB", "LCB", "RCB"},
		Languages: map[string][]profile.Category{"en": {
			{Name: "Defense", Weights: []profile.Weight{{Metric: "Interceptions per 90", Weight: 1}}},
		}},
	}})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	rp, _ := cat.Profile("Defender", "en")
	return rp
}

func TestParseScope(t *testing.T) {
	Convey("Given scope names", t, func() {
		s, err := filter.ParseScope("")
		So(err, ShouldBeNil)
		So(s, ShouldEqual, filter.ScopeRoleEligible)

		s, err = filter.ParseScope("User-Filtered")
		So(err, ShouldBeNil)
		So(s, ShouldEqual, filter.ScopeUserFiltered)

		s, err = filter.ParseScope("full_dataset")
		So(err, ShouldBeNil)
		So(s, ShouldEqual, filter.ScopeFullDataset)

		_, err = filter.ParseScope("league")
		So(errors.Is(err, filter.ErrUnknownScope), ShouldBeTrue)
	})
}

func TestCriteria(t *testing.T) {
	Convey("Given a player", t, func() {
		p := model.Player{
			Name: "N. Otamendi", Club: "Benfica", Nationality: "Argentina",
			Age: 36, Minutes: 2100, Contract: time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
		}

		Convey("Then empty criteria match everyone", func() {
			So(filter.Criteria{}.IsZero(), ShouldBeTrue)
			So(filter.Criteria{}.Match(p), ShouldBeTrue)
			So(filter.Criteria{}.Match(model.Player{}), ShouldBeTrue)
		})

		Convey("Then each criterion is applied", func() {
			So(filter.Criteria{MinMinutes: 2000}.Match(p), ShouldBeTrue)
			So(filter.Criteria{MinMinutes: 2500}.Match(p), ShouldBeFalse)
			So(filter.Criteria{MaxAge: 30}.Match(p), ShouldBeFalse)
			So(filter.Criteria{MinAge: 30, MaxAge: 40}.Match(p), ShouldBeTrue)
			So(filter.Criteria{Countries: []string{"argentina", "Chile"}}.Match(p), ShouldBeTrue)
			So(filter.Criteria{Countries: []string{"Uruguay"}}.Match(p), ShouldBeFalse)
			So(filter.Criteria{Clubs: []string{"BENFICA"}}.Match(p), ShouldBeTrue)
			So(filter.Criteria{ContractBefore: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)}.Match(p), ShouldBeTrue)
			So(filter.Criteria{ContractBefore: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)}.Match(p), ShouldBeFalse)
		})

		Convey("Then unknown values fail bounded criteria", func() {
			unknown := model.Player{Name: "X"}
			So(filter.Criteria{MaxAge: 23}.Match(unknown), ShouldBeFalse)
			So(filter.Criteria{MinMinutes: 1}.Match(unknown), ShouldBeFalse)
			So(filter.Criteria{ContractBefore: time.Now()}.Match(unknown), ShouldBeFalse)
		})
	})
}

func TestSelect(t *testing.T) {
	rp := defender(t)
	players := []model.Player{
		{Name: "CB veteran", Position: "CB", Minutes: 3000},
		{Name: "CB rookie", Position: "LCB", Minutes: 300},
		{Name: "Keeper", Position: "GK", Minutes: 3000},
	}
	c := filter.Criteria{MinMinutes: 900}

	Convey("Given the three scopes", t, func() {
		Convey("When ranking against the full dataset", func() {
			sel := filter.Select(players, rp, filter.ScopeFullDataset, c)
			So(sel.Population, ShouldHaveLength, 3)
			So(sel.Show(players[0]), ShouldBeTrue)
			So(sel.Show(players[1]), ShouldBeFalse)
			So(sel.Show(players[2]), ShouldBeFalse)
		})

		Convey("When ranking against role-eligible players", func() {
			sel := filter.Select(players, rp, filter.ScopeRoleEligible, c)
			So(sel.Population, ShouldHaveLength, 2)
			So(sel.Show(players[1]), ShouldBeFalse)
		})

		Convey("When ranking against the filtered players", func() {
			sel := filter.Select(players, rp, filter.ScopeUserFiltered, c)
			So(sel.Population, ShouldHaveLength, 1)
			So(sel.Population[0].Name, ShouldEqual, "CB veteran")
		})

		Convey("When the scope is unset", func() {
			sel := filter.Select(players, rp, "", c)
			So(sel.Scope, ShouldEqual, filter.ScopeRoleEligible)
			So(sel.Population, ShouldHaveLength, 2)
		})
	})
}
