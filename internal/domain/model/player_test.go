package model_test

import (
	"math"
	"testing"

	"github.com/okian/scout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPlayerMetric(t *testing.T) {
	Convey("Given a player with a recorded zero and a missing metric", t, func() {
		p := model.NewPlayer("A. Player", map[string]float64{
			"Goals per 90": 0,
			"xG per 90":    0.31,
		})

		Convey("Then a recorded zero is present", func() {
			v, ok := p.Metric("Goals per 90")
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 0)
		})

		Convey("Then an unrecorded metric is absent", func() {
			_, ok := p.Metric("Assists per 90")
			So(ok, ShouldBeFalse)
		})

		Convey("When a non-finite value is set", func() {
			p.SetMetric("Save rate, %", math.NaN())
			p.SetMetric("Exits per 90", math.Inf(1))

			Convey("Then it reads as absent", func() {
				_, ok := p.Metric("Save rate, %")
				So(ok, ShouldBeFalse)
				_, ok = p.Metric("Exits per 90")
				So(ok, ShouldBeFalse)
				So(p.MetricCount(), ShouldEqual, 2)
			})
		})
	})

	Convey("Given a zero-value player", t, func() {
		var p model.Player

		Convey("Then lookups do not panic and report absence", func() {
			_, ok := p.Metric("anything")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestPlayerPositions(t *testing.T) {
	Convey("Given position strings", t, func() {
		So(model.Player{Position: "LCB, rcb ,"}.Positions(), ShouldResemble, []string{"LCB", "RCB"})
		So(model.Player{Position: "  "}.Positions(), ShouldBeNil)
	})
}

func TestIdentityKey(t *testing.T) {
	Convey("Given identity keys", t, func() {
		p := model.Player{Name: " J. Silva ", Club: "Benfica"}

		Convey("Then name identity trims the name", func() {
			So(model.IdentityName.Identity(p), ShouldEqual, "J. Silva")
		})

		Convey("Then compound identity includes the club", func() {
			So(model.IdentityNameClub.Identity(p), ShouldEqual, "J. Silva (Benfica)")
		})

		Convey("Then parsing accepts known keys and rejects others", func() {
			k, err := model.ParseIdentityKey("")
			So(err, ShouldBeNil)
			So(k, ShouldEqual, model.IdentityName)

			k, err = model.ParseIdentityKey("NAME_CLUB")
			So(err, ShouldBeNil)
			So(k, ShouldEqual, model.IdentityNameClub)

			_, err = model.ParseIdentityKey("passport")
			So(err, ShouldNotBeNil)
		})
	})
}
