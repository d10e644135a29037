package api

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/okian/scout/internal/domain/filter"
	"github.com/okian/scout/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseQuery(t *testing.T) {
	Convey("Given a full query string", t, func() {
		v, _ := url.ParseQuery("role=Fullback&lang=Español&scope=user-filtered&identity=name_club&dedupe=false" +
			"&top=3&min_minutes=900&min_age=18&max_age=23&country=Chile,Peru&country=Uruguay&club=Colo-Colo" +
			"&contract_before=2026-06-30")

		q, err := parseQuery("test", v)
		So(err, ShouldBeNil)

		Convey("Then every parameter is mapped", func() {
			So(q.Role, ShouldEqual, "Fullback")
			So(q.Language, ShouldEqual, "Español")
			So(q.Scope, ShouldEqual, filter.ScopeUserFiltered)
			So(q.Identity, ShouldEqual, model.IdentityNameClub)
			So(*q.Dedupe, ShouldBeFalse)
			So(q.TopN, ShouldEqual, 3)
			So(q.Criteria.MinMinutes, ShouldEqual, 900)
			So(q.Criteria.MinAge, ShouldEqual, 18)
			So(q.Criteria.MaxAge, ShouldEqual, 23)
			So(q.Criteria.Countries, ShouldResemble, []string{"Chile", "Peru", "Uruguay"})
			So(q.Criteria.Clubs, ShouldResemble, []string{"Colo-Colo"})
			So(q.Criteria.ContractBefore.Equal(time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)), ShouldBeTrue)
		})
	})

	Convey("Given a minimal query string", t, func() {
		q, err := parseQuery("test", url.Values{"role": {"Forward"}})
		So(err, ShouldBeNil)
		So(q.Scope, ShouldEqual, filter.Scope(""))
		So(q.Dedupe, ShouldBeNil)
		So(q.Criteria.IsZero(), ShouldBeTrue)
	})

	Convey("Given inconsistent bounds", t, func() {
		_, err := parseQuery("test", url.Values{"role": {"Forward"}, "min_age": {"30"}, "max_age": {"20"}})
		So(errors.Is(err, ErrBadRequest), ShouldBeTrue)

		_, err = parseQuery("test", url.Values{"role": {"Forward"}, "min_minutes": {"-5"}})
		So(errors.Is(err, ErrBadRequest), ShouldBeTrue)
	})
}

func TestError(t *testing.T) {
	Convey("Given an API error", t, func() {
		cause := errors.New("boom")
		err := WrapKind("api.op", ErrBadRequest, cause)

		So(err.Error(), ShouldEqual, "api.op: bad request: boom")
		So(errors.Is(err, ErrBadRequest), ShouldBeTrue)
		So(errors.Is(err, cause), ShouldBeTrue)
		So(Wrap("api.op", nil), ShouldBeNil)
		So(Wrap("api.op", cause).Error(), ShouldEqual, "api.op: boom")
	})
}
