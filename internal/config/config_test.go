package config_test

import (
	"errors"
	"testing"

	"github.com/okian/scout/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
			convey.So(cfg.DefaultLanguage, convey.ShouldEqual, "es")
			convey.So(cfg.DefaultScope, convey.ShouldEqual, "role_eligible")
			convey.So(cfg.IdentityKey, convey.ShouldEqual, "name")
			convey.So(cfg.Dedupe, convey.ShouldBeTrue)
			convey.So(cfg.DedupeFoldCase, convey.ShouldBeFalse)
			convey.So(cfg.MaxTopN, convey.ShouldEqual, 50)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with out-of-range values", t, func() {
		cases := map[string]func(c *config.Config){
			"empty addr":       func(c *config.Config) { c.Addr = " " },
			"log format":       func(c *config.Config) { c.LogFormat = "xml" },
			"identity key":     func(c *config.Config) { c.IdentityKey = "club" },
			"top n":            func(c *config.Config) { c.MaxTopN = 0 },
			"fetch timeout":    func(c *config.Config) { c.FetchTimeoutMS = 0 },
			"breaker failures": func(c *config.Config) { c.BreakerMaxFailures = 0 },
			"upload limit":     func(c *config.Config) { c.MaxUploadBytes = 0 },
			"scope":            func(c *config.Config) { c.DefaultScope = "everyone" },
		}
		for name, mutate := range cases {
			convey.Convey("When the "+name+" is invalid", func() {
				cfg := config.New()
				mutate(cfg)
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})

	convey.Convey("Given a hyphenated scope", t, func() {
		cfg := config.New()
		cfg.DefaultScope = "user-filtered"
		convey.So(cfg.Validate(), convey.ShouldBeNil)
	})
}
