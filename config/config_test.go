package config

import (
	"testing"

	"github.com/huekit-cli/huekit/filesystem"
	"github.com/huekit-cli/huekit/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Known defaults survive the round trip", func() {
			_ = Setup()
			So(viper.GetInt(key.AdjustAmount), ShouldEqual, 10)
			So(viper.GetString(key.SwatchVariant), ShouldEqual, "block")
			So(viper.GetBool(key.HistorySaveOnParse), ShouldBeTrue)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("history.save_on_parse")
			So(result, ShouldEqual, "history_save_on_parse")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		f := Default[key.AdjustAmount]

		Convey("Env() carries the application prefix", func() {
			So(f.Env(), ShouldEqual, "HUEKIT_ADJUST_AMOUNT")
		})

		Convey("typeName() reflects the default value", func() {
			So(f.typeName(), ShouldEqual, "int")
		})

		Convey("Pretty() renders without panicking", func() {
			So(f.Pretty(), ShouldNotBeEmpty)
		})
	})
}
