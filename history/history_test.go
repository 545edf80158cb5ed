package history

import (
	"testing"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/filesystem"
	"github.com/huekit-cli/huekit/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a parsed color", t, func() {
		viper.Set(key.HistoryLimit, 50)
		So(Clear(), ShouldBeNil)

		teal := lo.Must(color.FromString("teal"))

		Convey("When saving the color", func() {
			So(Save(teal), ShouldBeNil)

			Convey("Then it should be retrievable", func() {
				saved, err := Get()
				So(err, ShouldBeNil)
				So(saved, ShouldContainKey, "#008080")
				So(saved["#008080"].Name, ShouldEqual, "teal")
			})

			Convey("Anonymous colors keep an empty name", func() {
				So(Save(lo.Must(color.FromString("#ff6347"))), ShouldBeNil)

				saved := lo.Must(Get())
				So(saved["#ff6347"].Name, ShouldBeEmpty)
				So(saved["#ff6347"].String(), ShouldEqual, "#ff6347")
			})

			Convey("And All() orders by recency", func() {
				So(Save(lo.Must(color.FromString("navy"))), ShouldBeNil)

				records := lo.Must(All())
				So(len(records), ShouldEqual, 2)
				So(records[0].Hex, ShouldEqual, "#000080")
				So(records[1].Hex, ShouldEqual, "#008080")
			})

			Convey("And removing it leaves the registry empty", func() {
				saved := lo.Must(Get())
				So(Remove(saved["#008080"]), ShouldBeNil)
				So(lo.Must(Get()), ShouldNotContainKey, "#008080")
			})
		})

		Convey("When the limit is exceeded", func() {
			viper.Set(key.HistoryLimit, 2)

			for _, name := range []string{"red", "lime", "blue"} {
				So(Save(lo.Must(color.FromString(name))), ShouldBeNil)
			}

			records := lo.Must(All())
			So(len(records), ShouldEqual, 2)
			So(records[0].Hex, ShouldEqual, "#0000ff")
			So(records[1].Hex, ShouldEqual, "#00ff00")
		})

		Convey("Remember honors the configuration gate", func() {
			viper.Set(key.HistorySaveOnParse, false)
			So(Remember(teal), ShouldBeNil)
			So(lo.Must(Get()), ShouldBeEmpty)

			viper.Set(key.HistorySaveOnParse, true)
			So(Remember(teal), ShouldBeNil)
			So(lo.Must(Get()), ShouldContainKey, "#008080")
		})
	})
}
