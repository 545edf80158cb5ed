package swatch

import (
	"strings"
	"testing"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestRender(t *testing.T) {
	Convey("Given a parsed color", t, func() {
		target := lo.Must(color.FromString("#ff6347"))
		viper.Set(key.SwatchWidth, 4)

		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.SwatchVariant, variant)
					So(Render(target), ShouldNotBeEmpty)
				})
			}
		})

		Convey("The plain variant degrades to hex", func() {
			viper.Set(key.SwatchVariant, plain)
			So(Render(target), ShouldEqual, "#ff6347")
			So(Line(target), ShouldEqual, "#ff6347")
		})

		Convey("Line includes the hex notation", func() {
			viper.Set(key.SwatchVariant, block)
			So(Line(target), ShouldContainSubstring, "#ff6347")
		})

		Convey("Width drives the cell size", func() {
			viper.Set(key.SwatchVariant, ascii)
			viper.Set(key.SwatchWidth, 6)
			So(strings.Count(Render(target), "#"), ShouldBeGreaterThanOrEqualTo, 6)
		})
	})
}

func TestStrip(t *testing.T) {
	Convey("Strip", t, func() {
		viper.Set(key.SwatchVariant, plain)

		colors := []color.Color{
			lo.Must(color.FromString("red")),
			lo.Must(color.FromString("lime")),
		}

		rendered := Strip(colors)
		So(rendered, ShouldContainSubstring, "#ff0000")
		So(rendered, ShouldContainSubstring, "#00ff00")
	})
}
