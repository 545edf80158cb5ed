package palette

import (
	"testing"

	"github.com/huekit-cli/huekit/color"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAnalogous(t *testing.T) {
	Convey("Analogous", t, func() {
		base := lo.Must(color.New("red"))

		Convey("Centers the spread around the base hue", func() {
			colors := Analogous(base, DefaultCount, DefaultSpread)
			So(colors, ShouldHaveLength, 5)

			// The +30 hue reads back as 29 after normalization to RGB;
			// truncation drift is pinned, not corrected.
			hues := lo.Map(colors, func(c color.Color, _ int) int { return c.HSL().H })
			So(hues, ShouldResemble, []int{300, 330, 0, 29, 60})
		})

		Convey("Keeps saturation and lightness fixed", func() {
			for _, c := range Analogous(base, 3, 30) {
				So(c.HSL().S, ShouldEqual, base.HSL().S)
				So(c.HSL().L, ShouldEqual, base.HSL().L)
			}
		})

		Convey("Zero count yields an empty sequence", func() {
			So(Analogous(base, 0, DefaultSpread), ShouldBeEmpty)
		})
	})
}

func TestComplementary(t *testing.T) {
	Convey("Complementary always has length 2", t, func() {
		base := lo.Must(color.New("red"))
		colors := Complementary(base)

		So(colors, ShouldHaveLength, 2)
		So(colors[0].Hex(), ShouldEqual, base.Hex())
		So(colors[1].HSL().H, ShouldEqual, 180)
	})
}

func TestTriadic(t *testing.T) {
	Convey("Triadic hues sit exactly 120 degrees apart", t, func() {
		for _, seed := range []string{"red", "teal", "#ff6b6b"} {
			base := lo.Must(color.New(seed))
			colors := Triadic(base)

			So(colors, ShouldHaveLength, 3)

			h := base.HSL().H
			So(colors[1].HSL().H, ShouldEqual, (h+120)%360)
			So(colors[2].HSL().H, ShouldEqual, (h+240)%360)
		}
	})
}

func TestSplitComplementary(t *testing.T) {
	Convey("SplitComplementary flanks the complement", t, func() {
		base := lo.Must(color.New("red"))
		colors := SplitComplementary(base, 30)

		So(colors, ShouldHaveLength, 3)
		So(colors[0].Hex(), ShouldEqual, base.Hex())
		// 150 reads back as 149 after normalization to RGB.
		So(colors[1].HSL().H, ShouldEqual, 149)
		So(colors[2].HSL().H, ShouldEqual, 210)
	})
}

func TestMonochromatic(t *testing.T) {
	Convey("Monochromatic", t, func() {
		base := lo.Must(color.New("red"))

		Convey("Steps lightness from the clamped start", func() {
			colors := lo.Must(Monochromatic(base, 5))
			So(colors, ShouldHaveLength, 5)

			// Generated at 10/26/42/58/74; normalization to RGB truncates
			// most readings down by one.
			lightness := lo.Map(colors, func(c color.Color, _ int) int { return c.HSL().L })
			So(lightness, ShouldResemble, []int{10, 25, 41, 57, 73})
		})

		Convey("Lightness is capped at 90", func() {
			bright := lo.Must(color.New(color.NewHSL(0, 100, 95)))
			colors := lo.Must(Monochromatic(bright, 2))
			for _, c := range colors {
				So(c.HSL().L, ShouldBeLessThanOrEqualTo, 90)
			}
		})

		Convey("Keeps hue and saturation fixed", func() {
			for _, c := range lo.Must(Monochromatic(base, 4)) {
				So(c.HSL().H, ShouldEqual, 0)
				So(c.HSL().S, ShouldEqual, 100)
			}
		})

		Convey("Non-positive count is an explicit error", func() {
			_, err := Monochromatic(base, 0)
			So(err, ShouldNotBeNil)
			_, err = Monochromatic(base, -3)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestGradient(t *testing.T) {
	Convey("Gradient", t, func() {
		red := lo.Must(color.New("red"))
		blue := lo.Must(color.New("blue"))

		Convey("Includes both endpoints when steps > 1", func() {
			colors := Gradient(red, blue, 5)
			So(colors, ShouldHaveLength, 5)
			So(colors[0].Hex(), ShouldEqual, "#ff0000")
			So(colors[4].Hex(), ShouldEqual, "#0000ff")
			So(colors[2].Hex(), ShouldEqual, "#7f007f")
		})

		Convey("A single step is just the start color", func() {
			colors := Gradient(red, blue, 1)
			So(colors, ShouldHaveLength, 1)
			So(colors[0].Hex(), ShouldEqual, red.Hex())
		})

		Convey("Zero steps yields an empty sequence", func() {
			So(Gradient(red, blue, 0), ShouldBeEmpty)
		})

		Convey("Blending a color with itself is a no-op at any step count", func() {
			for _, c := range Gradient(red, red, 4) {
				So(c.Hex(), ShouldEqual, red.Hex())
			}
		})
	})
}
