package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNames(t *testing.T) {
	Convey("Names", t, func() {
		names := Names()

		Convey("The table has exactly 21 entries", func() {
			So(names, ShouldHaveLength, 21)
		})

		Convey("Names are sorted", func() {
			So(names[0], ShouldEqual, "aqua")
			So(names[len(names)-1], ShouldEqual, "yellow")
		})

		Convey("Every name parses", func() {
			for _, name := range names {
				_, err := FromString(name)
				So(err, ShouldBeNil)
			}
		})
	})
}

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Known names resolve", func() {
			rgb, ok := Lookup("red").Get()
			So(ok, ShouldBeTrue)
			So(rgb, ShouldResemble, RGB{R: 255})
		})

		Convey("Unknown names are absent", func() {
			So(Lookup("crimson").IsAbsent(), ShouldBeTrue)
		})

		Convey("Lookup is case sensitive by design; FromString folds case", func() {
			So(Lookup("Red").IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestNameOf(t *testing.T) {
	Convey("NameOf", t, func() {
		Convey("Reverse lookup finds exact table entries", func() {
			So(NameOf(NewRGB(255, 0, 0)).MustGet(), ShouldEqual, "red")
			So(NameOf(NewRGB(0, 0, 128)).MustGet(), ShouldEqual, "navy")
		})

		Convey("Aliases resolve to the alphabetically first name", func() {
			So(NameOf(NewRGB(128, 128, 128)).MustGet(), ShouldEqual, "gray")
			So(NameOf(NewRGB(0, 255, 255)).MustGet(), ShouldEqual, "aqua")
			So(NameOf(NewRGB(0, 255, 0)).MustGet(), ShouldEqual, "green")
		})

		Convey("Off-table values are absent", func() {
			So(NameOf(NewRGB(1, 2, 3)).IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestSuggestName(t *testing.T) {
	Convey("SuggestName", t, func() {
		Convey("Fuzzy subsequence matches win", func() {
			So(SuggestName("gren").MustGet(), ShouldEqual, "green")
			So(SuggestName("blu").MustGet(), ShouldEqual, "blue")
		})

		Convey("Edit distance catches transpositions", func() {
			So(SuggestName("magneta").MustGet(), ShouldEqual, "magenta")
		})

		Convey("Hopeless inputs yield nothing", func() {
			So(SuggestName("xylophone").IsAbsent(), ShouldBeTrue)
			So(SuggestName("").IsAbsent(), ShouldBeTrue)
		})
	})
}
