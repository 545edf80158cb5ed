package generator

import (
	"path/filepath"
	"testing"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/filesystem"
	"github.com/huekit-cli/huekit/key"
	"github.com/huekit-cli/huekit/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

const complementScript = `
function GeneratePalette(base)
    return { base, "#0000ff" }
end
`

const brokenScript = `
function SomethingElse(base)
    return { base }
end
`

const invalidOutputScript = `
function GeneratePalette(base)
    return { "definitely not a color" }
end
`

func write(path, script string) {
	lo.Must0(filesystem.API().WriteFile(path, []byte(script), 0644))
}

func TestLoad(t *testing.T) {
	Convey("Load", t, func() {
		dir := where.Generators()

		Convey("Accepts a script defining the palette function", func() {
			path := filepath.Join(dir, "complement.lua")
			write(path, complementScript)

			g, err := Load(path)
			So(err, ShouldBeNil)
			So(g.Name(), ShouldEqual, "complement")
		})

		Convey("Rejects a script missing the palette function", func() {
			path := filepath.Join(dir, "broken.lua")
			write(path, brokenScript)

			_, err := Load(path)
			So(err, ShouldNotBeNil)
		})

		Convey("Rejects a missing file", func() {
			_, err := Load(filepath.Join(dir, "absent.lua"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestGenerate(t *testing.T) {
	Convey("Generate", t, func() {
		dir := where.Generators()

		Convey("Translates the returned hex table into colors", func() {
			path := filepath.Join(dir, "pair.lua")
			write(path, complementScript)

			g := lo.Must(Load(path))
			base := lo.Must(color.FromString("#ff0000"))

			colors, err := g.Generate(base)
			So(err, ShouldBeNil)
			So(len(colors), ShouldEqual, 2)
			So(colors[0].Hex(), ShouldEqual, "#ff0000")
			So(colors[1].Hex(), ShouldEqual, "#0000ff")
		})

		Convey("Surfaces parse failures from script output", func() {
			path := filepath.Join(dir, "invalid.lua")
			write(path, invalidOutputScript)

			g := lo.Must(Load(path))
			base := lo.Must(color.FromString("#ff0000"))

			_, err := g.Generate(base)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestLoadAll(t *testing.T) {
	Convey("LoadAll", t, func() {
		Convey("Returns nothing when generators are disabled", func() {
			viper.Set(key.GeneratorsEnable, false)
			generators, err := LoadAll()
			So(err, ShouldBeNil)
			So(generators, ShouldBeEmpty)
		})

		Convey("Discovers scripts in the generators directory", func() {
			viper.Set(key.GeneratorsEnable, true)
			write(filepath.Join(where.Generators(), "discovered.lua"), complementScript)

			generators, err := LoadAll()
			So(err, ShouldBeNil)
			So(len(generators), ShouldBeGreaterThanOrEqualTo, 1)
		})
	})
}

func TestCreate(t *testing.T) {
	Convey("Create", t, func() {
		Convey("Scaffolds a loadable script", func() {
			path, err := Create("sunset", "tester")
			So(err, ShouldBeNil)

			g, err := Load(path)
			So(err, ShouldBeNil)
			So(g.Name(), ShouldEqual, "sunset")
		})

		Convey("Refuses to overwrite an existing script", func() {
			_, err := Create("dupe", "tester")
			So(err, ShouldBeNil)
			_, err = Create("dupe", "tester")
			So(err, ShouldNotBeNil)
		})
	})
}
