// Package generator provides a bridge between the Go core and user-defined Lua palette scripts.
package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/constant"
	"github.com/huekit-cli/huekit/filesystem"
	"github.com/huekit-cli/huekit/key"
	"github.com/huekit-cli/huekit/util"
	"github.com/huekit-cli/huekit/where"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
)

// Generator wraps a validated Lua palette script and its execution state.
type Generator struct {
	name  string
	state *lua.LState
}

// Name returns the generator name, derived from the script's basename.
func (g *Generator) Name() string {
	return g.name
}

func (g *Generator) String() string {
	return g.name
}

// Load initializes a Generator by executing and validating a Lua palette script.
func Load(path string) (*Generator, error) {
	state := lua.NewState()

	// Load and compile the Lua script (using cache if available).
	if err := preCompileAndLoad(state, path); err != nil {
		return nil, err
	}

	name := util.FileStem(path)

	// Validation
	if state.GetGlobal(constant.GeneratePaletteFn).Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.GeneratePaletteFn, name)
	}

	return &Generator{name: name, state: state}, nil
}

// LoadAll discovers and loads every Lua palette script from the generators directory.
// Returns an empty slice when custom generators are disabled in the configuration.
func LoadAll() ([]*Generator, error) {
	if !viper.GetBool(key.GeneratorsEnable) {
		return nil, nil
	}

	dir := where.Generators()
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var generators []*Generator
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".lua") {
			continue
		}

		g, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("load generator %s: %w", entry.Name(), err)
		}
		generators = append(generators, g)
	}

	return generators, nil
}

// Generate invokes the script's palette function with the base color and
// translates the returned table of hex strings back into parsed colors.
func (g *Generator) Generate(base color.Color) ([]color.Color, error) {
	err := g.state.CallByParam(lua.P{
		Fn:      g.state.GetGlobal(constant.GeneratePaletteFn),
		NRet:    1,
		Protect: true,
	}, lua.LString(base.Hex()))
	if err != nil {
		return nil, err
	}

	retval := g.state.Get(-1)
	g.state.Pop(1) // Clean stack

	if retval.Type() != lua.LTTable {
		return nil, fmt.Errorf("%s returned %s, expected %s", constant.GeneratePaletteFn, retval.Type(), lua.LTTable)
	}

	return colorsFromTable(retval.(*lua.LTable))
}

// colorsFromTable translates a sequential Lua table of color literals into parsed colors.
func colorsFromTable(table *lua.LTable) ([]color.Color, error) {
	var (
		colors []color.Color
		errs   []error
	)

	table.ForEach(func(k, v lua.LValue) {
		if k.Type() != lua.LTNumber || v.Type() != lua.LTString {
			return // Skip invalid entries
		}

		c, err := color.FromString(v.String())
		if err != nil {
			errs = append(errs, err)
			return
		}
		colors = append(colors, c)
	})

	if len(errs) > 0 {
		return nil, errs[0]
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("%s returned an empty palette", constant.GeneratePaletteFn)
	}

	return colors, nil
}
