// Package swatch provides a multi-variant rendering engine for terminal color previews.
//
// Swatches can be displayed as solid blocks, dots, ASCII hatching or plain
// hex text depending on user preference and terminal capabilities.
package swatch

import (
	"fmt"
	"strings"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/key"
	"github.com/huekit-cli/huekit/style"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for swatch rendering.
const (
	block = "block"
	dot   = "dot"
	ascii = "ascii"
	plain = "plain"
)

// AvailableVariants returns a slice of all registered swatch style identifiers.
func AvailableVariants() []string {
	return []string{block, dot, ascii, plain}
}

// glyph retrieves the repeatable cell unit for the active variant configuration.
func glyph() string {
	switch viper.GetString(key.SwatchVariant) {
	case block:
		return "█"
	case dot:
		return "●"
	case ascii:
		return "#"
	default:
		return ""
	}
}

// Render produces a terminal preview cell for the given color.
// The plain variant degrades to the bare hex notation for pipelines and dumb terminals.
func Render(c color.Color) string {
	unit := glyph()
	if unit == "" {
		return c.Hex()
	}

	width := viper.GetInt(key.SwatchWidth)
	if width < 1 {
		width = 1
	}

	cell := strings.Repeat(unit, width)
	return style.Fg(style.NewColor(c.Hex()))(cell)
}

// Line renders a swatch cell followed by the color's hex notation.
func Line(c color.Color) string {
	if viper.GetString(key.SwatchVariant) == plain {
		return c.Hex()
	}
	return fmt.Sprintf("%s %s", Render(c), c.Hex())
}

// Strip renders a horizontal sequence of swatch cells, one per palette entry.
func Strip(colors []color.Color) string {
	cells := make([]string, len(colors))
	for i, c := range colors {
		cells[i] = Render(c)
	}
	return strings.Join(cells, " ")
}
