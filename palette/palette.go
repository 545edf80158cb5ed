// Package palette derives ordered color sequences from one or two seed colors.
//
// Every generator is a pure function: the same seeds and parameters always
// produce the same sequence, and the order encodes the hue or lightness
// progression.
package palette

import (
	"fmt"

	"github.com/huekit-cli/huekit/color"
)

// Default parameters mirrored by the CLI flags.
const (
	DefaultCount  = 5
	DefaultSpread = 30
	DefaultSteps  = 5
)

// Analogous spaces count hues spread degrees apart, centered on the base hue,
// keeping saturation and lightness fixed. Hues wrap modulo 360.
func Analogous(base color.Color, count, spread int) []color.Color {
	hsl := base.HSL()
	start := hsl.H - spread*(count-1)/2

	colors := make([]color.Color, 0, max(count, 0))
	for i := 0; i < count; i++ {
		colors = append(colors, color.FromHSL(color.NewHSL(start+spread*i, hsl.S, hsl.L)))
	}
	return colors
}

// Complementary pairs the base with its 180-degree hue rotation.
func Complementary(base color.Color) []color.Color {
	return []color.Color{base, base.Complement()}
}

// Triadic places two companions 120 and 240 degrees around the wheel.
func Triadic(base color.Color) []color.Color {
	hsl := base.HSL()
	return []color.Color{
		base,
		color.FromHSL(color.NewHSL(hsl.H+120, hsl.S, hsl.L)),
		color.FromHSL(color.NewHSL(hsl.H+240, hsl.S, hsl.L)),
	}
}

// SplitComplementary flanks the complement hue by spread degrees on each side.
func SplitComplementary(base color.Color, spread int) []color.Color {
	hsl := base.HSL()
	return []color.Color{
		base,
		color.FromHSL(color.NewHSL(hsl.H+180-spread, hsl.S, hsl.L)),
		color.FromHSL(color.NewHSL(hsl.H+180+spread, hsl.S, hsl.L)),
	}
}

// Monochromatic varies lightness only, stepping 80/count percent per color
// from max(10, L - step*count/2) and capping each value at 90. A count below
// one has no meaningful step and is rejected.
func Monochromatic(base color.Color, count int) ([]color.Color, error) {
	if count <= 0 {
		return nil, fmt.Errorf("monochromatic palette needs a positive count, got %d", count)
	}

	hsl := base.HSL()
	step := 80 / count
	start := max(10, hsl.L-step*count/2)

	colors := make([]color.Color, 0, count)
	for i := 0; i < count; i++ {
		colors = append(colors, color.FromHSL(color.NewHSL(hsl.H, hsl.S, min(90, start+step*i))))
	}
	return colors, nil
}

// Gradient blends linearly from start to end across steps samples, inclusive
// of both endpoints when steps exceeds one. For steps of one or less every
// sample uses ratio zero, yielding copies of start rather than an error.
func Gradient(start, end color.Color, steps int) []color.Color {
	colors := make([]color.Color, 0, max(steps, 0))
	for i := 0; i < steps; i++ {
		var ratio float64
		if steps > 1 {
			ratio = float64(i) / float64(steps-1)
		}
		colors = append(colors, start.Blend(end, ratio))
	}
	return colors
}
