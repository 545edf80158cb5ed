package color

import "fmt"

// DefaultAmount is the conventional step for the lighten/darken and
// saturate/desaturate families when the caller has no opinion.
const DefaultAmount = 10

// Color is a normalized wrapper around a single RGB value. Every other
// representation is a view computed on demand. All manipulation methods are
// pure and return a new Color.
type Color struct {
	rgb RGB
}

// New normalizes any accepted representation to a Color. The accepted set is
// closed: string literals, RGB, HSL, HSV, or a [3]int channel triple.
// Anything else is rejected with a *FormatError.
func New(v any) (Color, error) {
	switch c := v.(type) {
	case string:
		return FromString(c)
	case RGB:
		return FromRGB(c), nil
	case HSL:
		return FromHSL(c), nil
	case HSV:
		return FromHSV(c), nil
	case [3]int:
		return FromRGB(NewRGB(c[0], c[1], c[2])), nil
	default:
		return Color{}, &FormatError{Input: fmt.Sprintf("%T", v)}
	}
}

// FromRGB wraps an RGB value directly.
func FromRGB(c RGB) Color {
	return Color{rgb: c}
}

// FromHSL normalizes an HSL value to its RGB point.
func FromHSL(c HSL) Color {
	return Color{rgb: c.RGB()}
}

// FromHSV normalizes an HSV value to its RGB point.
func FromHSV(c HSV) Color {
	return Color{rgb: c.RGB()}
}

// RGB returns the underlying RGB value.
func (c Color) RGB() RGB {
	return c.rgb
}

// Hex renders the color as a lowercase "#rrggbb" literal.
func (c Color) Hex() string {
	return c.rgb.Hex()
}

// HSL returns the HSL coordinate view.
func (c Color) HSL() HSL {
	return c.rgb.HSL()
}

// HSV returns the HSV coordinate view.
func (c Color) HSV() HSV {
	return c.rgb.HSV()
}

// Lighten raises HSL lightness by amount, capped at 100.
func (c Color) Lighten(amount int) Color {
	hsl := c.rgb.HSL()
	return FromHSL(NewHSL(hsl.H, hsl.S, hsl.L+amount))
}

// Darken lowers HSL lightness by amount, floored at 0.
func (c Color) Darken(amount int) Color {
	hsl := c.rgb.HSL()
	return FromHSL(NewHSL(hsl.H, hsl.S, hsl.L-amount))
}

// Saturate raises HSL saturation by amount, capped at 100.
func (c Color) Saturate(amount int) Color {
	hsl := c.rgb.HSL()
	return FromHSL(NewHSL(hsl.H, hsl.S+amount, hsl.L))
}

// Desaturate lowers HSL saturation by amount, floored at 0.
func (c Color) Desaturate(amount int) Color {
	hsl := c.rgb.HSL()
	return FromHSL(NewHSL(hsl.H, hsl.S-amount, hsl.L))
}

// Invert flips every RGB channel to 255 minus its value.
func (c Color) Invert() Color {
	return FromRGB(RGB{R: 255 - c.rgb.R, G: 255 - c.rgb.G, B: 255 - c.rgb.B})
}

// Grayscale collapses all channels to the truncated luminance of the color.
func (c Color) Grayscale() Color {
	gray := int(c.rgb.Luminance() * 255)
	return FromRGB(NewRGB(gray, gray, gray))
}

// Complement rotates the HSL hue by 180 degrees.
func (c Color) Complement() Color {
	hsl := c.rgb.HSL()
	return FromHSL(NewHSL(hsl.H+180, hsl.S, hsl.L))
}

// Blend interpolates per channel toward other: self*(1-ratio) + other*ratio,
// truncated to integers. The ratio is deliberately not validated; values
// outside [0,1] extrapolate and channel clamping absorbs the overshoot.
func (c Color) Blend(other Color, ratio float64) Color {
	inv := 1 - ratio
	return FromRGB(NewRGB(
		int(float64(c.rgb.R)*inv+float64(other.rgb.R)*ratio),
		int(float64(c.rgb.G)*inv+float64(other.rgb.G)*ratio),
		int(float64(c.rgb.B)*inv+float64(other.rgb.B)*ratio),
	))
}

// ContrastRatio returns the WCAG 2.0 contrast ratio between the two colors,
// (max(L1,L2)+0.05) / (min(L1,L2)+0.05), in [1,21].
func (c Color) ContrastRatio(other Color) float64 {
	l1 := c.rgb.Luminance() + 0.05
	l2 := other.rgb.Luminance() + 0.05
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return l1 / l2
}

// IsLight reports whether the luminance is above 0.5.
func (c Color) IsLight() bool {
	return c.rgb.IsLight()
}

// IsDark reports whether the luminance is at or below 0.5.
func (c Color) IsDark() bool {
	return c.rgb.IsDark()
}

// String implements fmt.Stringer as the hex literal.
func (c Color) String() string {
	return c.Hex()
}
