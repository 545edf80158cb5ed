package color

import "fmt"

// HSL is a cylindrical color with hue in degrees [0,360) and saturation and
// lightness in percent [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// NewHSL builds an HSL value, wrapping the hue modulo 360 (so -10 becomes 350)
// and clamping saturation and lightness into [0,100].
func NewHSL(h, s, l int) HSL {
	return HSL{
		H: wrapDegrees(h),
		S: clamp(s, 0, 100),
		L: clamp(l, 0, 100),
	}
}

// RGB converts back to RGB channels, truncating to integers.
func (c HSL) RGB() RGB {
	r, g, b := hlsToRGB(float64(c.H)/360, float64(c.L)/100, float64(c.S)/100)
	return NewRGB(int(r*255), int(g*255), int(b*255))
}

// Hex renders the color as a lowercase "#rrggbb" literal.
func (c HSL) Hex() string {
	return c.RGB().Hex()
}

// CSS renders the color in the functional form "hsl(h, s%, l%)".
func (c HSL) CSS() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}
