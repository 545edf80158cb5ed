package color

// HSV is a cylindrical color with hue in degrees [0,360) and saturation and
// value in percent [0,100].
type HSV struct {
	H int `json:"h"`
	S int `json:"s"`
	V int `json:"v"`
}

// NewHSV builds an HSV value, wrapping the hue modulo 360 and clamping
// saturation and value into [0,100].
func NewHSV(h, s, v int) HSV {
	return HSV{
		H: wrapDegrees(h),
		S: clamp(s, 0, 100),
		V: clamp(v, 0, 100),
	}
}

// RGB converts back to RGB channels, truncating to integers.
func (c HSV) RGB() RGB {
	r, g, b := hsvToRGB(float64(c.H)/360, float64(c.S)/100, float64(c.V)/100)
	return NewRGB(int(r*255), int(g*255), int(b*255))
}

// Hex renders the color as a lowercase "#rrggbb" literal.
func (c HSV) Hex() string {
	return c.RGB().Hex()
}
