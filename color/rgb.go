package color

import "fmt"

// RGB is an additive color with integer channels in [0,255].
// Values are immutable after construction; use NewRGB to get clamping.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// NewRGB builds an RGB value, silently clamping each channel into [0,255].
// Out-of-range inputs are a normal condition, not an error.
func NewRGB(r, g, b int) RGB {
	return RGB{
		R: clamp(r, 0, 255),
		G: clamp(g, 0, 255),
		B: clamp(b, 0, 255),
	}
}

// Hex renders the color as a lowercase "#rrggbb" literal.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSL converts to the HSL coordinate view. Integer truncation makes the
// conversion lossy; RGB -> HSL -> RGB may be off by one per channel.
func (c RGB) HSL() HSL {
	h, l, s := rgbToHLS(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	return NewHSL(int(h*360), int(s*100), int(l*100))
}

// HSV converts to the HSV coordinate view, with the same truncation caveat as HSL.
func (c RGB) HSV() HSV {
	h, s, v := rgbToHSV(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	return NewHSV(int(h*360), int(s*100), int(v*100))
}

// Luminance returns the relative luminance in [0,1] as the weighted channel
// sum 0.2126 R + 0.7152 G + 0.0722 B. Channels are not gamma corrected.
func (c RGB) Luminance() float64 {
	return 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
}

// IsLight reports whether the luminance is above 0.5.
func (c RGB) IsLight() bool {
	return c.Luminance() > 0.5
}

// IsDark reports whether the luminance is at or below 0.5.
// Exactly one of IsLight and IsDark holds for every color.
func (c RGB) IsDark() bool {
	return c.Luminance() <= 0.5
}
