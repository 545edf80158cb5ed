// Package color implements the RGB, HSL and HSV color models, string parsing
// for common color literals, and perceptual manipulation operations.
package color

import "math"

// The conversions below work on normalized [0,1] channels and scale back to
// integer ranges by truncation, not rounding. Round-trips may therefore drift
// by one unit per component; callers compare with a tolerance of 1.

const third = 1.0 / 3.0

// mod1 wraps x into [0,1) with a Euclidean remainder.
func mod1(x float64) float64 {
	m := math.Mod(x, 1)
	if m < 0 {
		m++
	}
	return m
}

// rgbToHLS converts normalized RGB to hue, lightness, saturation, all in [0,1].
func rgbToHLS(r, g, b float64) (h, l, s float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	sumc := maxc + minc
	rangec := maxc - minc

	l = sumc / 2
	if minc == maxc {
		return 0, l, 0
	}

	if l <= 0.5 {
		s = rangec / sumc
	} else {
		s = rangec / (2 - sumc)
	}

	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h = mod1(h / 6)

	return h, l, s
}

// hlsToRGB converts hue, lightness, saturation in [0,1] to normalized RGB.
func hlsToRGB(h, l, s float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}

	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2

	return hlsValue(m1, m2, h+third), hlsValue(m1, m2, h), hlsValue(m1, m2, h-third)
}

func hlsValue(m1, m2, hue float64) float64 {
	hue = mod1(hue)
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6
	default:
		return m1
	}
}

// rgbToHSV converts normalized RGB to hue, saturation, value, all in [0,1].
func rgbToHSV(r, g, b float64) (h, s, v float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))

	v = maxc
	if minc == maxc {
		return 0, 0, v
	}
	s = (maxc - minc) / maxc

	rc := (maxc - r) / (maxc - minc)
	gc := (maxc - g) / (maxc - minc)
	bc := (maxc - b) / (maxc - minc)
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2 + rc - bc
	default:
		h = 4 + gc - rc
	}
	h = mod1(h / 6)

	return h, s, v
}

// hsvToRGB converts hue, saturation, value in [0,1] to normalized RGB.
func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch i % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// clamp constrains v to the inclusive range [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrapDegrees wraps a hue into [0,360) so that -10 becomes 350.
func wrapDegrees(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}
