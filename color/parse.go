package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FormatError reports an input that matches no recognized color grammar.
// Parsing is deterministic, so the error is never worth retrying.
type FormatError struct {
	Input string
	Hint  string
}

func (e *FormatError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("unknown color format: %s (did you mean %q?)", e.Input, e.Hint)
	}
	return "unknown color format: " + e.Input
}

// Functional notation accepts integers only; an alpha component, if present,
// is matched past and ignored. Percent signs on hsl() S/L are optional.
var (
	rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)
	hslPattern = regexp.MustCompile(`^hsla?\(\s*(\d+)\s*,\s*(\d+)%?\s*,\s*(\d+)%?`)
)

// FromString parses a color literal: "#rgb" / "#rrggbb" hex, "rgb(r, g, b)" /
// "rgba(...)", "hsl(h, s%, l%)" / "hsla(...)", or one of the fixed named
// colors. Surrounding whitespace and letter case are insignificant.
func FromString(s string) (Color, error) {
	lowered := strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(lowered, "#"):
		rgb, err := parseHex(lowered)
		if err != nil {
			return Color{}, err
		}
		return FromRGB(rgb), nil
	case strings.HasPrefix(lowered, "rgb"):
		m := rgbPattern.FindStringSubmatch(lowered)
		if m == nil {
			return Color{}, &FormatError{Input: s}
		}
		return FromRGB(NewRGB(atoiClamped(m[1]), atoiClamped(m[2]), atoiClamped(m[3]))), nil
	case strings.HasPrefix(lowered, "hsl"):
		m := hslPattern.FindStringSubmatch(lowered)
		if m == nil {
			return Color{}, &FormatError{Input: s}
		}
		return FromHSL(NewHSL(atoiClamped(m[1]), atoiClamped(m[2]), atoiClamped(m[3]))), nil
	}

	if hex, ok := namedColors[lowered]; ok {
		rgb, err := parseHex(hex)
		if err != nil {
			return Color{}, err
		}
		return FromRGB(rgb), nil
	}

	ferr := &FormatError{Input: s}
	if hint, ok := SuggestName(lowered).Get(); ok {
		ferr.Hint = hint
	}
	return Color{}, ferr
}

// parseHex accepts "#rrggbb" and the "#abc" shorthand, where each nibble is
// duplicated. Any other length or a non-hex digit is a format error.
func parseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")

	if len(hex) == 3 {
		var expanded strings.Builder
		for _, r := range hex {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		hex = expanded.String()
	}

	if len(hex) != 6 {
		return RGB{}, &FormatError{Input: s}
	}

	var channels [3]int
	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, &FormatError{Input: s}
		}
		channels[i] = int(v)
	}

	return NewRGB(channels[0], channels[1], channels[2]), nil
}

// atoiClamped converts a digit-only match to an int. Values beyond the int
// range saturate high; channel clamping brings them into range anyway.
func atoiClamped(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return v
}
