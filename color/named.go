package color

import (
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// namedColors is the fixed table of recognized color names. It is initialized
// once and never mutated.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#00ff00",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
	"gray":    "#808080",
	"grey":    "#808080",
	"navy":    "#000080",
	"teal":    "#008080",
	"olive":   "#808000",
	"maroon":  "#800000",
	"aqua":    "#00ffff",
	"lime":    "#00ff00",
	"silver":  "#c0c0c0",
}

// maxSuggestDistance bounds how far a levenshtein fallback suggestion may be
// from the input before it stops being helpful.
const maxSuggestDistance = 3

// Names returns all recognized color names in sorted order.
func Names() []string {
	names := lo.Keys(namedColors)
	slices.Sort(names)
	return names
}

// Lookup resolves a color name to its RGB value.
func Lookup(name string) mo.Option[RGB] {
	hex, ok := namedColors[name]
	if !ok {
		return mo.None[RGB]()
	}
	rgb, err := parseHex(hex)
	if err != nil {
		return mo.None[RGB]()
	}
	return mo.Some(rgb)
}

// NameOf reverse-resolves an RGB value to a color name. Aliases sharing a hex
// value (gray/grey, cyan/aqua, green/lime) resolve to the alphabetically
// first name.
func NameOf(c RGB) mo.Option[string] {
	hex := c.Hex()
	for _, name := range Names() {
		if namedColors[name] == hex {
			return mo.Some(name)
		}
	}
	return mo.None[string]()
}

// SuggestName proposes the closest recognized name for a misspelled input,
// preferring fuzzy subsequence matches and falling back to edit distance.
func SuggestName(s string) mo.Option[string] {
	if s == "" {
		return mo.None[string]()
	}

	ranks := fuzzy.RankFindFold(s, Names())
	if len(ranks) > 0 {
		slices.SortFunc(ranks, func(a, b fuzzy.Rank) int {
			return a.Distance - b.Distance
		})
		return mo.Some(ranks[0].Target)
	}

	closest := lo.MinBy(Names(), func(a, b string) bool {
		return levenshtein.Distance(s, a) < levenshtein.Distance(s, b)
	})
	if levenshtein.Distance(s, closest) > maxSuggestDistance {
		return mo.None[string]()
	}
	return mo.Some(closest)
}
