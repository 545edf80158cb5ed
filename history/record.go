package history

import (
	"github.com/huekit-cli/huekit/color"
)

// SavedColor represents a single color entry preserved in the user's history.
type SavedColor struct {
	Hex  string `json:"hex"`
	Name string `json:"name,omitempty"`
	Rank int    `json:"rank"`
}

// Color reconstructs the parsed color value from the persisted hex notation.
func (s *SavedColor) Color() (color.Color, error) {
	return color.FromString(s.Hex)
}

func (s *SavedColor) String() string {
	if s.Name != "" {
		return s.Hex + " (" + s.Name + ")"
	}
	return s.Hex
}

func newSavedColor(c color.Color) *SavedColor {
	record := &SavedColor{Hex: c.Hex()}
	if name, ok := color.NameOf(c.RGB()).Get(); ok {
		record.Name = name
	}
	return record
}
