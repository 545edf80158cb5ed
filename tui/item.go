// Package tui provides the interactive color picker terminal interface.
package tui

import (
	"fmt"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/style"
	"github.com/huekit-cli/huekit/swatch"
)

// listItem implements the list.Item interface, wrapping a named or recent color for terminal display.
type listItem struct {
	name   string
	recent bool
	color  color.Color
}

// Title retrieves the primary display text for the list item.
func (t listItem) Title() string {
	title := fmt.Sprintf("%s %s", swatch.Render(t.color), t.name)
	if t.recent {
		title += " " + style.Faint("(recent)")
	}
	return title
}

// Description retrieves the secondary metadata line for the list item.
func (t listItem) Description() string {
	hsl := t.color.HSL()

	tone := "dark"
	if t.color.IsLight() {
		tone = "light"
	}

	return fmt.Sprintf("%s %s %s", t.color.Hex(), hsl.CSS(), style.Faint(tone))
}

// FilterValue returns the string used for fuzzy filtering within the list.
func (t listItem) FilterValue() string {
	return t.name + " " + t.color.Hex()
}
