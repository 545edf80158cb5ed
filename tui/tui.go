// Package tui provides the interactive color picker terminal interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"

	"github.com/huekit-cli/huekit/color"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Base preselects the color to preview, skipping the picker list.
	Base mo.Option[color.Color]
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble, err := newBubble(options)
	if err != nil {
		return err
	}

	if base, ok := options.Base.Get(); ok {
		bubble.selected = base
		bubble.newState(previewState)
	} else {
		bubble.newState(pickState)
	}

	if _, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run(); err != nil {
		return err
	}

	bubble.printResult()
	return nil
}
