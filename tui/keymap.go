// Package tui provides the interactive color picker terminal interface.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// statefulKeymap defines the keyboard interactions available within various application states.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	confirm,
	back,
	nextScheme, prevScheme,
	showHelp key.Binding
}

// setState updates the active keymap configuration to match the specified application state.
func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		nextScheme: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→", "next scheme"),
		),
		prevScheme: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←", "previous scheme"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// help returns the keybindings relevant to the active state.
func (k *statefulKeymap) help() []key.Binding {
	switch k.state {
	case previewState:
		return []key.Binding{k.nextScheme, k.prevScheme, k.confirm, k.back, k.quit}
	default:
		return []key.Binding{k.confirm, k.quit}
	}
}
