// Package tui provides the interactive color picker terminal interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"

	"github.com/huekit-cli/huekit/color"
	"github.com/huekit-cli/huekit/history"
	keys "github.com/huekit-cli/huekit/key"
	"github.com/huekit-cli/huekit/palette"
	"github.com/huekit-cli/huekit/style"
	"github.com/huekit-cli/huekit/swatch"
)

// state identifies the active interaction mode of the picker.
type state int

const (
	pickState state = iota
	previewState
)

// scheme pairs a palette derivation with its display name.
type scheme struct {
	name     string
	generate func(color.Color) []color.Color
}

// schemes lists the palette derivations cycled through in the preview state.
var schemes = []scheme{
	{"analogous", func(c color.Color) []color.Color {
		return palette.Analogous(c, viper.GetInt(keys.PaletteCount), viper.GetInt(keys.PaletteSpread))
	}},
	{"complementary", palette.Complementary},
	{"triadic", palette.Triadic},
	{"split-complementary", func(c color.Color) []color.Color {
		return palette.SplitComplementary(c, viper.GetInt(keys.PaletteSpread))
	}},
	{"monochromatic", func(c color.Color) []color.Color {
		colors, err := palette.Monochromatic(c, viper.GetInt(keys.PaletteCount))
		if err != nil {
			return []color.Color{c}
		}
		return colors
	}},
	{"gradient to complement", func(c color.Color) []color.Color {
		return palette.Gradient(c, c.Complement(), viper.GetInt(keys.PaletteSteps))
	}},
}

// statefulBubble encapsulates the picker state, including component models and the chosen color.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	colorsC list.Model
	helpC   help.Model

	width, height int

	selected    color.Color
	hasSelected bool
	schemeIndex int

	// result is printed after the program loop terminates.
	result []string
}

func newBubble(_ *Options) (*statefulBubble, error) {
	items, err := pickerItems()
	if err != nil {
		return nil, err
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(style.AccentColor).BorderForeground(style.ActiveBorderColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(style.SecondaryColor).BorderForeground(style.ActiveBorderColor)

	colorsC := list.New(items, delegate, 0, 0)
	colorsC.Title = "Pick a color"
	colorsC.Styles.Title = style.New().Foreground(style.Text).Background(style.Surface).Padding(0, 1)

	return &statefulBubble{
		keymap:  newStatefulKeymap(),
		colorsC: colorsC,
		helpC:   help.New(),
	}, nil
}

// pickerItems assembles the recent colors followed by the named color table.
func pickerItems() ([]list.Item, error) {
	var items []list.Item

	recents, err := history.All()
	if err != nil {
		return nil, err
	}

	for _, record := range recents {
		c, err := record.Color()
		if err != nil {
			continue
		}

		name := record.Name
		if name == "" {
			name = record.Hex
		}
		items = append(items, listItem{name: name, recent: true, color: c})
	}

	for _, name := range color.Names() {
		rgb, ok := color.Lookup(name).Get()
		if !ok {
			continue
		}
		items = append(items, listItem{name: name, color: color.FromRGB(rgb)})
	}

	return items, nil
}

// newState transitions the bubble and its keymap into the target state.
func (b *statefulBubble) newState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) Init() tea.Cmd {
	return nil
}

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.colorsC.SetSize(msg.Width, msg.Height-2)
		return b, nil

	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}

		switch b.state {
		case pickState:
			return b.updatePick(msg)
		case previewState:
			return b.updatePreview(msg)
		}
	}

	var cmd tea.Cmd
	b.colorsC, cmd = b.colorsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePick(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Let the list consume every keystroke while its filter input is active.
	if b.colorsC.FilterState() == list.Filtering {
		var cmd tea.Cmd
		b.colorsC, cmd = b.colorsC.Update(msg)
		return b, cmd
	}

	switch {
	case key.Matches(msg, b.keymap.quit):
		return b, tea.Quit
	case key.Matches(msg, b.keymap.confirm):
		if item, ok := b.colorsC.SelectedItem().(listItem); ok {
			b.selected = item.color
			b.hasSelected = true
			b.schemeIndex = 0
			b.newState(previewState)
		}
		return b, nil
	}

	var cmd tea.Cmd
	b.colorsC, cmd = b.colorsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, b.keymap.quit):
		return b, tea.Quit
	case key.Matches(msg, b.keymap.back):
		b.newState(pickState)
		return b, nil
	case key.Matches(msg, b.keymap.nextScheme):
		b.schemeIndex = (b.schemeIndex + 1) % len(schemes)
		return b, nil
	case key.Matches(msg, b.keymap.prevScheme):
		b.schemeIndex = (b.schemeIndex - 1 + len(schemes)) % len(schemes)
		return b, nil
	case key.Matches(msg, b.keymap.confirm):
		active := schemes[b.schemeIndex]
		b.result = lo.Map(active.generate(b.selected), func(c color.Color, _ int) string {
			return c.Hex()
		})
		return b, tea.Quit
	}

	return b, nil
}

func (b *statefulBubble) View() string {
	switch b.state {
	case previewState:
		return b.previewView()
	default:
		return b.colorsC.View() + "\n" + b.helpC.ShortHelpView(b.keymap.help())
	}
}

func (b *statefulBubble) previewView() string {
	active := schemes[b.schemeIndex]
	colors := active.generate(b.selected)

	var sb strings.Builder

	sb.WriteString(style.Title(fmt.Sprintf("%s %s", b.selected.Hex(), active.name)))
	sb.WriteString("\n\n")
	sb.WriteString(swatch.Strip(colors))
	sb.WriteString("\n\n")

	hexes := lo.Map(colors, func(c color.Color, _ int) string {
		return c.Hex()
	})

	width := b.width
	if width <= 0 {
		width = 80
	}
	sb.WriteString(wordwrap.String(strings.Join(hexes, "  "), width))
	sb.WriteString("\n\n")
	sb.WriteString(b.helpC.ShortHelpView(b.keymap.help()))

	return sb.String()
}

// printResult emits the confirmed palette to stdout once the alternate screen is released.
func (b *statefulBubble) printResult() {
	for _, hex := range b.result {
		fmt.Println(hex)
	}
}
