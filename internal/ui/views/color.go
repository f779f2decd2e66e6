package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crestline/showroom/internal/catalog"
	"github.com/crestline/showroom/internal/deal"
	"github.com/crestline/showroom/internal/ui/components"
	"github.com/crestline/showroom/internal/ui/theme"
)

// ColorsChosenMsg reports the customer's two color preferences.
type ColorsChosenMsg struct {
	First  string
	Second string
}

// ColorKeyMap defines key bindings for the color preference screen.
type ColorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Skip   key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// DefaultColorKeyMap returns the default bindings for the color screen.
func DefaultColorKeyMap() ColorKeyMap {
	return ColorKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "just one color"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ColorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ColorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Skip, k.Help, k.Quit},
	}
}

// ColorView is the two-pick color preference step. The customer picks a
// first choice, then a second choice from the remaining colors.
type ColorView struct {
	width  int
	height int

	model   catalog.Model
	colors  []string
	first   string
	picking int // 0 = first choice, 1 = second choice

	list   components.ListModel
	styles theme.Styles
	keyMap ColorKeyMap

	backRoute deal.Route
}

// NewColor creates the color preference view. backRoute is where esc goes,
// which depends on whether the model has cab options.
func NewColor(styles theme.Styles, model catalog.Model, colors []string, backRoute deal.Route) ColorView {
	v := ColorView{
		model:     model,
		colors:    colors,
		styles:    styles,
		keyMap:    DefaultColorKeyMap(),
		backRoute: backRoute,
	}
	v.list = components.NewList(styles, "First color choice", v.buildItems(), 44, 14)
	return v
}

func (v ColorView) buildItems() []components.ListItem {
	items := make([]components.ListItem, 0, len(v.colors))
	for _, c := range v.colors {
		if v.picking == 1 && c == v.first {
			continue
		}
		items = append(items, components.NewListItem(c, "", catalog.ToSlug(c)))
	}
	return items
}

// KeyMap returns the view's key map for footer help.
func (v ColorView) KeyMap() ColorKeyMap {
	return v.keyMap
}

// PickingSecond reports whether the view is on the second choice.
func (v ColorView) PickingSecond() bool {
	return v.picking == 1
}

// FirstChoice returns the selected first color, empty until picked.
func (v ColorView) FirstChoice() string {
	return v.first
}

// Update handles key input for the color screen.
func (v ColorView) Update(msg tea.Msg) (ColorView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keyMap.Select):
			item, ok := v.list.SelectedItem()
			if !ok {
				return v, nil
			}
			if v.picking == 0 {
				v.first = item.Title()
				v.picking = 1
				v.list.SetItems(v.buildItems())
				v.list.SetTitle("Second color choice")
				v.list.Select(0)
				return v, nil
			}
			first, second := v.first, item.Title()
			return v, func() tea.Msg {
				return ColorsChosenMsg{First: first, Second: second}
			}

		case key.Matches(msg, v.keyMap.Skip):
			// The second preference is optional; one color is a complete
			// answer.
			if v.picking == 1 {
				first := v.first
				return v, func() tea.Msg {
					return ColorsChosenMsg{First: first}
				}
			}

		case key.Matches(msg, v.keyMap.Back):
			if v.picking == 1 {
				v.picking = 0
				v.first = ""
				v.list.SetItems(v.buildItems())
				v.list.SetTitle("First color choice")
				v.list.Select(0)
				return v, nil
			}
			return v, navigateCmd(v.backRoute)
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the color picker.
func (v ColorView) View() string {
	body := v.list.View()
	if v.picking == 1 {
		body = v.styles.RenderKeyValue("First choice", v.first) + "\n\n" + body +
			"\n" + v.styles.Help.Render("s keeps just the one color")
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

// SetSize updates the view's dimensions.
func (v *ColorView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.list.SetSize(min(width-4, 56), max(height-10, 6))
}
