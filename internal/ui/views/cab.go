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

// CabKeyMap defines key bindings for the cab configuration screen.
type CabKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// DefaultCabKeyMap returns the default bindings for the cab screen.
func DefaultCabKeyMap() CabKeyMap {
	return CabKeyMap{
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
func (k CabKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp implements help.KeyMap.
func (k CabKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Help, k.Quit},
	}
}

// CabView is the cab configuration step, shown only for models that offer
// cab options.
type CabView struct {
	width  int
	height int

	model    catalog.Model
	category catalog.Category

	list   components.ListModel
	styles theme.Styles
	keyMap CabKeyMap
}

// NewCab creates the cab selection view for a model.
func NewCab(styles theme.Styles, model catalog.Model, category catalog.Category) CabView {
	items := make([]components.ListItem, len(model.CabOptions))
	for i, cab := range model.CabOptions {
		items[i] = components.NewListItem(cab, "", catalog.ToSlug(cab))
	}

	return CabView{
		model:    model,
		category: category,
		list:     components.NewList(styles, "Pick a cab for your "+model.Name, items, 48, 12),
		styles:   styles,
		keyMap:   DefaultCabKeyMap(),
	}
}

// KeyMap returns the view's key map for footer help.
func (v CabView) KeyMap() CabKeyMap {
	return v.keyMap
}

// Update handles key input for the cab screen.
func (v CabView) Update(msg tea.Msg) (CabView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keyMap.Select):
			if item, ok := v.list.SelectedItem(); ok {
				return v, navigateCmd(deal.Route{
					Step:      deal.StepColor,
					ModelSlug: v.model.Slug(),
					CabSlug:   item.Slug(),
				})
			}
			return v, nil

		case key.Matches(msg, v.keyMap.Back):
			return v, navigateCmd(deal.Route{
				Step:         deal.StepModel,
				CategorySlug: v.category.Slug(),
			})
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the cab list.
func (v CabView) View() string {
	return lipgloss.NewStyle().Padding(1, 2).Render(v.list.View())
}

// SetSize updates the view's dimensions.
func (v *CabView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.list.SetSize(min(width-4, 60), max(height-8, 6))
}
