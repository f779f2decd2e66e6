// Package views provides the wizard screens for the showroom kiosk. Each
// view owns its key bindings and renders one step of the deal builder.
package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crestline/showroom/internal/catalog"
	"github.com/crestline/showroom/internal/deal"
	"github.com/crestline/showroom/internal/ui/components"
	"github.com/crestline/showroom/internal/ui/theme"
)

// CategoryKeyMap defines key bindings for the category screen.
type CategoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// DefaultCategoryKeyMap returns the default bindings for the category screen.
func DefaultCategoryKeyMap() CategoryKeyMap {
	return CategoryKeyMap{
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
func (k CategoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select}
}

// FullHelp implements help.KeyMap.
func (k CategoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Help, k.Quit},
	}
}

// CategoryModel is the first wizard step: pick a vehicle category.
type CategoryModel struct {
	width  int
	height int

	list   components.ListModel
	styles theme.Styles
	keyMap CategoryKeyMap
}

// NewCategory creates the category selection view.
func NewCategory(styles theme.Styles, cat *catalog.Catalog) CategoryModel {
	items := make([]components.ListItem, len(cat.Categories))
	for i, c := range cat.Categories {
		desc := c.Tagline
		if desc == "" {
			desc = fmt.Sprintf("%d models", c.ModelCount())
		}
		items[i] = components.NewListItem(c.Name, desc, c.Slug())
	}

	return CategoryModel{
		list:   components.NewList(styles, "What are you shopping for?", items, 48, 14),
		styles: styles,
		keyMap: DefaultCategoryKeyMap(),
	}
}

// KeyMap returns the view's key map for footer help.
func (m CategoryModel) KeyMap() CategoryKeyMap {
	return m.keyMap
}

// Update handles key input for the category screen.
func (m CategoryModel) Update(msg tea.Msg) (CategoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Select) {
			if item, ok := m.list.SelectedItem(); ok {
				return m, navigateCmd(deal.Route{
					Step:         deal.StepModel,
					CategorySlug: item.Slug(),
				})
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the category list.
func (m CategoryModel) View() string {
	return lipgloss.NewStyle().Padding(1, 2).Render(m.list.View())
}

// SetSize updates the view's dimensions.
func (m *CategoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(min(width-4, 60), max(height-8, 6))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
