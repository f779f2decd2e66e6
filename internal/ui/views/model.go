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

// ModelKeyMap defines key bindings for the model screen.
type ModelKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// DefaultModelKeyMap returns the default bindings for the model screen.
func DefaultModelKeyMap() ModelKeyMap {
	return ModelKeyMap{
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
func (k ModelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ModelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back},
		{k.Help, k.Quit},
	}
}

// ModelView is the model selection step. It shows the chosen category's
// models along with live inventory counts from the dealer lot.
type ModelView struct {
	width  int
	height int

	category catalog.Category
	counts   map[string]int
	loading  bool

	list    components.ListModel
	spinner components.SpinnerModel
	styles  theme.Styles
	keyMap  ModelKeyMap
}

// NewModel creates the model selection view for a category.
func NewModel(styles theme.Styles, category catalog.Category) ModelView {
	v := ModelView{
		category: category,
		loading:  true,
		spinner:  components.NewSpinner(styles, "Checking the lot..."),
		styles:   styles,
		keyMap:   DefaultModelKeyMap(),
	}
	v.list = components.NewList(styles, "Choose your "+category.Name, v.buildItems(), 52, 14)
	return v
}

func (v ModelView) buildItems() []components.ListItem {
	items := make([]components.ListItem, len(v.category.Models))
	for i, m := range v.category.Models {
		items[i] = components.NewListItem(m.Name, v.describeModel(m), m.Slug())
	}
	return items
}

func (v ModelView) describeModel(m catalog.Model) string {
	if v.loading {
		return "Checking availability"
	}
	n, ok := v.counts[m.Name]
	if !ok || n == 0 {
		return "Available to order"
	}
	if n == 1 {
		return "1 on the lot"
	}
	return fmt.Sprintf("%d on the lot", n)
}

// KeyMap returns the view's key map for footer help.
func (v ModelView) KeyMap() ModelKeyMap {
	return v.keyMap
}

// Init starts the spinner while counts load.
func (v ModelView) Init() tea.Cmd {
	return v.spinner.Init()
}

// SetCounts installs the inventory counts and stops the loading state.
func (v *ModelView) SetCounts(counts map[string]int) {
	v.counts = counts
	v.loading = false
	v.list.SetItems(v.buildItems())
}

// Loading reports whether inventory counts are still being fetched.
func (v ModelView) Loading() bool {
	return v.loading
}

// Update handles key input for the model screen.
func (v ModelView) Update(msg tea.Msg) (ModelView, tea.Cmd) {
	switch msg := msg.(type) {
	case InventoryCountsMsg:
		v.SetCounts(msg.Counts)
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keyMap.Select):
			item, ok := v.list.SelectedItem()
			if !ok {
				return v, nil
			}
			next := deal.StepColor
			for _, m := range v.category.Models {
				if m.Slug() == item.Slug() && m.HasCabOptions() {
					next = deal.StepCab
					break
				}
			}
			return v, navigateCmd(deal.Route{Step: next, ModelSlug: item.Slug()})

		case key.Matches(msg, v.keyMap.Back):
			return v, navigateCmd(deal.Route{Step: deal.StepCategory})
		}
	}

	if v.loading {
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		if cmd != nil {
			return v, cmd
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// View renders the model list, with a spinner while counts load.
func (v ModelView) View() string {
	body := v.list.View()
	if v.loading {
		body += "\n" + v.spinner.View()
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

// SetSize updates the view's dimensions.
func (v *ModelView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.list.SetSize(min(width-4, 64), max(height-8, 6))
}
