package components

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crestline/showroom/internal/ui/theme"
)

// ListItem is a selectable entry. The slug travels with the item so views
// can navigate without reverse-mapping display labels.
type ListItem struct {
	title       string
	description string
	slug        string
}

// Title returns the item's display title.
func (i ListItem) Title() string { return i.title }

// Description returns the item's display description.
func (i ListItem) Description() string { return i.description }

// FilterValue returns the value used for filtering.
func (i ListItem) FilterValue() string { return i.title }

// Slug returns the item's slug.
func (i ListItem) Slug() string { return i.slug }

// NewListItem creates a list item with a title, description, and slug.
func NewListItem(title, description, slug string) ListItem {
	return ListItem{title: title, description: description, slug: slug}
}

// ListModel wraps the bubbles list with showroom styling.
type ListModel struct {
	list   list.Model
	styles theme.Styles
	width  int
	height int
}

// NewList creates a list with the showroom delegate. Filtering, status bar,
// and built-in help are off since the kiosk footer owns help display.
func NewList(styles theme.Styles, title string, items []ListItem, width, height int) ListModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.CrestlineGold).
		BorderForeground(theme.CrestlineGold)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.CrestlineGoldDark).
		BorderForeground(theme.CrestlineGold)

	l := list.New(listItems, delegate, width, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.Styles.Title = styles.Title

	return ListModel{
		list:   l,
		styles: styles,
		width:  width,
		height: height,
	}
}

// Update handles list navigation.
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the list.
func (m ListModel) View() string {
	return m.list.View()
}

// SelectedItem returns the selected item and whether one is selected.
func (m ListModel) SelectedItem() (ListItem, bool) {
	item := m.list.SelectedItem()
	if item == nil {
		return ListItem{}, false
	}
	listItem, ok := item.(ListItem)
	if !ok {
		return ListItem{}, false
	}
	return listItem, true
}

// SelectedIndex returns the index of the selected item.
func (m ListModel) SelectedIndex() int {
	return m.list.Index()
}

// SetItems replaces all items in the list.
func (m *ListModel) SetItems(items []ListItem) {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}
	m.list.SetItems(listItems)
}

// Items returns all items in the list.
func (m ListModel) Items() []ListItem {
	items := m.list.Items()
	result := make([]ListItem, 0, len(items))
	for _, item := range items {
		if listItem, ok := item.(ListItem); ok {
			result = append(result, listItem)
		}
	}
	return result
}

// SetSize updates the list's dimensions.
func (m *ListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height)
}

// SetTitle updates the list's title.
func (m *ListModel) SetTitle(title string) {
	m.list.Title = title
}

// Len returns the number of items in the list.
func (m ListModel) Len() int {
	return len(m.list.Items())
}

// IsEmpty reports whether the list has no items.
func (m ListModel) IsEmpty() bool {
	return m.Len() == 0
}

// Select moves the selection to the specified index.
func (m *ListModel) Select(index int) {
	m.list.Select(index)
}
