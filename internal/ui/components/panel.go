package components

import (
	"github.com/crestline/showroom/internal/ui/theme"
)

// PanelModel is a bordered content box with an optional title.
type PanelModel struct {
	title   string
	content string
	width   int
	focused bool
	styles  theme.Styles
}

// NewPanel creates a panel with a title.
func NewPanel(styles theme.Styles, title string) PanelModel {
	return PanelModel{
		title:  title,
		styles: styles,
	}
}

// View renders the panel.
func (m PanelModel) View() string {
	style := m.styles.Panel
	if m.focused {
		style = m.styles.PanelFocused
	}
	if m.width > 0 {
		style = style.Copy().Width(m.width)
	}

	body := m.content
	if m.title != "" {
		body = m.styles.Title.Render(m.title) + "\n" + body
	}
	return style.Render(body)
}

// SetContent sets the panel's body text.
func (m *PanelModel) SetContent(content string) {
	m.content = content
}

// Content returns the panel's body text.
func (m PanelModel) Content() string {
	return m.content
}

// SetTitle updates the panel's title.
func (m *PanelModel) SetTitle(title string) {
	m.title = title
}

// Title returns the panel's title.
func (m PanelModel) Title() string {
	return m.title
}

// SetWidth sets a fixed panel width. Zero lets the content decide.
func (m *PanelModel) SetWidth(width int) {
	m.width = width
}

// Focus marks the panel as the focused section.
func (m *PanelModel) Focus() {
	m.focused = true
}

// Blur removes focus from the panel.
func (m *PanelModel) Blur() {
	m.focused = false
}

// Focused reports whether the panel is focused.
func (m PanelModel) Focused() bool {
	return m.focused
}
