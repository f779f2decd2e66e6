// Package components provides reusable TUI building blocks for the showroom
// kiosk: header, footer, buttons, panels, lists, sliders, and spinners.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/crestline/showroom/internal/ui/theme"
)

// HeaderModel is the kiosk header. It shows the dealership name on the
// left and the wizard progress on the right.
type HeaderModel struct {
	dealer    string
	tagline   string
	stepLine  string
	width     int
	styles    theme.Styles
}

// NewHeader creates a header with the dealership branding.
func NewHeader(styles theme.Styles, dealer, tagline string) HeaderModel {
	return HeaderModel{
		dealer:  dealer,
		tagline: tagline,
		styles:  styles,
	}
}

// View renders the header.
func (m HeaderModel) View() string {
	left := m.styles.Logo.Render(m.dealer)
	if m.tagline != "" {
		left += " " + m.styles.TagLine.Render(m.tagline)
	}

	right := m.stepLine

	if m.width <= 0 {
		if right != "" {
			return m.styles.Header.Render(left + "  " + right)
		}
		return m.styles.Header.Render(left)
	}

	// Header padding is 2 on each side.
	available := m.width - 4
	spacerWidth := available - lipgloss.Width(left) - lipgloss.Width(right)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	return m.styles.Header.Copy().Width(m.width).Render(left + spacer + right)
}

// SetStepLine sets the progress text shown on the right side.
func (m *HeaderModel) SetStepLine(line string) {
	m.stepLine = line
}

// ClearStepLine removes the progress text.
func (m *HeaderModel) ClearStepLine() {
	m.stepLine = ""
}

// SetWidth updates the header's width.
func (m *HeaderModel) SetWidth(width int) {
	m.width = width
}

// Width returns the header's width.
func (m HeaderModel) Width() int {
	return m.width
}

// Dealer returns the dealership name.
func (m HeaderModel) Dealer() string {
	return m.dealer
}

// SetTagline updates the tagline shown next to the dealership name.
func (m *HeaderModel) SetTagline(tagline string) {
	m.tagline = tagline
}
