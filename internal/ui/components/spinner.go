package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/crestline/showroom/internal/ui/theme"
)

// SpinnerModel wraps the bubbles spinner with showroom styling. Views use
// it while inventory counts or trade-in estimates are loading.
type SpinnerModel struct {
	spinner spinner.Model
	message string
	styles  theme.Styles
	visible bool
}

// NewSpinner creates a spinner with an optional message.
func NewSpinner(styles theme.Styles, message string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner
	return SpinnerModel{
		spinner: s,
		message: message,
		styles:  styles,
		visible: true,
	}
}

// Init starts the spinner animation.
func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles spinner tick messages.
func (m SpinnerModel) Update(msg tea.Msg) (SpinnerModel, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the spinner with its message.
func (m SpinnerModel) View() string {
	if !m.visible {
		return ""
	}
	if m.message == "" {
		return m.spinner.View()
	}
	return m.spinner.View() + " " + m.message
}

// SetMessage updates the spinner's message.
func (m *SpinnerModel) SetMessage(msg string) {
	m.message = msg
}

// Message returns the current spinner message.
func (m SpinnerModel) Message() string {
	return m.message
}

// Show makes the spinner visible.
func (m *SpinnerModel) Show() {
	m.visible = true
}

// Hide makes the spinner invisible.
func (m *SpinnerModel) Hide() {
	m.visible = false
}

// IsVisible reports whether the spinner is visible.
func (m SpinnerModel) IsVisible() bool {
	return m.visible
}

// Tick returns a command that sends a spinner tick.
func (m SpinnerModel) Tick() tea.Cmd {
	return m.spinner.Tick
}
