package components

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crestline/showroom/internal/ui/theme"
)

// StatusLevel classifies the footer status line.
type StatusLevel string

const (
	StatusInfo    StatusLevel = "info"
	StatusSuccess StatusLevel = "success"
	StatusWarning StatusLevel = "warning"
	StatusError   StatusLevel = "error"
)

// FooterModel is the kiosk footer. It shows an optional status line and
// contextual key help for the active view.
type FooterModel struct {
	help   help.Model
	keyMap help.KeyMap
	status string
	level  StatusLevel
	width  int
	styles theme.Styles
}

// NewFooter creates a footer bound to a view's key map.
func NewFooter(styles theme.Styles, keyMap help.KeyMap) FooterModel {
	h := help.New()
	h.ShowAll = false

	return FooterModel{
		help:   h,
		keyMap: keyMap,
		styles: styles,
	}
}

// Update handles the help toggle key.
func (m FooterModel) Update(msg tea.Msg) (FooterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, key.NewBinding(key.WithKeys("?"))) {
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// View renders the status line and help.
func (m FooterModel) View() string {
	var content string

	if m.status != "" {
		content = m.statusStyle().Render("● ") + m.status + "\n"
	}

	if m.keyMap != nil {
		m.help.Width = m.width
		content += m.help.View(m.keyMap)
	}

	return m.styles.Footer.Copy().Width(m.width).Render(content)
}

func (m FooterModel) statusStyle() lipgloss.Style {
	switch m.level {
	case StatusSuccess:
		return m.styles.Success
	case StatusWarning:
		return m.styles.Warning
	case StatusError:
		return m.styles.Error
	default:
		return m.styles.Info
	}
}

// SetStatus sets the status message with a level.
func (m *FooterModel) SetStatus(status string, level StatusLevel) {
	m.status = status
	m.level = level
}

// SetInfoStatus sets an info status message.
func (m *FooterModel) SetInfoStatus(status string) {
	m.SetStatus(status, StatusInfo)
}

// SetSuccessStatus sets a success status message.
func (m *FooterModel) SetSuccessStatus(status string) {
	m.SetStatus(status, StatusSuccess)
}

// SetWarningStatus sets a warning status message.
func (m *FooterModel) SetWarningStatus(status string) {
	m.SetStatus(status, StatusWarning)
}

// SetErrorStatus sets an error status message.
func (m *FooterModel) SetErrorStatus(status string) {
	m.SetStatus(status, StatusError)
}

// ClearStatus clears the status message.
func (m *FooterModel) ClearStatus() {
	m.status = ""
	m.level = ""
}

// Status returns the current status message.
func (m FooterModel) Status() string {
	return m.status
}

// Level returns the current status level.
func (m FooterModel) Level() StatusLevel {
	return m.level
}

// HasStatus reports whether there is a status message.
func (m FooterModel) HasStatus() bool {
	return m.status != ""
}

// SetWidth updates the footer's width.
func (m *FooterModel) SetWidth(width int) {
	m.width = width
}

// Width returns the footer's width.
func (m FooterModel) Width() int {
	return m.width
}

// SetKeyMap swaps the key map used for help display. The app does this
// when the active view changes.
func (m *FooterModel) SetKeyMap(keyMap help.KeyMap) {
	m.keyMap = keyMap
}

// ToggleFullHelp toggles between short and full help display.
func (m *FooterModel) ToggleFullHelp() {
	m.help.ShowAll = !m.help.ShowAll
}

// IsFullHelpShown reports whether full help is shown.
func (m FooterModel) IsFullHelpShown() bool {
	return m.help.ShowAll
}
