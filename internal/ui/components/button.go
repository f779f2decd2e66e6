package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/crestline/showroom/internal/ui/theme"
)

// ButtonModel is a focusable button.
type ButtonModel struct {
	label    string
	focused  bool
	disabled bool
	styles   theme.Styles
}

// NewButton creates a button with a label.
func NewButton(styles theme.Styles, label string) ButtonModel {
	return ButtonModel{
		label:  label,
		styles: styles,
	}
}

// View renders the button in its current state.
func (m ButtonModel) View() string {
	switch {
	case m.disabled:
		return m.styles.ButtonDisabled.Render(m.label)
	case m.focused:
		return m.styles.ButtonFocused.Render(m.label)
	default:
		return m.styles.Button.Render(m.label)
	}
}

// Focus gives the button focus.
func (m *ButtonModel) Focus() {
	m.focused = true
}

// Blur removes focus from the button.
func (m *ButtonModel) Blur() {
	m.focused = false
}

// Focused reports whether the button has focus.
func (m ButtonModel) Focused() bool {
	return m.focused
}

// SetDisabled enables or disables the button.
func (m *ButtonModel) SetDisabled(disabled bool) {
	m.disabled = disabled
}

// Disabled reports whether the button is disabled.
func (m ButtonModel) Disabled() bool {
	return m.disabled
}

// Label returns the button's label.
func (m ButtonModel) Label() string {
	return m.label
}

// SetLabel updates the button's label.
func (m *ButtonModel) SetLabel(label string) {
	m.label = label
}

// ButtonGroup is a horizontal row of buttons with a single focus cursor.
type ButtonGroup struct {
	buttons []ButtonModel
	cursor  int
}

// NewButtonGroup creates a button group, focusing the first enabled button.
func NewButtonGroup(buttons ...ButtonModel) ButtonGroup {
	g := ButtonGroup{buttons: buttons}
	g.focusCursor()
	return g
}

// Next moves focus to the next enabled button, wrapping around.
func (g *ButtonGroup) Next() {
	g.move(1)
}

// Prev moves focus to the previous enabled button, wrapping around.
func (g *ButtonGroup) Prev() {
	g.move(-1)
}

func (g *ButtonGroup) move(delta int) {
	if len(g.buttons) == 0 {
		return
	}
	for i := 0; i < len(g.buttons); i++ {
		g.cursor = (g.cursor + delta + len(g.buttons)) % len(g.buttons)
		if !g.buttons[g.cursor].Disabled() {
			break
		}
	}
	g.focusCursor()
}

func (g *ButtonGroup) focusCursor() {
	for i := range g.buttons {
		if i == g.cursor && !g.buttons[i].Disabled() {
			g.buttons[i].Focus()
		} else {
			g.buttons[i].Blur()
		}
	}
}

// Cursor returns the index of the focused button.
func (g ButtonGroup) Cursor() int {
	return g.cursor
}

// SetCursor moves focus to a specific button index.
func (g *ButtonGroup) SetCursor(i int) {
	if i < 0 || i >= len(g.buttons) {
		return
	}
	g.cursor = i
	g.focusCursor()
}

// Selected returns the focused button, or a zero button if the group is
// empty.
func (g ButtonGroup) Selected() ButtonModel {
	if g.cursor < 0 || g.cursor >= len(g.buttons) {
		return ButtonModel{}
	}
	return g.buttons[g.cursor]
}

// SetDisabled enables or disables the button at an index.
func (g *ButtonGroup) SetDisabled(i int, disabled bool) {
	if i < 0 || i >= len(g.buttons) {
		return
	}
	g.buttons[i].SetDisabled(disabled)
	g.focusCursor()
}

// Len returns the number of buttons in the group.
func (g ButtonGroup) Len() int {
	return len(g.buttons)
}

// View renders the buttons joined horizontally.
func (g ButtonGroup) View() string {
	views := make([]string, len(g.buttons))
	for i, b := range g.buttons {
		views[i] = b.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
