package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crestline/showroom/internal/deal"
	showerrors "github.com/crestline/showroom/internal/errors"
	"github.com/crestline/showroom/internal/ui/components"
	"github.com/crestline/showroom/internal/ui/theme"
)

// ErrorKeyMap defines key bindings for the error screen.
type ErrorKeyMap struct {
	Restart key.Binding
	Quit    key.Binding
}

// DefaultErrorKeyMap returns the default bindings for the error screen.
func DefaultErrorKeyMap() ErrorKeyMap {
	return ErrorKeyMap{
		Restart: key.NewBinding(
			key.WithKeys("enter", "esc", "ctrl+r"),
			key.WithHelp("enter", "start over"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ErrorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ErrorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Restart, k.Quit}}
}

// ErrorView is the terminal error screen. The kiosk never shows raw error
// text to a customer; it shows a friendly line and routes back to the start.
type ErrorView struct {
	width  int
	height int

	err    error
	panel  components.PanelModel
	styles theme.Styles
	keyMap ErrorKeyMap
}

// NewError creates the error view.
func NewError(styles theme.Styles, err error) ErrorView {
	v := ErrorView{
		err:    err,
		panel:  components.NewPanel(styles, "Something went wrong"),
		styles: styles,
		keyMap: DefaultErrorKeyMap(),
	}
	v.panel.SetContent(v.message())
	return v
}

func (v ErrorView) message() string {
	msg := "The kiosk hit a problem. Press enter to start over."
	if showerrors.GetCode(v.err) == showerrors.Network {
		msg = "We can't reach the dealer system right now.\nA sales associate can still help you at the desk."
	}
	return v.styles.Text.Render(msg)
}

// Err returns the underlying error, for logging at the app level.
func (v ErrorView) Err() error {
	return v.err
}

// KeyMap returns the view's key map for footer help.
func (v ErrorView) KeyMap() ErrorKeyMap {
	return v.keyMap
}

// Update handles key input for the error screen.
func (v ErrorView) Update(msg tea.Msg) (ErrorView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, v.keyMap.Restart) {
			return v, navigateCmd(deal.Route{Step: deal.StepCategory})
		}
	}
	return v, nil
}

// View renders the error panel.
func (v ErrorView) View() string {
	return lipgloss.NewStyle().Padding(1, 2).Render(
		v.styles.Error.Render("⚠  ") + "\n" + v.panel.View())
}

// SetSize updates the view's dimensions.
func (v *ErrorView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.panel.SetWidth(min(width-6, 56))
}
