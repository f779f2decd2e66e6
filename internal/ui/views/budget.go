package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crestline/showroom/internal/constants"
	"github.com/crestline/showroom/internal/deal"
	"github.com/crestline/showroom/internal/finance"
	"github.com/crestline/showroom/internal/ui/components"
	"github.com/crestline/showroom/internal/ui/theme"
)

// BudgetConfirmedMsg reports the customer's budget settings.
type BudgetConfirmedMsg struct {
	MaxPayment         float64
	DownPaymentPercent float64
}

// BudgetKeyMap defines key bindings for the budget screen.
type BudgetKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	Continue key.Binding
	Back     key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// DefaultBudgetKeyMap returns the default bindings for the budget screen.
func DefaultBudgetKeyMap() BudgetKeyMap {
	return BudgetKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "lower"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "raise"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "up", "down"),
			key.WithHelp("tab", "switch slider"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
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
func (k BudgetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Tab, k.Continue, k.Back}
}

// FullHelp implements help.KeyMap.
func (k BudgetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Tab},
		{k.Continue, k.Back},
		{k.Help, k.Quit},
	}
}

// BudgetView is the buying-power step. Two sliders set the target monthly
// payment and down payment percent, and the panel updates live with what
// those settings can buy.
type BudgetView struct {
	width  int
	height int

	payment components.SliderModel
	down    components.SliderModel
	focused int // 0 = payment slider, 1 = down payment slider

	panel  components.PanelModel
	styles theme.Styles
	keyMap BudgetKeyMap

	backRoute deal.Route
}

// NewBudget creates the budget view seeded from the wizard state.
func NewBudget(styles theme.Styles, maxPayment, downPercent float64, backRoute deal.Route) BudgetView {
	payment := components.NewSlider(styles, "Target monthly payment",
		float64(constants.MinMonthlyPayment),
		float64(constants.MaxMonthlyPayment),
		float64(constants.MonthlyPaymentStep),
		maxPayment)
	payment.Focus()

	down := components.NewSlider(styles, "Down payment",
		float64(constants.MinDownPaymentPercent),
		float64(constants.MaxDownPaymentPercent),
		float64(constants.DownPaymentStep),
		downPercent)
	down.SetFormat(func(v float64) string { return fmt.Sprintf("%.0f%%", v) })

	v := BudgetView{
		payment:   payment,
		down:      down,
		panel:     components.NewPanel(styles, "Your buying power"),
		styles:    styles,
		keyMap:    DefaultBudgetKeyMap(),
		backRoute: backRoute,
	}
	v.refreshPanel()
	return v
}

// KeyMap returns the view's key map for footer help.
func (v BudgetView) KeyMap() BudgetKeyMap {
	return v.keyMap
}

// BuyingPower returns the current buying-power calculation.
func (v BudgetView) BuyingPower() finance.BuyingPowerResult {
	return finance.BuyingPower(v.payment.Value(), v.down.Value())
}

func (v *BudgetView) refreshPanel() {
	bp := v.BuyingPower()
	v.panel.SetContent(
		v.styles.RenderKeyValue("Vehicle price up to", theme.Dollars(bp.TotalBuyingPower)) + "\n" +
			v.styles.RenderKeyValue("Loan amount", theme.Dollars(bp.LoanAmount)) + "\n" +
			v.styles.RenderKeyValue("Down payment", theme.Dollars(bp.DownPaymentAmount)) + "\n" +
			v.styles.RenderKeyValue("Term", fmt.Sprintf("%d months", bp.Term)),
	)
}

func (v *BudgetView) focusedSlider() *components.SliderModel {
	if v.focused == 1 {
		return &v.down
	}
	return &v.payment
}

// Update handles key input for the budget screen.
func (v BudgetView) Update(msg tea.Msg) (BudgetView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keyMap.Left):
			v.focusedSlider().Decrease()
			v.refreshPanel()
			return v, nil

		case key.Matches(msg, v.keyMap.Right):
			v.focusedSlider().Increase()
			v.refreshPanel()
			return v, nil

		case key.Matches(msg, v.keyMap.Tab):
			v.focused = 1 - v.focused
			if v.focused == 1 {
				v.payment.Blur()
				v.down.Focus()
			} else {
				v.down.Blur()
				v.payment.Focus()
			}
			return v, nil

		case key.Matches(msg, v.keyMap.Continue):
			maxPayment, downPercent := v.payment.Value(), v.down.Value()
			return v, func() tea.Msg {
				return BudgetConfirmedMsg{
					MaxPayment:         maxPayment,
					DownPaymentPercent: downPercent,
				}
			}

		case key.Matches(msg, v.keyMap.Back):
			return v, navigateCmd(v.backRoute)
		}
	}
	return v, nil
}

// View renders the sliders and the live buying-power panel.
func (v BudgetView) View() string {
	body := v.styles.Title.Render("Set your budget") + "\n" +
		v.payment.View() + "\n\n" +
		v.down.View() + "\n\n" +
		v.panel.View()
	return lipgloss.NewStyle().Padding(1, 2).Render(body)
}

// SetSize updates the view's dimensions.
func (v *BudgetView) SetSize(width, height int) {
	v.width = width
	v.height = height

	track := min(width-30, 50)
	v.payment.SetWidth(track)
	v.down.SetWidth(track)
	v.panel.SetWidth(min(width-6, 56))
}
