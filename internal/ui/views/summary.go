package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crestline/showroom/internal/deal"
	"github.com/crestline/showroom/internal/finance"
	"github.com/crestline/showroom/internal/tradein"
	"github.com/crestline/showroom/internal/ui/components"
	"github.com/crestline/showroom/internal/ui/theme"
)

// SummaryKeyMap defines key bindings for the summary screen.
type SummaryKeyMap struct {
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
	Help    key.Binding
}

// DefaultSummaryKeyMap returns the default bindings for the summary screen.
func DefaultSummaryKeyMap() SummaryKeyMap {
	return SummaryKeyMap{
		Restart: key.NewBinding(
			key.WithKeys("enter", "ctrl+r"),
			key.WithHelp("enter", "start over"),
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
func (k SummaryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Back}
}

// FullHelp implements help.KeyMap.
func (k SummaryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Restart, k.Back},
		{k.Help, k.Quit},
	}
}

// SummaryView is the hand-off screen at the end of the wizard. A sales
// associate picks the deal up from here; the customer can hand the kiosk
// back by starting over.
type SummaryView struct {
	width  int
	height int

	summary     deal.Summary
	buyingPower finance.BuyingPowerResult
	trade       *tradein.Outcome
	appraisalID string
	backRoute   deal.Route

	panel  components.PanelModel
	styles theme.Styles
	keyMap SummaryKeyMap
}

// NewSummary creates the summary view. trade is nil when the customer
// skipped the estimator.
func NewSummary(styles theme.Styles, sum deal.Summary, bp finance.BuyingPowerResult, trade *tradein.Outcome, appraisalID string, backRoute deal.Route) SummaryView {
	v := SummaryView{
		summary:     sum,
		buyingPower: bp,
		trade:       trade,
		appraisalID: appraisalID,
		backRoute:   backRoute,
		panel:       components.NewPanel(styles, "Your deal"),
		styles:      styles,
		keyMap:      DefaultSummaryKeyMap(),
	}
	v.panel.SetContent(v.buildContent())
	return v
}

// KeyMap returns the view's key map for footer help.
func (v SummaryView) KeyMap() SummaryKeyMap {
	return v.keyMap
}

func (v SummaryView) buildContent() string {
	s := v.styles
	var b strings.Builder

	vehicle := v.summary.ModelName
	if v.summary.CabLabel != "" {
		vehicle += ", " + v.summary.CabLabel
	}
	b.WriteString(s.RenderKeyValue("Vehicle", vehicle) + "\n")
	if len(v.summary.Colors) > 0 {
		b.WriteString(s.RenderKeyValue("Colors", strings.Join(v.summary.Colors, ", ")) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(s.RenderKeyValue("Target payment", theme.Dollars(v.summary.BudgetMax)+"/mo") + "\n")
	b.WriteString(s.RenderKeyValue("Down payment", fmt.Sprintf("%d%%", v.summary.DownPaymentPercent)) + "\n")
	b.WriteString(s.RenderKeyValue("Buying power", theme.Dollars(v.buyingPower.TotalBuyingPower)) + "\n")
	b.WriteString(s.RenderKeyValue("Term", fmt.Sprintf("%d months", v.buyingPower.Term)) + "\n")

	if v.trade != nil {
		b.WriteString("\n")
		b.WriteString(s.RenderKeyValue("Trade-in value", theme.Dollars(v.trade.Estimate.Mid)) + "\n")
		if v.trade.Data.OwesOnVehicle() {
			equity := finance.TradeEquity(v.trade.Estimate.Mid, v.trade.Data.PayoffAmount)
			b.WriteString(s.Muted.Render("Equity after payoff: ") + s.RenderEquity(equity) + "\n")
		}
		if v.trade.AppraisalRequested {
			note := "An appraiser will meet you at the desk"
			if v.appraisalID != "" {
				note += "  (ref " + v.appraisalID + ")"
			}
			b.WriteString(s.Info.Render(note) + "\n")
		}
	}

	return b.String()
}

// Update handles key input for the summary screen.
func (v SummaryView) Update(msg tea.Msg) (SummaryView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keyMap.Restart):
			return v, restartCmd()
		case key.Matches(msg, v.keyMap.Back):
			return v, navigateCmd(v.backRoute)
		}
	}
	return v, nil
}

// View renders the deal summary.
func (v SummaryView) View() string {
	title := v.styles.Title.Render("You're all set")
	note := v.styles.Subtitle.Render("Show this screen to any sales associate")
	return lipgloss.NewStyle().Padding(1, 2).Render(
		title + "\n" + v.panel.View() + "\n" + note)
}

// SetSize updates the view's dimensions.
func (v *SummaryView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.panel.SetWidth(min(width-6, 60))
}
