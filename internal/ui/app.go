// Package ui implements the Bubble Tea application for the showroom kiosk.
// The root model owns the wizard state and the customer session, dispatches
// routes to the step views, and keeps the header and footer in sync.
package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crestline/showroom/internal/catalog"
	"github.com/crestline/showroom/internal/config"
	"github.com/crestline/showroom/internal/deal"
	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/finance"
	"github.com/crestline/showroom/internal/inventory"
	"github.com/crestline/showroom/internal/logging"
	"github.com/crestline/showroom/internal/session"
	"github.com/crestline/showroom/internal/tradein"
	"github.com/crestline/showroom/internal/ui/components"
	"github.com/crestline/showroom/internal/ui/theme"
	"github.com/crestline/showroom/internal/ui/views"
)

// DealerGateway is everything the kiosk needs from the dealer system. The
// HTTP client satisfies it; tests substitute a stub.
type DealerGateway interface {
	dealer.Dealer
	tradein.Estimator
}

// ViewState identifies the active screen.
type ViewState int

const (
	ViewCategory ViewState = iota
	ViewModel
	ViewCab
	ViewColor
	ViewBudget
	ViewTrade
	ViewSummary
	ViewError
)

// String returns the view's name.
func (v ViewState) String() string {
	switch v {
	case ViewCategory:
		return "Category"
	case ViewModel:
		return "Model"
	case ViewCab:
		return "Cab"
	case ViewColor:
		return "Color"
	case ViewBudget:
		return "Budget"
	case ViewTrade:
		return "Trade"
	case ViewSummary:
		return "Summary"
	case ViewError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Deps bundles the services the kiosk model needs.
type Deps struct {
	Config  *config.Config
	Catalog *catalog.Catalog
	Gateway DealerGateway
	Counter *inventory.Counter
	Camera  tradein.Camera
	Logger  logging.Logger
	Version string
}

// Model is the root Bubble Tea model for the kiosk.
type Model struct {
	deps Deps

	width  int
	height int
	ready  bool

	quitting bool

	ctx    context.Context
	cancel context.CancelFunc

	themeDef *theme.Theme
	styles   theme.Styles
	keyMap   KeyMap

	wizard *deal.WizardState
	sess   *session.Session

	currentView ViewState
	currentStep deal.Step

	header components.HeaderModel
	footer components.FooterModel

	categoryView views.CategoryModel
	modelView    views.ModelView
	cabView      views.CabView
	colorView    views.ColorView
	budgetView   views.BudgetView
	tradeView    views.TradeView
	summaryView  views.SummaryView
	errorView    views.ErrorView

	lastOutcome *tradein.Outcome
	appraisalID string
}

// New creates the kiosk model.
func New(deps Deps) Model {
	return NewWithContext(context.Background(), deps)
}

// NewWithContext creates the kiosk model with a parent context. Cancelling
// it aborts in-flight dealer calls on shutdown.
func NewWithContext(parent context.Context, deps Deps) Model {
	ctx, cancel := context.WithCancel(parent)

	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}
	if deps.Catalog == nil {
		c, err := catalog.Default()
		if err != nil {
			deps.Logger.Error("embedded catalog failed to load", "error", err)
			c = &catalog.Catalog{}
		}
		deps.Catalog = c
	}

	t := theme.DefaultTheme()
	if deps.Config != nil {
		t = theme.ForName(deps.Config.Theme)
	}

	dealerName := config.DefaultDealerName
	if deps.Config != nil && deps.Config.DealerName != "" {
		dealerName = deps.Config.DealerName
	}

	m := Model{
		deps:     deps,
		ctx:      ctx,
		cancel:   cancel,
		themeDef: t,
		styles:   t.Styles,
		keyMap:   DefaultKeyMap(),
		wizard:   deal.NewWizardState(),
		sess:     session.New(),
		header:   components.NewHeader(t.Styles, dealerName, "Build Your Deal"),
		footer:   components.NewFooter(t.Styles, DefaultKeyMap()),
	}
	m.showCategory()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Session returns the customer session, for the hand-off after the program
// exits.
func (m Model) Session() *session.Session {
	return m.sess
}

// CurrentView returns the active screen, mainly for tests.
func (m Model) CurrentView() ViewState {
	return m.currentView
}

// Wizard returns the wizard state, mainly for tests.
func (m Model) Wizard() *deal.WizardState {
	return m.wizard
}

// Shutdown cancels the model's context and frees the kiosk camera.
func (m *Model) Shutdown() {
	if m.deps.Camera != nil {
		_ = m.deps.Camera.Release()
	}
	if m.cancel != nil {
		m.cancel()
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.header.SetWidth(msg.Width)
		m.footer.SetWidth(msg.Width)
		m.resizeCurrent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.Update(QuitMsg{})
		case "ctrl+r":
			return m.Update(RestartMsg{})
		}
		return m.updateCurrent(msg)

	case QuitMsg:
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case RestartMsg, views.RestartMsg:
		m.restart()
		return m, nil

	case ErrorMsg:
		m.deps.Logger.Error("kiosk error", "error", msg.Err)
		if m.currentView == ViewTrade {
			m.tradeView.ReleaseCamera()
		}
		m.errorView = views.NewError(m.styles, msg.Err)
		m.currentView = ViewError
		m.syncChrome()
		return m, nil

	case StatusMsg:
		if msg.IsError {
			m.footer.SetErrorStatus(msg.Message)
		} else {
			m.footer.SetInfoStatus(msg.Message)
		}
		return m, nil

	case views.NavigateMsg:
		return m.navigate(msg.Route)

	case views.ColorsChosenMsg:
		m.wizard.Colors = deal.ColorChoices{First: msg.First, Second: msg.Second}
		return m.navigate(m.routeFor(deal.StepBudget))

	case views.BudgetConfirmedMsg:
		m.wizard.SetMaxPayment(msg.MaxPayment)
		m.wizard.SetDownPaymentPercent(int(msg.DownPaymentPercent))
		return m.navigate(m.routeFor(deal.StepTrade))

	case views.TradeCompletedMsg:
		return m.completeTrade(msg.Outcome)

	case views.AppraisalBookedMsg:
		if msg.Err != nil {
			m.deps.Logger.Warn("appraisal booking failed", "error", msg.Err)
			m.footer.SetWarningStatus("Couldn't book the appraiser, ask at the desk")
			return m, nil
		}
		m.appraisalID = msg.AppraisalID
		if m.currentView == ViewSummary {
			m.showSummary()
		}
		return m, nil

	case views.InventoryCountsMsg:
		if m.currentView == ViewModel {
			var cmd tea.Cmd
			m.modelView, cmd = m.modelView.Update(msg)
			return m, cmd
		}
		return m, nil

	case views.VinDecodedMsg, views.EstimateReadyMsg, views.PhotoCapturedMsg:
		if m.currentView == ViewTrade {
			var cmd tea.Cmd
			m.tradeView, cmd = m.tradeView.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m.updateCurrent(msg)
}

// updateCurrent forwards a message to the active view.
func (m Model) updateCurrent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentView {
	case ViewCategory:
		m.categoryView, cmd = m.categoryView.Update(msg)
	case ViewModel:
		m.modelView, cmd = m.modelView.Update(msg)
	case ViewCab:
		m.cabView, cmd = m.cabView.Update(msg)
	case ViewColor:
		m.colorView, cmd = m.colorView.Update(msg)
	case ViewBudget:
		m.budgetView, cmd = m.budgetView.Update(msg)
	case ViewTrade:
		m.tradeView, cmd = m.tradeView.Update(msg)
	case ViewSummary:
		m.summaryView, cmd = m.summaryView.Update(msg)
	case ViewError:
		m.errorView, cmd = m.errorView.Update(msg)
	}
	return m, cmd
}

// navigate resolves a route against the catalog and installs the view for
// it. Unresolvable routes land on the category step.
func (m Model) navigate(route deal.Route) (tea.Model, tea.Cmd) {
	if m.currentView == ViewTrade {
		m.tradeView.ReleaseCamera()
	}
	resolved := route.Resolve(m.deps.Catalog)
	m.footer.ClearStatus()

	switch resolved.Step {
	case deal.StepCategory:
		m.showCategory()
		return m, nil

	case deal.StepModel:
		m.modelView = views.NewModel(m.styles, resolved.Category)
		m.setStep(ViewModel, deal.StepModel)
		if m.deps.Counter == nil {
			m.modelView.SetCounts(map[string]int{})
			return m, m.modelView.Init()
		}
		return m, tea.Batch(
			m.modelView.Init(),
			views.FetchCounts(m.ctx, m.deps.Counter, resolved.Category.Models),
		)

	case deal.StepCab:
		m.selectModel(resolved.Model)
		m.cabView = views.NewCab(m.styles, resolved.Model, resolved.Category)
		m.setStep(ViewCab, deal.StepCab)
		return m, nil

	case deal.StepColor:
		m.selectModel(resolved.Model)
		m.wizard.SelectCab(resolved.CabSlug)
		back := deal.Route{Step: deal.StepModel, CategorySlug: resolved.Category.Slug()}
		if resolved.Model.HasCabOptions() {
			back = deal.Route{Step: deal.StepCab, ModelSlug: resolved.Model.Slug()}
		}
		colors := m.deps.Catalog.ColorsFor(resolved.Model)
		m.colorView = views.NewColor(m.styles, resolved.Model, colors, back)
		m.setStep(ViewColor, deal.StepColor)
		return m, nil

	case deal.StepBudget:
		m.selectModel(resolved.Model)
		m.wizard.SelectCab(resolved.CabSlug)
		back := m.routeFor(deal.StepColor)
		m.budgetView = views.NewBudget(m.styles,
			m.wizard.Budget.Max, float64(m.wizard.DownPaymentPercent), back)
		m.setStep(ViewBudget, deal.StepBudget)
		return m, nil

	case deal.StepTrade:
		m.selectModel(resolved.Model)
		m.wizard.SelectCab(resolved.CabSlug)
		back := m.routeFor(deal.StepBudget)
		m.tradeView = views.NewTrade(m.styles, m.deps.Gateway, m.deps.Camera, back)
		m.setStep(ViewTrade, deal.StepTrade)
		return m, nil
	}

	m.showCategory()
	return m, nil
}

// selectModel records the model only when it actually changed, so moving
// between later steps doesn't wipe the cab and color choices downstream of
// the model screen.
func (m *Model) selectModel(md catalog.Model) {
	if m.wizard.SelectedModel != nil && m.wizard.SelectedModel.Slug() == md.Slug() {
		return
	}
	m.wizard.SelectModel(md)
}

// routeFor builds the route to a step for the currently selected model.
func (m Model) routeFor(step deal.Step) deal.Route {
	r := deal.Route{Step: step}
	if m.wizard.SelectedModel != nil {
		r.ModelSlug = m.wizard.SelectedModel.Slug()
		r.CabSlug = m.wizard.SelectedCabSlug
	}
	return r
}

// completeTrade records the estimator outcome in the session, books the
// appraiser when requested, and moves to the summary screen.
func (m Model) completeTrade(outcome tradein.Outcome) (tea.Model, tea.Cmd) {
	m.tradeView.ReleaseCamera()
	m.lastOutcome = &outcome
	m.appraisalID = ""

	m.wizard.HasTrade = true
	m.wizard.HasPayoff = outcome.Data.OwesOnVehicle()
	m.wizard.PayoffAmount = outcome.Data.PayoffAmount
	m.wizard.MonthlyPayment = outcome.Data.MonthlyPayment
	m.wizard.FinancedWith = outcome.Data.FinancedWith
	m.wizard.TradeVehicle = deal.TradeVehicle{
		Year:    outcome.Data.Year,
		Make:    outcome.Data.Make,
		Model:   outcome.Data.Model,
		Mileage: outcome.Data.Mileage,
	}

	m.sess.ApplyDeal(m.wizard.Summarize())
	m.sess.ApplyTrade(outcome)
	m.deps.Logger.Info("deal completed",
		"session", m.sess.ID(),
		"model", m.wizard.Summarize().ModelName,
		"appraisal", outcome.AppraisalRequested)

	m.showSummary()

	if outcome.AppraisalRequested {
		req := dealer.AppraisalRequest{
			SessionID:    m.sess.ID(),
			Year:         outcome.Data.Year,
			Make:         outcome.Data.Make,
			Model:        outcome.Data.Model,
			Mileage:      outcome.Data.Mileage,
			PayoffAmount: outcome.Data.PayoffAmount,
			EstimatedMid: outcome.Estimate.Mid,
		}
		return m, views.BookAppraisal(m.ctx, m.deps.Gateway, req)
	}
	return m, nil
}

func (m *Model) showCategory() {
	m.categoryView = views.NewCategory(m.styles, m.deps.Catalog)
	m.setStep(ViewCategory, deal.StepCategory)
}

func (m *Model) showSummary() {
	bp := finance.BuyingPower(m.wizard.Budget.Max, float64(m.wizard.DownPaymentPercent))
	m.summaryView = views.NewSummary(m.styles,
		m.wizard.Summarize(), bp, m.lastOutcome, m.appraisalID, m.routeFor(deal.StepTrade))
	m.currentView = ViewSummary
	m.syncChrome()
}

// restart resets everything for the next customer.
func (m *Model) restart() {
	m.deps.Logger.Info("kiosk reset", "session", m.sess.ID())
	if m.deps.Camera != nil {
		_ = m.deps.Camera.Release()
	}
	m.sess.Reset()
	m.wizard = deal.NewWizardState()
	m.lastOutcome = nil
	m.appraisalID = ""
	m.showCategory()
}

func (m *Model) setStep(view ViewState, step deal.Step) {
	m.currentView = view
	m.currentStep = step
	m.syncChrome()
}

// syncChrome updates the header progress line and the footer key map for
// the active view.
func (m *Model) syncChrome() {
	switch m.currentView {
	case ViewSummary, ViewError:
		m.header.ClearStepLine()
	default:
		hasCabs := m.wizard.ModelHasCabs()
		if m.currentView == ViewCategory || m.currentView == ViewModel {
			// No model chosen yet; the indicator assumes the full set.
			hasCabs = true
		}
		m.header.SetStepLine(fmt.Sprintf("Step %d of %d",
			deal.StepNumber(m.currentStep, hasCabs), deal.TotalSteps(hasCabs)))
	}

	switch m.currentView {
	case ViewCategory:
		m.footer.SetKeyMap(m.categoryView.KeyMap())
	case ViewModel:
		m.footer.SetKeyMap(m.modelView.KeyMap())
	case ViewCab:
		m.footer.SetKeyMap(m.cabView.KeyMap())
	case ViewColor:
		m.footer.SetKeyMap(m.colorView.KeyMap())
	case ViewBudget:
		m.footer.SetKeyMap(m.budgetView.KeyMap())
	case ViewTrade:
		m.footer.SetKeyMap(m.tradeView.KeyMap())
	case ViewSummary:
		m.footer.SetKeyMap(m.summaryView.KeyMap())
	case ViewError:
		m.footer.SetKeyMap(m.errorView.KeyMap())
	}
	m.resizeCurrent()
}

func (m *Model) resizeCurrent() {
	if m.width <= 0 {
		return
	}
	body := m.height - lipgloss.Height(m.header.View()) - lipgloss.Height(m.footer.View())
	switch m.currentView {
	case ViewCategory:
		m.categoryView.SetSize(m.width, body)
	case ViewModel:
		m.modelView.SetSize(m.width, body)
	case ViewCab:
		m.cabView.SetSize(m.width, body)
	case ViewColor:
		m.colorView.SetSize(m.width, body)
	case ViewBudget:
		m.budgetView.SetSize(m.width, body)
	case ViewTrade:
		m.tradeView.SetSize(m.width, body)
	case ViewSummary:
		m.summaryView.SetSize(m.width, body)
	case ViewError:
		m.errorView.SetSize(m.width, body)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for visiting!\n"
	}
	if !m.ready {
		return "Starting up..."
	}

	var body string
	switch m.currentView {
	case ViewCategory:
		body = m.categoryView.View()
	case ViewModel:
		body = m.modelView.View()
	case ViewCab:
		body = m.cabView.View()
	case ViewColor:
		body = m.colorView.View()
	case ViewBudget:
		body = m.budgetView.View()
	case ViewTrade:
		body = m.tradeView.View()
	case ViewSummary:
		body = m.summaryView.View()
	case ViewError:
		body = m.errorView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.footer.View(),
	)
}
