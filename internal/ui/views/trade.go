package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crestline/showroom/internal/catalog"
	"github.com/crestline/showroom/internal/deal"
	"github.com/crestline/showroom/internal/finance"
	"github.com/crestline/showroom/internal/tradein"
	"github.com/crestline/showroom/internal/ui/components"
	"github.com/crestline/showroom/internal/ui/theme"
)

// TradeCompletedMsg reports that the estimator finished, either applying
// the value to the deal or requesting an in-person appraisal.
type TradeCompletedMsg struct {
	Outcome tradein.Outcome
}

// TradeKeyMap defines key bindings for the trade-in estimator.
type TradeKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	Continue key.Binding
	Back     key.Binding
	Decode   key.Binding
	Photo    key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// DefaultTradeKeyMap returns the default bindings for the estimator.
func DefaultTradeKeyMap() TradeKeyMap {
	return TradeKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Continue: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Decode: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "decode VIN"),
		),
		Photo: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "take photo"),
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
func (k TradeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Continue, k.Back, k.Decode}
}

// FullHelp implements help.KeyMap.
func (k TradeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Tab},
		{k.Continue, k.Back, k.Decode, k.Photo},
		{k.Help, k.Quit},
	}
}

// resolvedEstimator replays an estimate already fetched by a command, so
// the machine's success-only transition still holds inside Update.
type resolvedEstimator struct {
	est tradein.Estimate
}

func (r resolvedEstimator) EstimateTradeIn(context.Context, tradein.TradeData) (tradein.Estimate, error) {
	return r.est, nil
}

// TradeView hosts the trade-in estimator machine. Each machine state maps
// to a sub-screen; the view collects input, the machine owns transitions.
type TradeView struct {
	width  int
	height int

	machine        *tradein.Machine
	estimator      tradein.Estimator
	camera         tradein.Camera
	cameraAcquired bool

	// Vehicle info inputs: VIN, year, make, model, mileage.
	inputs     []textinput.Model
	focusedIdx int

	// Ownership and payoff state.
	owesCursor   int // 0 = yes, 1 = no
	payoffInputs []textinput.Model
	payoffIdx    int

	conditions components.ListModel
	buttons    components.ButtonGroup

	spinner    components.SpinnerModel
	estimating bool
	statusMsg  string
	statusErr  bool

	styles theme.Styles
	keyMap TradeKeyMap

	backRoute deal.Route
}

const (
	fieldVIN = iota
	fieldYear
	fieldMake
	fieldModel
	fieldMileage
)

// NewTrade creates the trade-in estimator view. camera may be nil when the
// kiosk has no photo spool configured.
func NewTrade(styles theme.Styles, estimator tradein.Estimator, camera tradein.Camera, backRoute deal.Route) TradeView {
	mkInput := func(placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = limit
		in.Width = 24
		return in
	}

	inputs := []textinput.Model{
		mkInput("VIN (optional)", 17),
		mkInput("Year", 4),
		mkInput("Make", 24),
		mkInput("Model", 32),
		mkInput("Mileage", 7),
	}
	inputs[fieldVIN].Focus()

	payoffInputs := []textinput.Model{
		mkInput("Payoff amount", 9),
		mkInput("Monthly payment", 7),
		mkInput("Financed with", 40),
	}

	condItems := make([]components.ListItem, 0, len(finance.Conditions()))
	for _, c := range finance.Conditions() {
		desc := fmt.Sprintf("retains %.0f%% of value", c.Multiplier()*100)
		condItems = append(condItems, components.NewListItem(catalog.Label(string(c)), desc, string(c)))
	}

	return TradeView{
		machine:      tradein.NewMachine(),
		estimator:    estimator,
		camera:       camera,
		inputs:       inputs,
		payoffInputs: payoffInputs,
		conditions:   components.NewList(styles, "How would you rate its condition?", condItems, 48, 12),
		buttons: components.NewButtonGroup(
			components.NewButton(styles, "Apply to my deal"),
			components.NewButton(styles, "Request appraisal"),
		),
		spinner:   components.NewSpinner(styles, "Getting your estimate..."),
		styles:    styles,
		keyMap:    DefaultTradeKeyMap(),
		backRoute: backRoute,
	}
}

// KeyMap returns the view's key map for footer help.
func (v TradeView) KeyMap() TradeKeyMap {
	return v.keyMap
}

// Machine exposes the estimator machine, mainly for tests.
func (v TradeView) Machine() *tradein.Machine {
	return v.machine
}

// Status returns the view's transient status line and whether it is an error.
func (v TradeView) Status() (string, bool) {
	return v.statusMsg, v.statusErr
}

func (v *TradeView) setStatus(msg string, isErr bool) {
	v.statusMsg = msg
	v.statusErr = isErr
}

// syncData copies the input fields into the machine's trade record.
func (v *TradeView) syncData() {
	d := v.machine.Data()
	d.VIN = tradein.NormalizeVIN(v.inputs[fieldVIN].Value())
	d.Year = strings.TrimSpace(v.inputs[fieldYear].Value())
	d.Make = strings.TrimSpace(v.inputs[fieldMake].Value())
	d.Model = strings.TrimSpace(v.inputs[fieldModel].Value())
	d.Mileage = strings.TrimSpace(v.inputs[fieldMileage].Value())

	if amt, err := strconv.ParseFloat(strings.TrimSpace(v.payoffInputs[0].Value()), 64); err == nil {
		d.PayoffAmount = amt
	}
	if pay, err := strconv.ParseFloat(strings.TrimSpace(v.payoffInputs[1].Value()), 64); err == nil {
		d.MonthlyPayment = pay
	}
	d.FinancedWith = strings.TrimSpace(v.payoffInputs[2].Value())
}

// Update handles input for the estimator.
func (v TradeView) Update(msg tea.Msg) (TradeView, tea.Cmd) {
	switch msg := msg.(type) {
	case VinDecodedMsg:
		if msg.Err != nil {
			v.setStatus("VIN lookup failed, enter details by hand", true)
			return v, nil
		}
		if msg.Decoded == nil {
			v.setStatus("VIN not recognized, enter details by hand", true)
			return v, nil
		}
		v.machine.Data().ApplyDecode(*msg.Decoded)
		v.fillFromData()
		v.setStatus("Vehicle details filled in from VIN", false)
		return v, nil

	case EstimateReadyMsg:
		v.estimating = false
		if msg.Err != nil {
			v.setStatus("Estimate unavailable right now, try again", true)
			return v, nil
		}
		if err := v.machine.RequestEstimate(context.Background(), resolvedEstimator{est: msg.Estimate}); err != nil {
			v.setStatus(err.Error(), true)
			return v, nil
		}
		v.setStatus("", false)
		return v, nil

	case PhotoCapturedMsg:
		if msg.Err != nil {
			v.setStatus("Photo capture failed", true)
			return v, nil
		}
		v.machine.Data().AddPhoto(msg.Photo)
		v.setStatus(fmt.Sprintf("Captured %s photo", msg.Photo.Slot), false)
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	if v.estimating {
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v TradeView) handleKey(msg tea.KeyMsg) (TradeView, tea.Cmd) {
	switch v.machine.State() {
	case tradein.StateVehicleInfo:
		return v.handleVehicleInfoKey(msg)
	case tradein.StateOwnership:
		return v.handleOwnershipKey(msg)
	case tradein.StatePayoff:
		return v.handlePayoffKey(msg)
	case tradein.StateCondition:
		return v.handleConditionKey(msg)
	case tradein.StateEstimate:
		return v.handleEstimateKey(msg)
	}
	return v, nil
}

func (v TradeView) handleVehicleInfoKey(msg tea.KeyMsg) (TradeView, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keyMap.Tab), key.Matches(msg, v.keyMap.Down):
		v.focusField((v.focusedIdx + 1) % len(v.inputs))
		return v, nil

	case key.Matches(msg, v.keyMap.Up):
		v.focusField((v.focusedIdx + len(v.inputs) - 1) % len(v.inputs))
		return v, nil

	case key.Matches(msg, v.keyMap.Decode):
		vin := tradein.NormalizeVIN(v.inputs[fieldVIN].Value())
		if err := tradein.ValidateVIN(vin); err != nil {
			v.setStatus("That VIN doesn't look right", true)
			return v, nil
		}
		v.setStatus("Looking up VIN...", false)
		return v, decodeCmd(v.estimator, vin)

	case key.Matches(msg, v.keyMap.Photo):
		return v.capturePhoto()

	case key.Matches(msg, v.keyMap.Continue):
		if v.focusedIdx < len(v.inputs)-1 {
			v.focusField(v.focusedIdx + 1)
			return v, nil
		}
		v.syncData()
		if err := v.machine.Advance(); err != nil {
			v.setStatus("Year, make, model, and mileage are required", true)
			return v, nil
		}
		v.setStatus("", false)
		return v, nil

	case key.Matches(msg, v.keyMap.Back):
		v.ReleaseCamera()
		return v, navigateCmd(v.backRoute)
	}

	var cmd tea.Cmd
	v.inputs[v.focusedIdx], cmd = v.inputs[v.focusedIdx].Update(msg)
	return v, cmd
}

func (v TradeView) handleOwnershipKey(msg tea.KeyMsg) (TradeView, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keyMap.Left), key.Matches(msg, v.keyMap.Right),
		key.Matches(msg, v.keyMap.Tab):
		v.owesCursor = 1 - v.owesCursor
		return v, nil

	case key.Matches(msg, v.keyMap.Continue):
		v.machine.Data().AnswerPayoff(v.owesCursor == 0)
		if err := v.machine.Advance(); err != nil {
			v.setStatus(err.Error(), true)
			return v, nil
		}
		if v.machine.State() == tradein.StatePayoff {
			v.payoffIdx = 0
			v.payoffInputs[0].Focus()
		}
		return v, nil

	case key.Matches(msg, v.keyMap.Back):
		v.machine.Back()
		return v, nil
	}
	return v, nil
}

func (v TradeView) handlePayoffKey(msg tea.KeyMsg) (TradeView, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keyMap.Tab), key.Matches(msg, v.keyMap.Down):
		v.focusPayoffField((v.payoffIdx + 1) % len(v.payoffInputs))
		return v, nil

	case key.Matches(msg, v.keyMap.Up):
		v.focusPayoffField((v.payoffIdx + len(v.payoffInputs) - 1) % len(v.payoffInputs))
		return v, nil

	case key.Matches(msg, v.keyMap.Continue):
		if v.payoffIdx < len(v.payoffInputs)-1 {
			v.focusPayoffField(v.payoffIdx + 1)
			return v, nil
		}
		v.syncData()
		if err := v.machine.Advance(); err != nil {
			v.setStatus("Payoff amount and lender are required", true)
			return v, nil
		}
		v.setStatus("", false)
		return v, nil

	case key.Matches(msg, v.keyMap.Back):
		v.machine.Back()
		return v, nil
	}

	var cmd tea.Cmd
	v.payoffInputs[v.payoffIdx], cmd = v.payoffInputs[v.payoffIdx].Update(msg)
	return v, cmd
}

func (v TradeView) handleConditionKey(msg tea.KeyMsg) (TradeView, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keyMap.Continue):
		item, ok := v.conditions.SelectedItem()
		if !ok {
			return v, nil
		}
		cond, valid := finance.ParseCondition(item.Slug())
		if !valid {
			return v, nil
		}
		v.machine.Data().Condition = cond
		v.estimating = true
		v.setStatus("", false)
		data := *v.machine.Data()
		return v, tea.Batch(
			v.spinner.Tick(),
			FetchEstimate(context.Background(), v.estimator, data),
		)

	case key.Matches(msg, v.keyMap.Back):
		v.machine.Back()
		return v, nil
	}

	var cmd tea.Cmd
	v.conditions, cmd = v.conditions.Update(msg)
	return v, cmd
}

func (v TradeView) handleEstimateKey(msg tea.KeyMsg) (TradeView, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keyMap.Left), key.Matches(msg, v.keyMap.Tab):
		v.buttons.Prev()
		return v, nil

	case key.Matches(msg, v.keyMap.Right):
		v.buttons.Next()
		return v, nil

	case key.Matches(msg, v.keyMap.Continue):
		var outcome tradein.Outcome
		var err error
		if v.buttons.Cursor() == 1 {
			outcome, err = v.machine.RequestAppraisal()
		} else {
			outcome, err = v.machine.ApplyToPayments()
		}
		if err != nil {
			v.setStatus(err.Error(), true)
			return v, nil
		}
		v.ReleaseCamera()
		return v, func() tea.Msg {
			return TradeCompletedMsg{Outcome: outcome}
		}

	case key.Matches(msg, v.keyMap.Back):
		v.machine.Back()
		return v, nil
	}
	return v, nil
}

func (v *TradeView) capturePhoto() (TradeView, tea.Cmd) {
	if v.camera == nil {
		v.setStatus("No camera available on this kiosk", true)
		return *v, nil
	}
	// The device is exclusive; claim it on the first shot and hold it for
	// the rest of the photo session.
	if !v.cameraAcquired {
		if err := v.camera.Acquire(context.Background()); err != nil {
			v.setStatus("Camera is busy, try again in a moment", true)
			return *v, nil
		}
		v.cameraAcquired = true
	}
	for _, slot := range tradein.PhotoSlots() {
		if _, taken := v.machine.Data().Photos[slot]; !taken {
			v.setStatus(fmt.Sprintf("Capturing %s photo...", slot), false)
			return *v, CapturePhoto(context.Background(), v.camera, slot)
		}
	}
	v.setStatus("All photos captured", false)
	return *v, nil
}

// ReleaseCamera frees the kiosk camera if this view claimed it. Safe to
// call on a view that never captured.
func (v *TradeView) ReleaseCamera() {
	if !v.cameraAcquired {
		return
	}
	_ = v.camera.Release()
	v.cameraAcquired = false
}

// decodeCmd asks the estimator's dealer for a VIN decode when it supports
// lookups, degrading to a no-result message otherwise.
func decodeCmd(estimator tradein.Estimator, vin string) tea.Cmd {
	decoder, ok := estimator.(interface {
		DecodeVin(ctx context.Context, vin string) (*tradein.DecodedVehicle, error)
	})
	if !ok {
		return func() tea.Msg {
			return VinDecodedMsg{Decoded: nil}
		}
	}
	return func() tea.Msg {
		decoded, err := decoder.DecodeVin(context.Background(), vin)
		return VinDecodedMsg{Decoded: decoded, Err: err}
	}
}

func (v *TradeView) focusField(idx int) {
	v.inputs[v.focusedIdx].Blur()
	v.focusedIdx = idx
	v.inputs[v.focusedIdx].Focus()
}

func (v *TradeView) focusPayoffField(idx int) {
	v.payoffInputs[v.payoffIdx].Blur()
	v.payoffIdx = idx
	v.payoffInputs[v.payoffIdx].Focus()
}

// fillFromData pushes decoded values back into the visible inputs.
func (v *TradeView) fillFromData() {
	d := v.machine.Data()
	if v.inputs[fieldYear].Value() == "" {
		v.inputs[fieldYear].SetValue(d.Year)
	}
	if v.inputs[fieldMake].Value() == "" {
		v.inputs[fieldMake].SetValue(d.Make)
	}
	if v.inputs[fieldModel].Value() == "" {
		v.inputs[fieldModel].SetValue(d.Model)
	}
}

// View renders the current estimator sub-screen.
func (v TradeView) View() string {
	var body string
	switch v.machine.State() {
	case tradein.StateVehicleInfo:
		body = v.viewVehicleInfo()
	case tradein.StateOwnership:
		body = v.viewOwnership()
	case tradein.StatePayoff:
		body = v.viewPayoff()
	case tradein.StateCondition:
		body = v.viewCondition()
	case tradein.StateEstimate:
		body = v.viewEstimate()
	}

	out := v.stepIndicator() + "\n\n" + body
	if v.statusMsg != "" {
		style := v.styles.Info
		if v.statusErr {
			style = v.styles.Error
		}
		out += "\n\n" + style.Render(v.statusMsg)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(out)
}

func (v TradeView) stepIndicator() string {
	steps := v.machine.ActiveSteps()
	parts := make([]string, len(steps))
	for i, s := range steps {
		label := fmt.Sprintf("%d %s", i+1, s)
		if s == v.machine.State() {
			parts[i] = v.styles.StepActive.Render(label)
		} else {
			parts[i] = v.styles.StepInactive.Render(label)
		}
	}
	return strings.Join(parts, v.styles.Muted.Render("  ·  "))
}

func (v TradeView) viewVehicleInfo() string {
	labels := []string{"VIN", "Year", "Make", "Model", "Mileage"}
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Tell us about your trade") + "\n")
	for i, in := range v.inputs {
		b.WriteString(v.styles.SliderLabel.Render(labels[i]) + "\n")
		b.WriteString(in.View() + "\n")
	}
	b.WriteString("\n" + v.styles.Help.Render("ctrl+d decodes the VIN, ctrl+p takes a photo"))
	return b.String()
}

func (v TradeView) viewOwnership() string {
	var yes, no string
	if v.owesCursor == 0 {
		yes = v.styles.ButtonFocused.Render("Yes")
		no = v.styles.Button.Render("No")
	} else {
		yes = v.styles.Button.Render("Yes")
		no = v.styles.ButtonFocused.Render("No")
	}
	return v.styles.Title.Render("Do you still owe money on it?") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Center, yes, "  ", no)
}

func (v TradeView) viewPayoff() string {
	labels := []string{"Approximate payoff amount", "Monthly payment", "Financed with"}
	var b strings.Builder
	b.WriteString(v.styles.Title.Render("About your loan") + "\n")
	for i, in := range v.payoffInputs {
		b.WriteString(v.styles.SliderLabel.Render(labels[i]) + "\n")
		b.WriteString(in.View() + "\n")
	}
	return b.String()
}

func (v TradeView) viewCondition() string {
	if v.estimating {
		return v.conditions.View() + "\n" + v.spinner.View()
	}
	return v.conditions.View()
}

func (v TradeView) viewEstimate() string {
	est, ok := v.machine.Estimate()
	if !ok {
		return v.styles.Muted.Render("No estimate yet")
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("Your trade-in estimate") + "\n")
	b.WriteString(v.styles.RenderKeyValue("Low", theme.Dollars(est.Low)) + "\n")
	b.WriteString(v.styles.Amount.Render(theme.Dollars(est.Mid)) + v.styles.Muted.Render("  (our estimate)") + "\n")
	b.WriteString(v.styles.RenderKeyValue("High", theme.Dollars(est.High)) + "\n")

	if v.machine.Data().OwesOnVehicle() {
		equity := finance.TradeEquity(est.Mid, v.machine.Data().PayoffAmount)
		b.WriteString("\n" + v.styles.Muted.Render("Equity after payoff: ") + v.styles.RenderEquity(equity) + "\n")
	}

	b.WriteString("\n" + v.buttons.View())
	return b.String()
}

// SetSize updates the view's dimensions.
func (v *TradeView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.conditions.SetSize(min(width-4, 56), max(height-12, 6))
}
