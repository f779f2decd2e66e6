package deal

import (
	"github.com/crestline/showroom/internal/catalog"
	"github.com/crestline/showroom/internal/constants"
)

// ColorChoices holds up to two ordered color preferences. Second is only
// offered once First is set; that ordering is a screen-level precondition,
// the record itself stores whatever it is given.
type ColorChoices struct {
	First  string
	Second string
}

// List returns the non-empty choices in preference order.
func (c ColorChoices) List() []string {
	var out []string
	if c.First != "" {
		out = append(out, c.First)
	}
	if c.Second != "" {
		out = append(out, c.Second)
	}
	return out
}

// BudgetRange is the customer's target monthly payment band. Only Max is
// edited by the budget screen.
type BudgetRange struct {
	Min float64
	Max float64
}

// TradeVehicle identifies the customer's current vehicle.
type TradeVehicle struct {
	Year    string
	Make    string
	Model   string
	Mileage string
}

// WizardState is the single mutable record the wizard controller owns.
// Each screen reads a slice of it and mutates through the setters below.
type WizardState struct {
	SelectedModel      *catalog.Model
	SelectedCabSlug    string
	Colors             ColorChoices
	Budget             BudgetRange
	DownPaymentPercent int

	HasTrade       bool
	HasPayoff      bool
	PayoffAmount   float64
	MonthlyPayment float64
	FinancedWith   string
	TradeVehicle   TradeVehicle
}

// NewWizardState returns a fresh state with slider defaults.
func NewWizardState() *WizardState {
	return &WizardState{
		Budget: BudgetRange{
			Min: float64(constants.MinMonthlyPayment),
			Max: 500,
		},
	}
}

// SelectModel records the chosen model and resets everything downstream of
// the model screen. A cab choice never survives a model change.
func (s *WizardState) SelectModel(m catalog.Model) {
	model := m
	s.SelectedModel = &model
	s.SelectedCabSlug = ""
	s.Colors = ColorChoices{}
}

// SelectCab records a cab choice by slug. Ignored when the selected model
// has no cab options, keeping the invariant that a cab is only meaningful
// alongside one.
func (s *WizardState) SelectCab(cabSlug string) {
	if s.SelectedModel == nil || !s.SelectedModel.HasCabOptions() {
		s.SelectedCabSlug = ""
		return
	}
	s.SelectedCabSlug = cabSlug
}

// SetMaxPayment clamps the target payment to the slider range and snaps it
// to the slider step.
func (s *WizardState) SetMaxPayment(amount float64) {
	s.Budget.Max = snap(amount,
		float64(constants.MinMonthlyPayment),
		float64(constants.MaxMonthlyPayment),
		float64(constants.MonthlyPaymentStep))
}

// SetDownPaymentPercent clamps and snaps the down-payment slider.
func (s *WizardState) SetDownPaymentPercent(percent int) {
	s.DownPaymentPercent = int(snap(float64(percent),
		float64(constants.MinDownPaymentPercent),
		float64(constants.MaxDownPaymentPercent),
		float64(constants.DownPaymentStep)))
}

func snap(v, min, max, step float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	steps := float64(int((v-min)/step + 0.5))
	return min + steps*step
}

// ModelHasCabs reports whether the selected model offers cab options.
func (s *WizardState) ModelHasCabs() bool {
	return s.SelectedModel != nil && s.SelectedModel.HasCabOptions()
}

// Summary is the flat record handed to the customer session when the
// wizard completes.
type Summary struct {
	ModelName          string
	CabLabel           string
	Colors             []string
	BudgetMin          float64
	BudgetMax          float64
	DownPaymentPercent int

	HasTrade       bool
	HasPayoff      bool
	PayoffAmount   float64
	MonthlyPayment float64
	FinancedWith   string
	TradeVehicle   TradeVehicle
}

// Summarize flattens the wizard state for the session hand-off. The cab
// slug is converted back to its display label here, at the boundary.
func (s *WizardState) Summarize() Summary {
	sum := Summary{
		Colors:             s.Colors.List(),
		BudgetMin:          s.Budget.Min,
		BudgetMax:          s.Budget.Max,
		DownPaymentPercent: s.DownPaymentPercent,
		HasTrade:           s.HasTrade,
		HasPayoff:          s.HasPayoff,
		PayoffAmount:       s.PayoffAmount,
		MonthlyPayment:     s.MonthlyPayment,
		FinancedWith:       s.FinancedWith,
		TradeVehicle:       s.TradeVehicle,
	}
	if s.SelectedModel != nil {
		sum.ModelName = s.SelectedModel.Name
	}
	if s.SelectedCabSlug != "" {
		sum.CabLabel = catalog.Label(s.SelectedCabSlug)
	}
	return sum
}
