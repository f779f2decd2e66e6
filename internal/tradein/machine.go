package tradein

import (
	"context"

	"github.com/crestline/showroom/internal/errors"
)

// State is a step in the estimator. Numbering matches the on-screen step
// indicator.
type State int

const (
	StateVehicleInfo State = 1
	StateOwnership   State = 2
	StatePayoff      State = 3
	StateCondition   State = 4
	StateEstimate    State = 5
)

// String returns the step's display name.
func (s State) String() string {
	switch s {
	case StateVehicleInfo:
		return "vehicle info"
	case StateOwnership:
		return "ownership"
	case StatePayoff:
		return "payoff"
	case StateCondition:
		return "condition"
	case StateEstimate:
		return "estimate"
	default:
		return "unknown"
	}
}

// Estimator produces a value range for a trade vehicle. The dealer gateway
// client implements this.
type Estimator interface {
	EstimateTradeIn(ctx context.Context, data TradeData) (Estimate, error)
}

// Outcome is the record handed back to the wizard when the estimator exits.
type Outcome struct {
	Data               TradeData
	Estimate           Estimate
	AppraisalRequested bool
}

// Machine drives the estimator steps. The payoff step only exists when the
// customer owes on the vehicle; an unanswered ownership question keeps it
// in the sequence so the indicator doesn't jump while they decide.
type Machine struct {
	data     *TradeData
	state    State
	estimate *Estimate
}

// NewMachine starts a fresh estimator at the vehicle-info step.
func NewMachine() *Machine {
	return &Machine{
		data:  NewTradeData(),
		state: StateVehicleInfo,
	}
}

// State returns the current step.
func (m *Machine) State() State {
	return m.state
}

// Data returns the mutable trade record for the input screens.
func (m *Machine) Data() *TradeData {
	return m.data
}

// Estimate returns the value range once the estimate step is reached.
func (m *Machine) Estimate() (Estimate, bool) {
	if m.estimate == nil {
		return Estimate{}, false
	}
	return *m.estimate, true
}

// ActiveSteps returns the step numbers in play, in order. Answering the
// ownership question with "no" drops the payoff step.
func (m *Machine) ActiveSteps() []State {
	if m.data.PayoffAnswered() && !m.data.OwesOnVehicle() {
		return []State{StateVehicleInfo, StateOwnership, StateCondition, StateEstimate}
	}
	return []State{StateVehicleInfo, StateOwnership, StatePayoff, StateCondition, StateEstimate}
}

// CanAdvance reports whether the current step's guard is satisfied. The
// condition step additionally needs a successful estimate call, which
// RequestEstimate performs.
func (m *Machine) CanAdvance() bool {
	switch m.state {
	case StateVehicleInfo:
		return m.data.Year != "" && m.data.Make != "" && m.data.Model != "" && m.data.Mileage != ""
	case StateOwnership:
		return m.data.PayoffAnswered()
	case StatePayoff:
		return m.data.PayoffAmount > 0 && m.data.FinancedWith != ""
	case StateCondition:
		return m.data.Condition.IsValid()
	default:
		return false
	}
}

// Advance moves to the next step when the guard holds. Leaving the
// condition step goes through RequestEstimate instead, since it must not
// happen without a successful estimate.
func (m *Machine) Advance() error {
	if !m.CanAdvance() {
		return errors.Newf(errors.Validation, "%s step is incomplete", m.state).
			WithOp("tradein.Advance")
	}

	switch m.state {
	case StateVehicleInfo:
		m.state = StateOwnership
	case StateOwnership:
		if m.data.OwesOnVehicle() {
			m.state = StatePayoff
		} else {
			m.state = StateCondition
		}
	case StatePayoff:
		m.state = StateCondition
	case StateCondition:
		return errors.New(errors.Estimate, "condition step advances via estimate request").
			WithOp("tradein.Advance")
	default:
		return errors.Newf(errors.Validation, "cannot advance from %s", m.state).
			WithOp("tradein.Advance")
	}
	return nil
}

// RequestEstimate calls the appraisal service and, only on success, moves
// from the condition step to the estimate step. A failed call leaves the
// machine where it is so the customer can retry.
func (m *Machine) RequestEstimate(ctx context.Context, estimator Estimator) error {
	if m.state != StateCondition {
		return errors.Newf(errors.Estimate, "estimate requested from %s step", m.state).
			WithOp("tradein.RequestEstimate")
	}
	if !m.CanAdvance() {
		return errors.New(errors.Validation, "condition not selected").
			WithOp("tradein.RequestEstimate")
	}

	est, err := estimator.EstimateTradeIn(ctx, *m.data)
	if err != nil {
		return errors.Wrap(errors.Estimate, "estimate call failed", err).
			WithOp("tradein.RequestEstimate")
	}

	m.estimate = &est
	m.state = StateEstimate
	return nil
}

// Back moves to the previous step, skipping the payoff step when it is not
// in play. Backing out of the first step is a no-op; the host handles exit.
func (m *Machine) Back() {
	switch m.state {
	case StateOwnership:
		m.state = StateVehicleInfo
	case StatePayoff:
		m.state = StateOwnership
	case StateCondition:
		if m.data.OwesOnVehicle() {
			m.state = StatePayoff
		} else {
			m.state = StateOwnership
		}
	case StateEstimate:
		m.state = StateCondition
	}
}

// ApplyToPayments exits the estimator toward the payment calculator.
func (m *Machine) ApplyToPayments() (Outcome, error) {
	return m.exit(false)
}

// RequestAppraisal exits the estimator toward the in-person appraisal
// hand-off, flagging the request.
func (m *Machine) RequestAppraisal() (Outcome, error) {
	return m.exit(true)
}

func (m *Machine) exit(appraisal bool) (Outcome, error) {
	if m.state != StateEstimate || m.estimate == nil {
		return Outcome{}, errors.New(errors.Estimate, "estimator has no estimate yet").
			WithOp("tradein.exit")
	}
	return Outcome{
		Data:               *m.data,
		Estimate:           *m.estimate,
		AppraisalRequested: appraisal,
	}, nil
}
