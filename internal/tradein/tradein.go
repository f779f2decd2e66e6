// Package tradein implements the trade-in estimator: a short step machine
// that collects vehicle details, an optional loan payoff, and a condition
// grade, then asks the dealer gateway for a value range. The estimator owns
// its own data record, created fresh every time a customer enters it.
package tradein

import (
	"regexp"
	"strings"

	"github.com/crestline/showroom/internal/constants"
	"github.com/crestline/showroom/internal/errors"
	"github.com/crestline/showroom/internal/finance"
)

// PhotoSlot names one of the fixed vehicle photo positions.
type PhotoSlot string

const (
	SlotFront    PhotoSlot = "front"
	SlotRear     PhotoSlot = "rear"
	SlotInterior PhotoSlot = "interior"
	SlotOdometer PhotoSlot = "odometer"
	SlotDamage   PhotoSlot = "damage"
)

// PhotoSlots returns the vehicle slots in capture order.
func PhotoSlots() []PhotoSlot {
	return []PhotoSlot{SlotFront, SlotRear, SlotInterior, SlotOdometer, SlotDamage}
}

// Photo is a captured image staged on disk.
type Photo struct {
	Slot PhotoSlot
	Path string
}

// TradeData is everything the estimator collects about the trade vehicle.
type TradeData struct {
	Year    string
	Make    string
	Model   string
	Trim    string
	Mileage string
	VIN     string

	// HasPayoff is nil until the customer answers the ownership question.
	HasPayoff *bool

	// Payoff detail, meaningful only when HasPayoff is true.
	PayoffAmount   float64
	MonthlyPayment float64
	FinancedWith   string

	Condition finance.Condition

	Photos            map[PhotoSlot]Photo
	RegistrationPhoto *Photo
}

// NewTradeData returns an empty record with the photo map initialized.
func NewTradeData() *TradeData {
	return &TradeData{Photos: make(map[PhotoSlot]Photo)}
}

// AnswerPayoff records the ownership answer and clears stale payoff detail
// when the answer is no.
func (d *TradeData) AnswerPayoff(hasPayoff bool) {
	d.HasPayoff = &hasPayoff
	if !hasPayoff {
		d.PayoffAmount = 0
		d.MonthlyPayment = 0
		d.FinancedWith = ""
	}
}

// PayoffAnswered reports whether the ownership question has been answered.
func (d *TradeData) PayoffAnswered() bool {
	return d.HasPayoff != nil
}

// OwesOnVehicle reports whether the customer answered yes to a payoff.
func (d *TradeData) OwesOnVehicle() bool {
	return d.HasPayoff != nil && *d.HasPayoff
}

// AddPhoto stages a captured photo in its slot, replacing any earlier shot.
func (d *TradeData) AddPhoto(p Photo) {
	d.Photos[p.Slot] = p
}

// Estimate is the value range returned by the appraisal service. Mid is the
// canonical trade value used in downstream equity math.
type Estimate struct {
	Low  float64 `json:"low"`
	Mid  float64 `json:"mid"`
	High float64 `json:"high"`
}

// DecodedVehicle is what a VIN decode returns.
type DecodedVehicle struct {
	Year  string `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
	Trim  string `json:"trim"`
}

// ApplyDecode backfills vehicle identity fields from a VIN decode without
// overwriting anything the customer already typed.
func (d *TradeData) ApplyDecode(v DecodedVehicle) {
	if d.Year == "" {
		d.Year = v.Year
	}
	if d.Make == "" {
		d.Make = v.Make
	}
	if d.Model == "" {
		d.Model = v.Model
	}
	if d.Trim == "" {
		d.Trim = v.Trim
	}
}

// vinPattern accepts the VIN character classes, excluding I, O and Q.
var vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]+$`)

// NormalizeVIN uppercases and trims a VIN for validation and decode calls.
func NormalizeVIN(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}

// ValidateVIN checks length and character class only. Checksum validation
// is the decoder's job.
func ValidateVIN(vin string) error {
	vin = NormalizeVIN(vin)
	if len(vin) != constants.VINLength {
		return errors.Newf(errors.Validation, "VIN must be %d characters, got %d",
			constants.VINLength, len(vin)).WithOp("tradein.ValidateVIN")
	}
	if !vinPattern.MatchString(vin) {
		return errors.New(errors.Validation, "VIN contains invalid characters").
			WithOp("tradein.ValidateVIN")
	}
	return nil
}
