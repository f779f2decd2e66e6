package gateway

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/crestline/showroom/internal/finance"
	"github.com/crestline/showroom/internal/tradein"
)

// baseValues is the starting valuation per model family, in dollars. These
// stand in for the DMS book values; anything unknown gets defaultBaseValue.
var baseValues = map[string]float64{
	"silverado": 38000,
	"colorado":  30000,
	"tahoe":     48000,
	"suburban":  52000,
	"traverse":  34000,
	"equinox":   24000,
	"blazer":    32000,
	"malibu":    21000,
	"corvette":  65000,
	"camaro":    30000,
	"trax":      19000,
}

const (
	defaultBaseValue = 18000

	// Yearly depreciation applied to the base value.
	yearlyRetention = 0.88
	// Mileage beyond the yearly allowance costs valuePerExcessMile.
	allowedMilesPerYear = 12000
	valuePerExcessMile  = 0.05
	// The quoted range spreads this far around the midpoint.
	rangeSpread = 0.10

	floorValue = 500
)

// Valuer prices trade vehicles from the base-value table. It shares the
// condition multiplier table with the instant-cash-offer math so the two
// quotes never drift apart.
type Valuer struct {
	now func() time.Time
}

// NewValuer creates a valuer using the wall clock.
func NewValuer() *Valuer {
	return &Valuer{now: time.Now}
}

// Value produces a {low, mid, high} range for the described vehicle.
func (v *Valuer) Value(year, model, mileage string, condition finance.Condition) tradein.Estimate {
	value := baseValue(model)

	age := v.vehicleAge(year)
	value *= math.Pow(yearlyRetention, float64(age))

	if miles, err := strconv.Atoi(mileage); err == nil {
		excess := float64(miles - age*allowedMilesPerYear)
		if excess > 0 {
			value -= excess * valuePerExcessMile
		}
	}

	value *= condition.Multiplier()
	if value < floorValue {
		value = floorValue
	}

	mid := roundTo50(value)
	return tradein.Estimate{
		Low:  roundTo50(value * (1 - rangeSpread)),
		Mid:  mid,
		High: roundTo50(value * (1 + rangeSpread)),
	}
}

func (v *Valuer) vehicleAge(year string) int {
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	age := v.now().Year() - y
	if age < 0 {
		return 0
	}
	return age
}

func baseValue(model string) float64 {
	norm := strings.ToLower(model)
	for key, value := range baseValues {
		if strings.Contains(norm, key) {
			return value
		}
	}
	return defaultBaseValue
}

func roundTo50(v float64) float64 {
	return math.Round(v/50) * 50
}
