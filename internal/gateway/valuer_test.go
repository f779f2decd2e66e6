package gateway

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/crestline/showroom/internal/finance"
)

func fixedValuer(year int) *Valuer {
	return &Valuer{now: func() time.Time {
		return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC)
	}}
}

func TestValuer_Value(t *testing.T) {
	v := fixedValuer(2026)

	est := v.Value("2021", "Equinox", "60000", finance.ConditionGood)

	assert.Greater(t, est.Mid, 0.0)
	assert.Less(t, est.Low, est.Mid)
	assert.Greater(t, est.High, est.Mid)

	// Everything lands on $50 increments.
	for _, val := range []float64{est.Low, est.Mid, est.High} {
		assert.Zero(t, math.Mod(val, 50), "value %v not on a $50 step", val)
	}
}

func TestValuer_ConditionOrdersValues(t *testing.T) {
	v := fixedValuer(2026)

	excellent := v.Value("2021", "Tahoe", "50000", finance.ConditionExcellent)
	good := v.Value("2021", "Tahoe", "50000", finance.ConditionGood)
	poor := v.Value("2021", "Tahoe", "50000", finance.ConditionPoor)

	assert.Greater(t, excellent.Mid, good.Mid)
	assert.Greater(t, good.Mid, poor.Mid)
}

func TestValuer_AgeAndMileageDepreciate(t *testing.T) {
	v := fixedValuer(2026)

	newer := v.Value("2024", "Silverado 1500", "20000", finance.ConditionGood)
	older := v.Value("2018", "Silverado 1500", "20000", finance.ConditionGood)
	assert.Greater(t, newer.Mid, older.Mid)

	lowMiles := v.Value("2021", "Malibu", "30000", finance.ConditionGood)
	highMiles := v.Value("2021", "Malibu", "120000", finance.ConditionGood)
	assert.Greater(t, lowMiles.Mid, highMiles.Mid)
}

func TestValuer_FloorsAtMinimum(t *testing.T) {
	v := fixedValuer(2026)

	est := v.Value("1998", "Metro", "400000", finance.ConditionPoor)
	assert.GreaterOrEqual(t, est.Mid, 500.0)
}

func TestValuer_UnparseableInputs(t *testing.T) {
	v := fixedValuer(2026)

	// Bad year or mileage degrade gracefully instead of erroring.
	est := v.Value("unknown", "Equinox", "not a number", finance.ConditionFair)
	assert.Greater(t, est.Mid, 0.0)
}

func TestBaseValue(t *testing.T) {
	assert.InDelta(t, 38000.0, baseValue("Silverado 1500 Crew Cab"), 0.001)
	assert.InDelta(t, 48000.0, baseValue("TAHOE"), 0.001)
	assert.InDelta(t, float64(defaultBaseValue), baseValue("Unknown Roadster"), 0.001)
}
