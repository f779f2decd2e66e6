package finance

import (
	"math"
	"strings"
)

// Condition is a trade vehicle's self-reported condition grade.
type Condition string

const (
	ConditionExcellent Condition = "excellent"
	ConditionGood      Condition = "good"
	ConditionFair      Condition = "fair"
	ConditionPoor      Condition = "poor"
)

// conditionMultipliers maps a condition grade to the fraction of the
// estimated value offered as an instant cash offer.
var conditionMultipliers = map[Condition]float64{
	ConditionExcellent: 0.95,
	ConditionGood:      0.90,
	ConditionFair:      0.82,
	ConditionPoor:      0.70,
}

// Conditions returns all grades in display order, best first.
func Conditions() []Condition {
	return []Condition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor}
}

// ParseCondition parses a condition grade, case-insensitively.
func ParseCondition(s string) (Condition, bool) {
	c := Condition(strings.ToLower(strings.TrimSpace(s)))
	_, ok := conditionMultipliers[c]
	return c, ok
}

// IsValid returns true if the condition is a known grade.
func (c Condition) IsValid() bool {
	_, ok := conditionMultipliers[c]
	return ok
}

// Multiplier returns the cash-offer multiplier for the grade, or 0 for an
// unknown grade.
func (c Condition) Multiplier() float64 {
	return conditionMultipliers[c]
}

// String returns the lowercase grade name.
func (c Condition) String() string {
	return string(c)
}

// CashOffer converts an externally estimated value into an instant cash
// offer by applying the condition multiplier and rounding to the nearest
// $50. The trade-in wizard does not use this; it trusts the appraisal
// service's range directly.
func CashOffer(estimatedValue float64, condition Condition) float64 {
	return math.Round(estimatedValue*condition.Multiplier()/50) * 50
}
