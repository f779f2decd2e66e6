package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		input    string
		expected Condition
		ok       bool
	}{
		{"excellent", ConditionExcellent, true},
		{"Good", ConditionGood, true},
		{"  FAIR  ", ConditionFair, true},
		{"poor", ConditionPoor, true},
		{"mint", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, ok := ParseCondition(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expected, c)
			}
		})
	}
}

func TestCondition_Multiplier(t *testing.T) {
	assert.InDelta(t, 0.95, ConditionExcellent.Multiplier(), 0.001)
	assert.InDelta(t, 0.90, ConditionGood.Multiplier(), 0.001)
	assert.InDelta(t, 0.82, ConditionFair.Multiplier(), 0.001)
	assert.InDelta(t, 0.70, ConditionPoor.Multiplier(), 0.001)
	assert.InDelta(t, 0.0, Condition("mint").Multiplier(), 0.001)
}

func TestConditions_Order(t *testing.T) {
	grades := Conditions()
	require.Len(t, grades, 4)
	assert.Equal(t, ConditionExcellent, grades[0])
	assert.Equal(t, ConditionPoor, grades[3])
	for _, g := range grades {
		assert.True(t, g.IsValid())
	}
}

func TestCashOffer(t *testing.T) {
	assert.InDelta(t, 19800.0, CashOffer(22000, ConditionGood), 0.001)
	assert.InDelta(t, 15400.0, CashOffer(22000, ConditionPoor), 0.001)

	// Offers land on $50 increments.
	assert.InDelta(t, 20900.0, CashOffer(21997, ConditionExcellent), 0.001)
}
