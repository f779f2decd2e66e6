package deal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestline/showroom/internal/catalog"
)

func truckModel() catalog.Model {
	return catalog.Model{
		Name:       "Silverado 1500",
		CabOptions: []string{"Regular Cab", "Double Cab", "Crew Cab"},
	}
}

func suvModel() catalog.Model {
	return catalog.Model{Name: "Tahoe"}
}

func TestNewWizardState(t *testing.T) {
	s := NewWizardState()

	assert.Nil(t, s.SelectedModel)
	assert.Empty(t, s.SelectedCabSlug)
	assert.InDelta(t, 300.0, s.Budget.Min, 0.001)
	assert.Equal(t, 0, s.DownPaymentPercent)
}

func TestWizardState_SelectModel_ResetsDownstream(t *testing.T) {
	s := NewWizardState()
	s.SelectModel(truckModel())
	s.SelectCab("crew-cab")
	s.Colors.First = "Black"

	s.SelectModel(suvModel())

	assert.Equal(t, "Tahoe", s.SelectedModel.Name)
	assert.Empty(t, s.SelectedCabSlug)
	assert.Empty(t, s.Colors.List())
}

func TestWizardState_SelectCab(t *testing.T) {
	s := NewWizardState()

	// No model selected yet: cab choice is meaningless.
	s.SelectCab("crew-cab")
	assert.Empty(t, s.SelectedCabSlug)

	s.SelectModel(truckModel())
	s.SelectCab("crew-cab")
	assert.Equal(t, "crew-cab", s.SelectedCabSlug)
	assert.True(t, s.ModelHasCabs())

	// A cab-less model rejects cab choices.
	s.SelectModel(suvModel())
	s.SelectCab("crew-cab")
	assert.Empty(t, s.SelectedCabSlug)
	assert.False(t, s.ModelHasCabs())
}

func TestWizardState_SetMaxPayment(t *testing.T) {
	s := NewWizardState()

	s.SetMaxPayment(750)
	assert.InDelta(t, 750.0, s.Budget.Max, 0.001)

	// Clamped to the slider range.
	s.SetMaxPayment(100)
	assert.InDelta(t, 300.0, s.Budget.Max, 0.001)
	s.SetMaxPayment(5000)
	assert.InDelta(t, 2000.0, s.Budget.Max, 0.001)

	// Snapped to the $25 step.
	s.SetMaxPayment(762)
	assert.InDelta(t, 750.0, s.Budget.Max, 0.001)
	s.SetMaxPayment(763)
	assert.InDelta(t, 775.0, s.Budget.Max, 0.001)
}

func TestWizardState_SetDownPaymentPercent(t *testing.T) {
	s := NewWizardState()

	s.SetDownPaymentPercent(15)
	assert.Equal(t, 15, s.DownPaymentPercent)

	s.SetDownPaymentPercent(-5)
	assert.Equal(t, 0, s.DownPaymentPercent)

	s.SetDownPaymentPercent(95)
	assert.Equal(t, 30, s.DownPaymentPercent)

	s.SetDownPaymentPercent(13)
	assert.Equal(t, 15, s.DownPaymentPercent)
}

func TestColorChoices_List(t *testing.T) {
	assert.Empty(t, ColorChoices{}.List())
	assert.Equal(t, []string{"Black"}, ColorChoices{First: "Black"}.List())
	assert.Equal(t, []string{"Black", "Summit White"},
		ColorChoices{First: "Black", Second: "Summit White"}.List())
	// A stray second choice without a first still round-trips.
	assert.Equal(t, []string{"Summit White"}, ColorChoices{Second: "Summit White"}.List())
}

func TestWizardState_Summarize(t *testing.T) {
	s := NewWizardState()
	s.SelectModel(truckModel())
	s.SelectCab("crew-cab")
	s.Colors = ColorChoices{First: "Summit White", Second: "Black"}
	s.SetMaxPayment(800)
	s.SetDownPaymentPercent(10)
	s.HasTrade = true
	s.HasPayoff = true
	s.PayoffAmount = 15000
	s.FinancedWith = "GM Financial"
	s.TradeVehicle = TradeVehicle{Year: "2019", Make: "Chevrolet", Model: "Equinox", Mileage: "61000"}

	sum := s.Summarize()

	assert.Equal(t, "Silverado 1500", sum.ModelName)
	assert.Equal(t, "Crew Cab", sum.CabLabel)
	assert.Equal(t, []string{"Summit White", "Black"}, sum.Colors)
	assert.InDelta(t, 800.0, sum.BudgetMax, 0.001)
	assert.Equal(t, 10, sum.DownPaymentPercent)
	assert.True(t, sum.HasTrade)
	assert.True(t, sum.HasPayoff)
	assert.InDelta(t, 15000.0, sum.PayoffAmount, 0.001)
	assert.Equal(t, "Equinox", sum.TradeVehicle.Model)
}

func TestWizardState_Summarize_NoModel(t *testing.T) {
	sum := NewWizardState().Summarize()

	require.Empty(t, sum.ModelName)
	assert.Empty(t, sum.CabLabel)
	assert.Empty(t, sum.Colors)
}
