package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestline/showroom/internal/deal"
	"github.com/crestline/showroom/internal/dealer"
	mocks "github.com/crestline/showroom/internal/testing"
	"github.com/crestline/showroom/internal/tradein"
	"github.com/crestline/showroom/internal/ui/views"
)

// ============================================================================
// Test fixtures
// ============================================================================

type stubGateway struct {
	estimate    tradein.Estimate
	appraisalID string
}

func (s *stubGateway) GetInventory(context.Context, dealer.InventoryFilters) ([]dealer.Vehicle, error) {
	return nil, nil
}

func (s *stubGateway) DecodeVin(context.Context, string) (*tradein.DecodedVehicle, error) {
	return nil, nil
}

func (s *stubGateway) GetTradeInEstimate(context.Context, dealer.EstimateRequest) (tradein.Estimate, error) {
	return s.estimate, nil
}

func (s *stubGateway) RequestAppraisal(context.Context, dealer.AppraisalRequest) (dealer.AppraisalConfirmation, error) {
	return dealer.AppraisalConfirmation{AppraisalID: s.appraisalID}, nil
}

func (s *stubGateway) EstimateTradeIn(context.Context, tradein.TradeData) (tradein.Estimate, error) {
	return s.estimate, nil
}

func testModel(t *testing.T) Model {
	t.Helper()
	m := New(Deps{Gateway: &stubGateway{appraisalID: "appr-7"}})
	t.Cleanup(m.Shutdown)

	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mm.(Model)
}

// apply runs one message through the model and, when the resulting command
// produces messages synchronously, feeds those back in as Bubble Tea would.
func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	mm, cmd := m.Update(msg)
	model := mm.(Model)
	if cmd == nil {
		return model
	}
	return drain(t, model, cmd())
}

func drain(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	switch batched := msg.(type) {
	case tea.BatchMsg:
		for _, c := range batched {
			if c != nil {
				m = drain(t, m, c())
			}
		}
		return m
	case nil:
		return m
	}
	return apply(t, m, msg)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ============================================================================
// Wizard flow
// ============================================================================

func TestApp_StartsOnCategory(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, ViewCategory, m.CurrentView())
	assert.Contains(t, m.View(), "What are you shopping for?")
}

func TestApp_FullDealFlow(t *testing.T) {
	m := testModel(t)

	// Category: Trucks is first.
	m = apply(t, m, keyMsg("enter"))
	require.Equal(t, ViewModel, m.CurrentView())

	// Model: Silverado 1500 is first and offers cabs.
	m = apply(t, m, keyMsg("enter"))
	require.Equal(t, ViewCab, m.CurrentView())
	require.NotNil(t, m.Wizard().SelectedModel)
	assert.Equal(t, "Silverado 1500", m.Wizard().SelectedModel.Name)

	// Cab: Regular Cab is first.
	m = apply(t, m, keyMsg("enter"))
	require.Equal(t, ViewColor, m.CurrentView())
	assert.Equal(t, "regular-cab", m.Wizard().SelectedCabSlug)

	// Colors: pick the first two.
	m = apply(t, m, keyMsg("enter"))
	require.Equal(t, ViewColor, m.CurrentView())
	m = apply(t, m, keyMsg("enter"))
	require.Equal(t, ViewBudget, m.CurrentView())
	assert.Len(t, m.Wizard().Colors.List(), 2)

	// Budget: bump the payment once and confirm.
	m = apply(t, m, keyMsg("right"))
	m = apply(t, m, keyMsg("enter"))
	require.Equal(t, ViewTrade, m.CurrentView())
	assert.InDelta(t, 525, m.Wizard().Budget.Max, 0.001)

	// Trade: hand the app a finished estimator outcome.
	outcome := tradein.Outcome{
		Data:     tradein.TradeData{Year: "2019", Make: "Chevrolet", Model: "Equinox", Mileage: "61000"},
		Estimate: tradein.Estimate{Low: 9000, Mid: 10000, High: 11000},
	}
	m = apply(t, m, views.TradeCompletedMsg{Outcome: outcome})
	require.Equal(t, ViewSummary, m.CurrentView())

	snap := m.Session().Snapshot()
	assert.Equal(t, "Silverado 1500", snap.ModelName)
	assert.InDelta(t, 10000, snap.TradeValue, 0.001)
}

func TestApp_ProgressLineSkipsCabForModelsWithoutCabs(t *testing.T) {
	m := testModel(t)

	m = apply(t, m, views.NavigateMsg{Route: deal.Route{Step: deal.StepColor, ModelSlug: "tahoe"}})
	require.Equal(t, ViewColor, m.CurrentView())
	assert.Contains(t, m.View(), "Step 3 of 5")
}

func TestApp_CabModelProgressUsesSixSteps(t *testing.T) {
	m := testModel(t)

	m = apply(t, m, views.NavigateMsg{Route: deal.Route{
		Step: deal.StepColor, ModelSlug: "silverado-1500", CabSlug: "crew-cab",
	}})
	require.Equal(t, ViewColor, m.CurrentView())
	assert.Contains(t, m.View(), "Step 4 of 6")
}

func TestApp_UnknownRouteFallsBackToCategory(t *testing.T) {
	m := testModel(t)

	m = apply(t, m, views.NavigateMsg{Route: deal.Route{Step: deal.StepBudget, ModelSlug: "delorean"}})
	assert.Equal(t, ViewCategory, m.CurrentView())
}

func TestApp_AppraisalRequestBooksAppraiser(t *testing.T) {
	m := testModel(t)
	m = apply(t, m, views.NavigateMsg{Route: deal.Route{Step: deal.StepTrade, ModelSlug: "tahoe"}})

	outcome := tradein.Outcome{
		Data:               tradein.TradeData{Year: "2018", Make: "Chevrolet", Model: "Cruze", Mileage: "90000"},
		Estimate:           tradein.Estimate{Mid: 6000},
		AppraisalRequested: true,
	}
	m = apply(t, m, views.TradeCompletedMsg{Outcome: outcome})

	require.Equal(t, ViewSummary, m.CurrentView())
	assert.Contains(t, m.View(), "appr-7")
	assert.True(t, m.Session().Snapshot().AppraisalRequested)
}

func TestApp_RestartResetsEverything(t *testing.T) {
	m := testModel(t)
	firstSession := m.Session().ID()

	m = apply(t, m, views.NavigateMsg{Route: deal.Route{Step: deal.StepBudget, ModelSlug: "tahoe"}})
	require.Equal(t, ViewBudget, m.CurrentView())

	m = apply(t, m, keyMsg("ctrl+r"))
	assert.Equal(t, ViewCategory, m.CurrentView())
	assert.Nil(t, m.Wizard().SelectedModel)
	assert.NotEqual(t, firstSession, m.Session().ID())
}

func TestApp_ErrorMsgShowsErrorView(t *testing.T) {
	m := testModel(t)

	m = apply(t, m, ErrorMsg{Err: assert.AnError})
	assert.Equal(t, ViewError, m.CurrentView())
	assert.Contains(t, m.View(), "Something went wrong")

	// Enter recovers to the category screen.
	m = apply(t, m, keyMsg("enter"))
	assert.Equal(t, ViewCategory, m.CurrentView())
}

// ============================================================================
// Camera lifecycle
// ============================================================================

func cameraModel(t *testing.T, cam *mocks.MockCamera) Model {
	t.Helper()
	m := New(Deps{Gateway: &stubGateway{}, Camera: cam})
	mm, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return mm.(Model)
}

func TestApp_PhotoCaptureClaimsCamera(t *testing.T) {
	cam := mocks.NewMockCamera()
	m := cameraModel(t, cam)

	m = apply(t, m, views.NavigateMsg{Route: deal.Route{Step: deal.StepTrade, ModelSlug: "tahoe"}})
	require.Equal(t, ViewTrade, m.CurrentView())

	m = apply(t, m, keyMsg("ctrl+p"))
	assert.True(t, cam.IsAcquired())
	assert.Equal(t, []tradein.PhotoSlot{tradein.SlotFront}, cam.Captures())
}

func TestApp_LeavingTradeStepReleasesCamera(t *testing.T) {
	cam := mocks.NewMockCamera()
	m := cameraModel(t, cam)

	m = apply(t, m, views.NavigateMsg{Route: deal.Route{Step: deal.StepTrade, ModelSlug: "tahoe"}})
	m = apply(t, m, keyMsg("ctrl+p"))
	require.True(t, cam.IsAcquired())

	m = apply(t, m, views.NavigateMsg{Route: deal.Route{Step: deal.StepCategory}})
	assert.Equal(t, ViewCategory, m.CurrentView())
	assert.False(t, cam.IsAcquired())
}

func TestApp_RestartReleasesCamera(t *testing.T) {
	cam := mocks.NewMockCamera()
	m := cameraModel(t, cam)

	m = apply(t, m, views.NavigateMsg{Route: deal.Route{Step: deal.StepTrade, ModelSlug: "tahoe"}})
	m = apply(t, m, keyMsg("ctrl+p"))
	require.True(t, cam.IsAcquired())

	m = apply(t, m, keyMsg("ctrl+r"))
	assert.Equal(t, ViewCategory, m.CurrentView())
	assert.False(t, cam.IsAcquired())
}

func TestApp_ShutdownReleasesCamera(t *testing.T) {
	cam := mocks.NewMockCamera()
	require.NoError(t, cam.Acquire(context.Background()))

	m := New(Deps{Gateway: &stubGateway{}, Camera: cam})
	m.Shutdown()

	assert.False(t, cam.IsAcquired())
}

func TestApp_QuitKey(t *testing.T) {
	m := testModel(t)

	mm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	model := mm.(Model)
	assert.NotNil(t, cmd)
	assert.Contains(t, model.View(), "Thanks for visiting")
}

func TestViewState_String(t *testing.T) {
	assert.Equal(t, "Category", ViewCategory.String())
	assert.Equal(t, "Summary", ViewSummary.String())
	assert.Equal(t, "Unknown", ViewState(99).String())
}
