package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/crestline/showroom/internal/catalog"
	"github.com/crestline/showroom/internal/deal"
	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/inventory"
	"github.com/crestline/showroom/internal/tradein"
)

// NavigateMsg asks the app to move the wizard to a different route.
type NavigateMsg struct {
	Route deal.Route
}

// RestartMsg asks the app to reset the wizard for the next customer.
type RestartMsg struct{}

// InventoryCountsMsg delivers per-model inventory counts.
type InventoryCountsMsg struct {
	Counts map[string]int
}

// VinDecodedMsg delivers the result of a VIN lookup. Decoded is nil when
// the dealer system does not know the VIN.
type VinDecodedMsg struct {
	Decoded *tradein.DecodedVehicle
	Err     error
}

// EstimateReadyMsg delivers a trade-in estimate.
type EstimateReadyMsg struct {
	Estimate tradein.Estimate
	Err      error
}

// PhotoCapturedMsg delivers a captured trade-in photo.
type PhotoCapturedMsg struct {
	Photo tradein.Photo
	Err   error
}

// AppraisalBookedMsg delivers the confirmation of an appraisal request.
type AppraisalBookedMsg struct {
	AppraisalID string
	Err         error
}

// Command constructors

func navigateCmd(route deal.Route) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Route: route}
	}
}

func restartCmd() tea.Cmd {
	return func() tea.Msg {
		return RestartMsg{}
	}
}

// FetchCounts returns a command that looks up inventory counts for the
// given models. The counter never errors, so this always delivers a map.
func FetchCounts(ctx context.Context, counter *inventory.Counter, models []catalog.Model) tea.Cmd {
	return func() tea.Msg {
		return InventoryCountsMsg{Counts: counter.Counts(ctx, models)}
	}
}

// DecodeVin returns a command that asks the dealer system to decode a VIN.
func DecodeVin(ctx context.Context, client dealer.Dealer, vin string) tea.Cmd {
	return func() tea.Msg {
		decoded, err := client.DecodeVin(ctx, vin)
		return VinDecodedMsg{Decoded: decoded, Err: err}
	}
}

// FetchEstimate returns a command that requests a trade-in estimate.
func FetchEstimate(ctx context.Context, estimator tradein.Estimator, data tradein.TradeData) tea.Cmd {
	return func() tea.Msg {
		est, err := estimator.EstimateTradeIn(ctx, data)
		return EstimateReadyMsg{Estimate: est, Err: err}
	}
}

// CapturePhoto returns a command that captures one trade-in photo.
func CapturePhoto(ctx context.Context, camera tradein.Camera, slot tradein.PhotoSlot) tea.Cmd {
	return func() tea.Msg {
		photo, err := camera.Capture(ctx, slot)
		return PhotoCapturedMsg{Photo: photo, Err: err}
	}
}

// BookAppraisal returns a command that requests an in-person appraisal.
func BookAppraisal(ctx context.Context, client dealer.Dealer, req dealer.AppraisalRequest) tea.Cmd {
	return func() tea.Msg {
		conf, err := client.RequestAppraisal(ctx, req)
		return AppraisalBookedMsg{AppraisalID: conf.AppraisalID, Err: err}
	}
}
