package app

import (
	"context"

	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/errors"
	"github.com/crestline/showroom/internal/finance"
	"github.com/crestline/showroom/internal/gateway"
	"github.com/crestline/showroom/internal/inventory"
	"github.com/crestline/showroom/internal/tradein"
)

// offlineGateway serves the kiosk when no dealer gateway is reachable. It
// answers inventory calls from the local cache and values trades with the
// same book the gateway uses. VIN decode and appraisal booking genuinely
// need the dealer system and fail with coded errors the UI can surface.
type offlineGateway struct {
	store  *inventory.Store
	valuer *gateway.Valuer
}

func newOfflineGateway(store *inventory.Store) *offlineGateway {
	return &offlineGateway{
		store:  store,
		valuer: gateway.NewValuer(),
	}
}

// GetInventory returns the last cached lot snapshot.
func (g *offlineGateway) GetInventory(ctx context.Context, filters dealer.InventoryFilters) ([]dealer.Vehicle, error) {
	if g.store == nil {
		return nil, errors.New(errors.Inventory, "no local inventory cache").
			WithOp("app.offlineGateway.GetInventory")
	}

	vehicles, err := g.store.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	if filters.Model == "" && filters.Status == "" {
		return vehicles, nil
	}

	filtered := make([]dealer.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if filters.Model != "" && v.Model != filters.Model {
			continue
		}
		if filters.Status != "" && v.Status != filters.Status {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered, nil
}

// DecodeVin always fails offline. The trade estimator degrades to manual
// entry when the decode comes back with an error.
func (g *offlineGateway) DecodeVin(ctx context.Context, vin string) (*tradein.DecodedVehicle, error) {
	return nil, errors.New(errors.Network, "vin decode requires the dealer gateway").
		WithOp("app.offlineGateway.DecodeVin")
}

// GetTradeInEstimate values the trade with the local book.
func (g *offlineGateway) GetTradeInEstimate(ctx context.Context, req dealer.EstimateRequest) (tradein.Estimate, error) {
	cond, ok := finance.ParseCondition(req.Condition)
	if !ok {
		return tradein.Estimate{}, errors.Newf(errors.Validation, "unknown condition %q", req.Condition).
			WithOp("app.offlineGateway.GetTradeInEstimate")
	}
	return g.valuer.Value(req.Year, req.Model, req.Mileage, cond), nil
}

// EstimateTradeIn values the trade with the local book.
func (g *offlineGateway) EstimateTradeIn(ctx context.Context, data tradein.TradeData) (tradein.Estimate, error) {
	return g.valuer.Value(data.Year, data.Model, data.Mileage, data.Condition), nil
}

// RequestAppraisal always fails offline. Booking lives in the dealer system.
func (g *offlineGateway) RequestAppraisal(ctx context.Context, req dealer.AppraisalRequest) (dealer.AppraisalConfirmation, error) {
	return dealer.AppraisalConfirmation{}, errors.New(errors.Appraisal, "appraisal booking requires the dealer gateway").
		WithOp("app.offlineGateway.RequestAppraisal")
}
