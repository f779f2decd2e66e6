// Package dealer is the kiosk-side client for the dealer gateway. Every
// call takes a context and carries its own deadline; failures come back as
// coded errors the UI can surface inline with a retry.
package dealer

import (
	"encoding/json"

	"github.com/crestline/showroom/internal/errors"
)

// Vehicle is one unit on the lot as the gateway reports it.
type Vehicle struct {
	VIN     string  `json:"vin"`
	Year    int     `json:"year"`
	Make    string  `json:"make"`
	Model   string  `json:"model"`
	Trim    string  `json:"trim,omitempty"`
	Color   string  `json:"color,omitempty"`
	MSRP    float64 `json:"msrp,omitempty"`
	Status  string  `json:"status,omitempty"`
	StockNo string  `json:"stock_no,omitempty"`
}

// InventoryFilters narrows an inventory fetch. Zero values mean no filter.
type InventoryFilters struct {
	Model  string
	Status string
}

// EstimateRequest asks the gateway to value a trade vehicle.
type EstimateRequest struct {
	Year      string `json:"year"`
	Make      string `json:"make"`
	Model     string `json:"model"`
	Trim      string `json:"trim,omitempty"`
	Mileage   string `json:"mileage"`
	Condition string `json:"condition"`
	VIN       string `json:"vin,omitempty"`
}

// AppraisalRequest books an in-person appraisal.
type AppraisalRequest struct {
	SessionID    string  `json:"session_id"`
	Year         string  `json:"year"`
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Mileage      string  `json:"mileage"`
	VIN          string  `json:"vin,omitempty"`
	PayoffAmount float64 `json:"payoff_amount,omitempty"`
	EstimatedMid float64 `json:"estimated_mid,omitempty"`
}

// AppraisalConfirmation is the gateway's booking acknowledgement.
type AppraisalConfirmation struct {
	AppraisalID string `json:"appraisal_id"`
}

// normalizeInventory decodes either response shape the gateway is known to
// produce: a bare JSON array, or an object wrapping it under "vehicles".
// This is the single place that tolerance lives.
func normalizeInventory(body []byte) ([]Vehicle, error) {
	var direct []Vehicle
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct, nil
	}

	var wrapped struct {
		Vehicles []Vehicle `json:"vehicles"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, errors.Wrap(errors.Inventory, "unrecognized inventory response shape", err).
			WithOp("dealer.normalizeInventory")
	}
	return wrapped.Vehicles, nil
}
