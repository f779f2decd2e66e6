package gateway

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/finance"
	"github.com/crestline/showroom/internal/logging"
	"github.com/crestline/showroom/internal/tradein"
)

// Handler carries the gateway's dependencies into the route handlers.
type Handler struct {
	store  InventorySource
	valuer *Valuer
	book   *AppraisalBook
	logger logging.Logger
	dealer string
}

// InventorySource is the slice of the inventory store the gateway reads.
type InventorySource interface {
	Vehicles(ctx context.Context) ([]dealer.Vehicle, error)
}

// HealthResponse is the health probe body.
type HealthResponse struct {
	Status string `json:"status"`
	Dealer string `json:"dealer,omitempty"`
}

// Health reports liveness.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Dealer: h.dealer})
}

// InventoryResponse wraps the vehicle list. Kiosk clients also accept the
// historical bare-array shape; new responses use the wrapped one.
type InventoryResponse struct {
	Vehicles []dealer.Vehicle `json:"vehicles"`
}

// ListInventory returns the current lot, optionally filtered by model
// and status query params.
func (h *Handler) ListInventory(c echo.Context) error {
	vehicles, err := h.store.Vehicles(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "inventory unavailable")
	}

	model := c.QueryParam("model")
	status := c.QueryParam("status")
	filtered := make([]dealer.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if model != "" && !strings.EqualFold(v.Model, model) {
			continue
		}
		if status != "" && !strings.EqualFold(v.Status, status) {
			continue
		}
		filtered = append(filtered, v)
	}

	return c.JSON(http.StatusOK, InventoryResponse{Vehicles: filtered})
}

// DecodeVIN resolves a VIN against the lot first, then the static decode
// table. Unknown VINs are a 404, not an error.
func (h *Handler) DecodeVIN(c echo.Context) error {
	vin := tradein.NormalizeVIN(c.Param("vin"))
	if err := tradein.ValidateVIN(vin); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid VIN")
	}

	vehicles, err := h.store.Vehicles(c.Request().Context())
	if err == nil {
		for _, v := range vehicles {
			if v.VIN == vin {
				return c.JSON(http.StatusOK, tradein.DecodedVehicle{
					Year:  strconv.Itoa(v.Year),
					Make:  v.Make,
					Model: v.Model,
					Trim:  v.Trim,
				})
			}
		}
	}

	if decoded, ok := decodeTable[vin]; ok {
		return c.JSON(http.StatusOK, decoded)
	}
	return echo.NewHTTPError(http.StatusNotFound, "VIN not recognized")
}

// EstimateRequest is the valuation request body.
type EstimateRequest struct {
	Year      string `json:"year" validate:"required"`
	Make      string `json:"make" validate:"required"`
	Model     string `json:"model" validate:"required"`
	Trim      string `json:"trim"`
	Mileage   string `json:"mileage" validate:"required"`
	Condition string `json:"condition" validate:"required"`
	VIN       string `json:"vin"`
}

// Estimate values a trade vehicle.
func (h *Handler) Estimate(c echo.Context) error {
	var req EstimateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	condition, ok := finance.ParseCondition(req.Condition)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown condition grade")
	}

	est := h.valuer.Value(req.Year, req.Model, req.Mileage, condition)
	h.logger.Info("trade-in estimated",
		"model", req.Model, "condition", condition.String(), "mid", est.Mid)
	return c.JSON(http.StatusOK, est)
}

// AppraisalRequest is the booking request body.
type AppraisalRequest struct {
	SessionID    string  `json:"session_id" validate:"required"`
	Year         string  `json:"year" validate:"required"`
	Make         string  `json:"make" validate:"required"`
	Model        string  `json:"model" validate:"required"`
	Mileage      string  `json:"mileage" validate:"required"`
	VIN          string  `json:"vin"`
	PayoffAmount float64 `json:"payoff_amount"`
	EstimatedMid float64 `json:"estimated_mid"`
}

// AppraisalResponse acknowledges a booking.
type AppraisalResponse struct {
	AppraisalID string `json:"appraisal_id"`
}

// CreateAppraisal books an in-person appraisal.
func (h *Handler) CreateAppraisal(c echo.Context) error {
	var req AppraisalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id := h.book.Book(req)
	h.logger.Info("appraisal booked",
		"appraisal_id", id, "session_id", req.SessionID, "model", req.Model)
	return c.JSON(http.StatusCreated, AppraisalResponse{AppraisalID: id})
}
