package dealer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/crestline/showroom/internal/constants"
	"github.com/crestline/showroom/internal/errors"
	"github.com/crestline/showroom/internal/logging"
	"github.com/crestline/showroom/internal/tradein"
)

// Dealer is what the kiosk needs from the gateway. Client implements it;
// tests substitute mocks.
type Dealer interface {
	GetInventory(ctx context.Context, filters InventoryFilters) ([]Vehicle, error)
	DecodeVin(ctx context.Context, vin string) (*tradein.DecodedVehicle, error)
	GetTradeInEstimate(ctx context.Context, req EstimateRequest) (tradein.Estimate, error)
	RequestAppraisal(ctx context.Context, req AppraisalRequest) (AppraisalConfirmation, error)
}

// Client talks HTTP to the dealer gateway.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	logger  logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the per-call deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the client logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient creates a gateway client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: constants.DealerCallTimeout,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetInventory fetches current lot inventory. Both known response shapes
// are accepted.
func (c *Client) GetInventory(ctx context.Context, filters InventoryFilters) ([]Vehicle, error) {
	q := url.Values{}
	if filters.Model != "" {
		q.Set("model", filters.Model)
	}
	if filters.Status != "" {
		q.Set("status", filters.Status)
	}
	endpoint := "/api/v1/inventory"
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	body, status, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(errors.Inventory, "inventory fetch failed", err).
			WithOp("dealer.GetInventory")
	}
	if status != http.StatusOK {
		return nil, errors.Newf(errors.Inventory, "inventory fetch returned %d", status).
			WithOp("dealer.GetInventory")
	}
	return normalizeInventory(body)
}

// DecodeVin asks the gateway to decode a VIN. An unknown VIN is not an
// error; the caller gets nil and keeps the typed-in fields.
func (c *Client) DecodeVin(ctx context.Context, vin string) (*tradein.DecodedVehicle, error) {
	vin = tradein.NormalizeVIN(vin)
	if err := tradein.ValidateVIN(vin); err != nil {
		return nil, err
	}

	body, status, err := c.do(ctx, http.MethodGet, "/api/v1/vin/"+url.PathEscape(vin), nil)
	if err != nil {
		return nil, errors.Wrap(errors.VinDecode, "vin decode failed", err).
			WithOp("dealer.DecodeVin")
	}
	if status == http.StatusNotFound {
		c.logger.Debug("vin not found", "vin", vin)
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, errors.Newf(errors.VinDecode, "vin decode returned %d", status).
			WithOp("dealer.DecodeVin")
	}

	var decoded tradein.DecodedVehicle
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrap(errors.VinDecode, "failed to parse decode response", err).
			WithOp("dealer.DecodeVin")
	}
	return &decoded, nil
}

// GetTradeInEstimate requests a value range for a trade vehicle.
func (c *Client) GetTradeInEstimate(ctx context.Context, req EstimateRequest) (tradein.Estimate, error) {
	body, status, err := c.do(ctx, http.MethodPost, "/api/v1/tradein/estimate", req)
	if err != nil {
		return tradein.Estimate{}, errors.Wrap(errors.Estimate, "estimate request failed", err).
			WithOp("dealer.GetTradeInEstimate")
	}
	if status != http.StatusOK {
		return tradein.Estimate{}, errors.Newf(errors.Estimate, "estimate request returned %d", status).
			WithOp("dealer.GetTradeInEstimate")
	}

	var est tradein.Estimate
	if err := json.Unmarshal(body, &est); err != nil {
		return tradein.Estimate{}, errors.Wrap(errors.Estimate, "failed to parse estimate response", err).
			WithOp("dealer.GetTradeInEstimate")
	}
	return est, nil
}

// RequestAppraisal books an in-person appraisal and returns the booking id.
func (c *Client) RequestAppraisal(ctx context.Context, req AppraisalRequest) (AppraisalConfirmation, error) {
	body, status, err := c.do(ctx, http.MethodPost, "/api/v1/appraisals", req)
	if err != nil {
		return AppraisalConfirmation{}, errors.Wrap(errors.Appraisal, "appraisal request failed", err).
			WithOp("dealer.RequestAppraisal")
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return AppraisalConfirmation{}, errors.Newf(errors.Appraisal, "appraisal request returned %d", status).
			WithOp("dealer.RequestAppraisal")
	}

	var conf AppraisalConfirmation
	if err := json.Unmarshal(body, &conf); err != nil {
		return AppraisalConfirmation{}, errors.Wrap(errors.Appraisal, "failed to parse appraisal response", err).
			WithOp("dealer.RequestAppraisal")
	}
	return conf, nil
}

// EstimateTradeIn adapts the client to the estimator interface the trade-in
// machine consumes.
func (c *Client) EstimateTradeIn(ctx context.Context, data tradein.TradeData) (tradein.Estimate, error) {
	return c.GetTradeInEstimate(ctx, EstimateRequest{
		Year:      data.Year,
		Make:      data.Make,
		Model:     data.Model,
		Trim:      data.Trim,
		Mileage:   data.Mileage,
		Condition: data.Condition.String(),
		VIN:       data.VIN,
	})
}

// Health checks gateway liveness.
func (c *Client) Health(ctx context.Context) error {
	_, status, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return errors.Wrap(errors.Network, "gateway unreachable", err).WithOp("dealer.Health")
	}
	if status != http.StatusOK {
		return errors.Newf(errors.Network, "gateway health returned %d", status).WithOp("dealer.Health")
	}
	return nil
}

// do runs one request under the client deadline and returns the body and
// status. Transport errors come back raw; callers wrap with their code.
func (c *Client) do(ctx context.Context, method, endpoint string, payload any) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return nil, 0, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	c.logger.Debug("gateway call",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start))
	return body, resp.StatusCode, nil
}
