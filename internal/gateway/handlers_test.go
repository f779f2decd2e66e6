package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestline/showroom/internal/config"
	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/inventory"
	"github.com/crestline/showroom/internal/logging"
	"github.com/crestline/showroom/internal/tradein"
)

func testGateway(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := inventory.Open(":memory:", logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, SeedStore(context.Background(), store))

	cfg := config.DefaultConfig()
	srv := New(cfg, logging.NewNop(), store)

	ts := httptest.NewServer(srv.Echo())
	t.Cleanup(ts.Close)
	return ts
}

func TestGateway_Health(t *testing.T) {
	ts := testGateway(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, config.DefaultDealerName, body.Dealer)
}

func TestGateway_ListInventory(t *testing.T) {
	ts := testGateway(t)

	resp, err := http.Get(ts.URL + "/api/v1/inventory")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body InventoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Vehicles, len(demoFleet))
}

func TestGateway_ListInventory_Filtered(t *testing.T) {
	ts := testGateway(t)

	resp, err := http.Get(ts.URL + "/api/v1/inventory?model=Equinox&status=in_stock")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body InventoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Vehicles, 1)
	assert.Equal(t, "Equinox", body.Vehicles[0].Model)
	assert.Equal(t, "in_stock", body.Vehicles[0].Status)
}

func TestGateway_DecodeVIN(t *testing.T) {
	ts := testGateway(t)

	t.Run("lot vehicle", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/vin/1GCUYDED5KZ100001")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var decoded tradein.DecodedVehicle
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
		assert.Equal(t, "Silverado 1500", decoded.Model)
		assert.Equal(t, "2025", decoded.Year)
	})

	t.Run("decode table", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/vin/2GNFLFEK5H6200001")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		var decoded tradein.DecodedVehicle
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
		assert.Equal(t, "2017", decoded.Year)
	})

	t.Run("unknown VIN is 404", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/vin/1GCUYDED5KZ999999")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("malformed VIN is 400", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/vin/NOTAVIN")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGateway_Estimate(t *testing.T) {
	ts := testGateway(t)

	body := `{"year":"2019","make":"Chevrolet","model":"Equinox","mileage":"61000","condition":"good"}`
	resp, err := http.Post(ts.URL+"/api/v1/tradein/estimate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var est tradein.Estimate
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&est))
	assert.Greater(t, est.Mid, 0.0)
	assert.Less(t, est.Low, est.High)
}

func TestGateway_Estimate_Validation(t *testing.T) {
	ts := testGateway(t)

	t.Run("missing fields", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/tradein/estimate", "application/json",
			strings.NewReader(`{"year":"2019"}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown condition", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/v1/tradein/estimate", "application/json",
			strings.NewReader(`{"year":"2019","make":"Chevrolet","model":"Equinox","mileage":"61000","condition":"mint"}`))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGateway_CreateAppraisal(t *testing.T) {
	ts := testGateway(t)

	body := `{"session_id":"sess-1","year":"2019","make":"Chevrolet","model":"Equinox","mileage":"61000"}`
	resp, err := http.Post(ts.URL+"/api/v1/appraisals", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var ack AppraisalResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ack))
	assert.NotEmpty(t, ack.AppraisalID)
}

func TestGateway_CreateAppraisal_MissingSession(t *testing.T) {
	ts := testGateway(t)

	resp, err := http.Post(ts.URL+"/api/v1/appraisals", "application/json",
		strings.NewReader(`{"year":"2019"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// The kiosk client and the gateway agree end to end.
func TestGateway_KioskClientRoundTrip(t *testing.T) {
	ts := testGateway(t)
	client := dealer.NewClient(ts.URL)
	ctx := context.Background()

	require.NoError(t, client.Health(ctx))

	vehicles, err := client.GetInventory(ctx, dealer.InventoryFilters{})
	require.NoError(t, err)
	assert.Len(t, vehicles, len(demoFleet))

	decoded, err := client.DecodeVin(ctx, "1GCVKREC5JZ200002")
	require.NoError(t, err)
	require.NotNil(t, decoded)
	assert.Equal(t, "Silverado 1500", decoded.Model)

	est, err := client.GetTradeInEstimate(ctx, dealer.EstimateRequest{
		Year: "2018", Make: "Chevrolet", Model: "Silverado 1500",
		Mileage: "85000", Condition: "good",
	})
	require.NoError(t, err)
	assert.Greater(t, est.Mid, 0.0)

	conf, err := client.RequestAppraisal(ctx, dealer.AppraisalRequest{
		SessionID: "sess-2", Year: "2018", Make: "Chevrolet",
		Model: "Silverado 1500", Mileage: "85000",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, conf.AppraisalID)
}

func TestAppraisalBook(t *testing.T) {
	book := NewAppraisalBook()
	assert.Zero(t, book.Len())

	id := book.Book(AppraisalRequest{SessionID: "sess-1", Model: "Equinox"})
	require.NotEmpty(t, id)

	entry, ok := book.Get(id)
	require.True(t, ok)
	assert.Equal(t, "Equinox", entry.Request.Model)
	assert.Equal(t, 1, book.Len())

	_, ok = book.Get("missing")
	assert.False(t, ok)
}
