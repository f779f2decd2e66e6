package testing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/errors"
	"github.com/crestline/showroom/internal/logging"
	"github.com/crestline/showroom/internal/tradein"
)

// ============================================================================
// MockLogger Tests
// ============================================================================

func TestMockLogger_RecordsMessages(t *testing.T) {
	l := NewMockLogger()

	l.Debug("first", "k", 1)
	l.Info("second")
	l.Error("third")

	msgs := l.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, logging.LevelDebug, msgs[0].Level)
	assert.Equal(t, "first", msgs[0].Message)
	assert.Equal(t, []interface{}{"k", 1}, msgs[0].Fields)
}

func TestMockLogger_MessagesAt(t *testing.T) {
	l := NewMockLogger()

	l.Info("a")
	l.Warn("b")
	l.Warn("c")

	assert.Len(t, l.MessagesAt(logging.LevelWarn), 2)
	assert.Len(t, l.MessagesAt(logging.LevelError), 0)
}

func TestMockLogger_WithPrefixSharesStorage(t *testing.T) {
	l := NewMockLogger()
	child := l.WithPrefix("inventory")

	child.Info("cache refreshed")

	msgs := l.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "inventory", msgs[0].Prefix)
	assert.True(t, l.HasMessage("cache refreshed"))
}

func TestMockLogger_Clear(t *testing.T) {
	l := NewMockLogger()
	l.Info("something")

	l.Clear()

	assert.Empty(t, l.Messages())
}

func TestMockLogger_SetLevel(t *testing.T) {
	l := NewMockLogger()

	l.SetLevel(logging.LevelError)

	assert.Equal(t, logging.LevelError, l.Level())
}

// ============================================================================
// MockDealer Tests
// ============================================================================

func TestMockDealer_Inventory(t *testing.T) {
	m := NewMockDealer()
	m.Vehicles = FixtureLot()

	got, err := m.GetInventory(context.Background(), dealer.InventoryFilters{})

	require.NoError(t, err)
	assert.Len(t, got, 4)
	assert.Equal(t, 1, m.CallCount("GetInventory"))
}

func TestMockDealer_InventoryError(t *testing.T) {
	m := NewMockDealer()
	m.InventoryErr = errors.New(errors.Network, "gateway down")

	_, err := m.GetInventory(context.Background(), dealer.InventoryFilters{})

	require.Error(t, err)
	AssertErrorCode(t, err, errors.Network)
}

func TestMockDealer_DecodeVin(t *testing.T) {
	m := NewMockDealer()
	m.Decoded["2GNFLFEK5H6200001"] = FixtureDecoded()

	decoded, err := m.DecodeVin(context.Background(), "2GNFLFEK5H6200001")
	require.NoError(t, err)
	assert.Equal(t, "Equinox", decoded.Model)

	_, err = m.DecodeVin(context.Background(), "UNKNOWNVIN0000000")
	assert.Error(t, err)
}

func TestMockDealer_EstimateRecordsPayload(t *testing.T) {
	m := NewMockDealer()
	m.Estimate = FixtureEstimate()

	est, err := m.EstimateTradeIn(context.Background(), FixtureTradeData())

	require.NoError(t, err)
	assert.Equal(t, 10500.0, est.Mid)
	assert.Equal(t, "Equinox", m.LastTradeData().Model)
	assert.Equal(t, []string{"EstimateTradeIn"}, m.Calls())
}

func TestMockDealer_AppraisalConfirmation(t *testing.T) {
	m := NewMockDealer()
	m.AppraisalID = "appr-42"

	conf, err := m.RequestAppraisal(context.Background(), FixtureAppraisalRequest())

	require.NoError(t, err)
	assert.Equal(t, "appr-42", conf.AppraisalID)
	assert.Equal(t, "sess-fixture", m.LastAppraisalRequest().SessionID)
}

// ============================================================================
// MockCamera Tests
// ============================================================================

func TestMockCamera_CaptureRequiresAcquire(t *testing.T) {
	cam := NewMockCamera()

	_, err := cam.Capture(context.Background(), tradein.PhotoSlot("front"))

	require.Error(t, err)
	AssertErrorCode(t, err, errors.Camera)
}

func TestMockCamera_CaptureFlow(t *testing.T) {
	cam := NewMockCamera()
	require.NoError(t, cam.Acquire(context.Background()))

	photo, err := cam.Capture(context.Background(), tradein.PhotoSlot("front"))

	require.NoError(t, err)
	assert.Equal(t, tradein.PhotoSlot("front"), photo.Slot)
	assert.NotEmpty(t, photo.Path)
	assert.Equal(t, []tradein.PhotoSlot{"front"}, cam.Captures())
}

func TestMockCamera_AcquireTwiceIsBusy(t *testing.T) {
	cam := NewMockCamera()
	require.NoError(t, cam.Acquire(context.Background()))

	err := cam.Acquire(context.Background())

	AssertErrorCode(t, err, errors.Camera)
}

func TestMockCamera_ReleaseIdempotent(t *testing.T) {
	cam := NewMockCamera()
	require.NoError(t, cam.Acquire(context.Background()))

	require.NoError(t, cam.Release())
	require.NoError(t, cam.Release())

	assert.False(t, cam.IsAcquired())
	assert.Equal(t, 2, cam.ReleaseCount())
}
