package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestline/showroom/internal/catalog"
	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/errors"
)

type stubFetcher struct {
	vehicles []dealer.Vehicle
	err      error
	delay    time.Duration
}

func (s *stubFetcher) GetInventory(ctx context.Context, _ dealer.InventoryFilters) ([]dealer.Vehicle, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.vehicles, s.err
}

func catalogModels() []catalog.Model {
	return []catalog.Model{
		{Name: "Silverado 1500"},
		{Name: "Tahoe"},
		{Name: "Equinox"},
	}
}

// ============================================================================
// Count aggregation
// ============================================================================

func TestCounter_Counts(t *testing.T) {
	fetcher := &stubFetcher{vehicles: []dealer.Vehicle{
		{VIN: "a", Model: "Silverado 1500"},
		{VIN: "b", Model: "Silverado 1500 Crew Cab"},
		{VIN: "c", Model: "TAHOE"},
		{VIN: "d", Model: "Bolt EUV"},
	}}

	counts := NewCounter(fetcher).Counts(context.Background(), catalogModels())

	assert.Equal(t, 2, counts["Silverado 1500"])
	assert.Equal(t, 1, counts["Tahoe"])
	assert.Zero(t, counts["Equinox"])
}

func TestCounter_FetchFailureYieldsEmptyMap(t *testing.T) {
	fetcher := &stubFetcher{err: errors.ErrTimeout}

	counts := NewCounter(fetcher).Counts(context.Background(), catalogModels())

	assert.NotNil(t, counts)
	assert.Empty(t, counts)
}

func TestCounter_TimeoutYieldsEmptyMap(t *testing.T) {
	fetcher := &stubFetcher{
		vehicles: []dealer.Vehicle{{VIN: "a", Model: "Tahoe"}},
		delay:    time.Second,
	}
	counter := NewCounter(fetcher, WithCountTimeout(20*time.Millisecond))

	start := time.Now()
	counts := counter.Counts(context.Background(), catalogModels())

	// The deadline bounds the whole lookup; the screen is never left
	// spinning.
	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Empty(t, counts)
}

func TestCounter_FallsBackToCache(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.ReplaceAll(context.Background(), lotSnapshot()))

	fetcher := &stubFetcher{err: errors.ErrTimeout}
	counter := NewCounter(fetcher, WithStore(store))

	counts := counter.Counts(context.Background(), catalogModels())
	assert.Equal(t, 2, counts["Silverado 1500"])
	assert.Equal(t, 1, counts["Tahoe"])
}

func TestCounter_CacheFallbackAggregatesModelVariants(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.ReplaceAll(context.Background(), []dealer.Vehicle{
		{VIN: "a", Model: "Silverado 1500"},
		{VIN: "b", Model: "Silverado 1500 Crew Cab"},
		{VIN: "c", Model: "Silverado 1500 Crew Cab"},
		{VIN: "d", Model: "Bolt EUV"},
	}))

	fetcher := &stubFetcher{err: errors.ErrTimeout}
	counter := NewCounter(fetcher, WithStore(store))

	// The grouped cache rows ("Silverado 1500" x1, "Silverado 1500 Crew
	// Cab" x2) fold onto the one catalog model.
	counts := counter.Counts(context.Background(), catalogModels())
	assert.Equal(t, 3, counts["Silverado 1500"])
	assert.Zero(t, counts["Tahoe"])
}

func TestCounter_SuccessRefreshesCache(t *testing.T) {
	store := openTestStore(t)
	fetcher := &stubFetcher{vehicles: lotSnapshot()}
	counter := NewCounter(fetcher, WithStore(store))

	counter.Counts(context.Background(), catalogModels())

	vehicles, err := store.Vehicles(context.Background())
	require.NoError(t, err)
	assert.Len(t, vehicles, 3)
}

// ============================================================================
// Fuzzy model matching
// ============================================================================

func TestModelMatches(t *testing.T) {
	tests := []struct {
		name         string
		vehicleModel string
		catalogModel string
		expected     bool
	}{
		{"exact", "Tahoe", "Tahoe", true},
		{"case insensitive", "TAHOE", "Tahoe", true},
		{"vehicle carries extra detail", "Silverado 1500 Crew Cab", "Silverado 1500", true},
		{"punctuation ignored", "Silverado-1500", "Silverado 1500", true},
		{"token subset", "2024 Chevrolet Silverado LTZ 1500", "Silverado 1500", true},
		{"different model", "Colorado", "Silverado 1500", false},
		{"empty vehicle model", "", "Tahoe", false},
		{"partial word only", "Tah", "Tahoe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, modelMatches(tt.vehicleModel, tt.catalogModel))
		})
	}
}
