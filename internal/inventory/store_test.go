package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/logging"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func lotSnapshot() []dealer.Vehicle {
	return []dealer.Vehicle{
		{VIN: "1GCUYDED5KZ000001", Year: 2024, Make: "Chevrolet", Model: "Silverado 1500", Status: "in_stock"},
		{VIN: "1GCUYDED5KZ000002", Year: 2024, Make: "Chevrolet", Model: "Silverado 1500", Status: "in_stock"},
		{VIN: "1GNSKCKC5KR000003", Year: 2025, Make: "Chevrolet", Model: "Tahoe", Status: "in_transit"},
	}
}

func TestStore_ReplaceAllAndRead(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	empty, err := s.Empty(ctx)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, s.ReplaceAll(ctx, lotSnapshot()))

	vehicles, err := s.Vehicles(ctx)
	require.NoError(t, err)
	assert.Len(t, vehicles, 3)
	assert.Equal(t, "Silverado 1500", vehicles[0].Model)

	empty, err = s.Empty(ctx)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestStore_ReplaceAll_SwapsSnapshot(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.ReplaceAll(ctx, lotSnapshot()))
	require.NoError(t, s.ReplaceAll(ctx, []dealer.Vehicle{
		{VIN: "3GNAXUEG5PL000009", Year: 2025, Make: "Chevrolet", Model: "Equinox"},
	}))

	vehicles, err := s.Vehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, "Equinox", vehicles[0].Model)
}

func TestStore_CountByModel(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.ReplaceAll(ctx, lotSnapshot()))

	counts, err := s.CountByModel(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Silverado 1500": 2, "Tahoe": 1}, counts)
}
