package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Embedded catalog
// ============================================================================

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.NotEmpty(t, c.Categories)
	assert.NotEmpty(t, c.DefaultColors)

	// Default is memoized; repeated calls return the same table.
	c2, err := Default()
	require.NoError(t, err)
	assert.Same(t, c, c2)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("categories: [unclosed"))
	assert.Error(t, err)

	_, err = Parse([]byte("default_colors: [Black]"))
	assert.Error(t, err, "a catalog with no categories is unusable")
}

// ============================================================================
// Lookups
// ============================================================================

func TestCatalog_CategoryBySlug(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	cat, ok := c.CategoryBySlug("trucks")
	require.True(t, ok)
	assert.Equal(t, "Trucks", cat.Name)
	assert.Greater(t, cat.ModelCount(), 0)

	_, ok = c.CategoryBySlug("boats")
	assert.False(t, ok)
}

func TestCatalog_ModelBySlug(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	m, cat, ok := c.ModelBySlug("silverado-1500")
	require.True(t, ok)
	assert.Equal(t, "Silverado 1500", m.Name)
	assert.Equal(t, "Trucks", cat.Name)
	assert.True(t, m.HasCabOptions())
	assert.Contains(t, m.CabOptions, "Crew Cab")

	_, _, ok = c.ModelBySlug("cybertruck")
	assert.False(t, ok)
}

func TestCatalog_ModelWithoutCabOptions(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	m, _, ok := c.ModelBySlug("tahoe")
	require.True(t, ok)
	assert.False(t, m.HasCabOptions())
}

func TestCatalog_ColorsFor(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	// Model with a dedicated color list.
	m, _, ok := c.ModelBySlug("corvette-stingray")
	require.True(t, ok)
	assert.Contains(t, c.ColorsFor(m), "Torch Red")

	// Model without one falls back to the defaults.
	m, _, ok = c.ModelBySlug("malibu")
	require.True(t, ok)
	assert.Equal(t, c.DefaultColors, c.ColorsFor(m))
}

func TestCatalog_Models(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	all := c.Models()
	total := 0
	for _, cat := range c.Categories {
		total += cat.ModelCount()
	}
	assert.Len(t, all, total)
}
