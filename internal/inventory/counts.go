package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/crestline/showroom/internal/catalog"
	"github.com/crestline/showroom/internal/constants"
	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/logging"
)

// Fetcher is the slice of the dealer client the counter needs.
type Fetcher interface {
	GetInventory(ctx context.Context, filters dealer.InventoryFilters) ([]dealer.Vehicle, error)
}

// Counter aggregates lot counts per catalog model for the category screen.
// The whole lookup is bounded by a hard deadline: whatever happens, the
// screen gets an answer, possibly an empty one. Counts are cosmetic; a
// missing count must never block the wizard.
type Counter struct {
	fetcher Fetcher
	store   *Store
	timeout time.Duration
	logger  logging.Logger
}

// CounterOption configures a Counter.
type CounterOption func(*Counter)

// WithStore attaches a local cache used as a fallback and refreshed on
// successful fetches.
func WithStore(s *Store) CounterOption {
	return func(c *Counter) { c.store = s }
}

// WithCountTimeout overrides the lookup deadline.
func WithCountTimeout(d time.Duration) CounterOption {
	return func(c *Counter) { c.timeout = d }
}

// WithCountLogger sets the counter logger.
func WithCountLogger(l logging.Logger) CounterOption {
	return func(c *Counter) { c.logger = l }
}

// NewCounter creates a counter over the given fetcher.
func NewCounter(fetcher Fetcher, opts ...CounterOption) *Counter {
	c := &Counter{
		fetcher: fetcher,
		timeout: constants.InventoryTimeout,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Counts returns per-catalog-model counts keyed by model name. It never
// returns an error: gateway failure falls back to the cache, cache failure
// falls back to an empty map.
func (c *Counter) Counts(ctx context.Context, models []catalog.Model) map[string]int {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	vehicles, ok := c.fetch(ctx)
	if !ok {
		return c.cachedCounts(models)
	}

	counts := make(map[string]int, len(models))
	for _, v := range vehicles {
		for _, m := range models {
			if modelMatches(v.Model, m.Name) {
				counts[m.Name]++
				break
			}
		}
	}
	return counts
}

func (c *Counter) fetch(ctx context.Context) ([]dealer.Vehicle, bool) {
	type result struct {
		vehicles []dealer.Vehicle
		err      error
	}

	done := make(chan result, 1)
	go func() {
		v, err := c.fetcher.GetInventory(ctx, dealer.InventoryFilters{})
		done <- result{v, err}
	}()

	select {
	case res := <-done:
		if res.err == nil {
			c.refreshCache(res.vehicles)
			return res.vehicles, true
		}
		c.logger.Warn("inventory fetch failed, trying cache", "error", res.err)
	case <-ctx.Done():
		c.logger.Warn("inventory fetch timed out, trying cache")
	}

	return nil, false
}

// refreshCache stores a successful snapshot, detached from the lookup
// deadline so a slow disk cannot fail the fetch that already succeeded.
func (c *Counter) refreshCache(vehicles []dealer.Vehicle) {
	if c.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()
	if err := c.store.ReplaceAll(ctx, vehicles); err != nil {
		c.logger.Warn("inventory cache refresh failed", "error", err)
	}
}

// cachedCounts answers from the sqlite cache's grouped counts, folding the
// raw per-model rows onto catalog models with the same fuzzy predicate the
// live path uses.
func (c *Counter) cachedCounts(models []catalog.Model) map[string]int {
	counts := make(map[string]int, len(models))
	if c.store == nil {
		return counts
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	byModel, err := c.store.CountByModel(ctx)
	if err != nil {
		c.logger.Warn("inventory cache read failed", "error", err)
		return counts
	}

	for name, n := range byModel {
		for _, m := range models {
			if modelMatches(name, m.Name) {
				counts[m.Name] += n
				break
			}
		}
	}
	return counts
}

// modelMatches is the fuzzy predicate tying a lot vehicle's model string to
// a catalog model name. Either normalized name containing the other counts
// as a match, as does the catalog name's tokens all appearing in the
// vehicle's.
func modelMatches(vehicleModel, catalogModel string) bool {
	v := normalizeModel(vehicleModel)
	c := normalizeModel(catalogModel)
	if v == "" || c == "" {
		return false
	}
	if strings.Contains(v, c) || strings.Contains(c, v) {
		return true
	}

	vTokens := make(map[string]bool)
	for _, tok := range strings.Fields(v) {
		vTokens[tok] = true
	}
	for _, tok := range strings.Fields(c) {
		if !vTokens[tok] {
			return false
		}
	}
	return true
}

func normalizeModel(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
