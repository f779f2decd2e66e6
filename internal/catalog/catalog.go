// Package catalog holds the static vehicle catalog the kiosk sells from.
// The catalog is embedded at build time and loaded once at startup into an
// immutable table; nothing mutates it during a session.
package catalog

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/crestline/showroom/internal/errors"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Model is a single vehicle model within a category.
type Model struct {
	// Name is the display name, e.g. "Silverado 1500".
	Name string `yaml:"name"`
	// CabOptions lists cab configurations, if the model has any.
	// Models without cab options skip the cab step entirely.
	CabOptions []string `yaml:"cab_options"`
	// Colors is the model-specific color list. Empty means the catalog
	// default color list applies.
	Colors []string `yaml:"colors"`
}

// Slug returns the URL-safe identifier for the model.
func (m Model) Slug() string {
	return ToSlug(m.Name)
}

// HasCabOptions returns true if the model offers cab configurations.
func (m Model) HasCabOptions() bool {
	return len(m.CabOptions) > 0
}

// Category groups related models, e.g. "Trucks".
type Category struct {
	Name    string  `yaml:"name"`
	Tagline string  `yaml:"tagline"`
	Models  []Model `yaml:"models"`
}

// Slug returns the URL-safe identifier for the category.
func (c Category) Slug() string {
	return ToSlug(c.Name)
}

// ModelCount returns the number of models in the category.
func (c Category) ModelCount() int {
	return len(c.Models)
}

// Catalog is the complete dealership catalog.
type Catalog struct {
	DefaultColors []string   `yaml:"default_colors"`
	Categories    []Category `yaml:"categories"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the embedded catalog, parsing it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(catalogYAML)
	})
	return defaultCatalog, defaultErr
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(errors.Catalog, "failed to parse catalog", err).
			WithOp("catalog.Parse")
	}
	if len(c.Categories) == 0 {
		return nil, errors.New(errors.Catalog, "catalog has no categories").
			WithOp("catalog.Parse")
	}
	return &c, nil
}

// CategoryBySlug finds a category by its slug.
func (c *Catalog) CategoryBySlug(slug string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Slug() == slug {
			return cat, true
		}
	}
	return Category{}, false
}

// ModelBySlug finds a model by its slug across all categories.
// It also returns the category the model belongs to.
func (c *Catalog) ModelBySlug(slug string) (Model, Category, bool) {
	for _, cat := range c.Categories {
		for _, m := range cat.Models {
			if m.Slug() == slug {
				return m, cat, true
			}
		}
	}
	return Model{}, Category{}, false
}

// ColorsFor returns the color list for a model, falling back to the
// catalog defaults when the model has no dedicated entry.
func (c *Catalog) ColorsFor(m Model) []string {
	if len(m.Colors) > 0 {
		return m.Colors
	}
	return c.DefaultColors
}

// Models returns every model in the catalog, in category order.
func (c *Catalog) Models() []Model {
	var all []Model
	for _, cat := range c.Categories {
		all = append(all, cat.Models...)
	}
	return all
}
