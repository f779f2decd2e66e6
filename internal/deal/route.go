// Package deal owns the wizard's state record and the slug-based routing
// that moves a customer through it. Routes are parsed once at the controller
// boundary into a variant type; steps never re-parse strings.
package deal

import (
	"strings"

	"github.com/crestline/showroom/internal/catalog"
)

// Step identifies a wizard screen.
type Step int

const (
	StepCategory Step = iota
	StepModel
	StepCab
	StepColor
	StepBudget
	StepTrade
)

var stepNames = map[Step]string{
	StepCategory: "category",
	StepModel:    "model",
	StepCab:      "cab",
	StepColor:    "color",
	StepBudget:   "budget",
	StepTrade:    "trade",
}

// String returns the route token for the step.
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "category"
}

// ParseStep maps a route token to a step. Unknown tokens, including the
// empty string, resolve to the category step.
func ParseStep(name string) Step {
	for step, n := range stepNames {
		if n == name {
			return step
		}
	}
	return StepCategory
}

// Route is a parsed but unresolved step descriptor.
type Route struct {
	Step         Step
	CategorySlug string
	ModelSlug    string
	CabSlug      string
}

// ParseRoute parses a slash-separated route string. The first token names
// the step; the rest are positional slugs. Parameter meaning depends on the
// step: the model step takes a category slug, every later step takes a
// model slug and optionally a cab slug.
func ParseRoute(route string) Route {
	tokens := strings.Split(strings.Trim(route, "/"), "/")

	r := Route{Step: StepCategory}
	if len(tokens) == 0 || tokens[0] == "" {
		return r
	}
	r.Step = ParseStep(tokens[0])
	params := tokens[1:]

	switch r.Step {
	case StepModel:
		if len(params) > 0 {
			r.CategorySlug = params[0]
		}
	case StepCab, StepColor, StepBudget, StepTrade:
		if len(params) > 0 {
			r.ModelSlug = params[0]
		}
		if len(params) > 1 {
			r.CabSlug = params[1]
		}
	}
	return r
}

// String encodes the route back to its string form.
func (r Route) String() string {
	parts := []string{r.Step.String()}
	switch r.Step {
	case StepModel:
		if r.CategorySlug != "" {
			parts = append(parts, r.CategorySlug)
		}
	case StepCab, StepColor, StepBudget, StepTrade:
		if r.ModelSlug != "" {
			parts = append(parts, r.ModelSlug)
			if r.CabSlug != "" {
				parts = append(parts, r.CabSlug)
			}
		}
	}
	return strings.Join(parts, "/")
}

// Resolved is a route checked against the catalog. Steps that reference a
// category or model carry the resolved entries; a route whose references
// cannot be resolved degrades to the category step rather than erroring.
type Resolved struct {
	Step     Step
	Category catalog.Category
	Model    catalog.Model
	CabSlug  string

	HasCategory bool
	HasModel    bool
}

// Resolve looks the route's slugs up in the catalog. Missing or unknown
// slugs fall back to the category step so the kiosk always has a screen
// to show.
func (r Route) Resolve(c *catalog.Catalog) Resolved {
	switch r.Step {
	case StepModel:
		cat, ok := c.CategoryBySlug(r.CategorySlug)
		if !ok {
			return Resolved{Step: StepCategory}
		}
		return Resolved{Step: StepModel, Category: cat, HasCategory: true}

	case StepCab, StepColor, StepBudget, StepTrade:
		m, cat, ok := c.ModelBySlug(r.ModelSlug)
		if !ok {
			return Resolved{Step: StepCategory}
		}
		return Resolved{
			Step:        r.Step,
			Category:    cat,
			Model:       m,
			CabSlug:     r.CabSlug,
			HasCategory: true,
			HasModel:    true,
		}

	default:
		return Resolved{Step: StepCategory}
	}
}

// TotalSteps returns the number of wizard steps shown in the progress bar.
// Models without cab options skip the cab screen entirely.
func TotalSteps(modelHasCabs bool) int {
	if modelHasCabs {
		return 6
	}
	return 5
}

// StepNumber returns the 1-based ordinal of a step for progress display.
// When the model has no cab options, the steps after the absent cab screen
// shift down by one so the bar stays consistent with TotalSteps.
func StepNumber(step Step, modelHasCabs bool) int {
	n := int(step) + 1
	if !modelHasCabs && step > StepCab {
		n--
	}
	return n
}
