package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForName(t *testing.T) {
	assert.Equal(t, ThemeCrestlineDark, ForName("crestline-dark").Name)
	assert.Equal(t, ThemeCrestlineLight, ForName("crestline-light").Name)
	assert.Equal(t, ThemeCrestlineDark, ForName("neon").Name, "unknown names fall back to the default")
}

func TestLightTheme_UsesDarkerGold(t *testing.T) {
	light := LightTheme()
	assert.Equal(t, CrestlineGoldDark, light.Primary)
}

func TestDollars(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{500, "$500"},
		{1250, "$1,250"},
		{66257.49, "$66,257"},
		{1000000, "$1,000,000"},
		{-3200, "-$3,200"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Dollars(tc.amount), "Dollars(%v)", tc.amount)
	}
}

func TestRenderEquity_SignPrefix(t *testing.T) {
	s := DefaultTheme().Styles
	assert.Contains(t, s.RenderEquity(1500), "+$1,500")
	assert.Contains(t, s.RenderEquity(-2000), "-$2,000")
}

func TestRenderStepIndicator(t *testing.T) {
	s := DefaultTheme().Styles
	out := s.RenderStepIndicator(2, 6)
	assert.Contains(t, out, "Step 2 of 6")
}
