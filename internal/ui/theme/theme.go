package theme

import "github.com/charmbracelet/lipgloss"

// ThemeName identifies a theme variant.
type ThemeName string

const (
	// ThemeCrestlineDark is the default dealership dark theme.
	ThemeCrestlineDark ThemeName = "crestline-dark"

	// ThemeCrestlineLight is the light variant for bright showroom floors.
	ThemeCrestlineLight ThemeName = "crestline-light"
)

// Theme holds the color definitions a Styles set is built from.
type Theme struct {
	// Name is the theme identifier.
	Name ThemeName

	// Primary colors
	Primary      lipgloss.Color
	PrimaryDark  lipgloss.Color
	PrimaryLight lipgloss.Color

	// Secondary colors
	Secondary      lipgloss.Color
	SecondaryLight lipgloss.Color

	// Semantic colors
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Info    lipgloss.TerminalColor

	// Text colors
	Text        lipgloss.TerminalColor
	TextMuted   lipgloss.TerminalColor
	TextSubtle  lipgloss.TerminalColor
	TextInverse lipgloss.TerminalColor

	// Border colors
	Border      lipgloss.TerminalColor
	BorderFocus lipgloss.TerminalColor

	// Slider colors
	SliderFill  lipgloss.TerminalColor
	SliderTrack lipgloss.TerminalColor

	// Styles contains pre-built lipgloss styles using theme colors.
	Styles Styles
}

// DefaultTheme returns the Crestline dark theme.
func DefaultTheme() *Theme {
	t := &Theme{
		Name:           ThemeCrestlineDark,
		Primary:        CrestlineGold,
		PrimaryDark:    CrestlineGoldDark,
		PrimaryLight:   CrestlineGoldLight,
		Secondary:      CrestlineBlue,
		SecondaryLight: CrestlineBlueLight,

		Success: ColorSuccess,
		Warning: ColorWarning,
		Error:   ColorError,
		Info:    ColorInfo,

		Text:        ColorText,
		TextMuted:   ColorTextMuted,
		TextSubtle:  ColorTextSubtle,
		TextInverse: ColorTextInverse,

		Border:      ColorBorder,
		BorderFocus: ColorBorderFocus,

		SliderFill:  ColorSliderFill,
		SliderTrack: ColorSliderTrack,
	}
	t.Styles = NewStyles(t)
	return t
}

// LightTheme returns the Crestline light theme. Same palette, darker gold
// as the primary so it stays legible on white.
func LightTheme() *Theme {
	t := DefaultTheme()
	t.Name = ThemeCrestlineLight
	t.Primary = CrestlineGoldDark
	t.PrimaryLight = CrestlineGold
	t.Styles = NewStyles(t)
	return t
}

// ForName returns the theme for a configured name, falling back to the
// default for anything unrecognized.
func ForName(name string) *Theme {
	switch ThemeName(name) {
	case ThemeCrestlineLight:
		return LightTheme()
	default:
		return DefaultTheme()
	}
}
