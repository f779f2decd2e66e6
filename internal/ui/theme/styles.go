package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains pre-built lipgloss styles for the TUI. They are generated
// once from a Theme and shared by every view and component.
type Styles struct {
	// App-level styles
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style

	// Branding
	Logo    lipgloss.Style
	TagLine lipgloss.Style

	// Component styles
	Panel            lipgloss.Style
	PanelFocused     lipgloss.Style
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	// Button styles
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	ButtonDisabled lipgloss.Style

	// Input styles
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	InputError   lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style

	// Money display
	Amount         lipgloss.Style
	EquityPositive lipgloss.Style
	EquityNegative lipgloss.Style

	// Slider styles
	SliderFill  lipgloss.Style
	SliderTrack lipgloss.Style
	SliderLabel lipgloss.Style

	// Step indicator styles
	StepActive   lipgloss.Style
	StepInactive lipgloss.Style

	// Spinner style
	Spinner lipgloss.Style
}

// NewStyles creates a Styles instance from a Theme.
func NewStyles(t *Theme) Styles {
	return Styles{
		App: lipgloss.NewStyle(),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			Padding(1, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),

		Footer: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(t.Border),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Italic(true),

		Text: lipgloss.NewStyle().
			Foreground(t.Text),

		Muted: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		Help: lipgloss.NewStyle().
			Foreground(t.TextSubtle),

		Logo: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),

		TagLine: lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Italic(true),

		Panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),

		PanelFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus).
			Padding(1, 2),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Text).
			PaddingLeft(2),

		ListItemSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary).
			PaddingLeft(0),

		Button: lipgloss.NewStyle().
			Foreground(t.Text).
			Padding(0, 3).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		ButtonFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.TextInverse).
			Background(t.Primary).
			Padding(0, 3).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.BorderFocus),

		ButtonDisabled: lipgloss.NewStyle().
			Foreground(t.TextSubtle).
			Padding(0, 3).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		Input: lipgloss.NewStyle().
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.BorderFocus),

		InputError: lipgloss.NewStyle().
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Error),

		Success: lipgloss.NewStyle().Foreground(t.Success),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Info:    lipgloss.NewStyle().Foreground(t.Info),

		Amount: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),

		EquityPositive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Success),

		EquityNegative: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),

		SliderFill: lipgloss.NewStyle().
			Foreground(t.SliderFill),

		SliderTrack: lipgloss.NewStyle().
			Foreground(t.SliderTrack),

		SliderLabel: lipgloss.NewStyle().
			Foreground(t.TextMuted),

		StepActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),

		StepInactive: lipgloss.NewStyle().
			Foreground(t.TextSubtle),

		Spinner: lipgloss.NewStyle().
			Foreground(t.Primary),
	}
}

// Dollars formats an amount the way the showroom displays money: whole
// dollars with a thousands separator.
func Dollars(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	whole := int64(amount + 0.5)

	s := fmt.Sprintf("%d", whole)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}

	if neg {
		return "-$" + string(out)
	}
	return "$" + string(out)
}

// RenderEquity renders a signed equity amount with its sign color.
func (s Styles) RenderEquity(amount float64) string {
	if amount < 0 {
		return s.EquityNegative.Render(Dollars(amount))
	}
	return s.EquityPositive.Render("+" + Dollars(amount))
}

// RenderKeyValue renders a muted label and a plain value.
func (s Styles) RenderKeyValue(key, value string) string {
	return s.Muted.Render(key+": ") + s.Text.Render(value)
}

// RenderStepIndicator renders the "Step n of m" progress line with dots.
func (s Styles) RenderStepIndicator(current, total int) string {
	dots := ""
	for i := 1; i <= total; i++ {
		if i == current {
			dots += s.StepActive.Render("●")
		} else {
			dots += s.StepInactive.Render("○")
		}
		if i < total {
			dots += " "
		}
	}
	return dots + "  " + s.Muted.Render(fmt.Sprintf("Step %d of %d", current, total))
}
