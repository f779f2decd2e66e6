// Package theme provides the theming and styling system for the showroom
// kiosk TUI. It includes the Crestline dealership palette, adaptive colors
// for light/dark terminals, and pre-built lipgloss styles.
package theme

import "github.com/charmbracelet/lipgloss"

// Crestline brand colors. The gold comes from the dealership signage, the
// blue from the service-lane branding.
var (
	// CrestlineGold is the primary brand color.
	CrestlineGold = lipgloss.Color("#D4A017")

	// CrestlineGoldDark is a darker gold for active states.
	CrestlineGoldDark = lipgloss.Color("#A67C00")

	// CrestlineGoldLight is a lighter gold for highlights.
	CrestlineGoldLight = lipgloss.Color("#F0C040")

	// CrestlineBlue is the secondary brand color.
	CrestlineBlue = lipgloss.Color("#1F4E79")

	// CrestlineBlueLight is a lighter blue for accents.
	CrestlineBlueLight = lipgloss.Color("#3E7CB1")

	// CrestlineGray is a neutral gray for secondary elements.
	CrestlineGray = lipgloss.Color("#666666")

	// CrestlineGrayDark is a dark gray for muted elements.
	CrestlineGrayDark = lipgloss.Color("#404040")
)

// Semantic colors using AdaptiveColor so the kiosk reads correctly on both
// light and dark terminal backgrounds.
var (
	// ColorSuccess marks positive amounts and confirmations.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#4ADE80"}

	// ColorWarning marks cautions and degraded service.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#EAB308", Dark: "#FACC15"}

	// ColorError marks failures and negative equity.
	ColorError = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

	// ColorInfo marks neutral informational text.
	ColorInfo = lipgloss.AdaptiveColor{Light: "#0EA5E9", Dark: "#38BDF8"}
)

// Text colors.
var (
	// ColorText is the primary text color.
	ColorText = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"}

	// ColorTextMuted is for secondary text.
	ColorTextMuted = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}

	// ColorTextSubtle is for placeholder text.
	ColorTextSubtle = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// ColorTextInverse is for text on gold backgrounds.
	ColorTextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1A1A"}
)

// Border colors.
var (
	// ColorBorder is the default border color.
	ColorBorder = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#404040"}

	// ColorBorderFocus is the border color for the focused element.
	ColorBorderFocus = lipgloss.AdaptiveColor{Light: "#A67C00", Dark: "#D4A017"}
)

// Slider colors.
var (
	// ColorSliderFill is the filled portion of a slider track.
	ColorSliderFill = lipgloss.AdaptiveColor{Light: "#A67C00", Dark: "#D4A017"}

	// ColorSliderTrack is the unfilled portion of a slider track.
	ColorSliderTrack = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#333333"}
)
