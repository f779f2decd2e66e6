package components

import (
	"strings"

	"github.com/crestline/showroom/internal/ui/theme"
)

// SliderModel is a horizontal value slider. The owning view moves it with
// Increase/Decrease and renders it inline.
type SliderModel struct {
	label   string
	value   float64
	min     float64
	max     float64
	step    float64
	width   int
	focused bool
	styles  theme.Styles
	format  func(float64) string
}

// NewSlider creates a slider over [min, max] moving in step increments.
func NewSlider(styles theme.Styles, label string, min, max, step, value float64) SliderModel {
	m := SliderModel{
		label:  label,
		min:    min,
		max:    max,
		step:   step,
		width:  30,
		styles: styles,
		format: theme.Dollars,
	}
	m.SetValue(value)
	return m
}

// SetFormat replaces the value formatter. The default renders dollars.
func (m *SliderModel) SetFormat(format func(float64) string) {
	m.format = format
}

// Increase moves the slider up one step, clamping at the maximum.
func (m *SliderModel) Increase() {
	m.SetValue(m.value + m.step)
}

// Decrease moves the slider down one step, clamping at the minimum.
func (m *SliderModel) Decrease() {
	m.SetValue(m.value - m.step)
}

// SetValue sets the slider value, clamped to the range.
func (m *SliderModel) SetValue(v float64) {
	if v < m.min {
		v = m.min
	}
	if v > m.max {
		v = m.max
	}
	m.value = v
}

// Value returns the current value.
func (m SliderModel) Value() float64 {
	return m.value
}

// Min returns the slider's minimum.
func (m SliderModel) Min() float64 {
	return m.min
}

// Max returns the slider's maximum.
func (m SliderModel) Max() float64 {
	return m.max
}

// AtMin reports whether the slider is at its minimum.
func (m SliderModel) AtMin() bool {
	return m.value <= m.min
}

// AtMax reports whether the slider is at its maximum.
func (m SliderModel) AtMax() bool {
	return m.value >= m.max
}

// Focus gives the slider focus.
func (m *SliderModel) Focus() {
	m.focused = true
}

// Blur removes focus from the slider.
func (m *SliderModel) Blur() {
	m.focused = false
}

// Focused reports whether the slider has focus.
func (m SliderModel) Focused() bool {
	return m.focused
}

// SetWidth sets the track width in cells.
func (m *SliderModel) SetWidth(width int) {
	if width < 10 {
		width = 10
	}
	m.width = width
}

// Label returns the slider's label.
func (m SliderModel) Label() string {
	return m.label
}

// View renders the label, track, and formatted value.
func (m SliderModel) View() string {
	span := m.max - m.min
	ratio := 0.0
	if span > 0 {
		ratio = (m.value - m.min) / span
	}
	filled := int(ratio*float64(m.width) + 0.5)
	if filled > m.width {
		filled = m.width
	}

	track := m.styles.SliderFill.Render(strings.Repeat("█", filled)) +
		m.styles.SliderTrack.Render(strings.Repeat("░", m.width-filled))

	label := m.styles.SliderLabel.Render(m.label)
	if m.focused {
		label = m.styles.StepActive.Render(m.label)
	}

	return label + "\n" + track + "  " + m.styles.Amount.Render(m.format(m.value))
}
