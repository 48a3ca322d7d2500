// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bmi-tui/internal/ui/styles"
)

// =============================================================================
// MEASUREMENT INPUT COMPONENT - Labelled field with a unit suffix
// =============================================================================

// maxMeasurementChars bounds what a user can type into one field.
const maxMeasurementChars = 16

// MeasurementInput is a labelled single-line input with a unit suffix
// ("cm", "kg"). The text is kept verbatim; parsing happens on submit.
type MeasurementInput struct {
	Label  string
	Suffix string

	input   textinput.Model
	width   int
	focused bool
	theme   *styles.Theme
}

// NewMeasurementInput creates an unfocused input.
func NewMeasurementInput(theme *styles.Theme, label, placeholder, suffix string) *MeasurementInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = maxMeasurementChars
	ti.Prompt = ""
	ti.Width = 20

	ti.TextStyle = lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	ti.PlaceholderStyle = theme.Placeholder

	ti.Cursor.Style = lipgloss.NewStyle().
		Foreground(styles.Indigo)

	return &MeasurementInput{
		Label:  label,
		Suffix: suffix,
		input:  ti,
		width:  40,
		theme:  theme,
	}
}

// NewHeightInput returns the height field.
func NewHeightInput(theme *styles.Theme) *MeasurementInput {
	return NewMeasurementInput(theme, "Chiều cao của bạn", "ví dụ: 170", "cm")
}

// NewWeightInput returns the weight field.
func NewWeightInput(theme *styles.Theme) *MeasurementInput {
	return NewMeasurementInput(theme, "Cân nặng của bạn", "ví dụ: 65", "kg")
}

// Focus focuses the input
func (m *MeasurementInput) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes focus from the input
func (m *MeasurementInput) Blur() {
	m.focused = false
	m.input.Blur()
}

// Focused returns whether the input is focused
func (m *MeasurementInput) Focused() bool {
	return m.focused
}

// SetWidth sets the total width including border and suffix.
func (m *MeasurementInput) SetWidth(width int) {
	m.width = width
	// border (2) + padding (2) + space + suffix
	inner := width - 5 - lipgloss.Width(m.Suffix)
	if inner < 6 {
		inner = 6
	}
	m.input.Width = inner
}

// Placeholder returns the placeholder text.
func (m *MeasurementInput) Placeholder() string {
	return m.input.Placeholder
}

// Value returns the raw text.
func (m *MeasurementInput) Value() string {
	return m.input.Value()
}

// SetValue replaces the raw text.
func (m *MeasurementInput) SetValue(value string) {
	m.input.SetValue(value)
}

// Reset clears the input
func (m *MeasurementInput) Reset() {
	m.input.Reset()
}

// Update forwards messages to the text input.
func (m *MeasurementInput) Update(msg tea.Msg) (*MeasurementInput, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the label above the bordered field.
func (m *MeasurementInput) View() string {
	box := m.theme.Input
	if m.focused {
		box = m.theme.InputFocused
	}

	field := lipgloss.JoinHorizontal(lipgloss.Center,
		m.input.View(),
		" ",
		m.theme.Suffix.Render(m.Suffix),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Label.Render(m.Label),
		box.Width(m.width-2).Render(field),
	)
}
