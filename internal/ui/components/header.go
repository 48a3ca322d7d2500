// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bmi-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT - Card title and greeting
// =============================================================================

// Default header copy.
const (
	DefaultTitle    = "Trợ lý Sức khỏe BMI"
	DefaultSubtitle = "Xin chào! Hãy cho tôi biết các chỉ số của bạn để cùng phân tích sức khỏe nhé."
)

// Header renders the title block at the top of the form card.
type Header struct {
	Title    string
	Subtitle string
	Width    int
	theme    *styles.Theme
}

// NewHeader creates a new Header component with default values
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    DefaultTitle,
		Subtitle: DefaultSubtitle,
		Width:    50,
		theme:    theme,
	}
}

// SetWidth updates the header width
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header
func (h *Header) View() string {
	return lipgloss.JoinVertical(lipgloss.Center,
		h.theme.Title.Width(h.Width).Render(h.Title),
		h.theme.Subtitle.Width(h.Width).Render(h.Subtitle),
	)
}

// =============================================================================
// SUBMIT BUTTON
// =============================================================================

// SubmitLabel is the text on the submit button.
const SubmitLabel = "Xem kết quả"

// RenderButton renders the submit button, highlighted when focused.
func RenderButton(theme *styles.Theme, focused bool, width int) string {
	style := theme.Button
	if focused {
		style = theme.ButtonFocused
	}
	return style.Width(width).Render(SubmitLabel)
}
