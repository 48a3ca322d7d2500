// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bmi-tui/internal/bmi"
	"github.com/jeranaias/bmi-tui/internal/ui/styles"
	"github.com/jeranaias/bmi-tui/internal/util"
)

// =============================================================================
// RESULT CARD COMPONENT - BMI value, status and advice
// =============================================================================

// ResultHeading is the caption above the BMI value.
const ResultHeading = "Chỉ số BMI của bạn"

// ResultCard renders an Outcome with a severity-colored border.
type ResultCard struct {
	Width   int
	Compact bool
	theme   *styles.Theme
}

// NewResultCard creates a result card.
func NewResultCard(theme *styles.Theme) *ResultCard {
	return &ResultCard{Width: 50, theme: theme}
}

// View renders out. Compact mode drops the scale.
func (r *ResultCard) View(out bmi.Outcome) string {
	inner := r.Width - 6
	if inner < 10 {
		inner = 10
	}

	status := r.theme.ResultStatusFor(out.Severity).
		Render(styles.SeverityIndicator(out.Severity) + " " + util.TruncateWidth(out.Label, inner-6))

	lines := []string{
		r.theme.ResultHeader.Render(ResultHeading),
		r.theme.ResultValue.Render(out.Formatted()),
		status,
	}
	if !r.Compact {
		lines = append(lines, "", styles.RenderScale(inner, out.BMI))
	}
	lines = append(lines, "", r.theme.ResultAdvice.Width(inner).Render(out.Advice))

	return r.theme.ResultCardFor(out.Severity).
		Width(r.Width - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderAlert renders the validation message line. Empty input renders nothing.
func RenderAlert(theme *styles.Theme, message string, width int) string {
	if strings.TrimSpace(message) == "" {
		return ""
	}
	return theme.Alert.Width(width).Render(styles.StatusIndicators.Error + " " + message)
}
