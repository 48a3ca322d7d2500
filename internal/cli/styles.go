// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared styling for the line-mode commands.
//
// Colour is decided once per run by applyColorProfile; with the Ascii
// profile these styles render plain text.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bmi-tui/internal/bmi"
	"github.com/jeranaias/bmi-tui/internal/ui/styles"
	"github.com/jeranaias/bmi-tui/internal/util"
)

// =============================================================================
// SHARED STYLES FOR ALL CLI COMMANDS
// =============================================================================

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.Indigo)

	// LabelStyle is used for field labels (left-aligned)
	LabelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// ValueStyle is used for regular values and text
	ValueStyle = lipgloss.NewStyle().
			Foreground(styles.TextPrimary)

	// ErrorStyle is used for error messages and failures
	ErrorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose).
			Bold(true)

	// DimStyle is used for hints and secondary information
	DimStyle = lipgloss.NewStyle().
			Foreground(styles.TextMuted)

	// SeparatorStyle is used for horizontal separators
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(styles.Overlay)
)

// =============================================================================
// HELPER FUNCTIONS FOR COMMON PATTERNS
// =============================================================================

// RenderSeparator renders a horizontal separator line of the given width.
// Default width is 40 characters.
func RenderSeparator(width ...int) string {
	w := 40
	if len(width) > 0 && width[0] > 0 {
		w = width[0]
	}
	return SeparatorStyle.Render(strings.Repeat("─", w))
}

// labelWidth is the column where values start.
const labelWidth = 16

// RenderLabel renders a label padded to labelWidth columns.
func RenderLabel(label string) string {
	return LabelStyle.Render(util.PadRight(label, labelWidth))
}

// SeverityStyle colours text by outcome severity.
func SeverityStyle(sev bmi.Severity) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(styles.SeverityColor(sev)).
		Bold(true)
}

// printOutcome writes the human-readable block for an evaluation.
func printOutcome(w io.Writer, out bmi.Outcome) {
	fmt.Fprintln(w, RenderLabel("BMI")+ValueStyle.Render(out.Formatted()))
	fmt.Fprintln(w, RenderLabel("Phân loại")+
		SeverityStyle(out.Severity).Render(styles.SeverityIndicator(out.Severity)+" "+out.Label))
	fmt.Fprintln(w, RenderLabel("Lời khuyên")+ValueStyle.Render(out.Advice))
}
