// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bmi-tui/internal/bmi"
)

// SeverityColor maps a severity tag to its border color.
// Unknown tags get the neutral overlay color.
func SeverityColor(sev bmi.Severity) lipgloss.AdaptiveColor {
	switch sev {
	case bmi.SeverityLow:
		return Blue
	case bmi.SeverityNormal:
		return Green
	case bmi.SeverityElevated:
		return Yellow
	case bmi.SeverityHigh:
		return Red
	default:
		return Overlay
	}
}

// SeverityIndicator is the shape shown next to the status label so the
// result does not rely on color alone.
func SeverityIndicator(sev bmi.Severity) string {
	switch sev {
	case bmi.SeverityLow:
		return "[v]"
	case bmi.SeverityNormal:
		return StatusIndicators.Success
	case bmi.SeverityElevated:
		return StatusIndicators.Warning
	case bmi.SeverityHigh:
		return "[!!]"
	default:
		return StatusIndicators.Info
	}
}
