// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Indigo - Primary accent, buttons, focus rings, assistant button
var Indigo = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}

// IndigoDeep - Darker indigo for pressed/focused backgrounds
var IndigoDeep = lipgloss.AdaptiveColor{Light: "#4338CA", Dark: "#3730A3"}

// =============================================================================
// SEVERITY COLORS
// =============================================================================

// Blue - Underweight (low severity)
var Blue = lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"}

// Green - Normal weight
var Green = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#4ADE80"}

// Yellow - Overweight (elevated severity)
var Yellow = lipgloss.AdaptiveColor{Light: "#CA8A04", Dark: "#EAB308"}

// Red - Obese (high severity)
var Red = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"}

// Rose - Validation errors
var Rose = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FB7185"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Card background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#45475A"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Headings and body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, subtitles
var TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#A6ADC8"}

// TextMuted - Placeholders, footer, unit suffixes
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on coloured buttons
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// =============================================================================
// CHAT BUBBLE COLORS
// =============================================================================

var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#E0E7FF", Dark: "#3730A3"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#312E81", Dark: "#E0E7FF"}

var AssistantBubbleBg = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#313244"}
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E9E4F5"}

// =============================================================================
// ACCESSIBILITY: Shapes alongside colors
// =============================================================================

// StatusIndicatorSet contains text indicators for status states.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Info    string
}

// StatusIndicators pairs every color cue with an ASCII shape.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
}

// RenderError renders a message with the error indicator in bold rose.
func RenderError(message string) string {
	return lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true).
		Render(StatusIndicators.Error + " " + message)
}

// RenderSuccess renders a message with the success indicator in bold green.
func RenderSuccess(message string) string {
	return lipgloss.NewStyle().
		Foreground(Green).
		Bold(true).
		Render(StatusIndicators.Success + " " + message)
}

// RenderInfo renders a message with the info indicator in indigo.
func RenderInfo(message string) string {
	return lipgloss.NewStyle().
		Foreground(Indigo).
		Render(StatusIndicators.Info + " " + message)
}
