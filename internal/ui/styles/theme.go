// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/bmi-tui/internal/bmi"
)

// Theme modes accepted by NewTheme. They match the ui.theme config values.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	Mode         string
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// FORM CARD STYLES
	// ==========================================================================

	App      lipgloss.Style
	Card     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	// ==========================================================================
	// INPUT STYLES
	// ==========================================================================

	Label        lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Suffix       lipgloss.Style
	Placeholder  lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	Alert lipgloss.Style

	// ==========================================================================
	// RESULT STYLES
	// ==========================================================================

	ResultCard   lipgloss.Style
	ResultHeader lipgloss.Style
	ResultValue  lipgloss.Style
	ResultStatus lipgloss.Style
	ResultAdvice lipgloss.Style

	// ==========================================================================
	// FOOTER STYLES
	// ==========================================================================

	Footer       lipgloss.Style
	FooterCredit lipgloss.Style
	ChatButton   lipgloss.Style

	// ==========================================================================
	// CHAT PANEL STYLES
	// ==========================================================================

	ChatPanel       lipgloss.Style
	ChatHeader      lipgloss.Style
	ChatHint        lipgloss.Style
	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	Typing          lipgloss.Style

	// ==========================================================================
	// HELP STYLES
	// ==========================================================================

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme creates a theme for mode ("dark", "light" or "auto").
// Unknown modes behave like "auto".
func NewTheme(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	mode = strings.ToLower(strings.TrimSpace(mode))
	var isDark bool
	switch mode {
	case ModeDark:
		isDark = true
	case ModeLight:
		isDark = false
	default:
		mode = ModeAuto
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		Mode:         mode,
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// Apply pushes the theme's background choice into lipgloss so adaptive
// colors resolve to the right side.
func (t *Theme) Apply() {
	lipgloss.SetHasDarkBackground(t.IsDark)
}

// DisableColor switches lipgloss to plain ASCII output (NO_COLOR, --no-color).
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle().Padding(1, 2)

	t.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 3)

	t.Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		Align(lipgloss.Center)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Align(lipgloss.Center)

	// Inputs
	t.Label = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Bold(true)

	t.Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputFocused = t.Input.
		BorderForeground(Indigo)

	t.Suffix = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.Button = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Indigo).
		Bold(true).
		Padding(0, 2).
		Align(lipgloss.Center)

	t.ButtonFocused = t.Button.
		Background(IndigoDeep).
		Underline(true)

	t.Alert = lipgloss.NewStyle().
		Foreground(Rose).
		Align(lipgloss.Center)

	// Result card
	t.ResultCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(Overlay).
		Padding(0, 2)

	t.ResultHeader = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ResultValue = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.ResultStatus = lipgloss.NewStyle().
		Bold(true)

	t.ResultAdvice = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Footer
	t.Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Align(lipgloss.Center)

	t.FooterCredit = lipgloss.NewStyle().
		Foreground(TextMuted).
		Faint(true).
		Align(lipgloss.Center)

	t.ChatButton = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Indigo).
		Bold(true).
		Padding(0, 1)

	// Chat panel
	t.ChatPanel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Indigo).
		Padding(0, 1)

	t.ChatHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(Indigo)

	t.ChatHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		Padding(0, 1).
		MarginLeft(4)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(AssistantBubbleFg).
		Background(AssistantBubbleBg).
		Padding(0, 1).
		MarginRight(4)

	t.Typing = lipgloss.NewStyle().
		Foreground(TextMuted)

	// Help
	t.HelpKey = lipgloss.NewStyle().
		Foreground(Indigo).
		Bold(true)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(TextMuted)
}

// ResultCardFor returns the result card style with the border colored by sev.
func (t *Theme) ResultCardFor(sev bmi.Severity) lipgloss.Style {
	return t.ResultCard.BorderForeground(SeverityColor(sev))
}

// ResultStatusFor returns the status label style colored by sev.
func (t *Theme) ResultStatusFor(sev bmi.Severity) lipgloss.Style {
	return t.ResultStatus.Foreground(SeverityColor(sev))
}

// GlamourStyle names the glamour style matching the background.
func (t *Theme) GlamourStyle() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// CardWidth is the form card width for the current terminal width.
func (t *Theme) CardWidth() int {
	switch t.GetLayoutMode() {
	case LayoutNarrow:
		if t.Width > 4 {
			return t.Width - 4
		}
		return 40
	default:
		return 56
	}
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns, chat panel docks beside the form
)
