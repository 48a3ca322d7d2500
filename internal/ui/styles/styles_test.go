// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bmi-tui/internal/bmi"
)

// =============================================================================
// THEME TESTS
// =============================================================================

func TestNewTheme_Modes(t *testing.T) {
	tests := []struct {
		mode     string
		wantMode string
		wantDark *bool
	}{
		{"dark", ModeDark, boolPtr(true)},
		{"LIGHT", ModeLight, boolPtr(false)},
		{"auto", ModeAuto, nil},
		{"neon", ModeAuto, nil},
	}

	for _, tt := range tests {
		theme := NewTheme(tt.mode)
		if theme.Mode != tt.wantMode {
			t.Errorf("NewTheme(%q).Mode = %q, want %q", tt.mode, theme.Mode, tt.wantMode)
		}
		if tt.wantDark != nil && theme.IsDark != *tt.wantDark {
			t.Errorf("NewTheme(%q).IsDark = %v, want %v", tt.mode, theme.IsDark, *tt.wantDark)
		}
	}
}

func TestThemeStylesRender(t *testing.T) {
	theme := NewTheme("dark")

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Card", theme.Card},
		{"Input", theme.Input},
		{"InputFocused", theme.InputFocused},
		{"Button", theme.Button},
		{"Alert", theme.Alert},
		{"ResultCard", theme.ResultCard},
		{"ChatPanel", theme.ChatPanel},
		{"UserBubble", theme.UserBubble},
		{"AssistantBubble", theme.AssistantBubble},
	}

	for _, s := range styles {
		if !strings.Contains(s.style.Render("test"), "test") {
			t.Errorf("%s style lost its content", s.name)
		}
	}
}

func TestGlamourStyle(t *testing.T) {
	if got := NewTheme("dark").GlamourStyle(); got != "dark" {
		t.Errorf("dark theme glamour style = %q", got)
	}
	if got := NewTheme("light").GlamourStyle(); got != "light" {
		t.Errorf("light theme glamour style = %q", got)
	}
}

func TestLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
	}

	theme := NewTheme("dark")
	for _, tt := range tests {
		theme.SetSize(tt.width, 30)
		if got := theme.GetLayoutMode(); got != tt.want {
			t.Errorf("width %d: layout = %v, want %v", tt.width, got, tt.want)
		}
	}
}

func TestCardWidth(t *testing.T) {
	theme := NewTheme("dark")

	theme.SetSize(50, 20)
	if got := theme.CardWidth(); got != 46 {
		t.Errorf("narrow card width = %d, want 46", got)
	}

	theme.SetSize(120, 40)
	if got := theme.CardWidth(); got != 56 {
		t.Errorf("wide card width = %d, want 56", got)
	}
}

// =============================================================================
// SEVERITY TESTS
// =============================================================================

func TestSeverityColor(t *testing.T) {
	tests := []struct {
		sev  bmi.Severity
		want lipgloss.AdaptiveColor
	}{
		{bmi.SeverityLow, Blue},
		{bmi.SeverityNormal, Green},
		{bmi.SeverityElevated, Yellow},
		{bmi.SeverityHigh, Red},
		{bmi.Severity("unknown"), Overlay},
	}

	for _, tt := range tests {
		if got := SeverityColor(tt.sev); got != tt.want {
			t.Errorf("SeverityColor(%q) = %v, want %v", tt.sev, got, tt.want)
		}
	}
}

func TestSeverityIndicatorsDistinct(t *testing.T) {
	seen := map[string]bmi.Status{}
	for _, s := range bmi.AllStatuses() {
		ind := SeverityIndicator(s.Severity())
		if prev, dup := seen[ind]; dup {
			t.Errorf("%v and %v share indicator %q", prev, s, ind)
		}
		seen[ind] = s
	}
}

// =============================================================================
// SCALE TESTS
// =============================================================================

func TestScalePosition(t *testing.T) {
	tests := []struct {
		value float64
		want  int
	}{
		{5, 0},
		{ScaleMin, 0},
		{25, 15},
		{ScaleMax, 30},
		{55, 30},
	}

	for _, tt := range tests {
		if got := ScalePosition(31, tt.value); got != tt.want {
			t.Errorf("ScalePosition(31, %v) = %d, want %d", tt.value, got, tt.want)
		}
	}

	if got := ScalePosition(0, 22); got != 0 {
		t.Errorf("zero width should pin to 0, got %d", got)
	}
}

func TestRenderScale(t *testing.T) {
	out := RenderScale(31, 25)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScale should produce 2 lines, got %d", len(lines))
	}
	if got := strings.Count(lines[0], ScaleFill); got != 31 {
		t.Errorf("bar has %d fill cells, want 31", got)
	}
	if got := strings.Index(lines[1], ScaleMarker); got != 15 {
		t.Errorf("marker at %d, want 15", got)
	}

	if RenderScale(0, 22) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestSpinnerFrames(t *testing.T) {
	if DotsSpinner.Duration() <= 0 {
		t.Error("spinner duration must be positive")
	}
	n := len(DotsSpinner.Frames)
	if DotsSpinner.Frame(0) != DotsSpinner.Frame(n) {
		t.Error("frames should wrap")
	}
	if (SpinnerConfig{}).Frame(3) != "" {
		t.Error("empty spinner should render nothing")
	}
}

func TestRenderHelpersKeepIndicators(t *testing.T) {
	if !strings.Contains(RenderError("sai"), StatusIndicators.Error) {
		t.Error("RenderError should include the error indicator")
	}
	if !strings.Contains(RenderSuccess("ok"), StatusIndicators.Success) {
		t.Error("RenderSuccess should include the success indicator")
	}
	if !strings.Contains(RenderInfo("info"), StatusIndicators.Info) {
		t.Error("RenderInfo should include the info indicator")
	}
}

func boolPtr(b bool) *bool { return &b }
