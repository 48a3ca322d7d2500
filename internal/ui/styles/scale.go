// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bmi-tui/internal/bmi"
)

// =============================================================================
// BMI SCALE
// =============================================================================

// Scale bounds. Values outside are pinned to the ends.
const (
	ScaleMin = 10.0
	ScaleMax = 40.0
)

var (
	ScaleFill   = "━"
	ScaleMarker = "▲"
)

// ScalePosition returns the column (0..width-1) where value sits on a scale
// of the given width.
func ScalePosition(width int, value float64) int {
	if width <= 1 || math.IsNaN(value) {
		return 0
	}
	if value < ScaleMin {
		value = ScaleMin
	}
	if value > ScaleMax {
		value = ScaleMax
	}
	pos := int(math.Round((value - ScaleMin) / (ScaleMax - ScaleMin) * float64(width-1)))
	if pos >= width {
		pos = width - 1
	}
	return pos
}

// RenderScale draws the four classification bands as colored segments with
// a marker line underneath pointing at value.
func RenderScale(width int, value float64) string {
	if width <= 0 {
		return ""
	}

	// PERFORMANCE: strings.Builder avoids quadratic allocations
	var bar strings.Builder
	start := 0
	for _, band := range bmi.Bands() {
		end := width
		if !math.IsInf(band.Max, 1) {
			end = ScalePosition(width, band.Max)
		}
		if end <= start {
			continue
		}
		seg := strings.Repeat(ScaleFill, end-start)
		bar.WriteString(lipgloss.NewStyle().Foreground(SeverityColor(band.Status.Severity())).Render(seg))
		start = end
	}

	marker := strings.Repeat(" ", ScalePosition(width, value)) + ScaleMarker
	return bar.String() + "\n" + marker
}

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	if s.FPS <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(s.FPS)
}

// Frame returns the frame for tick n.
func (s SpinnerConfig) Frame(n int) string {
	if len(s.Frames) == 0 {
		return ""
	}
	if n < 0 {
		n = -n
	}
	return s.Frames[n%len(s.Frames)]
}

// DotsSpinner - "assistant is typing" indicator
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}
