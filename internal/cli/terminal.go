// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// terminal.go - Terminal detection for the bmi CLI.
//
// Interactive terminals get colours and the line editor; piped input and
// output get plain text.

package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// isTerminalReader reports whether r is a terminal file.
func isTerminalReader(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

// ColorsEnabled returns true if colored output should be used.
// --no-color and NO_COLOR win, FORCE_COLOR overrides TTY detection.
// See https://no-color.org/ for the NO_COLOR specification.
func ColorsEnabled(noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return IsStdoutTTY()
}

// GetColorProfile returns the termenv color profile for the decision above.
func GetColorProfile(noColorFlag bool) termenv.Profile {
	if !ColorsEnabled(noColorFlag) {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

// applyColorProfile configures lipgloss for the rest of the process.
func applyColorProfile(noColorFlag bool) {
	lipgloss.SetColorProfile(GetColorProfile(noColorFlag))
}
