// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the bmi TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. Theme can also be pinned to dark or light from config.

# Color System (colors.go)

  - Indigo - Primary accent for buttons, focus and the assistant
  - Blue, Green, Yellow, Red - Severity colors for the result card
  - Rose - Validation errors

# Severity (severity.go)

SeverityColor and SeverityIndicator map a bmi.Severity to a border color
and an ASCII shape so results never rely on color alone.

# Scale (scale.go)

RenderScale draws the four classification bands with a marker at the
current BMI.

# Usage

	theme := styles.NewTheme(cfg.UI.Theme)
	theme.Apply()
	card := theme.ResultCardFor(outcome.Severity).Render(body)
*/
package styles
