// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the UI pieces of the BMI screen.

Each component is built on Bubble Tea and Lip Gloss and takes a
*styles.Theme so that a config reload restyles everything at once.

# Form Components

MeasurementInput (measurement.go) - Labelled text input with a unit suffix
(cm, kg) and a "ví dụ" placeholder.
Header (header.go) - Title and subtitle of the card, plus RenderButton for
the submit button.
ResultCard (result.go) - BMI value, status, scale and advice with a border
colored by severity. RenderAlert draws the validation line.
Footer (footer.go) - WHO disclaimer, credits and RenderChatButton.

# Assistant Components

ChatPanel (chat_panel.go) - Transcript viewport and question input. It
knows nothing about the form: the host opens it, closes it and hears about
closes through OnClose.
MarkdownRenderer (markdown.go) - Glamour renderer for assistant replies.

# Bubble Tea Integration

Interactive components follow the Update/View pattern:

	panel := components.NewChatPanel(theme, assistant.DefaultFAQ(), greeting)
	panel.OnClose = func() tea.Msg { return chatClosedMsg{} }

	cmd := panel.Open()
	panel, cmd = panel.Update(msg)
	view := panel.View()

Static components only render:

	card := components.NewResultCard(theme)
	card.Width = 48
	view := card.View(outcome)
*/
package components
