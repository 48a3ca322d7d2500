// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/bmi-tui/internal/form"
	"github.com/jeranaias/bmi-tui/internal/ui/components"
	"github.com/jeranaias/bmi-tui/internal/ui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		m.renderCard(),
		"",
		m.footer.View(),
	)

	if m.chatOpen {
		panel := m.chat.View()
		if m.theme.GetLayoutMode() == styles.LayoutWide {
			page = lipgloss.JoinHorizontal(lipgloss.Top, page, "  ", panel)
		} else {
			page = panel
		}
	}

	return m.theme.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		page,
		m.renderBottomBar(),
	))
}

// renderCard draws the form card: header, inputs, alert, button, result.
func (m Model) renderCard() string {
	inner := m.theme.CardWidth() - 8

	sections := []string{
		m.header.View(),
		"",
		m.heightInput.View(),
		m.weightInput.View(),
		"",
	}

	if m.form.Phase() == form.PhaseError {
		sections = append(sections, components.RenderAlert(m.theme, m.form.Err, inner), "")
	}

	sections = append(sections, components.RenderButton(m.theme, m.focus == FocusSubmit && !m.chatOpen, inner))

	if m.form.Phase() == form.PhaseResult {
		sections = append(sections, "", m.result.View(*m.form.Outcome))
	}

	return m.theme.Card.
		Width(m.theme.CardWidth() - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderBottomBar draws the help bar, notice and the assistant button.
func (m Model) renderBottomBar() string {
	var left string
	if m.showHelp {
		left = m.help.View(m.keys)
	}
	if m.notice != "" {
		left = lipgloss.JoinVertical(lipgloss.Left, left, styles.RenderError(m.notice))
	}

	if !m.cfg.Chat.Enabled || m.chatOpen {
		return left
	}

	button := components.RenderChatButton(m.theme, m.keys.ToggleChat.Help().Key)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(button) - 4
	if gap < 1 {
		return lipgloss.JoinVertical(lipgloss.Right, left, button)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, lipgloss.NewStyle().Width(gap).Render(""), button)
}
