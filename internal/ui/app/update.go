// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)

	case ChatClosedMsg:
		m.chatOpen = false
		m.logger.Debug("chat panel closed")
		return m, m.focusCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Replies, typing ticks and mouse events belong to the chat panel.
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleChat):
		return m.toggleChat()
	}

	if m.chatOpen {
		if key.Matches(msg, m.keys.ClearChat) {
			m.chat.Clear()
			m.logger.Debug("chat transcript cleared")
			return m, nil
		}
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.NextField):
		return m, m.setFocus((m.focus + 1) % numFocus)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.setFocus((m.focus + numFocus - 1) % numFocus)

	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil

	case key.Matches(msg, m.keys.ClearForm):
		return m, m.clearForm()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.CloseChat):
		// Nothing to close while the panel is hidden.
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// toggleChat opens a closed panel or closes an open one. Closing goes through
// the panel so the OnClose callback clears chatOpen.
func (m Model) toggleChat() (tea.Model, tea.Cmd) {
	if m.chatOpen {
		return m, m.chat.Close()
	}
	if !m.cfg.Chat.Enabled {
		return m, nil
	}

	m.chatOpen = true
	m.heightInput.Blur()
	m.weightInput.Blur()
	m.logger.Debug("chat panel opened")
	return m, m.chat.Open()
}

func (m Model) updateFocusedInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusHeight:
		m.heightInput, cmd = m.heightInput.Update(msg)
		m.form = m.form.SetHeightText(m.heightInput.Value())
	case FocusWeight:
		m.weightInput, cmd = m.weightInput.Update(msg)
		m.form = m.form.SetWeightText(m.weightInput.Value())
	}
	return m, cmd
}

// setFocus moves focus to f and returns the input's focus command.
func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	return m.focusCmd()
}

// focusCmd focuses the input matching m.focus and blurs the other one.
func (m *Model) focusCmd() tea.Cmd {
	m.heightInput.Blur()
	m.weightInput.Blur()

	switch m.focus {
	case FocusHeight:
		return m.heightInput.Focus()
	case FocusWeight:
		return m.weightInput.Focus()
	}
	return nil
}

// =============================================================================
// SUBMIT
// =============================================================================

// submit evaluates the current fields.
func (m *Model) submit() {
	m.form = m.form.
		SetHeightText(m.heightInput.Value()).
		SetWeightText(m.weightInput.Value()).
		Submit()

	if out := m.form.Outcome; out != nil {
		m.logger.Debug("bmi evaluated",
			zap.Float64("bmi", out.BMI),
			zap.Stringer("status", out.Status),
			zap.String("severity", string(out.Severity)),
		)
		return
	}

	m.logger.Info("invalid measurement submitted")
	m.logger.Debug("rejected input",
		zap.String("height_text", m.form.HeightText),
		zap.String("weight_text", m.form.WeightText),
	)
}

// clearForm empties both inputs, drops the result and refocuses height.
func (m *Model) clearForm() tea.Cmd {
	m.heightInput.Reset()
	m.weightInput.Reset()
	m.form = m.form.Reset()
	return m.setFocus(FocusHeight)
}

// =============================================================================
// CONFIG RELOAD
// =============================================================================

func (m Model) handleConfigReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil || msg.Config == nil {
		m.notice = "Không thể tải lại cấu hình"
		if msg.Err != nil {
			m.logger.Warn("config reload failed", zap.Error(msg.Err))
		}
		return m, nil
	}

	m.notice = ""
	m.applyConfig(msg.Config)
	m.logger.Info("config reloaded",
		zap.String("theme", msg.Config.UI.Theme),
		zap.Bool("chat_enabled", msg.Config.Chat.Enabled),
	)

	if m.chatOpen && !msg.Config.Chat.Enabled {
		return m, m.chat.Close()
	}
	return m, nil
}
