// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/bmi-tui/internal/config"
)

// ConfigReloadedMsg is sent when the config file changes on disk.
// Err is set when the new file could not be loaded; the old config stays.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// ChatClosedMsg is produced by the chat panel's close callback.
type ChatClosedMsg struct{}

// ConfigReloaded adapts a config.Watcher callback to a message sender such
// as (*tea.Program).Send.
func ConfigReloaded(send func(tea.Msg)) config.ReloadFunc {
	return func(cfg *config.Config, err error) {
		send(ConfigReloadedMsg{Config: cfg, Err: err})
	}
}
