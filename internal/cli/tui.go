// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jeranaias/bmi-tui/internal/config"
	"github.com/jeranaias/bmi-tui/internal/ui/app"
)

// runTUI starts the interactive screen and blocks until the user quits.
// Config file edits are pushed into the running program.
func runTUI(ctx context.Context, st *state) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := st.config()
	model := app.New(cfg,
		app.WithLogger(st.logger),
		app.WithNoColor(!ColorsEnabled(st.flags.noColor)),
	)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Wheel scrolls the chat transcript
		tea.WithContext(ctx),
	)

	if w := startWatcher(st, p.Send); w != nil {
		defer w.Close()
	}

	st.logger.Info("tui started",
		zap.String("theme", cfg.UI.Theme),
		zap.Bool("chat_enabled", cfg.Chat.Enabled),
	)
	if _, err := p.Run(); err != nil {
		return NewCommandError("tui", "run", "terminal program failed", err)
	}
	st.logger.Info("tui stopped")
	return nil
}

// startWatcher watches the active config file. A watcher that cannot start
// is logged and skipped; hot reload is a convenience.
func startWatcher(st *state, send func(tea.Msg)) *config.Watcher {
	if st.cfgPath == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(st.cfgPath), 0700); err != nil {
		st.logger.Warn("config watcher disabled", zap.Error(err))
		return nil
	}

	w, err := config.NewWatcher(st.cfgPath, config.DefaultWatchDebounce, app.ConfigReloaded(send))
	if err != nil {
		st.logger.Warn("config watcher disabled", zap.Error(err))
		return nil
	}
	if err := w.Start(); err != nil {
		w.Close()
		st.logger.Warn("config watcher disabled", zap.Error(err))
		return nil
	}
	st.logger.Debug("watching config", zap.String("path", w.Path()))
	return w
}
