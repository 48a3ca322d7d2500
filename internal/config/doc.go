// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for bmi.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - UIConfig: Theme, help bar and compact layout
//   - ChatConfig: Assistant panel toggle and greeting
//   - LoggingConfig: File logger level and location
//   - Watcher: Reloads a config file when it changes on disk
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (BMI_*)
//   - ~/.bmi/config.toml
//   - ~/.bmi/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Printf("config: %v (using defaults)", err)
//	}
//
// Access settings:
//
//	theme := cfg.UI.Theme
//	greeting := cfg.Chat.Greeting
//
// The process-wide config is published with SetGlobal and read with Global.
// ReloadGlobal and the Watcher replace it when the file changes.
package config
