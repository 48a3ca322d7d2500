// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the bmi command tree.
//
// The root command opens the interactive screen; subcommands cover
// one-shot and line-mode evaluation, configuration and version output.
//
// # Commands
//
//   - bmi: interactive form, result card and assistant panel
//   - calc: evaluate one height/weight pair (--json for machine output)
//   - prompt: line-mode loop with history (liner)
//   - config: show, get, set, reset, path
//   - version: build information
//
// # Global Flags
//
//   - --config: config file instead of ~/.bmi/config.toml
//   - --verbose: debug-level logging
//   - --no-color: plain output (NO_COLOR is honoured too)
//
// # Exit Codes
//
// 0 on success, 1 for an invalid measurement or a general failure, 2 for
// usage errors, 3 for configuration errors and 7 for unknown config keys.
// See [GetExitCode].
//
// # Usage
//
//	func main() {
//	    os.Exit(cli.Execute())
//	}
package cli
