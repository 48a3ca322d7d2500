// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the config and UI layers.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// Display Width:
//   - TruncateWidth: Cut a string to a terminal column budget
//   - PadRight: Pad a string to a column width
//   - StringWidth: Columns a string occupies
//
// # Usage
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0600)
//
//	// Fit a Vietnamese label into a narrow card
//	label := util.TruncateWidth("Bình thường", 7)
package util
