// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings of the form screen.
type KeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	Submit     key.Binding
	ClearForm  key.Binding
	ToggleChat key.Binding
	ClearChat  key.Binding
	CloseChat  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "ô tiếp theo"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "ô trước"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "xem kết quả"),
		),
		ClearForm: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "nhập lại"),
		),
		ToggleChat: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "trợ lý AI"),
		),
		CloseChat: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "đóng trợ lý"),
		),
		ClearChat: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "xóa hội thoại"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "trợ giúp"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "thoát"),
		),
	}
}

// =============================================================================
// KEY BINDING HELPERS
// =============================================================================

// ShortHelp returns the bindings shown in the one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextField, k.ToggleChat, k.Help, k.Quit}
}

// FullHelp returns the bindings shown when help is expanded.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Form
		{k.NextField, k.PrevField, k.Submit, k.ClearForm},
		// Assistant
		{k.ToggleChat, k.CloseChat, k.ClearChat},
		// App
		{k.Help, k.Quit},
	}
}
