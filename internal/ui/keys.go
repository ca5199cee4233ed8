// SPDX-License-Identifier: Apache-2.0

// This file defines the keyboard bindings for the TUI application.

package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the review TUI.
type KeyMap struct {
	// Navigation keys
	Up   key.Binding // Move cursor up
	Down key.Binding // Move cursor down

	// General UI control
	Quit  key.Binding // Exit the application
	Enter key.Binding // Open the diff for the selected file
	Esc   key.Binding // Back to the file list

	// Review actions
	Apply    key.Binding // Apply the rewrite to the selected file
	ApplyAll key.Binding // Apply the rewrite to every pending file
	Skip     key.Binding // Mark the selected file as skipped
	Reload   key.Binding // Re-run discovery and rewrite
}

// DefaultKeyMap provides the default keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "view diff"),
	),
	Esc: key.NewBinding(
		key.WithKeys("esc", "b"),
		key.WithHelp("esc", "back"),
	),
	Apply: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "apply"),
	),
	ApplyAll: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "apply all"),
	),
	Skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
}
