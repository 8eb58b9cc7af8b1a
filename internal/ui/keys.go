// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui provides the interactive article-writer interface.
//
// This file defines keyboard bindings and shortcuts. Each binding includes
// help text used to render the shortcut strip in the status bar.
package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the writer interface.
type KeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	Generate   key.Binding
	Cancel     key.Binding
	Export     key.Binding
	ExportHTML key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-Tab", "previous field"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("C-g", "generate"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "save markdown"),
		),
		ExportHTML: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "save html"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("PgUp", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the key bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Generate, k.Cancel, k.Export, k.Quit}
}

// FullHelp returns all key bindings grouped for the help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField},
		{k.Generate, k.Cancel},
		{k.Export, k.ExportHTML},
		{k.ScrollUp, k.ScrollDown, k.Quit},
	}
}
