// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	restart key.Binding
	copy    key.Binding
	version key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	enter:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "place")),
	esc:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
	copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy grid")),
	version: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// gameHelp lists the bindings shown under the board.
func gameHelp() []key.Binding {
	return []key.Binding{keys.up, keys.down, keys.left, keys.right, keys.enter, keys.restart, keys.copy, keys.version, keys.quit}
}
