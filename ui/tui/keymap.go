// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type BaseKeyMap struct {
	Exit key.Binding
	Help key.Binding
}

func (km BaseKeyMap) ShortHelp() []key.Binding { return []key.Binding{km.Help, km.Exit} }

func (km BaseKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{km.Help, km.Exit}} }

var baseKeys = BaseKeyMap{
	Exit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "exit")),
	Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

type DirectoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Prev    key.Binding
	Next    key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Copy    key.Binding
	Dismiss key.Binding
	Reload  key.Binding
	Logout  key.Binding
	Quit    key.Binding
}

func (km DirectoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next, km.Add, km.Edit, km.Delete, km.Copy, km.Logout, km.Quit}
}

func (km DirectoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Prev, km.Next, km.Reload},
		{km.Add, km.Edit, km.Delete, km.Copy},
		{km.Dismiss, km.Logout, km.Quit},
	}
}

var directoryKeys = DirectoryKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous page")),
	Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit:    key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy email")),
	Dismiss: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
	Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Logout:  key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "logout")),
	Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}

type FormKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

func (km FormKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Prev, km.Submit, km.Cancel}
}

func (km FormKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Next, km.Prev}, {km.Submit, km.Cancel}}
}

var formKeys = FormKeyMap{
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

type ConfirmKeyMap struct {
	Yes key.Binding
	No  key.Binding
}

func (km ConfirmKeyMap) ShortHelp() []key.Binding { return []key.Binding{km.Yes, km.No} }

func (km ConfirmKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{km.Yes, km.No}} }

var confirmKeys = ConfirmKeyMap{
	Yes: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
}

var (
	_ help.KeyMap = BaseKeyMap{}
	_ help.KeyMap = DirectoryKeyMap{}
	_ help.KeyMap = FormKeyMap{}
	_ help.KeyMap = ConfirmKeyMap{}
)
