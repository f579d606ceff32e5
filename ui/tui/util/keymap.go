// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

func MergeKeyMaps(keymaps ...help.KeyMap) help.KeyMap {
	return MergedKeyMaps{KeyMaps: keymaps}
}

type MergedKeyMaps struct {
	KeyMaps []help.KeyMap
}

func (m MergedKeyMaps) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, k := range m.KeyMaps {
		if k != nil {
			out = slices.Concat(out, k.ShortHelp())
		}
	}
	return out
}

func (m MergedKeyMaps) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, k := range m.KeyMaps {
		if k != nil {
			out = slices.Concat(out, k.FullHelp())
		}
	}
	return out
}

var _ help.KeyMap = (*MergedKeyMaps)(nil)
