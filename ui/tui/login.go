// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/roster/client"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/model"
	"github.com/toeirei/roster/ui/tui/util"
)

// loginForm is the entry route: two inputs prefilled with the demo
// credentials. Values survive a failed attempt.
type loginForm struct {
	inputs     [2]textinput.Model
	focus      int
	submitting bool
}

func newLoginForm() loginForm {
	email := newInput(i18n.T("login.email"), client.DemoEmail)
	password := newInput(i18n.T("login.password"), client.DemoPassword)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	f := loginForm{inputs: [2]textinput.Model{email, password}}
	f.setFocus(0)
	return f
}

func newInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Width = 40
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(value)
	return ti
}

func (f *loginForm) setFocus(i int) {
	f.focus = util.Clamp(0, i, len(f.inputs)-1)
	for n := range f.inputs {
		if n == f.focus {
			f.inputs[n].Focus()
		} else {
			f.inputs[n].Blur()
		}
	}
}

func (f loginForm) credentials() model.Credentials {
	return model.Credentials{
		Email:    strings.TrimSpace(f.inputs[0].Value()),
		Password: f.inputs[1].Value(),
	}
}

// update returns true when the form was submitted.
func (f *loginForm) update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, formKeys.Submit):
			if f.submitting {
				return false, nil
			}
			return true, nil
		case key.Matches(msg, formKeys.Next):
			f.setFocus((f.focus + 1) % len(f.inputs))
			return false, nil
		case key.Matches(msg, formKeys.Prev):
			f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
			return false, nil
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, cmd
}

func (f loginForm) view() string {
	rows := []string{
		titleStyle.Render(i18n.T("login.title")),
		labelStyle.Render(i18n.T("login.email")),
		f.inputs[0].View(),
		"",
		labelStyle.Render(i18n.T("login.password")),
		f.inputs[1].View(),
		"",
	}
	if f.submitting {
		rows = append(rows, mutedStyle.Render(i18n.T("login.in_progress")))
	} else {
		rows = append(rows, cursorStyle.Render("[ "+i18n.T("login.submit")+" ]"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
