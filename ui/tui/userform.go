// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/model"
	"github.com/toeirei/roster/ui/tui/util"
)

type formResult int

const (
	formOpen formResult = iota
	formSubmitted
	formCancelled
)

var formLabels = [4]string{"form.first_name", "form.last_name", "form.email", "form.avatar"}

// userForm edits one user. target is nil when adding.
type userForm struct {
	target *model.User
	inputs [4]textinput.Model
	focus  int
}

func newUserForm(target *model.User) *userForm {
	fields := model.NewUserFields()
	if target != nil {
		fields = target.Fields()
	}
	values := [4]string{fields.FirstName, fields.LastName, fields.Email, fields.Avatar}

	f := &userForm{target: target}
	for i := range f.inputs {
		f.inputs[i] = newInput(i18n.T(formLabels[i]), values[i])
	}
	f.setFocus(0)
	return f
}

func (f *userForm) setFocus(i int) {
	f.focus = util.Clamp(0, i, len(f.inputs)-1)
	for n := range f.inputs {
		if n == f.focus {
			f.inputs[n].Focus()
		} else {
			f.inputs[n].Blur()
		}
	}
}

func (f *userForm) fields() model.UserFields {
	return model.UserFields{
		FirstName: strings.TrimSpace(f.inputs[0].Value()),
		LastName:  strings.TrimSpace(f.inputs[1].Value()),
		Email:     strings.TrimSpace(f.inputs[2].Value()),
		Avatar:    strings.TrimSpace(f.inputs[3].Value()),
	}
}

func (f *userForm) update(msg tea.Msg) (formResult, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, formKeys.Cancel):
			return formCancelled, nil
		case key.Matches(msg, formKeys.Submit):
			return formSubmitted, nil
		case key.Matches(msg, formKeys.Next):
			f.setFocus((f.focus + 1) % len(f.inputs))
			return formOpen, nil
		case key.Matches(msg, formKeys.Prev):
			f.setFocus((f.focus + len(f.inputs) - 1) % len(f.inputs))
			return formOpen, nil
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return formOpen, cmd
}

func (f *userForm) view() string {
	title, submit := i18n.T("form.add_title"), i18n.T("form.add")
	if f.target != nil {
		title, submit = i18n.T("form.edit_title"), i18n.T("form.save")
	}
	rows := []string{titleStyle.Render(title)}
	for i := range f.inputs {
		rows = append(rows, labelStyle.Render(i18n.T(formLabels[i])), f.inputs[i].View())
	}
	rows = append(rows, "", cursorStyle.Render("[ "+submit+" ]")+"  "+mutedStyle.Render(i18n.T("form.cancel")+" (esc)"))
	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
