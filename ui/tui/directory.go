// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/toeirei/roster/internal/app"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/model"
	"github.com/toeirei/roster/ui/tui/util"
)

// writeClipboard is swapped in tests; CI machines have no clipboard.
var writeClipboard = clipboard.WriteAll

// directoryScreen is the users route. The page itself lives in the view's
// cache; the screen only tracks the cursor and open overlays.
type directoryScreen struct {
	view    *app.View
	cursor  int
	form    *userForm
	confirm *model.User
}

func (d *directoryScreen) selected() (model.User, bool) {
	if d.view == nil {
		return model.User{}, false
	}
	items := d.view.Page().Items
	if d.cursor < 0 || d.cursor >= len(items) {
		return model.User{}, false
	}
	return items[d.cursor], true
}

func (d *directoryScreen) clampCursor() {
	if d.view == nil {
		d.cursor = 0
		return
	}
	d.cursor = util.Clamp(0, d.cursor, max(len(d.view.Page().Items)-1, 0))
}

func (d *directoryScreen) overlayOpen() bool { return d.form != nil || d.confirm != nil }

// update handles input for the users route. m is the root model, used for
// navigation and notices.
func (d *directoryScreen) update(m *Model, msg tea.KeyMsg) tea.Cmd {
	v := d.view
	if v == nil {
		return nil
	}

	if d.confirm != nil {
		switch {
		case key.Matches(msg, confirmKeys.Yes):
			target := *d.confirm
			d.confirm = nil
			return mutationCmd(v, model.MutationDelete, target, func() (model.User, error) {
				return target, v.Delete(target.ID)
			})
		case key.Matches(msg, confirmKeys.No):
			d.confirm = nil
		}
		return nil
	}

	if d.form != nil {
		res, cmd := d.form.update(msg)
		switch res {
		case formCancelled:
			d.form = nil
		case formSubmitted:
			return d.submitForm()
		}
		return cmd
	}

	switch {
	case key.Matches(msg, directoryKeys.Up):
		d.cursor--
		d.clampCursor()
	case key.Matches(msg, directoryKeys.Down):
		d.cursor++
		d.clampCursor()
	case key.Matches(msg, directoryKeys.Prev):
		if v.Page().HasPrev() {
			return pageCmd(v, v.Prev)
		}
	case key.Matches(msg, directoryKeys.Next):
		if v.Page().HasNext() {
			return pageCmd(v, v.Next)
		}
	case key.Matches(msg, directoryKeys.Reload):
		return pageCmd(v, v.Reload)
	case key.Matches(msg, directoryKeys.Add):
		d.form = newUserForm(nil)
	case key.Matches(msg, directoryKeys.Edit):
		if u, ok := d.selected(); ok {
			d.form = newUserForm(&u)
		}
	case key.Matches(msg, directoryKeys.Delete):
		if u, ok := d.selected(); ok {
			d.confirm = &u
		}
	case key.Matches(msg, directoryKeys.Copy):
		if u, ok := d.selected(); ok {
			return copyCmd(u.Email)
		}
	case key.Matches(msg, directoryKeys.Dismiss):
		m.ctrl.Notices.Dismiss()
	case key.Matches(msg, directoryKeys.Logout):
		return m.logout()
	case key.Matches(msg, directoryKeys.Quit):
		return tea.Quit
	}
	return nil
}

func (d *directoryScreen) submitForm() tea.Cmd {
	v, f := d.view, d.form
	fields := f.fields()
	d.form = nil

	if f.target == nil {
		return mutationCmd(v, model.MutationCreate, model.User{}, func() (model.User, error) {
			return v.Create(fields)
		})
	}
	target := *f.target
	upd := model.DiffUpdate(target, fields)
	if upd.IsEmpty() {
		return nil
	}
	return mutationCmd(v, model.MutationUpdate, target, func() (model.User, error) {
		return v.Update(target.ID, upd)
	})
}

func (d *directoryScreen) render(width int) string {
	if d.view == nil {
		return mutedStyle.Render(i18n.T("users.loading"))
	}
	page := d.view.Page()

	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("app.title")))
	b.WriteString("\n")

	if len(page.Items) == 0 {
		b.WriteString(mutedStyle.Render(i18n.T("users.empty")))
	} else {
		t := table.New().
			Border(lipgloss.NormalBorder()).
			BorderStyle(mutedStyle).
			Headers("", "ID", i18n.T("form.first_name"), i18n.T("form.last_name"), i18n.T("form.email")).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == d.cursor {
					return cursorStyle
				}
				return lipgloss.NewStyle()
			})
		if width > 0 {
			t = t.Width(width)
		}
		for i, u := range page.Items {
			marker := " "
			if i == d.cursor {
				marker = ">"
			}
			t.Row(marker, fmt.Sprint(u.ID), u.FirstName, u.LastName, u.Email)
		}
		b.WriteString(t.Render())
	}
	b.WriteString("\n")

	status := i18n.T("users.page", page.Number, page.TotalPages)
	if d.view.Loading() {
		status += "  " + i18n.T("users.loading")
	}
	if n := len(d.view.Pending()); n > 0 {
		status += fmt.Sprintf("  (%d pending)", n)
	}
	b.WriteString(mutedStyle.Render(status))
	return b.String()
}

// overlay draws the open form or delete confirmation over body.
func (d *directoryScreen) overlay(body string) string {
	switch {
	case d.form != nil:
		return util.Overlay(body, d.form.view())
	case d.confirm != nil:
		prompt := i18n.T("tui.confirm_delete", d.confirm.FullName())
		return util.Overlay(body, popupStyle.Render(prompt))
	}
	return body
}

func pageCmd(v *app.View, fetch func() (model.Page, error)) tea.Cmd {
	return func() tea.Msg {
		p, err := fetch()
		return pageMsg{view: v, page: p, err: err}
	}
}

func mutationCmd(v *app.View, kind model.MutationKind, target model.User, run func() (model.User, error)) tea.Cmd {
	return func() tea.Msg {
		u, err := run()
		if err != nil {
			u = target
		}
		return mutationMsg{view: v, kind: kind, user: u, err: err}
	}
}

func copyCmd(email string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{email: email, err: writeClipboard(email)}
	}
}
