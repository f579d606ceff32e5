// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/roster/client"
	"github.com/toeirei/roster/internal/app"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/model"
	"github.com/toeirei/roster/internal/notify"
	"github.com/toeirei/roster/internal/session"
)

type tuiHarness struct {
	t      *testing.T
	m      *Model
	ctrl   *app.Controller
	remote *client.MemoryClient
	quit   bool
}

func newTUIHarness(t *testing.T, overwrites client.MockClientOverwrites) *tuiHarness {
	t.Helper()
	remote := client.NewMemoryClient(client.WithSampleData())
	ctrl := app.New(
		client.NewMockClient(remote, overwrites),
		session.New(session.NewMemoryStore()),
		notify.New(notify.WithClock(clockwork.NewFakeClock())),
	)
	m := New(context.Background(), ctrl)
	t.Cleanup(func() {
		m.Close()
		_ = ctrl.Close(context.Background())
	})
	return &tuiHarness{t: t, m: m, ctrl: ctrl, remote: remote}
}

// run executes cmd and feeds every resulting message of this package back
// into the model until nothing is left. The notice subscription is never
// waited on.
func (h *tuiHarness) run(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case tea.QuitMsg:
			h.quit = true
		case navigatedMsg, loginResultMsg, viewOpenedMsg, pageMsg, mutationMsg, loggedOutMsg, clipboardMsg:
			_, next := h.m.Update(msg)
			queue = append(queue, next)
		}
	}
}

func (h *tuiHarness) press(keys ...tea.KeyMsg) {
	for _, k := range keys {
		_, cmd := h.m.Update(k)
		h.run(cmd)
	}
}

func (h *tuiHarness) typeText(s string) {
	h.press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (h *tuiHarness) notice() notify.Message {
	msg, _ := h.ctrl.Notices.Current()
	return msg
}

func (h *tuiHarness) login() {
	h.t.Helper()
	h.run(h.m.navigate(string(app.RouteUsers)))
	require.Equal(h.t, app.RouteEntry, h.m.route)
	h.press(enter)
	require.Equal(h.t, app.RouteUsers, h.m.route)
	require.NotNil(h.t, h.m.dir.view)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestModel_StartsOnLoginWithoutSession(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.run(h.m.navigate(string(app.RouteUsers)))

	assert.Equal(t, app.RouteEntry, h.m.route)
	assert.Equal(t, client.DemoEmail, h.m.login.credentials().Email)
	assert.Equal(t, client.DemoPassword, h.m.login.credentials().Password)
	assert.Contains(t, h.m.View(), i18n.T("login.title"))
}

func TestModel_LoginLoadsFirstPage(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.login()

	page := h.m.dir.view.Page()
	assert.Equal(t, 1, page.Number)
	assert.Len(t, page.Items, 6)
	assert.True(t, h.notice().Empty())
	assert.Contains(t, h.m.View(), "george.bluth@reqres.in")
}

func TestModel_LoginFailureKeepsValues(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.run(h.m.navigate(string(app.RouteUsers)))

	h.press(tab)
	h.typeText("x")
	h.press(enter)

	assert.Equal(t, app.RouteEntry, h.m.route)
	assert.False(t, h.m.login.submitting)
	assert.Equal(t, client.DemoPassword+"x", h.m.login.credentials().Password)
	assert.Equal(t, notify.Error, h.notice().Kind)
	assert.Nil(t, h.m.dir.view)
}

func TestModel_PagingStopsAtBounds(t *testing.T) {
	var calls []int
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.login()
	mock := h.ctrl.Remote().(*client.MockClient)
	mock.Overwrites.ListUsers = func(ctx context.Context, page int) (model.Page, error) {
		calls = append(calls, page)
		return h.remote.ListUsers(ctx, page)
	}

	h.press(right)
	assert.Equal(t, 2, h.m.dir.view.Page().Number)
	h.press(right)
	h.press(left, left)

	assert.Equal(t, []int{2, 1}, calls)
	assert.Equal(t, 1, h.m.dir.view.Page().Number)
}

func TestModel_CursorClamped(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.login()

	for range 10 {
		h.press(down)
	}
	assert.Equal(t, 5, h.m.dir.cursor)
	h.press(runes("k"), runes("k"))
	assert.Equal(t, 3, h.m.dir.cursor)
}

func TestModel_AddUser(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.login()

	h.press(runes("a"))
	require.NotNil(t, h.m.dir.form)
	assert.Equal(t, model.DefaultAvatar, h.m.dir.form.fields().Avatar)

	h.typeText("Ada")
	h.press(tab)
	h.typeText("Lovelace")
	h.press(enter)

	assert.Nil(t, h.m.dir.form)
	first := h.m.dir.view.Page().Items[0]
	assert.Equal(t, "Ada", first.FirstName)
	assert.Equal(t, "Lovelace", first.LastName)
	assert.Equal(t, i18n.T("users.create_ok"), h.notice().Text)
}

func TestModel_FormCancel(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.login()

	h.press(runes("a"))
	h.typeText("q")
	h.press(esc)

	assert.Nil(t, h.m.dir.form)
	assert.False(t, h.quit)
	assert.Equal(t, 12, h.remote.Len())
}

func TestModel_EditSendsOnlyChangedFields(t *testing.T) {
	var got []model.UserUpdate
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.login()
	mock := h.ctrl.Remote().(*client.MockClient)
	mock.Overwrites.UpdateUser = func(ctx context.Context, id int, upd model.UserUpdate) (model.User, error) {
		got = append(got, upd)
		return h.remote.UpdateUser(ctx, id, upd)
	}

	// unchanged form closes without a call
	h.press(runes("e"), enter)
	assert.Nil(t, h.m.dir.form)
	assert.Empty(t, got)

	h.press(runes("e"), tab)
	h.typeText("s")
	h.press(enter)

	require.Len(t, got, 1)
	assert.Nil(t, got[0].FirstName)
	assert.Nil(t, got[0].Email)
	if assert.NotNil(t, got[0].LastName) {
		assert.Equal(t, "Bluths", *got[0].LastName)
	}
	assert.Equal(t, "Bluths", h.m.dir.view.Page().Items[0].LastName)
	assert.Equal(t, i18n.T("users.update_ok"), h.notice().Text)
}

func TestModel_DeleteNeedsConfirmation(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.login()

	h.press(runes("d"))
	require.NotNil(t, h.m.dir.confirm)
	assert.Contains(t, h.m.View(), "George Bluth")
	h.press(runes("n"))
	assert.Nil(t, h.m.dir.confirm)
	assert.Len(t, h.m.dir.view.Page().Items, 6)

	h.press(runes("d"), runes("y"))
	assert.Len(t, h.m.dir.view.Page().Items, 5)
	assert.Equal(t, -1, h.m.dir.view.Page().IndexOf(1))
	assert.Equal(t, i18n.T("users.delete_ok"), h.notice().Text)
}

func TestModel_DeleteFailureKeepsRow(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{
		DeleteUser: func(ctx context.Context, id int) error { return errors.New("boom") },
	})
	h.login()

	h.press(runes("d"), runes("y"))

	assert.Len(t, h.m.dir.view.Page().Items, 6)
	assert.Equal(t, notify.Error, h.notice().Kind)
	assert.Equal(t, i18n.T("users.delete_error"), h.notice().Text)
}

func TestModel_CopyEmail(t *testing.T) {
	var copied string
	prev := writeClipboard
	t.Cleanup(func() { writeClipboard = prev })
	writeClipboard = func(s string) error { copied = s; return nil }

	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.login()
	h.press(down, runes("y"))

	assert.Equal(t, "janet.weaver@reqres.in", copied)
	assert.Equal(t, notify.Success, h.notice().Kind)
	assert.Contains(t, h.notice().Text, copied)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	h.press(runes("y"))
	assert.Equal(t, i18n.T("tui.copy_error"), h.notice().Text)

	h.press(runes("x"))
	assert.True(t, h.notice().Empty())
}

func TestModel_Logout(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.login()
	v := h.m.dir.view

	h.press(runes("L"))

	assert.Equal(t, app.RouteEntry, h.m.route)
	assert.Nil(t, h.m.dir.view)
	assert.True(t, v.Closed())
	assert.False(t, h.ctrl.Session.Present(context.Background()))
}

func TestModel_StaleResultsIgnored(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.login()
	h.m.dir.cursor = 4

	_, cmd := h.m.Update(pageMsg{view: &app.View{}, err: errors.New("late")})
	assert.Nil(t, cmd)
	assert.Equal(t, 4, h.m.dir.cursor)
}

func TestModel_Quit(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.login()

	h.press(runes("q"))
	assert.True(t, h.quit)
}

func TestModel_QuitKeyTypesIntoForm(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.run(h.m.navigate(string(app.RouteUsers)))

	h.press(runes("q"))
	assert.False(t, h.quit)
	assert.True(t, strings.HasSuffix(h.m.login.credentials().Email, "q"))
}

func TestModel_WindowSize(t *testing.T) {
	h := newTUIHarness(t, client.MockClientOverwrites{})
	h.m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Equal(t, 80, h.m.size.Width)
	assert.Equal(t, 80, h.m.help.Width)
	assert.Len(t, strings.Split(h.m.View(), "\n"), 24)
}
