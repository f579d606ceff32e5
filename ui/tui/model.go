// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/roster/internal/app"
	"github.com/toeirei/roster/internal/directory"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/internal/model"
	"github.com/toeirei/roster/internal/notify"
	"github.com/toeirei/roster/ui/tui/util"
)

// Model is the root bubbletea model. It owns the active route and forwards
// input to the login form or the directory screen.
type Model struct {
	ctx  context.Context
	ctrl *app.Controller

	route app.Route
	size  util.Size
	help  help.Model

	login loginForm
	dir   directoryScreen

	notices     <-chan notify.Message
	stopNotices func()
}

// New builds the root model. The notification subscription is released by
// Close.
func New(ctx context.Context, ctrl *app.Controller) *Model {
	ch, stop := ctrl.Notices.Subscribe()
	return &Model{
		ctx:         ctx,
		ctrl:        ctrl,
		route:       app.RouteEntry,
		help:        help.New(),
		login:       newLoginForm(),
		notices:     ch,
		stopNotices: stop,
	}
}

// Close stops the notification subscription and the open view.
func (m *Model) Close() {
	m.stopNotices()
	m.ctrl.CloseView()
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.navigate(string(app.RouteUsers)), waitNotice(m.notices))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, baseKeys.Exit) {
			return m, tea.Quit
		}
		if key.Matches(msg, baseKeys.Help) && !m.typing() {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		if m.route == app.RouteUsers {
			return m, m.dir.update(m, msg)
		}
		submit, cmd := m.login.update(msg)
		if submit {
			return m, m.submitLogin()
		}
		return m, cmd

	case navigatedMsg:
		return m, m.enter(msg.route)

	case loginResultMsg:
		m.login.submitting = false
		if msg.err != nil {
			return m, nil
		}
		return m, m.enter(msg.route)

	case viewOpenedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, app.ErrUnauthenticated) {
				m.showLogin()
			}
			return m, nil
		}
		m.dir = directoryScreen{view: msg.view}
		return m, pageCmd(msg.view, func() (model.Page, error) { return msg.view.Load(1) })

	case pageMsg, mutationMsg:
		m.settle(msg)
		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			logging.Warnf("tui: logout: %v", msg.err)
		}
		m.dir = directoryScreen{}
		m.showLogin()
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			logging.Debugf("tui: clipboard: %v", msg.err)
			m.ctrl.Notices.Show(i18n.T("tui.copy_error"), notify.Error)
		} else {
			m.ctrl.Notices.Show(i18n.T("tui.copied", msg.email), notify.Success)
		}
		return m, nil

	case noticeMsg:
		return m, waitNotice(m.notices)
	}

	if m.route == app.RouteEntry {
		_, cmd := m.login.update(msg)
		return m, cmd
	}
	return m, nil
}

// typing reports whether a text input currently has focus.
func (m *Model) typing() bool {
	return m.route == app.RouteEntry || m.dir.form != nil
}

// settle applies the outcome of a fetch or mutation issued by the current
// view. Results of a closed view are dropped.
func (m *Model) settle(msg tea.Msg) {
	var (
		v   *app.View
		err error
	)
	switch msg := msg.(type) {
	case pageMsg:
		v, err = msg.view, msg.err
	case mutationMsg:
		v, err = msg.view, msg.err
	}
	if v != m.dir.view || errors.Is(err, directory.ErrDiscarded) {
		return
	}
	if err != nil {
		logging.Debugf("tui: %v", err)
	}
	m.dir.clampCursor()
}

func (m *Model) enter(r app.Route) tea.Cmd {
	if r != app.RouteUsers {
		m.showLogin()
		return nil
	}
	m.route = app.RouteUsers
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		v, err := ctrl.OpenView(ctx)
		return viewOpenedMsg{view: v, err: err}
	}
}

func (m *Model) showLogin() {
	if m.route != app.RouteEntry {
		m.login = newLoginForm()
	}
	m.route = app.RouteEntry
}

func (m *Model) navigate(path string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return navigatedMsg{route: ctrl.Navigate(ctx, path)}
	}
}

func (m *Model) submitLogin() tea.Cmd {
	m.login.submitting = true
	ctx, ctrl, creds := m.ctx, m.ctrl, m.login.credentials()
	return func() tea.Msg {
		r, err := ctrl.Login(ctx, creds)
		return loginResultMsg{route: r, err: err}
	}
}

func (m *Model) logout() tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		_, err := ctrl.Logout(ctx)
		return loggedOutMsg{err: err}
	}
}

func waitNotice(ch <-chan notify.Message) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return noticeMsg{msg: msg}
	}
}

func (m *Model) View() string {
	var body string
	var keys help.KeyMap
	if m.route == app.RouteUsers {
		body = m.dir.render(m.size.Width)
		switch {
		case m.dir.form != nil:
			keys = formKeys
		case m.dir.confirm != nil:
			keys = confirmKeys
		default:
			keys = directoryKeys
		}
	} else {
		body = m.login.view()
		keys = formKeys
	}

	parts := []string{body}
	if bar := renderNotice(m.ctrl.Notices); bar != "" {
		parts = append(parts, bar)
	}
	footer := footerStyle.Render(m.help.View(util.MergeKeyMaps(keys, baseKeys)))
	parts = append(parts, footer)
	screen := lipgloss.JoinVertical(lipgloss.Left, parts...)

	if m.size.Height > 0 {
		screen = lipgloss.Place(m.size.Width, m.size.Height, lipgloss.Left, lipgloss.Top, screen)
	}
	if m.route == app.RouteUsers {
		screen = m.dir.overlay(screen)
	}
	return screen
}

func renderNotice(q *notify.Queue) string {
	msg, ok := q.Current()
	if !ok {
		return ""
	}
	if msg.Kind == notify.Error {
		return errorStyle.Render(msg.Text)
	}
	return successStyle.Render(msg.Text)
}
