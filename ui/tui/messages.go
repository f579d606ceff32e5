// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/toeirei/roster/internal/app"
	"github.com/toeirei/roster/internal/model"
	"github.com/toeirei/roster/internal/notify"
)

// navigatedMsg reports the route the controller allowed.
type navigatedMsg struct {
	route app.Route
}

type loginResultMsg struct {
	route app.Route
	err   error
}

type viewOpenedMsg struct {
	view *app.View
	err  error
}

type pageMsg struct {
	view *app.View
	page model.Page
	err  error
}

type mutationMsg struct {
	view *app.View
	kind model.MutationKind
	user model.User
	err  error
}

type loggedOutMsg struct {
	err error
}

type noticeMsg struct {
	msg notify.Message
}

type clipboardMsg struct {
	email string
	err   error
}
