// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package app

import (
	"context"
	"sync"

	"github.com/toeirei/roster/internal/directory"
	"github.com/toeirei/roster/internal/model"
)

// View is one open directory screen. Every call it issues runs under the
// view's context; once the view is closed, calls still in flight are
// abandoned and their results are not applied.
type View struct {
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once

	cache *directory.Cache
	Pager *directory.Pager
	Users *directory.Coordinator
}

// Context is cancelled when the view closes.
func (v *View) Context() context.Context { return v.ctx }

// Close abandons pending calls. It is safe to call more than once.
func (v *View) Close() {
	v.once.Do(v.cancel)
}

func (v *View) Closed() bool { return v.ctx.Err() != nil }

// Load fetches page n.
func (v *View) Load(n int) (model.Page, error) {
	return v.Pager.FetchPage(v.ctx, n)
}

func (v *View) Next() (model.Page, error) { return v.Pager.Next(v.ctx) }

func (v *View) Prev() (model.Page, error) { return v.Pager.Prev(v.ctx) }

// Reload fetches the displayed page again.
func (v *View) Reload() (model.Page, error) { return v.Pager.Reload(v.ctx) }

func (v *View) Create(fields model.UserFields) (model.User, error) {
	return v.Users.Create(v.ctx, fields)
}

func (v *View) Update(id int, upd model.UserUpdate) (model.User, error) {
	return v.Users.Update(v.ctx, id, upd)
}

func (v *View) Delete(id int) error {
	return v.Users.Delete(v.ctx, id)
}

// Page returns the displayed page.
func (v *View) Page() model.Page { return v.cache.Page() }

func (v *View) Loading() bool { return v.cache.Loading() }

func (v *View) Pending() []model.PendingMutation { return v.cache.Pending() }
