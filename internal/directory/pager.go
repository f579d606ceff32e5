// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package directory

import (
	"context"
	"fmt"

	"github.com/toeirei/roster/client"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/internal/model"
	"github.com/toeirei/roster/internal/notify"
)

// Pager loads pages into a Cache.
//
// Fetches are not serialized: when two overlap, whichever resolves last
// determines the displayed page, and the first one to finish clears the
// loading flag.
type Pager struct {
	cache    *Cache
	remote   client.Client
	notifier notify.Notifier
}

// NewPager wires a pager. notifier may be nil.
func NewPager(cache *Cache, remote client.Client, notifier notify.Notifier) *Pager {
	return &Pager{cache: cache, remote: remote, notifier: notifier}
}

// FetchPage requests page n and, on success, replaces the displayed page with
// it. On failure the displayed page is kept and a *NetworkError is returned
// and reported. If ctx is done by the time the call returns the result is
// dropped and ErrDiscarded is returned.
func (p *Pager) FetchPage(ctx context.Context, n int) (model.Page, error) {
	if n < 1 {
		return model.Page{}, fmt.Errorf("%w: %d", ErrInvalidPage, n)
	}

	p.cache.setLoading(true)
	page, err := p.remote.ListUsers(ctx, n)
	if ctx.Err() != nil {
		p.cache.setLoading(false)
		logging.Debugf("directory: dropping page %d, view closed", n)
		return model.Page{}, fmt.Errorf("%w: %w", ErrDiscarded, ctx.Err())
	}
	if err != nil {
		p.cache.setLoading(false)
		logging.Errorf("directory: fetch page %d: %v", n, err)
		nerr := &NetworkError{Op: fmt.Sprintf("fetch page %d", n), Message: i18n.T("users.fetch_error"), Err: err}
		if p.notifier != nil {
			p.notifier.Show(nerr.Message, notify.Error)
		}
		return model.Page{}, nerr
	}

	p.cache.replace(page)
	logging.Debugf("directory: page %d of %d, %d items", page.Number, page.TotalPages, len(page.Items))
	return page.Clone(), nil
}

// Reload fetches the displayed page again.
func (p *Pager) Reload(ctx context.Context) (model.Page, error) {
	return p.FetchPage(ctx, p.cache.Page().Number)
}

// Next fetches the page after the displayed one. It fails with
// ErrInvalidPage, without a remote call, on the last page.
func (p *Pager) Next(ctx context.Context) (model.Page, error) {
	cur := p.cache.Page()
	if !cur.HasNext() {
		return model.Page{}, fmt.Errorf("%w: already on last page %d", ErrInvalidPage, cur.Number)
	}
	return p.FetchPage(ctx, cur.Number+1)
}

// Prev fetches the page before the displayed one. It fails with
// ErrInvalidPage, without a remote call, on the first page.
func (p *Pager) Prev(ctx context.Context) (model.Page, error) {
	cur := p.cache.Page()
	if !cur.HasPrev() {
		return model.Page{}, fmt.Errorf("%w: already on first page", ErrInvalidPage)
	}
	return p.FetchPage(ctx, cur.Number-1)
}

func (p *Pager) Page() model.Page { return p.cache.Page() }

func (p *Pager) Loading() bool { return p.cache.Loading() }
