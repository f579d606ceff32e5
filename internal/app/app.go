// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package app wires the session guard, the directory state and the
// notification slot into one controller used by both the CLI and the TUI.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/toeirei/roster/client"
	"github.com/toeirei/roster/internal/config"
	"github.com/toeirei/roster/internal/directory"
	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/internal/model"
	"github.com/toeirei/roster/internal/notify"
	"github.com/toeirei/roster/internal/session"
)

// ErrUnauthenticated is returned when the directory is opened without a
// session. The caller is expected to show the entry route instead.
var ErrUnauthenticated = errors.New("no session")

type Controller struct {
	Session *session.Session
	Guard   *session.Guard
	Notices *notify.Queue

	remote client.Client

	mu   sync.Mutex
	view *View
}

// New builds a controller from already constructed parts.
func New(remote client.Client, sess *session.Session, notices *notify.Queue) *Controller {
	return &Controller{
		Session: sess,
		Guard:   session.NewGuard(sess, remote, notices),
		Notices: notices,
		remote:  remote,
	}
}

// Build opens the configured session store and HTTP client.
func Build(ctx context.Context, cfg config.Config) (*Controller, error) {
	store, err := session.Open(ctx, cfg.Session.Store, cfg.Session.Path, cfg.Session.DSN)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	sess := session.New(store)

	remote, err := client.NewHTTPClient(client.Config{
		BaseURL:   cfg.API.BaseURL,
		APIKey:    cfg.API.Key,
		Timeout:   cfg.API.Timeout,
		SendToken: cfg.API.SendToken,
		RateLimit: cfg.API.RateLimit,
	}, client.WithTokenSource(sess))
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return New(remote, sess, notify.New(notify.WithDuration(cfg.Notify.Duration))), nil
}

// Remote exposes the client the controller talks to.
func (c *Controller) Remote() client.Client { return c.remote }

// Navigate returns the route actually shown for path: the directory needs a
// valid session, everything else resolves to the entry route.
func (c *Controller) Navigate(ctx context.Context, path string) Route {
	r := Resolve(path)
	if r == RouteUsers && c.Guard.Verify(ctx) != session.Valid {
		logging.Debugf("app: %s without session, redirecting", path)
		return RouteEntry
	}
	return r
}

// Login authenticates and returns the route to continue with.
func (c *Controller) Login(ctx context.Context, creds model.Credentials) (Route, error) {
	if _, err := c.Guard.Login(ctx, creds); err != nil {
		return RouteEntry, err
	}
	return RouteUsers, nil
}

// Logout closes the open view and clears the session.
func (c *Controller) Logout(ctx context.Context) (Route, error) {
	c.CloseView()
	if err := c.Guard.Logout(ctx); err != nil {
		return RouteUsers, err
	}
	return RouteEntry, nil
}

// OpenView verifies the session and opens a fresh directory view, closing
// the previous one. No page is fetched yet.
func (c *Controller) OpenView(ctx context.Context) (*View, error) {
	if c.Guard.Verify(ctx) != session.Valid {
		return nil, ErrUnauthenticated
	}
	vctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	cache := directory.NewCache()
	v := &View{
		ctx:    vctx,
		cancel: cancel,
		cache:  cache,
		Pager:  directory.NewPager(cache, c.remote, c.Notices),
		Users:  directory.NewCoordinator(cache, c.remote, c.Notices),
	}

	c.mu.Lock()
	prev := c.view
	c.view = v
	c.mu.Unlock()
	if prev != nil {
		prev.Close()
	}
	return v, nil
}

// CloseView closes the open view, if any.
func (c *Controller) CloseView() {
	c.mu.Lock()
	v := c.view
	c.view = nil
	c.mu.Unlock()
	if v != nil {
		v.Close()
	}
}

// Close releases every resource of the controller.
func (c *Controller) Close(ctx context.Context) error {
	c.CloseView()
	if c.Notices != nil {
		c.Notices.Close()
	}
	return errors.Join(c.remote.Close(ctx), c.Session.Close())
}
