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

// Coordinator performs mutations against the service and applies each one to
// the cached page only after the service confirmed it. Nothing is applied
// ahead of the response, so a failure leaves the page as it was.
//
// Mutations are neither retried nor serialized per id.
type Coordinator struct {
	cache    *Cache
	remote   client.Client
	notifier notify.Notifier
}

// NewCoordinator wires a coordinator. notifier may be nil.
func NewCoordinator(cache *Cache, remote client.Client, notifier notify.Notifier) *Coordinator {
	return &Coordinator{cache: cache, remote: remote, notifier: notifier}
}

// Create adds a user and prepends the server's record, id included, to the
// page. The page count is left as it was.
func (c *Coordinator) Create(ctx context.Context, fields model.UserFields) (model.User, error) {
	seq := c.cache.begin(model.PendingMutation{Kind: model.MutationCreate, Payload: fields})
	defer c.cache.end(seq)

	u, err := c.remote.CreateUser(ctx, fields)
	if discarded := ctx.Err(); discarded != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrDiscarded, discarded)
	}
	if err != nil {
		return model.User{}, c.fail("create user", "users.create_error", err)
	}
	c.cache.prepend(u)
	c.succeed("users.create_ok")
	logging.Infof("directory: created user %d", u.ID)
	return u, nil
}

// Update sends the present fields of upd and, once confirmed, applies the
// same fields to the cached item. The service's echo is not used for the
// cache. When the id is not on the displayed page the echo is returned.
func (c *Coordinator) Update(ctx context.Context, id int, upd model.UserUpdate) (model.User, error) {
	seq := c.cache.begin(model.PendingMutation{Kind: model.MutationUpdate, Target: id, Payload: upd})
	defer c.cache.end(seq)

	echo, err := c.remote.UpdateUser(ctx, id, upd)
	if discarded := ctx.Err(); discarded != nil {
		return model.User{}, fmt.Errorf("%w: %w", ErrDiscarded, discarded)
	}
	if err != nil {
		return model.User{}, c.fail(fmt.Sprintf("update user %d", id), "users.update_error", err)
	}
	u, ok := c.cache.update(id, upd)
	if !ok {
		logging.Debugf("directory: updated user %d is not on the displayed page", id)
		u = echo
		u.ID = id
	}
	c.succeed("users.update_ok")
	logging.Infof("directory: updated user %d", id)
	return u, nil
}

// Delete removes a user and, once confirmed, drops it from the page keeping
// the order of the others. The page is not refetched.
func (c *Coordinator) Delete(ctx context.Context, id int) error {
	seq := c.cache.begin(model.PendingMutation{Kind: model.MutationDelete, Target: id})
	defer c.cache.end(seq)

	err := c.remote.DeleteUser(ctx, id)
	if discarded := ctx.Err(); discarded != nil {
		return fmt.Errorf("%w: %w", ErrDiscarded, discarded)
	}
	if err != nil {
		return c.fail(fmt.Sprintf("delete user %d", id), "users.delete_error", err)
	}
	c.cache.remove(id)
	c.succeed("users.delete_ok")
	logging.Infof("directory: deleted user %d", id)
	return nil
}

// Pending lists mutations currently in flight.
func (c *Coordinator) Pending() []model.PendingMutation { return c.cache.Pending() }

func (c *Coordinator) fail(op, msgID string, err error) error {
	logging.Errorf("directory: %s: %v", op, err)
	nerr := &NetworkError{Op: op, Message: i18n.T(msgID), Err: err}
	if c.notifier != nil {
		c.notifier.Show(nerr.Message, notify.Error)
	}
	return nerr
}

func (c *Coordinator) succeed(msgID string) {
	if c.notifier != nil {
		c.notifier.Show(i18n.T(msgID), notify.Success)
	}
}
