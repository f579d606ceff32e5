// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package directory is the client-side state of the user directory: the one
// page currently displayed, the Pager that replaces it and the Coordinator
// that applies confirmed mutations to it.
package directory

import (
	"slices"
	"sync"

	"github.com/toeirei/roster/internal/model"
)

// Cache holds the displayed page. Pager and Coordinator of one view share a
// Cache; readers always get copies.
type Cache struct {
	mu      sync.RWMutex
	page    model.Page
	loading bool
	seq     uint64
	pending map[uint64]model.PendingMutation
}

func NewCache() *Cache {
	return &Cache{
		page:    model.EmptyPage(),
		pending: map[uint64]model.PendingMutation{},
	}
}

// Page returns a copy of the displayed page.
func (c *Cache) Page() model.Page {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.page.Clone()
}

func (c *Cache) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Pending lists the mutations currently in flight, oldest first.
func (c *Cache) Pending() []model.PendingMutation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]uint64, 0, len(c.pending))
	for k := range c.pending {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]model.PendingMutation, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.pending[k])
	}
	return out
}

func (c *Cache) setLoading(v bool) {
	c.mu.Lock()
	c.loading = v
	c.mu.Unlock()
}

// replace swaps in p and clears the loading flag.
func (c *Cache) replace(p model.Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = p.Clone()
	c.loading = false
}

func (c *Cache) prepend(u model.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page.Items = slices.Insert(slices.Clone(c.page.Items), 0, u)
}

// update applies upd to the item with id and returns the result.
func (c *Cache) update(id int, upd model.UserUpdate) (model.User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.page.IndexOf(id)
	if i < 0 {
		return model.User{}, false
	}
	items := slices.Clone(c.page.Items)
	items[i] = upd.Apply(items[i])
	c.page.Items = items
	return items[i], true
}

func (c *Cache) remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.page.IndexOf(id)
	if i < 0 {
		return false
	}
	c.page.Items = slices.Delete(slices.Clone(c.page.Items), i, i+1)
	return true
}

func (c *Cache) begin(m model.PendingMutation) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.pending[c.seq] = m
	return c.seq
}

func (c *Cache) end(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, seq)
}
