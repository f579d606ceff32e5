// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package directory

import (
	"sync"

	"github.com/toeirei/roster/client"
	"github.com/toeirei/roster/internal/model"
	"github.com/toeirei/roster/internal/notify"
)

type shown struct {
	Text string
	Kind notify.Kind
}

type recordingNotifier struct {
	mu  sync.Mutex
	all []shown
}

func (r *recordingNotifier) Show(text string, kind notify.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.all = append(r.all, shown{text, kind})
}

func (r *recordingNotifier) messages() []shown {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]shown(nil), r.all...)
}

type fixture struct {
	remote *client.MemoryClient
	mock   *client.MockClient
	cache  *Cache
	pager  *Pager
	coord  *Coordinator
	notes  *recordingNotifier
}

// newFixture seeds the twelve sample users, six per page, behind a mock so
// individual tests can override single calls.
func newFixture(overwrites client.MockClientOverwrites) *fixture {
	remote := client.NewMemoryClient(client.WithSampleData())
	mock := client.NewMockClient(remote, overwrites)
	cache := NewCache()
	notes := &recordingNotifier{}
	return &fixture{
		remote: remote,
		mock:   mock,
		cache:  cache,
		pager:  NewPager(cache, mock, notes),
		coord:  NewCoordinator(cache, mock, notes),
		notes:  notes,
	}
}

func ids(p model.Page) []int {
	out := make([]int, 0, len(p.Items))
	for _, u := range p.Items {
		out = append(out, u.ID)
	}
	return out
}
