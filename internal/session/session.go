// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import (
	"context"

	"github.com/toeirei/roster/client"
)

// Session is the authentication state shared by every component that needs
// it. Any non-empty token counts as authenticated; tokens are never checked
// against the service.
type Session struct {
	store Store
}

// *Session can feed the bearer header of the HTTP client.
var _ client.TokenSource = (*Session)(nil)

func New(store Store) *Session {
	return &Session{store: store}
}

// Get returns the stored token, or "" when there is none.
func (s *Session) Get(ctx context.Context) (string, error) {
	return s.store.Load(ctx)
}

func (s *Session) Set(ctx context.Context, token string) error {
	if token == "" {
		return s.store.Delete(ctx)
	}
	return s.store.Save(ctx, token)
}

func (s *Session) Clear(ctx context.Context) error {
	return s.store.Delete(ctx)
}

// Present reports whether a token is stored. A store that cannot be read is
// treated as holding none.
func (s *Session) Present(ctx context.Context) bool {
	token, err := s.store.Load(ctx)
	return err == nil && token != ""
}

// Close releases the underlying store.
func (s *Session) Close() error {
	return s.store.Close()
}
