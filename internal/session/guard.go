// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import (
	"context"
	"fmt"

	"github.com/toeirei/roster/client"
	"github.com/toeirei/roster/internal/i18n"
	"github.com/toeirei/roster/internal/logging"
	"github.com/toeirei/roster/internal/model"
	"github.com/toeirei/roster/internal/notify"
)

type Verdict int

const (
	Invalid Verdict = iota
	Valid
)

func (v Verdict) String() string {
	if v == Valid {
		return "valid"
	}
	return "invalid"
}

// AuthError is returned by Login. Message is the service's explanation or a
// generic fallback; it is what the user gets to see.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("login failed: %s: %v", e.Message, e.Err)
	}
	return "login failed: " + e.Message
}

func (e *AuthError) Unwrap() error { return e.Err }

// Guard decides whether the directory may be entered and performs login and
// logout.
type Guard struct {
	session  *Session
	remote   client.Client
	notifier notify.Notifier
}

// NewGuard wires a guard. notifier may be nil.
func NewGuard(s *Session, remote client.Client, notifier notify.Notifier) *Guard {
	return &Guard{session: s, remote: remote, notifier: notifier}
}

// Session returns the session the guard operates on.
func (g *Guard) Session() *Session { return g.session }

// Verify is Valid exactly when a non-empty token is stored.
func (g *Guard) Verify(ctx context.Context) Verdict {
	if g.session.Present(ctx) {
		return Valid
	}
	return Invalid
}

// Login exchanges creds for a token and stores it. On failure, including a
// token the store refused, nothing is stored and an *AuthError is returned and
// reported.
func (g *Guard) Login(ctx context.Context, creds model.Credentials) (string, error) {
	token, err := g.remote.Login(ctx, creds)
	if err != nil {
		msg := client.ErrorMessage(err)
		if msg == "" {
			msg = i18n.T("login.error_fallback")
		}
		logging.Warnf("login for %s failed: %v", creds.Email, err)
		g.report(msg)
		return "", &AuthError{Message: msg, Err: err}
	}
	if err := g.session.Set(ctx, token); err != nil {
		msg := i18n.T("login.store_error")
		logging.Errorf("storing session for %s failed: %v", creds.Email, err)
		g.report(msg)
		return "", &AuthError{Message: msg, Err: fmt.Errorf("store session: %w", err)}
	}
	logging.Infof("logged in as %s", creds.Email)
	return token, nil
}

// Logout clears the session. The service is not contacted.
func (g *Guard) Logout(ctx context.Context) error {
	if err := g.session.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	logging.Infof("logged out")
	return nil
}

func (g *Guard) report(msg string) {
	if g.notifier != nil {
		g.notifier.Show(msg, notify.Error)
	}
}
