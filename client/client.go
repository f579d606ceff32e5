// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.
package client

import (
	"context"

	"github.com/toeirei/roster/internal/model"
)

type Client interface {
	// --- Lifecycle ---

	// Close releases idle connections held by the client.
	Close(ctx context.Context) error

	// --- Authentication ---

	// Login submits credentials and returns the session token issued by the
	// service.
	Login(ctx context.Context, creds model.Credentials) (string, error)

	// --- Users ---

	ListUsers(ctx context.Context, page int) (model.Page, error)

	CreateUser(ctx context.Context, fields model.UserFields) (model.User, error)

	// UpdateUser submits only the fields present in update. The returned user
	// is the service echo and may be incomplete.
	UpdateUser(ctx context.Context, id int, update model.UserUpdate) (model.User, error)

	DeleteUser(ctx context.Context, id int) error
}

// TokenSource yields the current session token, or "" when logged out.
type TokenSource interface {
	Get(ctx context.Context) (string, error)
}
