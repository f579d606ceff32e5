// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package session owns the authentication token: where it is persisted, the
// Session object handed to every component that needs it, and the Guard
// deciding whether the directory may be entered.
package session

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/toeirei/roster/internal/config"
)

// Store persists the single session token. Load returns "" and no error when
// no token is stored.
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
	Close() error
}

// Store kinds accepted by Open.
const (
	KindMemory   = "memory"
	KindFile     = "file"
	KindSqlite   = "sqlite"
	KindPostgres = "postgres"
	KindMysql    = "mysql"
)

// Open returns the store selected by kind. path is used by the file and sqlite
// stores (a default under the user config directory when empty); dsn by
// postgres and mysql.
func Open(ctx context.Context, kind, path, dsn string) (Store, error) {
	switch kind {
	case "", KindFile:
		if path == "" {
			p, err := config.DefaultDataPath("session.yaml")
			if err != nil {
				return nil, err
			}
			path = p
		}
		return NewFileStore(path), nil
	case KindMemory:
		return NewMemoryStore(), nil
	case KindSqlite:
		if dsn == "" {
			dsn = path
		}
		if dsn == "" {
			p, err := config.DefaultDataPath("session.db")
			if err != nil {
				return nil, err
			}
			if err := ensureDir(filepath.Dir(p)); err != nil {
				return nil, err
			}
			dsn = p
		}
		return OpenBunStore(ctx, KindSqlite, dsn)
	case KindPostgres, KindMysql:
		if dsn == "" {
			return nil, fmt.Errorf("session store %q needs session.dsn", kind)
		}
		return OpenBunStore(ctx, kind, dsn)
	default:
		return nil, fmt.Errorf("unsupported session store %q", kind)
	}
}
