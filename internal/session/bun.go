// Copyright (c) 2026 Roster Team
// Roster - user directory client
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/toeirei/roster/internal/logging"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// sessionName is the primary key of the single row Roster uses.
const sessionName = "default"

type sessionRow struct {
	bun.BaseModel `bun:"table:roster_sessions"`

	Name      string    `bun:"name,pk"`
	Token     string    `bun:"token,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// BunStore keeps the token in a one-row table of a SQL database.
type BunStore struct {
	db *bun.DB
}

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// OpenBunStore connects to dbType ("sqlite", "postgres" or "mysql") and
// creates the session table when missing.
func OpenBunStore(ctx context.Context, dbType, dsn string) (*BunStore, error) {
	driverName := dbType
	// pgx registers itself as "pgx"
	if dbType == KindPostgres {
		driverName = "pgx"
	}
	sqlDB, err := sqlOpenFunc(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// an in-memory sqlite database exists per connection
	if dbType == KindSqlite && (dsn == ":memory:" || dsn == "file::memory:") {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	s := &BunStore{db: createBunDB(sqlDB, dbType)}
	if err := s.migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logging.Debugf("session: %s store ready", dbType)
	return s, nil
}

func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case KindPostgres:
		return bun.NewDB(sqlDB, pgdialect.New())
	case KindMysql:
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

func (s *BunStore) migrate(ctx context.Context) error {
	_, err := s.db.NewCreateTable().
		Model((*sessionRow)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("create session table: %w", err)
	}
	return nil
}

func (s *BunStore) Load(ctx context.Context) (string, error) {
	var row sessionRow
	err := s.db.NewSelect().Model(&row).Where("name = ?", sessionName).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load session: %w", err)
	}
	return row.Token, nil
}

// Save replaces the stored row inside one transaction; delete+insert works
// the same on every dialect.
func (s *BunStore) Save(ctx context.Context, token string) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*sessionRow)(nil)).Where("name = ?", sessionName).Exec(ctx); err != nil {
			return fmt.Errorf("replace session: %w", err)
		}
		row := &sessionRow{Name: sessionName, Token: token, UpdatedAt: time.Now().UTC()}
		if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		return nil
	})
}

func (s *BunStore) Delete(ctx context.Context) error {
	if _, err := s.db.NewDelete().Model((*sessionRow)(nil)).Where("name = ?", sessionName).Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *BunStore) Close() error {
	return s.db.Close()
}
