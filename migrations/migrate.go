// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose migrations of the server (one set per
// SQL dialect) and of the client's local database.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql client/*.sql
var embedMigrations embed.FS

// Target is a set of migrations and the goose dialect they are written for.
type Target struct {
	Dir     string
	Dialect string
}

var (
	// Postgres is the server schema for PostgreSQL.
	Postgres = Target{Dir: "postgres", Dialect: "pgx"}
	// SQLite is the server schema for SQLite.
	SQLite = Target{Dir: "sqlite", Dialect: "sqlite3"}
	// Client is the client's local session database.
	Client = Target{Dir: "client", Dialect: "sqlite3"}
)

// ErrNilDB is returned when Migrate is called without a database.
var ErrNilDB = errors.New("migration error: db is nil")

// goose keeps the dialect and base FS in package globals.
var gooseMu sync.Mutex

// Migrate applies every pending migration of target to db.
func Migrate(ctx context.Context, db *sql.DB, target Target) error {
	if db == nil {
		return ErrNilDB
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(target.Dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, target.Dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
