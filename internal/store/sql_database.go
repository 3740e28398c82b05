package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/migrations"
)

// DB is a database handle together with the dialect-specific pieces the
// repositories need: a squirrel builder with the right placeholder format,
// an error classifier and the migration set.
type DB struct {
	*sql.DB
	driver     config.Driver
	builder    sq.StatementBuilderType
	classifier ErrorClassifier
	migrations migrations.Target
	// notifyChannel is the PostgreSQL NOTIFY channel written to after each
	// committed change. Empty disables notifications.
	notifyChannel string
	logger        *logger.Logger
}

// NewConnectDB opens the database selected by the DSN scheme.
func NewConnectDB(ctx context.Context, cfg config.DB, workers config.Workers, log *logger.Logger) (*DB, error) {
	driver, err := config.DriverFromDSN(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDriver, err)
	}

	switch driver {
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DSN, log)
		if err != nil {
			return nil, err
		}
		db.notifyChannel = workers.ChangeChannel
		return db, nil
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, config.SQLitePath(cfg.DSN), log)
	}

	return nil, ErrUnsupportedDriver
}

// Driver reports the backend of db.
func (db *DB) Driver() config.Driver {
	return db.driver
}

// Migrate applies the schema migrations matching the backend.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.migrations)
}

// withTx runs fn inside a transaction, committing when fn returns nil.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// notifyChange publishes userID on the change channel inside tx, so the
// notification is delivered only if the transaction commits.
func (db *DB) notifyChange(ctx context.Context, tx *sql.Tx, userID string) error {
	if db.notifyChannel == "" || db.driver != config.DriverPostgres {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, db.notifyChannel, userID); err != nil {
		return fmt.Errorf("%w: %w", ErrNotifying, err)
	}

	return nil
}
