package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/migrations"
)

// NewConnectSQLite opens (creating if needed) the SQLite database at dsn.
// dsn is a file path or a "file:" URI; foreign keys are always enabled.
func NewConnectSQLite(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := openSQLite(ctx, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newSQLiteDB(conn, migrations.SQLite, log), nil
}

// NewConnectClientSQLite opens the client's local database inside dataDir.
func NewConnectClientSQLite(ctx context.Context, dataDir string, log *logger.Logger) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}

	conn, err := openSQLite(ctx, filepath.Join(dataDir, "tracker.db"))
	if err != nil {
		log.Err(err).Str("func", "NewConnectClientSQLite").Msg("error connecting local database")
		return nil, err
	}

	return newSQLiteDB(conn, migrations.Client, log), nil
}

func openSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	if !strings.HasPrefix(dsn, "file:") {
		if dir := filepath.Dir(dsn); dir != "." {
			if err := os.MkdirAll(dir, 0o700); err != nil {
				return nil, fmt.Errorf("error creating database directory: %w", err)
			}
		}
	}

	conn, err := sql.Open("sqlite3", withForeignKeys(dsn))
	if err != nil {
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// SQLite allows a single writer; one connection also keeps shared
	// in-memory databases alive for the lifetime of the pool.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}

	return conn, nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func newSQLiteDB(conn *sql.DB, target migrations.Target, log *logger.Logger) *DB {
	return &DB{
		DB:         conn,
		driver:     config.DriverSQLite,
		builder:    sq.StatementBuilder.PlaceholderFormat(sq.Question),
		classifier: NewSQLiteErrorClassifier(),
		migrations: target,
		logger:     log,
	}
}
