package store

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/migrations"
)

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

// newSQLiteTestDB returns a migrated in-memory server database private to t.
func newSQLiteTestDB(t *testing.T) *DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn, err := openSQLite(context.Background(), "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)

	db := newSQLiteDB(conn, migrations.SQLite, logger.Nop())
	require.NoError(t, db.Migrate(context.Background()))
	t.Cleanup(func() { db.Close() })

	return db
}

// newPostgresMockDB returns a postgres-flavoured DB backed by sqlmock.
func newPostgresMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newPostgresDB(conn, logger.Nop()), mock
}

func mustExec(t *testing.T, db *sql.DB, query string, args ...any) {
	t.Helper()
	_, err := db.Exec(query, args...)
	require.NoError(t, err)
}
