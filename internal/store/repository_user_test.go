package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/models"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestUserRepository_CreateUser_Postgres(t *testing.T) {
	db, mock := newPostgresMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id,email,password_hash,first_name,last_name,created_at) VALUES ($1,$2,$3,$4,$5,$6)")).
		WithArgs(sqlmock.AnyArg(), "ada@example.com", "hash", "Ada", "Lovelace", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	user, err := repo.CreateUser(testContext(), models.User{
		Email: "ada@example.com", PasswordHash: "hash", FirstName: "Ada", LastName: "Lovelace",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{"unique violation", pgError(pgerrcode.UniqueViolation), ErrEmailAlreadyExists},
		{"other", errors.New("network down"), ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newPostgresMockDB(t)
			repo := NewUserRepository(db, logger.Nop())

			mock.ExpectExec("INSERT INTO users").WillReturnError(tt.dbErr)

			_, err := repo.CreateUser(testContext(), models.User{Email: "a@b.c"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserRepository_FindUserByEmail_Postgres(t *testing.T) {
	db, mock := newPostgresMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, first_name, last_name, created_at FROM users WHERE email = $1")).
		WithArgs("ada@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow("u-1", "ada@example.com", "hash", "Ada", "Lovelace", created))

	user, err := repo.FindUserByEmail(testContext(), "ada@example.com")
	require.NoError(t, err)

	assert.Equal(t, models.User{
		ID: "u-1", Email: "ada@example.com", PasswordHash: "hash",
		FirstName: "Ada", LastName: "Lovelace", CreatedAt: created,
	}, user)
}

func TestUserRepository_NotFound(t *testing.T) {
	db, mock := newPostgresMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.GetUser(testContext(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_SQLiteRoundTrip(t *testing.T) {
	db := newSQLiteTestDB(t)
	repo := NewUserRepository(db, logger.Nop())
	ctx := testContext()

	created, err := repo.CreateUser(ctx, models.User{
		Email: "grace@example.com", PasswordHash: "hash", FirstName: "Grace", LastName: "Hopper",
	})
	require.NoError(t, err)

	_, err = repo.CreateUser(ctx, models.User{Email: "grace@example.com", PasswordHash: "x", FirstName: "G", LastName: "H"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	got, err := repo.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.FirstName)
	assert.Equal(t, "grace@example.com", got.Email)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)
}
