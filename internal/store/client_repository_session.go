package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/models"
)

// sessionRepository keeps at most one session row (id = 1) in the
// client's local database.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] on the local db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	query, args, err := r.db.builder.Insert("sessions").
		Columns("id", "user_id", "email", "token", "created_at").
		Values(1, session.UserID, session.Email, session.Token, session.CreatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET user_id = excluded.user_id, email = excluded.email, token = excluded.token, created_at = excluded.created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// LoadSession returns [ErrNoSession] when nobody is signed in.
func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	query, args, err := r.db.builder.Select("user_id", "email", "token", "created_at").
		From("sessions").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.Session
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.UserID, &s.Email, &s.Token, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error loading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	query, args, err := r.db.builder.Delete("sessions").ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

type preferenceRepository struct {
	db *DB
}

// NewPreferenceRepository constructs a [PreferenceRepository] on the local db.
func NewPreferenceRepository(db *DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetPreference(ctx context.Context, key string) (string, bool, error) {
	query, args, err := r.db.builder.Select("value").From("preferences").Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (r *preferenceRepository) SetPreference(ctx context.Context, key, value string) error {
	query, args, err := r.db.builder.Insert("preferences").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ClientStorages aggregates the client's local repositories.
type ClientStorages struct {
	DB                   *DB
	SessionRepository    SessionRepository
	PreferenceRepository PreferenceRepository
}

// NewClientStorages opens and migrates the local database in dataDir.
func NewClientStorages(ctx context.Context, dataDir string, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectClientSQLite(ctx, dataDir, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying local migrations: %w", err)
	}

	return &ClientStorages{
		DB:                   db,
		SessionRepository:    NewSessionRepository(db, log),
		PreferenceRepository: NewPreferenceRepository(db),
	}, nil
}

// Close releases the local database handle.
func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
