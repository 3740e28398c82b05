package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
)

// Storages aggregates the server repositories and the handle they share.
type Storages struct {
	DB                   *DB
	UserRepository       UserRepository
	InternshipRepository InternshipRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.Storage.DB, cfg.Workers, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesOn(db, log), nil
}

// NewStoragesOn builds the repositories on an already migrated handle.
func NewStoragesOn(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		DB:                   db,
		UserRepository:       NewUserRepository(db, log),
		InternshipRepository: NewInternshipRepository(db, log),
	}
}

// Close releases the database handle.
func (s *Storages) Close() error {
	return s.DB.Close()
}
