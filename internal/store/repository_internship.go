package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/utils"
	"github.com/MKhiriev/internship-tracker/models"
)

// internshipRepository is the SQL implementation of [InternshipRepository].
// Every write runs in a transaction that also publishes a change
// notification when the backend supports it.
type internshipRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewInternshipRepository constructs an [InternshipRepository] on db.
func NewInternshipRepository(db *DB, logger *logger.Logger) InternshipRepository {
	logger.Debug().Msg("creating internship repository")
	return &internshipRepository{
		db:     db,
		logger: logger,
	}
}

func (r *internshipRepository) ListInternships(ctx context.Context, userID string) ([]models.Internship, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListInternshipsQuery(r.db.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "internshipRepository.ListInternships").
			Str("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Internship, 0, 16)
	for rows.Next() {
		rec, err := scanInternship(rows)
		if err != nil {
			log.Err(err).
				Str("func", "internshipRepository.ListInternships").
				Str("user_id", userID).
				Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *internshipRepository) GetInternship(ctx context.Context, id string) (models.Internship, error) {
	query, args, err := buildGetInternshipQuery(r.db.builder, id)
	if err != nil {
		return models.Internship{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := scanInternship(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Internship{}, ErrInternshipNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "internshipRepository.GetInternship").
			Str("id", id).
			Msg("failed to scan row")
		return models.Internship{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

// InsertInternship assigns an ID and, when missing, the Created timestamp.
func (r *internshipRepository) InsertInternship(ctx context.Context, rec models.Internship) (models.Internship, error) {
	log := logger.FromContext(ctx)

	rec.ID = utils.NewID()
	if rec.Created.IsZero() {
		rec.Created = time.Now().UTC()
	}

	query, args, err := buildInsertInternshipQuery(r.db.builder, rec)
	if err != nil {
		return models.Internship{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return r.db.notifyChange(ctx, tx, rec.UserID)
	})
	if err != nil {
		log.Err(err).
			Str("func", "internshipRepository.InsertInternship").
			Str("user_id", rec.UserID).
			Stringer("class", r.db.classifier.Classify(err)).
			Msg("failed to insert internship")
		return models.Internship{}, err
	}

	return rec, nil
}

func (r *internshipRepository) UpdateInternship(ctx context.Context, rec models.Internship) error {
	query, args, err := buildUpdateInternshipQuery(r.db.builder, rec)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "internshipRepository.UpdateInternship", rec.UserID, rec.ID, query, args)
}

func (r *internshipRepository) DeleteInternship(ctx context.Context, userID, id string) error {
	query, args, err := buildDeleteInternshipQuery(r.db.builder, userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "internshipRepository.DeleteInternship", userID, id, query, args)
}

// execAffectingOne runs a write that must touch exactly one row; zero rows
// means the record is gone and yields [ErrInternshipNotFound].
func (r *internshipRepository) execAffectingOne(ctx context.Context, fn, userID, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrInternshipNotFound
		}

		return r.db.notifyChange(ctx, tx, userID)
	})

	switch {
	case errors.Is(err, ErrInternshipNotFound):
		log.Debug().Str("func", fn).Str("id", id).Str("user_id", userID).Msg("internship not found")
	case err != nil:
		log.Err(err).Str("func", fn).Str("id", id).Str("user_id", userID).
			Stringer("class", r.db.classifier.Classify(err)).
			Msg("failed to write internship")
	}

	return err
}
