package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/store"
	"github.com/MKhiriev/internship-tracker/models"
)

// internshipService applies ownership rules on top of the repository and
// tells the notifier about every committed write.
type internshipService struct {
	repo     store.InternshipRepository
	notifier ChangeNotifier
	now      func() time.Time

	logger *logger.Logger
}

func NewInternshipService(repo store.InternshipRepository, notifier ChangeNotifier, logger *logger.Logger) InternshipService {
	return &internshipService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
		logger:   logger,
	}
}

func (s *internshipService) List(ctx context.Context, userID string) ([]models.Internship, error) {
	return s.repo.ListInternships(ctx, userID)
}

func (s *internshipService) Get(ctx context.Context, userID, id string) (models.Internship, error) {
	return s.owned(ctx, userID, id)
}

// Create stores rec for userID. A user id in the payload must match the
// caller. Created keeps the client's stamp when present.
func (s *internshipService) Create(ctx context.Context, userID string, rec models.Internship) (models.Internship, error) {
	if rec.UserID != "" && rec.UserID != userID {
		logger.FromContext(ctx).Warn().
			Str("func", "internshipService.Create").
			Str("user_id", userID).
			Str("payload_user_id", rec.UserID).
			Msg("record for another user rejected")
		return models.Internship{}, ErrForbidden
	}

	rec.UserID = userID
	rec.Updated = nil
	if rec.Created.IsZero() {
		rec.Created = s.now().UTC()
	}

	created, err := s.repo.InsertInternship(ctx, rec)
	if err != nil {
		return models.Internship{}, fmt.Errorf("error creating internship: %w", err)
	}

	s.notifier.Notify(ctx, userID)
	return created, nil
}

// Update overwrites every mutable field of the stored record. ID, owner
// and Created never change.
func (s *internshipService) Update(ctx context.Context, userID string, rec models.Internship) (models.Internship, error) {
	current, err := s.owned(ctx, userID, rec.ID)
	if err != nil {
		return models.Internship{}, err
	}

	updated := rec.Updated
	if updated == nil || updated.IsZero() {
		now := s.now().UTC()
		updated = &now
	}

	current.InternshipFields = rec.InternshipFields
	current.Updated = updated

	if err = s.repo.UpdateInternship(ctx, current); err != nil {
		return models.Internship{}, fmt.Errorf("error updating internship: %w", err)
	}

	s.notifier.Notify(ctx, userID)
	return current, nil
}

func (s *internshipService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteInternship(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting internship: %w", err)
	}

	s.notifier.Notify(ctx, userID)
	return nil
}

// owned loads id and checks it belongs to userID.
func (s *internshipService) owned(ctx context.Context, userID, id string) (models.Internship, error) {
	rec, err := s.repo.GetInternship(ctx, id)
	if err != nil {
		return models.Internship{}, err
	}

	if rec.UserID != userID {
		logger.FromContext(ctx).Warn().
			Str("func", "internshipService.owned").
			Str("user_id", userID).
			Str("id", id).
			Msg("access to foreign record")
		return models.Internship{}, ErrForbidden
	}

	return rec, nil
}
