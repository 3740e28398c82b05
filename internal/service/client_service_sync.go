// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/internship-tracker/internal/adapter"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/validators"
	"github.com/MKhiriev/internship-tracker/models"
)

// RecordSync is the client's view of a user's internship records: a live
// subscription plus the three mutations.
type RecordSync interface {
	Subscribe(ctx context.Context, userID string) (*Subscription, error)
	Create(ctx context.Context, userID string, fields models.InternshipFields) (string, error)
	Update(ctx context.Context, recordID string, fields models.InternshipFields) error
	Delete(ctx context.Context, recordID string) error
}

// InternshipSync implements [RecordSync] on a [adapter.DocumentStore].
//
// Writes are fire-and-forget requests: their effect becomes visible only
// through the next snapshot of a subscription. Nothing is retried.
type InternshipSync struct {
	store     adapter.DocumentStore
	validator validators.Validator
	now       func() time.Time

	logger *logger.Logger
}

// SyncOption configures an [InternshipSync].
type SyncOption func(*InternshipSync)

// WithClock replaces time.Now for the Created and Updated stamps.
func WithClock(now func() time.Time) SyncOption {
	return func(s *InternshipSync) {
		s.now = now
	}
}

func NewInternshipSync(store adapter.DocumentStore, logger *logger.Logger, opts ...SyncOption) *InternshipSync {
	s := &InternshipSync{
		store:     store,
		validator: validators.NewStructValidator(),
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe opens the live query for userID. The subscription stays open
// until Close is called or ctx is cancelled; a broken stream ends it and
// is reported by [Subscription.Err]. It is never reopened.
func (s *InternshipSync) Subscribe(ctx context.Context, userID string) (*Subscription, error) {
	if userID == "" {
		return nil, requiredField("userId")
	}

	ctx, cancel := context.WithCancel(ctx)

	stream, err := s.store.SubscribeInternships(ctx, models.OwnedBy(userID))
	if err != nil {
		cancel()
		return nil, &ServiceError{Op: "subscribe", Err: err}
	}

	sub := &Subscription{
		snapshots: make(chan models.RecordSet),
		stream:    stream,
		cancel:    cancel,
		done:      make(chan struct{}),
		logger:    s.logger,
	}
	stop := context.AfterFunc(ctx, func() { _ = stream.Close() })

	go func() {
		defer stop()
		sub.run(ctx)
	}()

	return sub, nil
}

// Create validates fields, stamps Created and inserts the record. The
// returned id is the server's; the record itself arrives with the next
// snapshot.
func (s *InternshipSync) Create(ctx context.Context, userID string, fields models.InternshipFields) (string, error) {
	if userID == "" {
		return "", requiredField("userId")
	}
	if err := s.validate(ctx, fields); err != nil {
		return "", err
	}

	id, err := s.store.InsertInternship(ctx, models.Internship{
		UserID:           userID,
		InternshipFields: fields,
		Created:          s.now().UTC(),
	})
	if err != nil {
		s.logger.Err(err).Str("func", "InternshipSync.Create").Str("user_id", userID).Msg("insert failed")
		return "", &ServiceError{Op: "create", Err: err}
	}

	return id, nil
}

// Update validates fields and overwrites every mutable field of recordID,
// stamping Updated. A record deleted in the meantime yields *NotFoundError.
func (s *InternshipSync) Update(ctx context.Context, recordID string, fields models.InternshipFields) error {
	if recordID == "" {
		return requiredField("id")
	}
	if err := s.validate(ctx, fields); err != nil {
		return err
	}

	updated := s.now().UTC()
	err := s.store.UpdateInternship(ctx, models.Internship{
		ID:               recordID,
		InternshipFields: fields,
		Updated:          &updated,
	})
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return &NotFoundError{ID: recordID}
	case err != nil:
		s.logger.Err(err).Str("func", "InternshipSync.Update").Str("id", recordID).Msg("update failed")
		return &ServiceError{Op: "update", Err: err}
	}

	return nil
}

// Delete removes recordID. Deleting a record that is already gone counts
// as success.
func (s *InternshipSync) Delete(ctx context.Context, recordID string) error {
	if recordID == "" {
		return requiredField("id")
	}

	err := s.store.DeleteInternship(ctx, recordID)
	switch {
	case errors.Is(err, adapter.ErrNotFound):
		s.logger.Debug().Str("func", "InternshipSync.Delete").Str("id", recordID).Msg("record already deleted")
		return nil
	case err != nil:
		s.logger.Err(err).Str("func", "InternshipSync.Delete").Str("id", recordID).Msg("delete failed")
		return &ServiceError{Op: "delete", Err: err}
	}

	return nil
}

func (s *InternshipSync) validate(ctx context.Context, fields models.InternshipFields) error {
	if err := s.validator.Validate(ctx, fields); err != nil {
		return newValidationError(err)
	}
	return nil
}

// Subscription is a live, ordered sequence of full record snapshots.
type Subscription struct {
	snapshots chan models.RecordSet
	stream    adapter.SnapshotStream
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once

	mu  sync.Mutex
	err error

	logger *logger.Logger
}

// Snapshots delivers each emission in order. Every value replaces the
// previous one entirely. The channel is closed when the subscription ends.
func (s *Subscription) Snapshots() <-chan models.RecordSet {
	return s.snapshots
}

// Err reports why the subscription ended. It is nil while the subscription
// is running and after a Close or a cancelled context.
func (s *Subscription) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close tears the live connection down and waits for the forwarding
// goroutine to exit. It is safe to call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		_ = s.stream.Close()
	})
	<-s.done
}

func (s *Subscription) run(ctx context.Context) {
	defer close(s.done)
	defer close(s.snapshots)

	for {
		set, err := s.stream.Next()
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Err(err).Str("func", "Subscription.run").Msg("live query ended")
				s.mu.Lock()
				s.err = &ServiceError{Op: "subscribe", Err: err}
				s.mu.Unlock()
			}
			return
		}

		select {
		case s.snapshots <- set:
		case <-ctx.Done():
			return
		}
	}
}
