package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/mock"
	"github.com/MKhiriev/internship-tracker/internal/store"
	"github.com/MKhiriev/internship-tracker/internal/validators"
	"github.com/MKhiriev/internship-tracker/models"
)

var serverNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestInternshipService(t *testing.T) (InternshipService, *mock.MockInternshipRepository, *recordingNotifier) {
	t.Helper()

	repo := mock.NewMockInternshipRepository(gomock.NewController(t))
	notifier := &recordingNotifier{}

	svc := NewInternshipService(repo, notifier, logger.Nop()).(*internshipService)
	svc.now = fixedClock(serverNow)

	return NewInternshipValidationService(validators.NewStructValidator()).Wrap(svc), repo, notifier
}

func TestInternshipService_Create(t *testing.T) {
	svc, repo, notifier := newTestInternshipService(t)

	repo.EXPECT().InsertInternship(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, rec models.Internship) (models.Internship, error) {
			assert.Equal(t, "u-1", rec.UserID)
			assert.Equal(t, serverNow, rec.Created, "missing Created is stamped")
			assert.Nil(t, rec.Updated)
			rec.ID = "rec-1"
			return rec, nil
		})

	got, err := svc.Create(testContext(), "u-1", models.Internship{
		InternshipFields: sampleFields("Acme", "2024-05-01", models.StatusApplied),
	})
	require.NoError(t, err)
	assert.Equal(t, "rec-1", got.ID)
	assert.Equal(t, []string{"u-1"}, notifier.calls())
}

func TestInternshipService_CreateKeepsClientCreated(t *testing.T) {
	svc, repo, _ := newTestInternshipService(t)
	clientStamp := serverNow.Add(-time.Minute)

	repo.EXPECT().InsertInternship(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, rec models.Internship) (models.Internship, error) {
			assert.Equal(t, clientStamp, rec.Created)
			return rec, nil
		})

	_, err := svc.Create(testContext(), "u-1", models.Internship{
		InternshipFields: sampleFields("Acme", "2024-05-01", models.StatusApplied),
		Created:          clientStamp,
	})
	require.NoError(t, err)
}

func TestInternshipService_CreateRejects(t *testing.T) {
	t.Run("invalid fields", func(t *testing.T) {
		svc, _, notifier := newTestInternshipService(t)

		_, err := svc.Create(testContext(), "u-1", models.Internship{
			InternshipFields: sampleFields("", "2024-05-01", models.StatusApplied),
		})
		assert.ErrorIs(t, err, validators.ErrInvalidInput)
		assert.Empty(t, notifier.calls())
	})

	t.Run("foreign owner", func(t *testing.T) {
		svc, _, _ := newTestInternshipService(t)

		_, err := svc.Create(testContext(), "u-1", models.Internship{
			UserID:           "u-2",
			InternshipFields: sampleFields("Acme", "2024-05-01", models.StatusApplied),
		})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestInternshipService_Update(t *testing.T) {
	svc, repo, notifier := newTestInternshipService(t)
	created := serverNow.Add(-time.Hour)

	repo.EXPECT().GetInternship(gomock.Any(), "rec-1").Return(models.Internship{
		ID: "rec-1", UserID: "u-1", Created: created,
		InternshipFields: sampleFields("Acme", "2024-05-01", models.StatusApplied),
	}, nil)
	repo.EXPECT().UpdateInternship(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, rec models.Internship) error {
			assert.Equal(t, "u-1", rec.UserID)
			assert.Equal(t, created, rec.Created, "created never changes")
			assert.Equal(t, models.StatusOffer, rec.Status)
			require.NotNil(t, rec.Updated)
			assert.Equal(t, serverNow, *rec.Updated)
			return nil
		})

	got, err := svc.Update(testContext(), "u-1", models.Internship{
		ID:               "rec-1",
		UserID:           "ignored",
		InternshipFields: sampleFields("Acme", "2024-05-01", models.StatusOffer),
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusOffer, got.Status)
	assert.Equal(t, []string{"u-1"}, notifier.calls())
}

func TestInternshipService_UpdateFailures(t *testing.T) {
	fields := sampleFields("Acme", "2024-05-01", models.StatusOffer)

	t.Run("missing record", func(t *testing.T) {
		svc, repo, notifier := newTestInternshipService(t)
		repo.EXPECT().GetInternship(gomock.Any(), "gone").Return(models.Internship{}, store.ErrInternshipNotFound)

		_, err := svc.Update(testContext(), "u-1", models.Internship{ID: "gone", InternshipFields: fields})
		assert.ErrorIs(t, err, store.ErrInternshipNotFound)
		assert.Empty(t, notifier.calls())
	})

	t.Run("foreign record", func(t *testing.T) {
		svc, repo, _ := newTestInternshipService(t)
		repo.EXPECT().GetInternship(gomock.Any(), "rec-1").Return(models.Internship{ID: "rec-1", UserID: "u-2"}, nil)

		_, err := svc.Update(testContext(), "u-1", models.Internship{ID: "rec-1", InternshipFields: fields})
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("deleted between read and write", func(t *testing.T) {
		svc, repo, _ := newTestInternshipService(t)
		repo.EXPECT().GetInternship(gomock.Any(), "rec-1").Return(models.Internship{ID: "rec-1", UserID: "u-1"}, nil)
		repo.EXPECT().UpdateInternship(gomock.Any(), gomock.Any()).Return(store.ErrInternshipNotFound)

		_, err := svc.Update(testContext(), "u-1", models.Internship{ID: "rec-1", InternshipFields: fields})
		assert.ErrorIs(t, err, store.ErrInternshipNotFound)
	})

	t.Run("missing id", func(t *testing.T) {
		svc, _, _ := newTestInternshipService(t)

		_, err := svc.Update(testContext(), "u-1", models.Internship{InternshipFields: fields})
		var fe *validators.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "id", fe.Field)
	})
}

func TestInternshipService_Delete(t *testing.T) {
	svc, repo, notifier := newTestInternshipService(t)

	gomock.InOrder(
		repo.EXPECT().GetInternship(gomock.Any(), "rec-1").Return(models.Internship{ID: "rec-1", UserID: "u-1"}, nil),
		repo.EXPECT().DeleteInternship(gomock.Any(), "u-1", "rec-1").Return(nil),
	)

	require.NoError(t, svc.Delete(testContext(), "u-1", "rec-1"))
	assert.Equal(t, []string{"u-1"}, notifier.calls())

	repo.EXPECT().GetInternship(gomock.Any(), "rec-1").Return(models.Internship{}, store.ErrInternshipNotFound)
	assert.ErrorIs(t, svc.Delete(testContext(), "u-1", "rec-1"), store.ErrInternshipNotFound)
}

func TestInternshipService_GetAndList(t *testing.T) {
	svc, repo, _ := newTestInternshipService(t)

	repo.EXPECT().ListInternships(gomock.Any(), "u-1").Return([]models.Internship{{ID: "a"}}, nil)
	list, err := svc.List(testContext(), "u-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	repo.EXPECT().GetInternship(gomock.Any(), "a").Return(models.Internship{ID: "a", UserID: "u-2"}, nil)
	_, err = svc.Get(testContext(), "u-1", "a")
	assert.ErrorIs(t, err, ErrForbidden)

	repo.EXPECT().GetInternship(gomock.Any(), "b").Return(models.Internship{}, errors.New("db down"))
	_, err = svc.Get(testContext(), "u-1", "b")
	assert.Error(t, err)
}
