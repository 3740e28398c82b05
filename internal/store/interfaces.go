package store

import (
	"context"

	"github.com/MKhiriev/internship-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists the users collection.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the user with the given email, hash included.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// GetUser returns the user document by id.
	GetUser(ctx context.Context, userID string) (models.User, error)
}

// InternshipRepository persists the internships collection.
type InternshipRepository interface {
	// ListInternships returns every record of userID in insertion order.
	ListInternships(ctx context.Context, userID string) ([]models.Internship, error)
	GetInternship(ctx context.Context, id string) (models.Internship, error)
	// InsertInternship stores rec and returns it with ID assigned.
	InsertInternship(ctx context.Context, rec models.Internship) (models.Internship, error)
	// UpdateInternship overwrites the mutable fields and Updated of the
	// record with rec.ID owned by rec.UserID.
	UpdateInternship(ctx context.Context, rec models.Internship) error
	DeleteInternship(ctx context.Context, userID, id string) error
}

// SessionRepository persists the client's sign-in state.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}

// PreferenceRepository persists small client preferences such as the theme.
type PreferenceRepository interface {
	GetPreference(ctx context.Context, key string) (string, bool, error)
	SetPreference(ctx context.Context, key, value string) error
}
