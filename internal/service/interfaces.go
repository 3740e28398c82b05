package service

import (
	"context"

	"github.com/MKhiriev/internship-tracker/models"
)

// AuthService registers users, checks credentials and issues tokens.
type AuthService interface {
	// Register validates reg, hashes the password and stores the account
	// together with its profile.
	Register(ctx context.Context, reg models.Registration) (models.User, error)
	// Login returns the user matching creds or [ErrInvalidCredentials].
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken returns [ErrTokenIsExpiredOrInvalid] for any token that
	// does not verify.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService serves the users collection.
type UserService interface {
	// GetUser returns the profile userID as seen by requesterID. Users may
	// only read their own profile.
	GetUser(ctx context.Context, requesterID, userID string) (models.User, error)
}

// InternshipService serves the internships collection of the
// authenticated user. Every method receives that user's id and refuses
// access to records owned by anybody else with [ErrForbidden].
type InternshipService interface {
	List(ctx context.Context, userID string) ([]models.Internship, error)
	Get(ctx context.Context, userID, id string) (models.Internship, error)
	// Create stores rec as a new record of userID and returns it with the
	// assigned id.
	Create(ctx context.Context, userID string, rec models.Internship) (models.Internship, error)
	// Update overwrites the mutable fields of the record rec.ID.
	Update(ctx context.Context, userID string, rec models.Internship) (models.Internship, error)
	Delete(ctx context.Context, userID, id string) error
}

// InternshipServiceWrapper decorates an InternshipService, e.g. with
// validation.
type InternshipServiceWrapper interface {
	Wrap(InternshipService) InternshipService
}

// ChangeNotifier is told after a user's records changed.
type ChangeNotifier interface {
	Notify(ctx context.Context, userID string)
	// NotifyAll refreshes every user with live subscribers, for when
	// changes may have been missed.
	NotifyAll(ctx context.Context)
}

// LiveFeed hands out live subscriptions to a user's record set.
type LiveFeed interface {
	ChangeNotifier
	Subscribe(ctx context.Context, userID string) (*FeedSubscription, error)
}

// HealthService reports whether the server can serve requests.
type HealthService interface {
	Check(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
