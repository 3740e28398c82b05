package service

import (
	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/store"
	"github.com/MKhiriev/internship-tracker/internal/validators"
	"github.com/MKhiriev/internship-tracker/models"
)

// Services aggregates the server services.
type Services struct {
	AuthService       AuthService
	UserService       UserService
	InternshipService InternshipService
	Feed              *InternshipFeed
	AppInfoService    AppInfoService
	HealthService     HealthService
}

// Option customizes [NewServices].
type Option func(*options)

type options struct {
	build models.AppBuildInfo
}

// WithBuildInfo passes the build metadata reported by /api/version.
func WithBuildInfo(build models.AppBuildInfo) Option {
	return func(o *options) { o.build = build }
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger, opts ...Option) (*Services, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	validator := validators.NewStructValidator()
	feed := NewInternshipFeed(storages.InternshipRepository, logger)

	appInfo, err := NewAppInfoService(cfg.App, o.build, logger)
	if err != nil {
		return nil, err
	}

	internships := NewInternshipValidationService(validator).
		Wrap(NewInternshipService(storages.InternshipRepository, feed, logger))

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, validator, cfg.Auth, logger),
		UserService:       NewUserService(storages.UserRepository, logger),
		InternshipService: internships,
		Feed:              feed,
		AppInfoService:    appInfo,
		HealthService:     NewHealthService(storages.DB, logger),
	}, nil
}
