package service

import (
	"context"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/models"
)

type appInfoService struct {
	build models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports the configured version together with the
// date and commit the binary was built from. The configured version wins
// over the one baked in at build time.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	info := models.NewAppBuildInfo(cfg.Version, build.Date, build.Commit)
	logger.Debug().
		Str("func", "NewAppInfoService").
		Str("version", info.Version).
		Str("commit", info.Commit).
		Msg("app info ready")

	return &appInfoService{build: info, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.build.Version
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.build
}
