// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/models"
)

// UI is the interactive front end started by the root command.
type UI interface {
	// Run blocks until the user quits or ctx is cancelled.
	Run(ctx context.Context) error
}

// UIFactory builds the UI once the services exist.
type UIFactory func(services *service.ClientServices, theme config.Theme, buildInfo models.AppBuildInfo, logger *logger.Logger) UI

// Bootstrap builds the client services for cfg. The returned cleanup
// releases local resources.
type Bootstrap func(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*service.ClientServices, func() error, error)
