package handler

import (
	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/handler/grpc"
	"github.com/MKhiriev/internship-tracker/internal/handler/http"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
)

// Handlers holds one handler per configured transport. A nil field means
// the transport is disabled.
type Handlers struct {
	// HTTP serves the JSON API and the live internship stream.
	HTTP *http.Handler
	// GRPC serves the health service only.
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("handlers created")

	return handlers, nil
}
