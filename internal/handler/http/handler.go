package http

import (
	"time"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration
	heartbeat      time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		heartbeat:      cfg.HeartbeatInterval,
		logger:         logger,
	}
}

// CloseStreams ends every open live subscription stream so a graceful
// shutdown does not wait on them.
func (h *Handler) CloseStreams() {
	h.logger.Info().Msg("closing live streams")
	h.services.Feed.Close()
}
