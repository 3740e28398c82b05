package service

import (
	"context"

	"github.com/MKhiriev/internship-tracker/internal/logger"
)

// Pinger reports whether a backend is reachable, e.g. *store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthService struct {
	pinger Pinger
	logger *logger.Logger
}

func NewHealthService(pinger Pinger, logger *logger.Logger) HealthService {
	return &healthService{pinger: pinger, logger: logger}
}

// Check pings the document store.
func (h *healthService) Check(ctx context.Context) error {
	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Err(err).Str("func", "healthService.Check").Msg("storage is not reachable")
		return err
	}
	return nil
}
