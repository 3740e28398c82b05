// Package grpc exposes the standard gRPC health service of the tracker
// server. Its status follows the reachability of the document store.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "tracker.DocumentStore"

// Handler is the root gRPC transport handler.
//
// It owns a [health.Server] whose status is refreshed from
// [service.HealthService] by [Handler.WatchHealth].
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health status starts as
// NOT_SERVING until the first successful check.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// WatchHealth checks storage every interval until ctx is done, then marks
// every service as NOT_SERVING.
func (h *Handler) WatchHealth(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		h.Refresh(ctx)

		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return nil
		case <-ticker.C:
		}
	}
}

// Refresh runs one health check and publishes the result.
func (h *Handler) Refresh(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.services.HealthService.Check(ctx); err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.setStatus(status)
}

// Shutdown marks every service as NOT_SERVING.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
