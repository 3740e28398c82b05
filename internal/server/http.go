package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/logger"
)

const readHeaderTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer serves handler on cfg.HTTPAddress. onShutdown runs as soon
// as shutdown begins, before idle connections are drained.
func newHTTPServer(handler http.Handler, onShutdown func(), cfg config.Server, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	if onShutdown != nil {
		srv.RegisterOnShutdown(onShutdown)
	}

	return &httpServer{server: srv, logger: logger}
}

func (h *httpServer) Name() string {
	return "http"
}

func (h *httpServer) Serve() error {
	lis, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return err
	}
	return h.serve(lis)
}

func (h *httpServer) serve(lis net.Listener) error {
	h.logger.Info().Str("address", lis.Addr().String()).Msg("HTTP server listening")

	if err := h.server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	return h.server.Shutdown(ctx)
}
