package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/handler"
	myGRPC "github.com/MKhiriev/internship-tracker/internal/handler/grpc"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/workers"
)

const healthCheckInterval = 10 * time.Second

// Server runs every configured transport together with the background
// workers.
type Server struct {
	transports []Transport
	health     *myGRPC.Handler
	workers    *workers.Workers

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

// NewServer builds the transports for the handlers that exist. bg may be nil.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, cfg config.Server, logger *logger.Logger) (*Server, error) {
	logger.Info().Msg("creating new server...")
	s := &Server{
		workers:         bg,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if handlers.HTTP != nil {
		s.transports = append(s.transports, newHTTPServer(handlers.HTTP.Init(), handlers.HTTP.CloseStreams, cfg, logger))
	}
	if handlers.GRPC != nil {
		s.transports = append(s.transports, newGRPCServer(handlers.GRPC, cfg, logger))
		s.health = handlers.GRPC
	}

	if len(s.transports) == 0 {
		return nil, errNoTransports
	}

	return s, nil
}

// RunServer runs until SIGINT, SIGTERM or SIGQUIT arrives, ctx is done or a
// component fails.
func (s *Server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return s.Run(ctx)
}

// Run starts every transport and worker and blocks until ctx is done or one
// of them fails. Transports are then shut down within the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.Name()).Msg("launching server")
		g.Go(func() error {
			if err := t.Serve(); err != nil {
				return fmt.Errorf("%s server: %w", t.Name(), err)
			}
			return nil
		})
	}

	if s.health != nil {
		g.Go(func() error {
			return s.health.WatchHealth(gctx, healthCheckInterval)
		})
	}

	if s.workers != nil && s.workers.Len() > 0 {
		g.Go(func() error {
			return s.workers.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown(context.WithoutCancel(gctx))
	})

	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *Server) shutdown(ctx context.Context) error {
	if s.shutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	var errs []error
	for _, t := range s.transports {
		if err := t.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s shutdown: %w", t.Name(), err))
		}
	}

	return errors.Join(errs...)
}
