package server

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/internship-tracker/internal/config"
	myGRPC "github.com/MKhiriev/internship-tracker/internal/handler/grpc"
	"github.com/MKhiriev/internship-tracker/internal/logger"
)

type grpcServer struct {
	address string
	handler *myGRPC.Handler
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		address: cfg.GRPCAddress,
		handler: handler,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) Name() string {
	return "grpc"
}

func (g *grpcServer) Serve() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}
	return g.serve(lis)
}

func (g *grpcServer) serve(lis net.Listener) error {
	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// Shutdown reports NOT_SERVING first so health checks see the server
// leave before its connections do. GracefulStop is abandoned for Stop
// when ctx ends.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
