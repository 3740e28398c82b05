package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/internship-tracker/internal/config"
	"github.com/MKhiriev/internship-tracker/internal/handler"
	"github.com/MKhiriev/internship-tracker/internal/logger"
	"github.com/MKhiriev/internship-tracker/internal/service"
	"github.com/MKhiriev/internship-tracker/internal/workers"
	"github.com/MKhiriev/internship-tracker/models"
)

type healthyStore struct{}

func (healthyStore) Check(context.Context) error { return nil }

type funcWorker func(ctx context.Context) error

func (f funcWorker) Run(ctx context.Context) error { return f(ctx) }
func (f funcWorker) Name() string                  { return "test-worker" }

// freeAddress reserves a loopback port and releases it for the server.
func freeAddress(t *testing.T) string {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

func newTestServices(t *testing.T) *service.Services {
	t.Helper()
	appInfo, err := service.NewAppInfoService(config.App{Version: "1.2.3"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	return &service.Services{
		AppInfoService: appInfo,
		HealthService:  healthyStore{},
		Feed:           service.NewInternshipFeed(nil, logger.Nop()),
	}
}

func newTestServer(t *testing.T, cfg config.Server, ws ...workers.Worker) *Server {
	t.Helper()
	handlers, err := handler.NewHandlers(newTestServices(t), cfg, logger.Nop())
	require.NoError(t, err)

	bg, err := workers.NewWorkers(&config.StructuredConfig{}, nil, logger.Nop())
	require.NoError(t, err)
	for _, w := range ws {
		bg.Add(w)
	}

	srv, err := NewServer(handlers, bg, cfg, logger.Nop())
	require.NoError(t, err)
	return srv
}

func TestNewServer_NoTransports(t *testing.T) {
	srv, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoTransports)
	assert.Nil(t, srv)
}

func TestServer_RunServesBothTransports(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:     freeAddress(t),
		GRPCAddress:     freeAddress(t),
		RequestTimeout:  time.Second,
		ShutdownTimeout: time.Second,
	}
	srv := newTestServer(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.HTTPAddress + "/api/version")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) != ""
	}, 2*time.Second, 20*time.Millisecond)

	conn, err := grpc.NewClient(cfg.GRPCAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()
	client := healthpb.NewHealthClient(conn)

	require.Eventually(t, func() bool {
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{})
		return err == nil && resp.GetStatus() == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_WorkerFailureStopsServer(t *testing.T) {
	boom := errors.New("listener gave up")
	cfg := config.Server{HTTPAddress: freeAddress(t), ShutdownTimeout: time.Second}
	srv := newTestServer(t, cfg, funcWorker(func(context.Context) error { return boom }))

	err := srv.Run(context.Background())

	require.ErrorIs(t, err, boom)
}

func TestServer_AddressInUse(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()

	cfg := config.Server{HTTPAddress: lis.Addr().String(), ShutdownTimeout: time.Second}
	srv := newTestServer(t, cfg)

	err = srv.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server")
}

func TestHTTPServer_ShutdownRunsHook(t *testing.T) {
	var hooked atomic.Bool
	h := newHTTPServer(http.NotFoundHandler(), func() { hooked.Store(true) }, config.Server{}, logger.Nop())

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- h.serve(lis) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + lis.Addr().String())
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, h.Shutdown(context.Background()))
	assert.NoError(t, <-done)
	assert.Eventually(t, hooked.Load, time.Second, 5*time.Millisecond)
}
