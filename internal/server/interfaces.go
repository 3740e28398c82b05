package server

import "context"

// Transport is a network server managed by [Server].
//
// Serve blocks until the transport stops. It returns nil once Shutdown was
// requested. Shutdown stops accepting new work and waits for in-flight
// requests until ctx is done.
type Transport interface {
	Serve() error
	Shutdown(ctx context.Context) error
	Name() string
}
