// Package server wires and runs the tracker server's transports.
//
// It owns the lifecycle of the HTTP API, the gRPC health service and the
// background workers: all of them start together, the first failure or a
// stop signal brings every one of them down, and shutdown is bounded by
// the configured timeout.
package server
