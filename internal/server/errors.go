package server

import "errors"

// errNoTransports means the configuration enabled neither HTTP nor gRPC.
var errNoTransports = errors.New("server: no HTTP or gRPC address configured")
