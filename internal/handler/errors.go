package handler

import "errors"

var errNoHandlersAreCreated = errors.New("handler: no HTTP or gRPC address configured")
