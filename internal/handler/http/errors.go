// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when
	// the request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrStreamingUnsupported is returned when the response writer cannot
	// flush, so Server-Sent Events cannot be delivered.
	ErrStreamingUnsupported = errors.New("streaming unsupported")

	errInvalidJSON = errors.New("invalid JSON was passed")
)
