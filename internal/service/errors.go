package service

import "errors"

var (
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrForbidden               = errors.New("access to another user's data")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrFeedClosed              = errors.New("live feed is closed")
)

// Client side.
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrNotSignedIn            = errors.New("not signed in")
	ErrSessionExpired         = errors.New("session expired")
)
