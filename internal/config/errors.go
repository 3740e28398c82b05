package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty or unsupported DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates a missing token sign key or a
	// non-positive token duration.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidClientConfigs indicates a missing server address or data directory.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidThemeConfigs indicates a theme colour that is not a #rrggbb value.
	ErrInvalidThemeConfigs = errors.New("invalid theme configuration")
)
