// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// validate checks the merged server configuration before startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.HeartbeatInterval <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if _, err := DriverFromDSN(cfg.Storage.DB.DSN); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration <= 0 || cfg.Auth.TokenIssuer == "" {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.DataDir == "" {
		return ErrInvalidClientConfigs
	}

	u, err := url.Parse(cfg.ServerAddress)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: server address must be an http(s) URL", ErrInvalidClientConfigs)
	}

	if cfg.Theme.Color != "" && !hexColorRe.MatchString(cfg.Theme.Color) {
		return ErrInvalidThemeConfigs
	}

	return nil
}

// Driver names the storage backend selected by a DSN.
type Driver string

const (
	DriverPostgres Driver = "postgres"
	DriverSQLite   Driver = "sqlite"
)

// DriverFromDSN picks the backend from the DSN scheme.
func DriverFromDSN(dsn string) (Driver, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(dsn, "sqlite://"), strings.HasPrefix(dsn, "file:"):
		return DriverSQLite, nil
	}
	return "", fmt.Errorf("unsupported DSN scheme in %q", redactDSN(dsn))
}

// SQLitePath strips the sqlite:// prefix so the DSN can be handed to the driver.
func SQLitePath(dsn string) string {
	return strings.TrimPrefix(dsn, "sqlite://")
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	return u.Redacted()
}
