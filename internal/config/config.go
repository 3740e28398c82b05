// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the tracker server.
// It is populated by merging environment variables (optionally seeded from
// a .env file), command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the version string and log level.
	App App `envPrefix:"APP_"`

	// Auth holds token signing and password hashing settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the document store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file loaded before the
	// environment is parsed. Env: DOTENV.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level settings.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth holds settings of the auth provider.
type Auth struct {
	// TokenSignKey signs and verifies JWT tokens. Required.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor for password hashes.
	// Env: AUTH_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the document store database.
type DB struct {
	// DSN selects the backend by scheme: postgres:// or postgresql:// for
	// PostgreSQL, sqlite:// or file: for SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings of the inbound transports.
type Server struct {
	// HTTPAddress is the HTTP listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC health service listen address. Empty disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds every non-streaming request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// HeartbeatInterval is the keep-alive period of live subscription streams.
	// Env: SERVER_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`
}

// Workers holds background worker settings.
type Workers struct {
	// ChangeChannel is the PostgreSQL NOTIFY channel carrying the id of the
	// user whose records changed.
	// Env: WORKERS_CHANGE_CHANNEL
	ChangeChannel string `env:"CHANGE_CHANNEL"`

	// ListenerEnabled turns the PostgreSQL change listener on.
	// Env: WORKERS_LISTENER_ENABLED
	ListenerEnabled bool `env:"LISTENER_ENABLED"`
}

// DefaultChangeChannel is the NOTIFY channel used when none is configured.
const DefaultChangeChannel = "internships_changed"

func defaultStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "info",
		},
		Auth: Auth{
			TokenIssuer:   "internship-tracker",
			TokenDuration: 24 * time.Hour,
			BcryptCost:    10,
		},
		Server: Server{
			HTTPAddress:       "localhost:8080",
			RequestTimeout:    15 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			HeartbeatInterval: 20 * time.Second,
		},
		Workers: Workers{
			ChangeChannel: DefaultChangeChannel,
		},
	}
}

// GetStructuredConfig loads, merges and validates the server configuration.
// Sources in priority order (first non-zero value wins):
//  1. Environment variables (after loading the optional .env file)
//  2. Command-line flags from args
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder[StructuredConfig]().
		withDotEnv(dotEnvPath()).
		withEnv().
		withSource(func() (*StructuredConfig, error) { return ParseFlags(args) }).
		withJSON(func(c *StructuredConfig) string { return c.JSONFilePath }, parseJSON).
		withDefaults(defaultStructuredConfig()).
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
