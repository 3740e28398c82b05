package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ClientConfig configures the tracker client (CLI and TUI).
type ClientConfig struct {
	// ServerAddress is the base URL of the tracker server.
	// Env: TRACKER_SERVER_ADDRESS
	ServerAddress string `env:"SERVER_ADDRESS" json:"server_address"`

	// RequestTimeout bounds every non-streaming request.
	// Env: TRACKER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"-"`

	// DataDir holds the local session database and the log file.
	// Env: TRACKER_DATA_DIR
	DataDir string `env:"DATA_DIR" json:"data_dir"`

	// LogLevel is a zerolog level name.
	// Env: TRACKER_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" json:"log_level"`

	// Theme is the initial dashboard theme; the last choice made in the
	// dashboard is persisted and takes precedence.
	Theme Theme `envPrefix:"THEME_" json:"theme"`

	// JSONFilePath is the optional client JSON config.
	// Env: TRACKER_CONFIG
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Theme is the accent colour and dark mode flag of the dashboard.
type Theme struct {
	// Color is a #rrggbb accent colour.
	// Env: TRACKER_THEME_COLOR
	Color string `env:"COLOR" json:"color"`

	// Dark selects the dark palette.
	// Env: TRACKER_THEME_DARK
	Dark bool `env:"DARK" json:"dark"`
}

// clientEnvPrefix namespaces client variables so they never clash with
// the server's.
const clientEnvPrefix = "TRACKER_"

func defaultClientConfig() *ClientConfig {
	dataDir := ".internship-tracker"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".internship-tracker")
	}

	return &ClientConfig{
		ServerAddress:  "http://localhost:8080",
		RequestTimeout: 10 * time.Second,
		DataDir:        dataDir,
		LogLevel:       "info",
		Theme:          Theme{Color: "#6fcffb"},
	}
}

// GetClientConfig loads the client configuration. Sources in priority order:
//  1. overrides (command-line flags)
//  2. TRACKER_* environment variables (after the optional .env file)
//  3. the JSON file named by overrides or TRACKER_CONFIG
//  4. defaults
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder[ClientConfig]().
		withDotEnv(dotEnvPath()).
		with(&overrides).
		withSource(parseClientEnv).
		withJSON(func(c *ClientConfig) string { return c.JSONFilePath }, parseClientJSON).
		withDefaults(defaultClientConfig()).
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func parseClientEnv() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnvWithPrefix(cfg, clientEnvPrefix); err != nil {
		return nil, err
	}
	return cfg, nil
}

type clientJSONConfig struct {
	ClientConfig
	RequestTimeout Duration `json:"request_timeout"`
}

func parseClientJSON(path string) (*ClientConfig, error) {
	var jsonCfg clientJSONConfig
	if err := decodeJSONFile(path, &jsonCfg); err != nil {
		return nil, err
	}

	cfg := jsonCfg.ClientConfig
	cfg.RequestTimeout = time.Duration(jsonCfg.RequestTimeout)
	return &cfg, nil
}

// String is used by the CLI "config" output.
func (cfg *ClientConfig) String() string {
	return fmt.Sprintf("server=%s data_dir=%s timeout=%s theme=%s dark=%v",
		cfg.ServerAddress, cfg.DataDir, cfg.RequestTimeout, cfg.Theme.Color, cfg.Theme.Dark)
}
