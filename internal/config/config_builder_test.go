package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder[StructuredConfig]().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder[StructuredConfig]().fail(assert.AnError)

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	cfg, err := newConfigBuilder[StructuredConfig]().
		with(&StructuredConfig{App: App{Version: "env"}}).
		with(&StructuredConfig{App: App{Version: "flags", LogLevel: "warn"}}).
		withDefaults(defaultStructuredConfig()).
		build()
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout, "defaults fill the gaps")
}

func TestBuild_WithSourceError(t *testing.T) {
	_, err := newConfigBuilder[StructuredConfig]().
		withSource(func() (*StructuredConfig, error) { return nil, errors.New("bad flag") }).
		build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad flag")
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_SkippedWithoutPath(t *testing.T) {
	called := false
	b := newConfigBuilder[StructuredConfig]().
		with(&StructuredConfig{}).
		withJSON(func(c *StructuredConfig) string { return c.JSONFilePath }, func(string) (*StructuredConfig, error) {
			called = true
			return nil, nil
		})

	assert.False(t, called)
	assert.NoError(t, b.err)
}

func TestWithJSON_UsesFirstPath(t *testing.T) {
	var got string
	newConfigBuilder[StructuredConfig]().
		with(&StructuredConfig{JSONFilePath: "from-env.json"}).
		with(&StructuredConfig{JSONFilePath: "from-flags.json"}).
		withJSON(func(c *StructuredConfig) string { return c.JSONFilePath }, func(p string) (*StructuredConfig, error) {
			got = p
			return &StructuredConfig{}, nil
		})

	assert.Equal(t, "from-env.json", got)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvFlagsJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"auth": {"token_sign_key": "from-json", "token_duration": "2h"},
		"server": {"grpc_address": "localhost:9090"}
	}`)

	t.Setenv("DOTENV", "")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "from-env")
	t.Setenv("CONFIG", path)

	cfg, err := GetStructuredConfig([]string{"-d", "sqlite://file.db", "-a", "127.0.0.1:9000"})
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Auth.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, "sqlite://file.db", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultChangeChannel, cfg.Workers.ChangeChannel)
}

func TestGetStructuredConfig_Invalid(t *testing.T) {
	t.Setenv("DOTENV", "")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "")
	t.Setenv("CONFIG", "")

	_, err := GetStructuredConfig([]string{"-d", "sqlite://file.db"})
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}
