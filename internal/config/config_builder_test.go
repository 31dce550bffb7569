package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

const testSecret = "0123456789abcdef0123456789abcdef"

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns defaults plus the two values that have no default.
func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Auth.SessionSecret = testSecret
	cfg.Storage.DB.DSN = "postgres://localhost/site"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty merge fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies the precedence rule: the first
// source that sets a field decides its value.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "from-env"}},
		&StructuredConfig{App: App{Version: "from-flags", LogLevel: "debug"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_MissingFileIsIgnored verifies that no .env file is fine.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

// TestWithDotEnv_DoesNotOverrideProcessEnv verifies that real environment
// variables beat the .env file.
func TestWithDotEnv_DoesNotOverrideProcessEnv(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_VERSION", "process")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=dotenv\nAPP_LOG_LEVEL=warn\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("APP_LOG_LEVEL") })

	b := newConfigBuilder().withDotEnv(path).withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "process", b.configs[0].App.Version)
	assert.Equal(t, "warn", b.configs[0].App.LogLevel)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("AUTH_SESSION_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].Auth.SessionIssuer)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_SetsErrorOnBadArgs verifies that flag errors are collected.
func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Auth.SessionIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].Auth.SessionIssuer)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesFirstPath verifies that env's CONFIG beats -c.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "first"
	second := StructuredJSONConfig{}
	second.App.Version = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first", b.configs[3].App.Version)
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_FullPrecedence exercises every source at once.
func TestLoad_FullPrecedence(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.App.Version = "json"
	payload.App.LogLevel = "json"
	payload.Storage.DB.DSN = "postgres://json/site"
	payload.Auth.MaxLoginAttempts = 9
	path := writeTempJSONConfig(t, payload)

	t.Setenv("AUTH_SESSION_SECRET", testSecret)
	t.Setenv("APP_VERSION", "env")

	cfg, err := Load([]string{"-c", path, "-log-level", "warn", "-d", "postgres://flag/site"})
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "postgres://flag/site", cfg.Storage.DB.DSN)
	assert.Equal(t, 9, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Auth.LockoutWindow)
	assert.Equal(t, "sid", cfg.Auth.CookieName)
}

// TestLoad_MissingSecretFails verifies that defaults alone are not enough.
func TestLoad_MissingSecretFails(t *testing.T) {
	clearEnvVars(t)

	_, err := Load([]string{"-d", "postgres://flag/site"})
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// TestLoad_SweepIntervalCannotBeDisabled verifies that a zero interval falls
// back to the default and a negative one is rejected.
func TestLoad_SweepIntervalCannotBeDisabled(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("AUTH_SESSION_SECRET", testSecret)

	t.Setenv("WORKERS_SESSION_SWEEP_INTERVAL", "0s")
	cfg, err := Load([]string{"-d", "postgres://flag/site"})
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Workers.SessionSweepInterval)

	t.Setenv("WORKERS_SESSION_SWEEP_INTERVAL", "-1m")
	_, err = Load([]string{"-d", "postgres://flag/site"})
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// TestLoadStorage_IgnoresAuthSection verifies that offline tooling does not
// need a session secret.
func TestLoadStorage_IgnoresAuthSection(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadStorage([]string{"-db-driver", "sqlite", "-d", "site.db"})
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "site.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Auth.SessionSecret)
}

// TestLoadStorage_StillChecksStorage verifies the storage rules apply.
func TestLoadStorage_StillChecksStorage(t *testing.T) {
	clearEnvVars(t)

	_, err := LoadStorage(nil)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
	assert.NotErrorIs(t, err, ErrInvalidAuthConfigs)
}
