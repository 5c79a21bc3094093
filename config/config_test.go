package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT",
	"PANELS_COUNT",
	"PANELS_DEFECTIVE_ID",
	"SAMPLER_STRATEGY",
	"SAMPLER_TIMEZONE",
	"ROUTES_BARE_CODE_LOOKUP",
	"LOG_LEVEL",
}

// clearEnv blanks every override so the host environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Panels.Count)
	assert.Equal(t, 3, cfg.Panels.DefectiveID)
	assert.Equal(t, "diurnal", cfg.Sampler.Strategy)
	assert.Equal(t, time.Local, cfg.Sampler.Location)
	assert.False(t, cfg.Routes.BareCodeLookup)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5*time.Minute, cfg.Server.CacheTTL)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 10.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.True(t, cfg.Server.GzipEnabled())
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Panels.Count)
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
server:
  port: 8081
  cache_ttl_seconds: 30
  gzip: false
panels:
  count: 8
  defective_id: 0
sampler:
  strategy: flat
  timezone: America/Sao_Paulo
routes:
  bare_code_lookup: true
log:
  level: debug
  pretty: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.CacheTTL)
	assert.False(t, cfg.Server.GzipEnabled())
	assert.Equal(t, 8, cfg.Panels.Count)
	assert.Equal(t, 0, cfg.Panels.DefectiveID)
	assert.Equal(t, "flat", cfg.Sampler.Strategy)
	require.NotNil(t, cfg.Sampler.Location)
	assert.Equal(t, "America/Sao_Paulo", cfg.Sampler.Location.String())
	assert.True(t, cfg.Routes.BareCodeLookup)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "4242")
	t.Setenv("PANELS_COUNT", "7")
	t.Setenv("SAMPLER_STRATEGY", "flat")

	cfg, err := Load(writeConfig(t, "server:\n  port: 8081\npanels:\n  count: 2\n"))
	require.NoError(t, err)

	assert.Equal(t, 4242, cfg.Server.Port)
	assert.Equal(t, 7, cfg.Panels.Count)
	assert.Equal(t, "flat", cfg.Sampler.Strategy)
}

func TestLoad_NonNumericEnv(t *testing.T) {
	for _, key := range []string{"PORT", "PANELS_COUNT", "PANELS_DEFECTIVE_ID"} {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, "abc")

			_, err := Load(writeConfig(t, ""))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "Negative panel count", body: "panels:\n  count: -1\n"},
		{name: "Unknown strategy", body: "sampler:\n  strategy: lunar\n"},
		{name: "Unknown timezone", body: "sampler:\n  timezone: Mars/Olympus_Mons\n"},
		{name: "Port out of range", body: "server:\n  port: 70000\n"},
		{name: "Malformed yaml", body: "server: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}
