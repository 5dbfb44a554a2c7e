package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithMemoryBackend(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv("UA_BACKEND", "memory")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, "https://universalx.app", cfg.ActivityViewer)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, filepath.Join(homeDir, ".ua", "profiles.toml"), cfg.ProfilesPath)
	assert.Equal(t, filepath.Join(homeDir, ".ua", "secrets"), cfg.SecretsDir)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadReadsConfigFileAndEnvOverrides(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".ua"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(homeDir, ".ua", "config.toml"), []byte(`
backend = "http"
backend_url = "https://api.example.test"
request_timeout = "5s"

[log]
level = "debug"
format = "json"
`), 0o600))
	t.Setenv("UA_LOG_LEVEL", "error")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, BackendHTTP, cfg.Backend)
	assert.Equal(t, "https://api.example.test", cfg.BackendURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, Log{Level: "error", Format: "json"}, cfg.Log)
}

func TestLoadAllowsHTTPBackendWithoutURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("UA_BACKEND", "http")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, BackendHTTP, cfg.Backend)
	assert.Empty(t, cfg.BackendURL)
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "unknown backend", env: map[string]string{"UA_BACKEND": "grpc"}, want: "backend must be"},
		{name: "bad url scheme", env: map[string]string{"UA_BACKEND_URL": "ftp://api.example.test"}, want: "backend_url must be an http(s) url"},
		{name: "bad viewer", env: map[string]string{"UA_BACKEND": "memory", "UA_ACTIVITY_VIEWER": "universalx.app"}, want: "activity_viewer must be an http(s) url"},
		{name: "zero timeout", env: map[string]string{"UA_BACKEND": "memory", "UA_REQUEST_TIMEOUT": "0s"}, want: "request_timeout must be positive"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := Load(viper.New())
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrConfiguration)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}
