// Package config loads CLI settings from ~/.ua/config.toml and UA_* env vars.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/spf13/viper"
)

const (
	BackendHTTP   = "http"
	BackendMemory = "memory"

	KeyBackend        = "backend"
	KeyBackendURL     = "backend_url"
	KeyActivityViewer = "activity_viewer"
	KeyRequestTimeout = "request_timeout"
	KeyLogLevel       = "log.level"
	KeyLogFormat      = "log.format"
	KeyProfilesPath   = "profiles.path"
	KeySecretsDir     = "secrets.dir"

	envPrefix = "UA"
)

type Log struct {
	Level  string
	Format string
}

type Config struct {
	Backend        string
	BackendURL     string
	ActivityViewer string
	RequestTimeout time.Duration
	Log            Log
	ProfilesPath   string
	SecretsDir     string
}

// HomeDir is ~/.ua.
func HomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ua"), nil
}

// Load applies defaults, the optional config file and the environment to v
// and returns the validated result. v keeps the merged values so adapters
// can read their own keys from it.
func Load(v *viper.Viper) (Config, error) {
	dir, err := HomeDir()
	if err != nil {
		return Config{}, err
	}

	v.SetDefault(KeyBackend, BackendHTTP)
	v.SetDefault(KeyActivityViewer, domain.DefaultActivityViewer)
	v.SetDefault(KeyRequestTimeout, 30*time.Second)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "human")
	v.SetDefault(KeyProfilesPath, filepath.Join(dir, "profiles.toml"))
	v.SetDefault(KeySecretsDir, filepath.Join(dir, "secrets"))

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() == "" {
		v.SetConfigFile(filepath.Join(dir, "config.toml"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, domain.NewError(domain.KindConfiguration, "", "read config file", err)
		}
	}

	cfg := Config{
		Backend:        strings.ToLower(strings.TrimSpace(v.GetString(KeyBackend))),
		BackendURL:     strings.TrimSpace(v.GetString(KeyBackendURL)),
		ActivityViewer: strings.TrimSpace(v.GetString(KeyActivityViewer)),
		RequestTimeout: v.GetDuration(KeyRequestTimeout),
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		ProfilesPath: v.GetString(KeyProfilesPath),
		SecretsDir:   v.GetString(KeySecretsDir),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendHTTP:
		// Empty is allowed here; the backend client rejects it on first use.
		if c.BackendURL != "" {
			if err := validateHTTPURL(KeyBackendURL, c.BackendURL); err != nil {
				return err
			}
		}
	case BackendMemory:
	default:
		return domain.Errorf(domain.KindConfiguration, "%s must be %q or %q, got %q", KeyBackend, BackendHTTP, BackendMemory, c.Backend)
	}

	if err := validateHTTPURL(KeyActivityViewer, c.ActivityViewer); err != nil {
		return err
	}
	if c.RequestTimeout <= 0 {
		return domain.Errorf(domain.KindConfiguration, "%s must be positive", KeyRequestTimeout)
	}
	if c.ProfilesPath == "" || c.SecretsDir == "" {
		return domain.Errorf(domain.KindConfiguration, "%s and %s are required", KeyProfilesPath, KeySecretsDir)
	}

	return nil
}

func validateHTTPURL(key, raw string) error {
	if raw == "" {
		return domain.Errorf(domain.KindConfiguration, "%s is required", key)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return domain.NewError(domain.KindConfiguration, "", key+" is not a valid url", err)
	}
	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return domain.Errorf(domain.KindConfiguration, "%s must be an http(s) url, got %q", key, raw)
	}
	return nil
}
