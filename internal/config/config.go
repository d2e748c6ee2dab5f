// Package config defines the client platform configuration and its loading.
//
// Conventions:
// - New() returns a Config filled with defaults.
// - Load(ctx) layers a YAML file and PROINVESTIX_* environment variables on top.
// - Errors wrap ErrLoadConfig or ErrInvalidConfig.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultAPIBaseURL is the production backend.
const DefaultAPIBaseURL = "https://pro-invest-x-production.up.railway.app/api/v1"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat is text or json.
	LogFormat string `koanf:"log_format"`

	// APIBaseURL is the backend root every API path is appended to.
	APIBaseURL string `koanf:"api_base_url"`

	// RequestTimeoutMS bounds each HTTP call.
	RequestTimeoutMS int `koanf:"request_timeout_ms"`

	// SessionFile holds tokens and the auth flag between runs. Empty keeps
	// them in memory only.
	SessionFile string `koanf:"session_file"`

	// Locale and Currency drive number, date and money formatting.
	Locale   string `koanf:"locale"`
	Currency string `koanf:"currency"`

	// DesktopEnabled selects the native capability layer.
	DesktopEnabled bool `koanf:"desktop_enabled"`

	// AppVersion is reported by the desktop shell and compared against the
	// update manifest.
	AppVersion string `koanf:"app_version"`

	// UpdateManifestURL points at the release manifest. Empty disables updates.
	UpdateManifestURL string `koanf:"update_manifest_url"`

	// UpdateCheckDelayMS is the wait before the startup update check.
	UpdateCheckDelayMS int `koanf:"update_check_delay_ms"`

	// MetricsEnabled turns Prometheus collection on.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// MetricsNamespace and MetricsSubsystem prefix every metric name.
	MetricsNamespace string `koanf:"metrics_namespace"`
	MetricsSubsystem string `koanf:"metrics_subsystem"`

	// MetricsBucketsMS overrides the latency histogram buckets. YAML only.
	MetricsBucketsMS []float64 `koanf:"metrics_buckets_ms"`

	// MetricsLabels are constant labels added to every metric. YAML only.
	MetricsLabels map[string]string `koanf:"metrics_labels"`

	// Stub backend settings.
	StubAddr        string `koanf:"stub_addr"`
	StubJWTSecret   string `koanf:"stub_jwt_secret"`
	StubAccessTTLS  int    `koanf:"stub_access_ttl_s"`
	StubRefreshTTLS int    `koanf:"stub_refresh_ttl_s"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		APIBaseURL:         DefaultAPIBaseURL,
		RequestTimeoutMS:   30_000,
		SessionFile:        defaultSessionFile(),
		Locale:             "nl-NL",
		Currency:           "EUR",
		DesktopEnabled:     false,
		AppVersion:         "1.0.0",
		UpdateCheckDelayMS: 5_000,
		MetricsEnabled:     true,
		MetricsNamespace:   "proinvestix",
		MetricsSubsystem:   "client",
		StubAddr:           ":9080",
		StubJWTSecret:      "proinvestix-dev-secret",
		StubAccessTTLS:     1_800,
		StubRefreshTTLS:    604_800,
	}
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "proinvestix", "session.json")
}

// RequestTimeout is RequestTimeoutMS as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// UpdateCheckDelay is UpdateCheckDelayMS as a duration.
func (c *Config) UpdateCheckDelay() time.Duration {
	return time.Duration(c.UpdateCheckDelayMS) * time.Millisecond
}

// StubAccessTTL is the stub access token lifetime.
func (c *Config) StubAccessTTL() time.Duration {
	return time.Duration(c.StubAccessTTLS) * time.Second
}

// StubRefreshTTL is the stub refresh token lifetime.
func (c *Config) StubRefreshTTL() time.Duration {
	return time.Duration(c.StubRefreshTTLS) * time.Second
}

// Validate checks the values Load cannot fix on its own.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: api_base_url %q must be an absolute http(s) URL", ErrInvalidConfig, c.APIBaseURL)
	}
	if c.RequestTimeoutMS <= 0 {
		return fmt.Errorf("%w: request_timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.UpdateCheckDelayMS < 0 {
		return fmt.Errorf("%w: update_check_delay_ms must not be negative", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q must be text or json", ErrInvalidConfig, c.LogFormat)
	}
	for i, b := range c.MetricsBucketsMS {
		if b <= 0 || (i > 0 && b <= c.MetricsBucketsMS[i-1]) {
			return fmt.Errorf("%w: metrics_buckets_ms must be positive and increasing", ErrInvalidConfig)
		}
	}
	if c.StubAccessTTLS <= 0 || c.StubRefreshTTLS <= 0 {
		return fmt.Errorf("%w: stub token lifetimes must be positive", ErrInvalidConfig)
	}
	return nil
}
