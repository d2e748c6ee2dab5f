// Package smoke checks the single-flight token refresh against a running
// backend: it signs in, invalidates the access token locally and fires many
// authenticated requests at once.
package smoke

import (
	"errors"
	"time"
)

// Defaults for the smoke run.
const (
	DefaultAPIPrefix = "/api/v1"
	DefaultRequests  = 200
	DefaultTimeout   = 30 * time.Second
)

// Sentinel kinds for smoke failures.
var (
	ErrUnhealthy    = errors.New("backend is not healthy")
	ErrVerification = errors.New("verification failed")
	ErrConfig       = errors.New("invalid smoke config")
)

// Config holds configuration for the smoke run.
type Config struct {
	BaseURL   string        // Backend root, e.g. http://localhost:9080
	APIPrefix string        // Mount point of the API below BaseURL
	Email     string        // Account used for the run
	Password  string        // Its password
	Username  string        // Used when Register is set
	Register  bool          // Create the account when login fails
	Requests  int           // Number of authenticated requests
	Workers   int           // Number of concurrent workers
	Timeout   time.Duration // HTTP request timeout
	Verbose   bool          // Log every failed request
}

func (c *Config) validate() error {
	switch {
	case c.BaseURL == "":
		return errors.Join(ErrConfig, errors.New("base url is required"))
	case c.Email == "" || c.Password == "":
		return errors.Join(ErrConfig, errors.New("email and password are required"))
	case c.Requests <= 0:
		return errors.Join(ErrConfig, errors.New("requests must be positive"))
	case c.Workers <= 0:
		return errors.Join(ErrConfig, errors.New("workers must be positive"))
	}
	return nil
}

// Stats holds run statistics.
type Stats struct {
	Requests   int
	Successful int
	Failed     int
	// Refreshes is the number of refresh calls the backend saw during the
	// burst, or -1 when it does not expose a counter.
	Refreshes int64
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
