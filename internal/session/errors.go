package session

import "errors"

// Sentinel kinds for session errors.
var (
	ErrMissingTokens = errors.New("login answer carried no tokens")
	ErrNoAuthAPI     = errors.New("no auth api configured")
)
