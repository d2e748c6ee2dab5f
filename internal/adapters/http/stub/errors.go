package stub

import "errors"

// Sentinel kinds for stub backend errors.
var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserDisabled       = errors.New("user account is disabled")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrMissingField       = errors.New("missing required field")
	ErrAlreadyExists      = errors.New("already exists")
	ErrNoSecret           = errors.New("jwt secret is required")
)

// Details returned to clients, worded like the production backend.
const (
	detailInvalidCredentials = "Incorrect email or password"
	detailInvalidToken       = "Invalid token"
	detailNotAuthenticated   = "Not authenticated"
	detailUserDisabled       = "User account is disabled"
	detailInvalidJSON        = "Invalid JSON body"
)
