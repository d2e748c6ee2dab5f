// Package storage is the session-storage abstraction: a tiny string
// key/value contract holding bearer tokens, the persisted auth flag and
// desktop settings.
package storage

import (
	"context"
	"errors"
)

// Well-known keys.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyAuthState    = "auth-storage"
)

// Sentinel errors.
var (
	ErrEmptyKey = errors.New("storage: empty key")
	ErrCorrupt  = errors.New("storage: corrupt file")
)

// Store reads, writes and clears string values.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes keys; absent keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}

// ClearTokens removes both bearer tokens.
func ClearTokens(ctx context.Context, s Store) error {
	return s.Delete(ctx, KeyAccessToken, KeyRefreshToken)
}

// GetString returns the value for key, or "" when absent or unreadable.
func GetString(ctx context.Context, s Store, key string) string {
	v, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return ""
	}
	return v
}
