package desktop

import "errors"

// Sentinel kinds for desktop errors.
var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArgs      = errors.New("invalid command arguments")
	ErrInvalidVersion   = errors.New("invalid version")
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrMissingChecksum  = errors.New("manifest has no checksum")
	ErrManifest         = errors.New("update manifest unavailable")
	ErrNoPrompter       = errors.New("no prompter configured")
	ErrNoUpdate         = errors.New("no update available")
)
