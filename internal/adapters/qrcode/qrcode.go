// Package qrcode renders ticket verification links as QR images.
package qrcode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	goqr "github.com/skip2/go-qrcode"

	"github.com/okian/proinvestix/internal/adapters/http/resources"
)

// DefaultSize is the PNG edge length in pixels.
const DefaultSize = 256

var (
	ErrEmptyHash    = errors.New("ticket hash is required")
	ErrEmptyBaseURL = errors.New("verification base URL is required")
)

// TicketURL is the link a scanner opens to verify a ticket.
func TicketURL(baseURL, hash string) (string, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	hash = strings.TrimSpace(hash)
	if baseURL == "" {
		return "", ErrEmptyBaseURL
	}
	if hash == "" {
		return "", ErrEmptyHash
	}
	return baseURL + resources.TicketVerifyPath(hash), nil
}

// TicketPNG encodes the verification link for hash as a size x size PNG.
func TicketPNG(baseURL, hash string, size int) ([]byte, error) {
	link, err := TicketURL(baseURL, hash)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := goqr.Encode(link, goqr.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

// WriteTicketPNG writes TicketPNG to path, creating the directory.
func WriteTicketPNG(path, baseURL, hash string, size int) error {
	png, err := TicketPNG(baseURL, hash, size)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
	}
	if err := os.WriteFile(path, png, 0o644); err != nil { //nolint:gosec // tickets are not secret
		return fmt.Errorf("write qr: %w", err)
	}
	return nil
}
