package client

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/okian/proinvestix/internal/storage"
)

// Claims is the unverified content of an access token. Signature checks
// belong to the backend; the client only reads them for display and
// expiry hints.
type Claims struct {
	Subject   string
	Role      string
	Type      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry at now. Tokens
// without an exp claim never expire.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Claims decodes the stored access token.
func (c *Client) Claims(ctx context.Context) (*Claims, error) {
	token := storage.GetString(ctx, c.tokens, storage.KeyAccessToken)
	if token == "" {
		return nil, ErrNoToken
	}
	return ParseClaims(token)
}

// ParseClaims decodes a JWT without verifying its signature.
func ParseClaims(token string) (*Claims, error) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	out := &Claims{}
	out.Subject, _ = mc.GetSubject()
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	out.Role, _ = mc["role"].(string)
	out.Type, _ = mc["type"].(string)
	return out, nil
}
