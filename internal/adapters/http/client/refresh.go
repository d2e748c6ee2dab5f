package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/proinvestix/internal/domain/model"
	"github.com/okian/proinvestix/internal/storage"
	"github.com/okian/proinvestix/pkg/logger"
	"github.com/okian/proinvestix/pkg/metrics"
)

const refreshKey = "refresh"

var errSessionCleared = errors.New("session cleared by a concurrent renewal")

// renew makes a fresh access token available for a request that was sent
// with sent and answered 401. Concurrent callers share one refresh call.
func (c *Client) renew(ctx context.Context, sent string) error {
	if done, err := c.superseded(ctx, sent); done {
		if err == nil {
			metrics.RecordRefreshShared()
		}
		return err
	}

	ch := c.refreshes.DoChan(refreshKey, func() (any, error) {
		ctx := context.WithoutCancel(ctx)
		if done, err := c.superseded(ctx, sent); done {
			return nil, err
		}
		return nil, c.refresh(ctx)
	})
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Shared {
			metrics.RecordRefreshShared()
		}
		return res.Err
	}
}

// superseded reports whether the stored access token changed since sent
// left, meaning another caller already renewed or tore down the session.
func (c *Client) superseded(ctx context.Context, sent string) (bool, error) {
	stored := storage.GetString(ctx, c.tokens, storage.KeyAccessToken)
	switch {
	case stored == sent:
		return false, nil
	case stored == "":
		return true, errSessionCleared
	default:
		return true, nil
	}
}

// refresh exchanges the stored refresh token for a new access token. When
// that is impossible it clears both tokens and fires the expiry hook.
func (c *Client) refresh(ctx context.Context) error {
	refreshToken := storage.GetString(ctx, c.tokens, storage.KeyRefreshToken)
	if refreshToken == "" {
		metrics.RecordTokenRefresh("missing")
		c.expire(ctx)
		return fmt.Errorf("%w: no refresh token", ErrRefreshFailed)
	}

	tokens, err := c.requestRefresh(ctx, refreshToken)
	if err == nil {
		err = c.tokens.Set(ctx, storage.KeyAccessToken, tokens.AccessToken)
	}
	if err == nil && tokens.RefreshToken != "" {
		err = c.tokens.Set(ctx, storage.KeyRefreshToken, tokens.RefreshToken)
	}
	if err != nil {
		metrics.RecordTokenRefresh("failure")
		c.expire(ctx)
		return err
	}

	metrics.RecordTokenRefresh("success")
	c.logger.Info(ctx, "access token renewed")
	return nil
}

// requestRefresh calls the refresh endpoint without the bearer header and
// without any retry handling.
func (c *Client) requestRefresh(ctx context.Context, refreshToken string) (*model.RefreshResponse, error) {
	req := &Request{
		Method:   http.MethodPost,
		Path:     c.refreshPath,
		Body:     model.RefreshRequest{RefreshToken: refreshToken},
		Resource: "auth",
	}
	payload, err := req.payload()
	if err != nil {
		return nil, err
	}
	resp, err := c.send(ctx, req, payload, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, newAPIError(req.Method, req.Path, resp.StatusCode, resp.Body))
	}
	tokens, err := DecodeData[model.RefreshResponse](resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}
	if tokens.AccessToken == "" {
		return nil, fmt.Errorf("%w: empty access token", ErrRefreshFailed)
	}
	return &tokens, nil
}

func (c *Client) expire(ctx context.Context) {
	if err := storage.ClearTokens(ctx, c.tokens); err != nil {
		c.logger.Error(ctx, "clear tokens", logger.Error(err))
	}
	metrics.RecordSessionExpired()
	c.logger.Warn(ctx, "session expired")
	if c.onExpired != nil {
		c.onExpired(ctx)
	}
}
