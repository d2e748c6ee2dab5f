// Package client is the authenticated HTTP client shared by every API
// module. It attaches the stored bearer token to each request and, on a
// 401, renews the access token once and resubmits the original request.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/okian/proinvestix/internal/storage"
	"github.com/okian/proinvestix/pkg/logger"
	"github.com/okian/proinvestix/pkg/metrics"
)

const (
	defaultTimeout     = 30 * time.Second
	defaultRefreshPath = "/auth/refresh"
	defaultUserAgent   = "proinvestix-go"
	maxBodyBytes       = 16 << 20
)

// Doer is the call surface the API modules depend on.
type Doer interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Client is safe for concurrent use.
type Client struct {
	baseURL     string
	tokens      storage.Store
	http        *http.Client
	timeout     time.Duration
	logger      logger.Logger
	retry       RetryPolicy
	onExpired   func(ctx context.Context)
	userAgent   string
	refreshPath string

	refreshes singleflight.Group
}

// New creates a client for baseURL (for example https://host/api/v1)
// reading and writing tokens in the given store.
func New(baseURL string, tokens storage.Store, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	if tokens == nil {
		tokens = storage.NewMemory()
	}

	c := &Client{
		baseURL:     strings.TrimRight(u.String(), "/"),
		tokens:      tokens,
		http:        &http.Client{},
		timeout:     defaultTimeout,
		logger:      logger.Nop(),
		retry:       DefaultRetryPolicy,
		userAgent:   defaultUserAgent,
		refreshPath: defaultRefreshPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.Named("client")
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Tokens returns the token store.
func (c *Client) Tokens() storage.Store { return c.tokens }

// Do sends req. A 2xx answer is returned as is; any other status becomes an
// *APIError. On a 401 the retry policy may renew the session and resend the
// same method, path, query and body once; that second answer is final.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	payload, err := req.payload()
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		token := storage.GetString(ctx, c.tokens, storage.KeyAccessToken)

		resp, err := c.send(ctx, req, payload, token)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		apiErr := newAPIError(req.Method, req.Path, resp.StatusCode, resp.Body)
		if !c.retry(resp.StatusCode, attempt) {
			return nil, apiErr
		}
		if err := c.renew(ctx, token); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Warn(ctx, "session renewal failed",
				logger.String("path", req.Path),
				logger.Error(err),
			)
			apiErr.expired = true
			return nil, apiErr
		}
		metrics.RecordRequestRetry()
		c.logger.Debug(ctx, "retrying after token renewal",
			logger.String("method", req.Method),
			logger.String("path", req.Path),
			logger.Int("attempt", attempt+1),
		)
	}
}

// send performs one round trip with the given bearer token; an empty token
// sends the request unauthenticated.
func (c *Client) send(ctx context.Context, req *Request, payload []byte, token string) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + "/" + strings.TrimPrefix(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resource := req.Resource
	if resource == "" {
		resource = resourceOf(req.Path)
	}

	start := time.Now()
	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		metrics.RecordAPIRequest(resource, method, "error")
		c.logger.Error(ctx, "request failed",
			logger.String("method", method),
			logger.String("path", req.Path),
			logger.Error(err),
		)
		return nil, fmt.Errorf("%s %s: %w", method, req.Path, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %w", method, req.Path, err)
	}

	status := strconv.Itoa(httpResp.StatusCode)
	elapsed := time.Since(start)
	metrics.RecordAPIRequest(resource, method, status)
	metrics.RecordAPIRequestDuration(resource, method, status, float64(elapsed.Microseconds())/1000)
	c.logger.Debug(ctx, "request completed",
		logger.String("method", method),
		logger.String("path", req.Path),
		logger.Int("status", httpResp.StatusCode),
		logger.Duration("elapsed", elapsed),
	)

	return &Response{StatusCode: httpResp.StatusCode, Header: httpResp.Header, Body: data}, nil
}

// resourceOf returns the first path segment: /talents/12 -> talents.
func resourceOf(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "root"
	}
	return path
}
