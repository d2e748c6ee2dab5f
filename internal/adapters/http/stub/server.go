// Package stub is a local stand-in for the ProInvestiX backend. It issues
// real HS256 tokens and serves canned data for a handful of resources so
// the client can be exercised end to end without the production API.
package stub

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"github.com/okian/proinvestix/internal/domain/model"
	"github.com/okian/proinvestix/pkg/logger"
	"github.com/okian/proinvestix/pkg/metrics"
)

// APIPrefix is where the backend routes are mounted.
const APIPrefix = "/api/v1"

// Defaults match the production token lifetimes.
const (
	DefaultAccessTTL  = 30 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Server holds the stub backend state.
type Server struct {
	tokens    *issuer
	users     *users
	talents   []model.Talent
	rotate    bool
	refreshes atomic.Int64
	logger    logger.Logger
}

// Option applies a configuration option to the Server.
type Option func(*options)

type options struct {
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
	rotate     bool
	cost       int
	logger     logger.Logger
}

// WithSecret sets the HS256 signing secret. Required.
func WithSecret(secret string) Option {
	return func(o *options) { o.secret = secret }
}

// WithAccessTTL sets the access token lifetime.
func WithAccessTTL(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.accessTTL = d
		}
	}
}

// WithRefreshTTL sets the refresh token lifetime.
func WithRefreshTTL(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.refreshTTL = d
		}
	}
}

// WithClock replaces time.Now for token issuing and validation.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithRotation makes refresh return a new refresh token as well.
func WithRotation(enabled bool) Option {
	return func(o *options) { o.rotate = enabled }
}

// WithBcryptCost sets the password hashing cost.
func WithBcryptCost(cost int) Option {
	return func(o *options) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			o.cost = cost
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a stub backend with the canned talent list and no users.
func New(opts ...Option) (*Server, error) {
	o := options{
		accessTTL:  DefaultAccessTTL,
		refreshTTL: DefaultRefreshTTL,
		now:        time.Now,
		cost:       bcrypt.DefaultCost,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.secret == "" {
		return nil, ErrNoSecret
	}
	return &Server{
		tokens: &issuer{
			secret:     []byte(o.secret),
			accessTTL:  o.accessTTL,
			refreshTTL: o.refreshTTL,
			now:        o.now,
		},
		users:   newUsers(o.cost, o.now),
		talents: cannedTalents(),
		rotate:  o.rotate,
		logger:  o.logger.Named("stub"),
	}, nil
}

// Seed adds an account directly, bypassing the register endpoint.
func (s *Server) Seed(ctx context.Context, req model.RegisterRequest, role model.Role) (model.User, error) {
	u, err := s.users.add(req, role)
	if err != nil {
		return model.User{}, err
	}
	s.logger.Info(ctx, "seeded user", logger.String("email", u.Email), logger.String("role", string(role)))
	return u, nil
}

// RefreshCount is the number of refresh requests received so far.
func (s *Server) RefreshCount() int64 {
	return s.refreshes.Load()
}

// Register attaches all routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	api := func(method, path, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(method+" "+APIPrefix+path, MetricsMiddleware(h, endpoint))
	}

	api(http.MethodPost, "/auth/login", "auth_login", s.handleLogin)
	api(http.MethodPost, "/auth/register", "auth_register", s.handleRegister)
	api(http.MethodPost, "/auth/refresh", "auth_refresh", s.handleRefresh)
	api(http.MethodGet, "/auth/me", "auth_me", s.authenticated(s.handleMe))
	api(http.MethodPost, "/auth/logout", "auth_logout", s.authenticated(s.handleLogout))
	api(http.MethodGet, "/talents", "talents", s.authenticated(s.handleTalents))
	api(http.MethodGet, "/talents/{id}", "talent", s.authenticated(s.handleTalent))
	api(http.MethodGet, "/dashboard/stats", "dashboard_stats", s.authenticated(s.handleDashboardStats))

	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.handleHealth, "healthz"))
	mux.HandleFunc("GET /debug/refresh-count", s.handleRefreshCount)
	mux.Handle("GET /metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
	mux.HandleFunc("GET /openapi.yaml", handleOpenAPI)
}

// Handler returns a mux with every route registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}
