// Package session tracks whether a user is signed in and caches the
// current user record. A Session is an explicit object handed to whoever
// needs it; only the authenticated flag is persisted.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/okian/proinvestix/internal/adapters/http/client"
	"github.com/okian/proinvestix/internal/domain/model"
	"github.com/okian/proinvestix/internal/storage"
	"github.com/okian/proinvestix/pkg/logger"
	"github.com/okian/proinvestix/pkg/metrics"
)

// Messages shown when the backend gives no detail.
const (
	MsgLoginFailed    = "Inloggen mislukt"
	MsgRegisterFailed = "Registratie mislukt"
)

// AuthAPI is the subset of the auth resource the session calls.
type AuthAPI interface {
	Login(ctx context.Context, req model.LoginRequest) (*client.Response, error)
	Register(ctx context.Context, req model.RegisterRequest) (*client.Response, error)
	Me(ctx context.Context) (*client.Response, error)
}

// State is a point-in-time copy of the session.
type State struct {
	User            *model.User `json:"user"`
	IsAuthenticated bool        `json:"isAuthenticated"`
	IsLoading       bool        `json:"isLoading"`
	Error           string      `json:"error,omitempty"`
}

type persisted struct {
	IsAuthenticated bool `json:"isAuthenticated"`
}

// Session is safe for concurrent use.
type Session struct {
	auth   AuthAPI
	store  storage.Store
	logger logger.Logger

	mu            sync.RWMutex
	user          *model.User
	authenticated bool
	loading       bool
	err           string
}

// Option applies a configuration option to the Session.
type Option func(*Session)

// WithLogger sets the logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a signed-out session. Call Restore to load the persisted flag.
func New(auth AuthAPI, store storage.Store, opts ...Option) *Session {
	if store == nil {
		store = storage.NewMemory()
	}
	s := &Session{auth: auth, store: store, logger: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("session")
	return s
}

// Restore loads the persisted authenticated flag. A missing or unreadable
// record leaves the session signed out.
func (s *Session) Restore(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, storage.KeyAuthState)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	var p persisted
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			s.logger.Warn(ctx, "ignoring unreadable session record", logger.Error(err))
			p = persisted{}
		}
	}
	s.mu.Lock()
	s.authenticated = p.IsAuthenticated
	s.mu.Unlock()
	return nil
}

// Login signs in with email and password, stores both tokens and caches
// the user. On failure the error message is recorded, the authenticated
// flag is left as it was and the error is returned.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.begin()

	user, err := s.login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		metrics.RecordLogin("failure")
		s.fail(messageFor(err, MsgLoginFailed))
		s.logger.Warn(ctx, "login failed", logger.String("email", email), logger.Error(err))
		return fmt.Errorf("login: %w", err)
	}

	s.mu.Lock()
	s.user = user
	s.authenticated = true
	s.loading = false
	s.mu.Unlock()
	s.persist(ctx)

	metrics.RecordLogin("success")
	s.logger.Info(ctx, "signed in", logger.Int("user_id", user.ID), logger.String("role", string(user.Role)))
	return nil
}

func (s *Session) login(ctx context.Context, req model.LoginRequest) (*model.User, error) {
	if s.auth == nil {
		return nil, ErrNoAuthAPI
	}
	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	tokens, err := client.DecodeData[model.TokenResponse](resp)
	if err != nil {
		return nil, err
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return nil, ErrMissingTokens
	}
	if err := s.store.Set(ctx, storage.KeyAccessToken, tokens.AccessToken); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, storage.KeyRefreshToken, tokens.RefreshToken); err != nil {
		return nil, err
	}
	return s.me(ctx)
}

// Register creates an account. It never signs the new account in.
func (s *Session) Register(ctx context.Context, req model.RegisterRequest) error {
	s.begin()

	err := ErrNoAuthAPI
	if s.auth != nil {
		_, err = s.auth.Register(ctx, req)
	}
	if err != nil {
		s.fail(messageFor(err, MsgRegisterFailed))
		s.logger.Warn(ctx, "registration failed", logger.String("username", req.Username), logger.Error(err))
		return fmt.Errorf("register: %w", err)
	}

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
	s.logger.Info(ctx, "account registered", logger.String("username", req.Username))
	return nil
}

// Logout clears both tokens and the cached user. The backend is not told.
func (s *Session) Logout(ctx context.Context) error {
	err := storage.ClearTokens(ctx, s.store)
	s.reset()
	s.persist(ctx)
	metrics.RecordLogout()
	s.logger.Info(ctx, "signed out")
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Expire drops the cached user after the client tore the session down.
// Tokens are already gone at that point.
func (s *Session) Expire(ctx context.Context) {
	s.reset()
	s.persist(ctx)
}

// FetchUser loads the current user. Any failure signs the session out
// locally and is returned.
func (s *Session) FetchUser(ctx context.Context) error {
	user, err := s.me(ctx)
	s.mu.Lock()
	if err != nil {
		s.user = nil
		s.authenticated = false
	} else {
		s.user = user
		s.authenticated = true
	}
	s.mu.Unlock()
	s.persist(ctx)
	if err != nil {
		return fmt.Errorf("fetch user: %w", err)
	}
	return nil
}

func (s *Session) me(ctx context.Context) (*model.User, error) {
	if s.auth == nil {
		return nil, ErrNoAuthAPI
	}
	resp, err := s.auth.Me(ctx)
	if err != nil {
		return nil, err
	}
	user, err := client.DecodeData[model.User](resp)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ClearError drops the last error message.
func (s *Session) ClearError() {
	s.mu.Lock()
	s.err = ""
	s.mu.Unlock()
}

// User returns a copy of the cached user, or nil.
func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last error message, or "".
func (s *Session) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// State returns a copy of the whole session.
func (s *Session) State() State {
	return State{
		User:            s.User(),
		IsAuthenticated: s.IsAuthenticated(),
		IsLoading:       s.IsLoading(),
		Error:           s.Err(),
	}
}

func (s *Session) begin() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

func (s *Session) fail(msg string) {
	s.mu.Lock()
	s.loading = false
	s.err = msg
	s.mu.Unlock()
}

func (s *Session) reset() {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()
}

func (s *Session) persist(ctx context.Context) {
	data, _ := json.Marshal(persisted{IsAuthenticated: s.IsAuthenticated()})
	if err := s.store.Set(ctx, storage.KeyAuthState, string(data)); err != nil {
		s.logger.Error(ctx, "persist session flag", logger.Error(err))
	}
}

func messageFor(err error, fallback string) string {
	if detail := client.Detail(err); detail != "" {
		return detail
	}
	return fallback
}
