package resources

import (
	"context"

	"github.com/okian/proinvestix/internal/adapters/http/client"
	"github.com/okian/proinvestix/internal/domain/model"
)

// Auth covers /auth.
type Auth struct{ base }

func (a *Auth) Login(ctx context.Context, req model.LoginRequest) (*client.Response, error) {
	return a.post(ctx, "/auth/login", req)
}

func (a *Auth) Register(ctx context.Context, req model.RegisterRequest) (*client.Response, error) {
	return a.post(ctx, "/auth/register", req)
}

func (a *Auth) Me(ctx context.Context) (*client.Response, error) {
	return a.get(ctx, "/auth/me", nil)
}

// Refresh goes through the normal interceptors; the client renews tokens
// on its own and does not use this method.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (*client.Response, error) {
	return a.post(ctx, "/auth/refresh", model.RefreshRequest{RefreshToken: refreshToken})
}

func (a *Auth) ChangePassword(ctx context.Context, req model.PasswordChange) (*client.Response, error) {
	return a.post(ctx, "/auth/change-password", req)
}

func (a *Auth) Logout(ctx context.Context) (*client.Response, error) {
	return a.post(ctx, "/auth/logout", nil)
}
