package resources

import (
	"context"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Admin covers /admin.
type Admin struct{ base }

func (a *Admin) Users(ctx context.Context, params Params) (*client.Response, error) {
	return a.get(ctx, "/admin/users", params)
}

func (a *Admin) User(ctx context.Context, id int) (*client.Response, error) {
	return a.get(ctx, pathf("/admin/users/%d", id), nil)
}

func (a *Admin) CreateUser(ctx context.Context, body any) (*client.Response, error) {
	return a.post(ctx, "/admin/users", body)
}

func (a *Admin) UpdateUser(ctx context.Context, id int, body any) (*client.Response, error) {
	return a.put(ctx, pathf("/admin/users/%d", id), body)
}

func (a *Admin) DeleteUser(ctx context.Context, id int) (*client.Response, error) {
	return a.delete(ctx, pathf("/admin/users/%d", id))
}

func (a *Admin) Sessions(ctx context.Context, params Params) (*client.Response, error) {
	return a.get(ctx, "/admin/sessions", params)
}

func (a *Admin) TerminateSession(ctx context.Context, id int) (*client.Response, error) {
	return a.delete(ctx, pathf("/admin/sessions/%d", id))
}

func (a *Admin) AuditLogs(ctx context.Context, params Params) (*client.Response, error) {
	return a.get(ctx, "/admin/audit", params)
}

func (a *Admin) Health(ctx context.Context) (*client.Response, error) {
	return a.get(ctx, "/admin/health", nil)
}

func (a *Admin) Settings(ctx context.Context) (*client.Response, error) {
	return a.get(ctx, "/admin/settings", nil)
}

func (a *Admin) Stats(ctx context.Context) (*client.Response, error) {
	return a.get(ctx, "/admin/stats", nil)
}
