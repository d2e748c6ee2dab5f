package resources

import (
	"context"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Transfers covers /transfers.
type Transfers struct{ base }

func (t *Transfers) List(ctx context.Context, params Params) (*client.Response, error) {
	return t.get(ctx, "/transfers", params)
}

func (t *Transfers) Get(ctx context.Context, id int) (*client.Response, error) {
	return t.get(ctx, pathf("/transfers/%d", id), nil)
}

func (t *Transfers) Create(ctx context.Context, body any) (*client.Response, error) {
	return t.post(ctx, "/transfers", body)
}

func (t *Transfers) Update(ctx context.Context, id int, body any) (*client.Response, error) {
	return t.put(ctx, pathf("/transfers/%d", id), body)
}

// Calculate asks the backend for training compensation and solidarity amounts.
func (t *Transfers) Calculate(ctx context.Context, body any) (*client.Response, error) {
	return t.post(ctx, "/transfers/calculate", body)
}

func (t *Transfers) Stats(ctx context.Context) (*client.Response, error) {
	return t.get(ctx, "/transfers/stats/overview", nil)
}
