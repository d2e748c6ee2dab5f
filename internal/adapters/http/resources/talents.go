package resources

import (
	"context"

	"github.com/okian/proinvestix/internal/adapters/http/client"
)

// Talents covers /talents.
type Talents struct{ base }

func (t *Talents) List(ctx context.Context, params Params) (*client.Response, error) {
	return t.get(ctx, "/talents", params)
}

func (t *Talents) Get(ctx context.Context, id int) (*client.Response, error) {
	return t.get(ctx, pathf("/talents/%d", id), nil)
}

func (t *Talents) Create(ctx context.Context, body any) (*client.Response, error) {
	return t.post(ctx, "/talents", body)
}

func (t *Talents) Update(ctx context.Context, id int, body any) (*client.Response, error) {
	return t.put(ctx, pathf("/talents/%d", id), body)
}

func (t *Talents) Delete(ctx context.Context, id int) (*client.Response, error) {
	return t.delete(ctx, pathf("/talents/%d", id))
}

func (t *Talents) Stats(ctx context.Context) (*client.Response, error) {
	return t.get(ctx, "/talents/stats/overview", nil)
}

func (t *Talents) Filters(ctx context.Context) (*client.Response, error) {
	return t.get(ctx, "/talents/filters/options", nil)
}

// Scouts covers /scouts.
type Scouts struct{ base }

func (s *Scouts) List(ctx context.Context, params Params) (*client.Response, error) {
	return s.get(ctx, "/scouts", params)
}

func (s *Scouts) Get(ctx context.Context, id int) (*client.Response, error) {
	return s.get(ctx, pathf("/scouts/%d", id), nil)
}

func (s *Scouts) Create(ctx context.Context, body any) (*client.Response, error) {
	return s.post(ctx, "/scouts", body)
}

func (s *Scouts) Update(ctx context.Context, id int, body any) (*client.Response, error) {
	return s.put(ctx, pathf("/scouts/%d", id), body)
}

func (s *Scouts) Delete(ctx context.Context, id int) (*client.Response, error) {
	return s.delete(ctx, pathf("/scouts/%d", id))
}

func (s *Scouts) Reports(ctx context.Context, scoutID int) (*client.Response, error) {
	return s.get(ctx, pathf("/scouts/%d/reports", scoutID), nil)
}
